package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// Account is the persistence shape of an account row.
type Account struct {
	AccountNumber string          `db:"account_number"`
	UserID        string          `db:"user_id"`
	Balance       decimal.Decimal `db:"balance"`
	PinHash       sql.NullString  `db:"pin_hash"` // Null until a PIN is created
	AuditFields
}
