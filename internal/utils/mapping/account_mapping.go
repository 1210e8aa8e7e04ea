package mapping

import (
	"github.com/SscSPs/banking_portal/internal/core/domain"
	"github.com/SscSPs/banking_portal/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountNumber: d.AccountNumber,
		UserID:        d.UserID,
		Balance:       d.Balance,
		PinHash:       toNullString(d.PinHash),
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountNumber: m.AccountNumber,
		UserID:        m.UserID,
		Balance:       m.Balance,
		PinHash:       fromNullString(m.PinHash),
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}
