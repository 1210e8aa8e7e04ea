package dto

import (
	"time"

	"github.com/SscSPs/banking_portal/internal/core/domain"
)

// RegisterRequest defines the data needed to register a user and open their account.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

// LoginRequest carries an account number or an email address as the identifier.
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token         string    `json:"token"`
	ExpiresAt     time.Time `json:"expiresAt"`
	AccountNumber string    `json:"accountNumber"`
}

// RegisterResponse is returned after a successful registration.
type RegisterResponse struct {
	UserID        string `json:"userID"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	AccountNumber string `json:"accountNumber"`
}

// ToRegisterResponse builds the registration response from the created user and account.
func ToRegisterResponse(user *domain.User, account *domain.Account) RegisterResponse {
	return RegisterResponse{
		UserID:        user.UserID,
		Name:          user.Name,
		Email:         user.Email,
		AccountNumber: account.AccountNumber,
	}
}
