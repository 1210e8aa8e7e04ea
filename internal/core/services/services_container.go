package services

import (
	"github.com/SscSPs/banking_portal/internal/core/ports"
	portsrepo "github.com/SscSPs/banking_portal/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/banking_portal/internal/core/ports/services"
	"github.com/SscSPs/banking_portal/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, encoder portssvc.SecretEncoder, publisher ports.EventPublisher) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Account: NewAccountService(repos, encoder, WithAccountEventPublisher(publisher)),
		Loan:    NewLoanService(repos, WithLoanEventPublisher(publisher)),
		User:    NewUserService(repos, encoder),
		Auth:    NewAuthService(cfg, repos, encoder),
	}
}
