package unitofwork

import (
	"context"

	"carepal-be/internal/repository/contract"
)

// UnitOfWork scopes repository access to one transaction.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ChatSessionRepository() contract.ChatSessionRepository
	ChatMessageRepository() contract.ChatMessageRepository
	CustomerRepository() contract.CustomerRepository
	IntentExampleRepository() contract.IntentExampleRepository
	SystemLogRepository() contract.SystemLogRepository
}
