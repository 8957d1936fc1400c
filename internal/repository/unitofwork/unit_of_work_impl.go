package unitofwork

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"carepal-be/internal/repository/contract"
	"carepal-be/internal/repository/implementation"
)

type unitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB
}

func newUnitOfWork(db *gorm.DB) UnitOfWork {
	return &unitOfWorkImpl{db: db}
}

func (u *unitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return errors.New("transaction already started")
	}
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	u.tx = tx
	return nil
}

func (u *unitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return errors.New("no transaction started")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *unitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return nil
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// conn returns the active transaction, or the base connection when no
// transaction was started.
func (u *unitOfWorkImpl) conn() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *unitOfWorkImpl) ChatSessionRepository() contract.ChatSessionRepository {
	return implementation.NewChatSessionRepository(u.conn())
}

func (u *unitOfWorkImpl) ChatMessageRepository() contract.ChatMessageRepository {
	return implementation.NewChatMessageRepository(u.conn())
}

func (u *unitOfWorkImpl) CustomerRepository() contract.CustomerRepository {
	return implementation.NewCustomerRepository(u.conn())
}

func (u *unitOfWorkImpl) IntentExampleRepository() contract.IntentExampleRepository {
	return implementation.NewIntentExampleRepository(u.conn())
}

func (u *unitOfWorkImpl) SystemLogRepository() contract.SystemLogRepository {
	return implementation.NewSystemLogRepository(u.conn())
}
