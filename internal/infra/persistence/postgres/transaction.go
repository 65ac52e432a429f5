// Package postgres implements the repositories on GORM and PostgreSQL.
package postgres

import (
	"context"

	"leadhub/internal/domain/repository"
	"leadhub/internal/errors"

	"gorm.io/gorm"
)

type gormTransactionManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn in one transaction. fn's error rolls back and is returned unchanged
// so domain sentinels survive; a panic rolls back and is re-raised.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	var fnErr error
	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(txRepositories{tx: tx})

		return fnErr
	})
	if fnErr != nil {
		return fnErr
	}

	return errors.Wrap(err, "transaction failed")
}

// txRepositories hands out repositories bound to a single transaction.
type txRepositories struct {
	tx *gorm.DB
}

func (f txRepositories) UserRepo() repository.UserRepository {
	return NewUserRepository(f.tx)
}

func (f txRepositories) AddressRepo() repository.AddressRepository {
	return NewAddressRepository(f.tx)
}

func (f txRepositories) VendorRepo() repository.VendorRepository {
	return NewVendorRepository(f.tx)
}

func (f txRepositories) SubscriptionRepo() repository.SubscriptionRepository {
	return NewSubscriptionRepository(f.tx)
}

func (f txRepositories) LeadRepo() repository.LeadRepository {
	return NewLeadRepository(f.tx)
}

func (f txRepositories) ProductRepo() repository.ProductRepository {
	return NewProductRepository(f.tx)
}

func (f txRepositories) MessageRepo() repository.MessageRepository {
	return NewMessageRepository(f.tx)
}

func (f txRepositories) ReferenceRepo() repository.ReferenceRepository {
	return NewReferenceRepository(f.tx)
}
