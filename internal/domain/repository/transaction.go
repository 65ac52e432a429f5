package repository

import "context"

// TransactionManager runs multi-step writes atomically: the default-address swap,
// credit purchase with its receipt, and a lead contact with its credit debit.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory returns repositories bound to the surrounding transaction.
type RepositoryFactory interface {
	UserRepo() UserRepository
	AddressRepo() AddressRepository
	VendorRepo() VendorRepository
	SubscriptionRepo() SubscriptionRepository
	LeadRepo() LeadRepository
	ProductRepo() ProductRepository
	MessageRepo() MessageRepository
	ReferenceRepo() ReferenceRepository
}
