package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs fn within a database transaction.
	// If fn returns an error (or panics) the transaction is rolled back, otherwise it is committed.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a single transaction.
type RepositoryFactory interface {
	UserRepo() UserRepository
	CategoryRepo() CategoryRepository
	ProductRepo() ProductRepository
	PostRepo() PostRepository
	CartRepo() CartRepository
	OrderRepo() OrderRepository
	ConsultationRepo() ConsultationRepository
	SessionRepo() SessionRepository
}
