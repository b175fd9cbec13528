package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Repositories it returns use the transaction started by Begin.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	// Commit returns an error if no transaction is active or the commit fails.
	Commit(ctx context.Context) error
	// Rollback is a no-op after Commit.
	Rollback(ctx context.Context) error

	JobRepository() JobRepository
	ApplicationRepository() ApplicationRepository
	WorkerRepository() WorkerRepository
	ClientRepository() ClientRepository
	TemplateRepository() TemplateRepository
}
