// Package commands contains business operations that modify system state.
// Every command is built through a validating constructor; every handler
// owns its transaction boundaries through a unit of work.
package commands

import (
	"context"

	"staffing/internal/core/application/notification"
	"staffing/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// JobRepoFactory provides access to the job repository within a transaction.
	JobRepoFactory interface {
		JobRepository() ports.JobRepository
	}

	// ApplicationRepoFactory provides access to the application repository within a transaction.
	ApplicationRepoFactory interface {
		ApplicationRepository() ports.ApplicationRepository
	}

	// WorkerRepoFactory provides access to the worker read model within a transaction.
	WorkerRepoFactory interface {
		WorkerRepository() ports.WorkerRepository
	}

	// ReferenceRepoFactory provides the name lookups used by ingestion.
	ReferenceRepoFactory interface {
		ClientRepository() ports.ClientRepository
		TemplateRepository() ports.TemplateRepository
	}

	// ApplicationUoW manages transactions touching applications only.
	ApplicationUoW interface {
		TxManager
		ApplicationRepoFactory
	}

	// ApplicationUoWFactory creates new application unit of work instances.
	ApplicationUoWFactory interface {
		Create() ApplicationUoW
	}

	// AssignmentUoW manages transactions that read jobs and workers and
	// write applications.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   j, err := uow.JobRepository().Get(ctx, jobID)
	//   existing, err := uow.ApplicationRepository().FindByJobAndWorker(ctx, jobID, workerID)
	//   // ... decide and write
	//
	//   err = uow.Commit(ctx)
	AssignmentUoW interface {
		TxManager
		JobRepoFactory
		ApplicationRepoFactory
		WorkerRepoFactory
	}

	// AssignmentUoWFactory creates new assignment unit of work instances.
	AssignmentUoWFactory interface {
		Create() AssignmentUoW
	}

	// IngestionUoW manages the single transaction of a bulk job write.
	IngestionUoW interface {
		TxManager
		JobRepoFactory
		ReferenceRepoFactory
	}

	// IngestionUoWFactory creates new ingestion unit of work instances.
	IngestionUoWFactory interface {
		Create() IngestionUoW
	}
)

// NotificationDispatcher drains the notification tasks produced by a
// committed assignment.
type NotificationDispatcher interface {
	Dispatch(ctx context.Context, tasks []notification.Task) notification.Report
}
