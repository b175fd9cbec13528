package commands_test

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"staffing/internal/core/application/notification"
	"staffing/internal/core/application/usecases/commands"
	"staffing/internal/core/domain/model/job"
	"staffing/internal/core/domain/model/jobapplication"
	"staffing/internal/core/domain/model/kernel"
	"staffing/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

var silentLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type MockJobRepository struct{ mock.Mock }

func (m *MockJobRepository) Get(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.Job), args.Error(1)
}

func (m *MockJobRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*job.Job, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*job.Job), args.Error(1)
}

func (m *MockJobRepository) AddAll(ctx context.Context, jobs []*job.Job) error {
	return m.Called(ctx, jobs).Error(0)
}

func (m *MockJobRepository) UpsertAll(ctx context.Context, jobs []*job.Job) error {
	return m.Called(ctx, jobs).Error(0)
}

type MockApplicationRepository struct{ mock.Mock }

func (m *MockApplicationRepository) Get(ctx context.Context, id kernel.UUID) (*jobapplication.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*jobapplication.Application), args.Error(1)
}

func (m *MockApplicationRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*jobapplication.Application, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*jobapplication.Application), args.Error(1)
}

func (m *MockApplicationRepository) FindByJobAndWorker(
	ctx context.Context,
	jobID, workerID kernel.UUID,
) (*jobapplication.Application, error) {
	args := m.Called(ctx, jobID, workerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*jobapplication.Application), args.Error(1)
}

func (m *MockApplicationRepository) Save(ctx context.Context, app *jobapplication.Application) error {
	return m.Called(ctx, app).Error(0)
}

func (m *MockApplicationRepository) Update(ctx context.Context, app *jobapplication.Application) error {
	return m.Called(ctx, app).Error(0)
}

type MockWorkerRepository struct{ mock.Mock }

func (m *MockWorkerRepository) Get(ctx context.Context, id kernel.UUID) (ports.Worker, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(ports.Worker), args.Error(1)
}

func (m *MockWorkerRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]ports.Worker, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.Worker), args.Error(1)
}

type MockNameResolver struct{ mock.Mock }

func (m *MockNameResolver) FindIDsByNames(ctx context.Context, names []string) (map[string]kernel.UUID, error) {
	args := m.Called(ctx, names)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]kernel.UUID), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) JobRepository() ports.JobRepository {
	return m.Called().Get(0).(ports.JobRepository)
}

func (m *MockUoW) ApplicationRepository() ports.ApplicationRepository {
	return m.Called().Get(0).(ports.ApplicationRepository)
}

func (m *MockUoW) WorkerRepository() ports.WorkerRepository {
	return m.Called().Get(0).(ports.WorkerRepository)
}

func (m *MockUoW) ClientRepository() ports.ClientRepository {
	return m.Called().Get(0).(ports.ClientRepository)
}

func (m *MockUoW) TemplateRepository() ports.TemplateRepository {
	return m.Called().Get(0).(ports.TemplateRepository)
}

type MockAssignmentUoWFactory struct{ mock.Mock }

func (m *MockAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return m.Called().Get(0).(commands.AssignmentUoW)
}

type MockApplicationUoWFactory struct{ mock.Mock }

func (m *MockApplicationUoWFactory) Create() commands.ApplicationUoW {
	return m.Called().Get(0).(commands.ApplicationUoW)
}

type MockIngestionUoWFactory struct{ mock.Mock }

func (m *MockIngestionUoWFactory) Create() commands.IngestionUoW {
	return m.Called().Get(0).(commands.IngestionUoW)
}

// recordingDispatcher captures every batch handed to it.
type recordingDispatcher struct {
	mu      sync.Mutex
	batches [][]notification.Task
}

func (d *recordingDispatcher) Dispatch(_ context.Context, tasks []notification.Task) notification.Report {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.batches = append(d.batches, tasks)
	return notification.Report{Sent: len(tasks)}
}

func (d *recordingDispatcher) tasks() []notification.Task {
	d.mu.Lock()
	defer d.mu.Unlock()
	var all []notification.Task
	for _, b := range d.batches {
		all = append(all, b...)
	}
	return all
}
