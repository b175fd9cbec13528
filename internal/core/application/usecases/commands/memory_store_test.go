package commands_test

import (
	"context"
	"sync"
	"time"

	"staffing/internal/core/application/usecases/commands"
	"staffing/internal/core/domain/model/job"
	"staffing/internal/core/domain/model/jobapplication"
	"staffing/internal/core/domain/model/kernel"
	"staffing/internal/core/ports"
	"staffing/internal/pkg/errs"
)

// memoryStore is an in-memory stand-in for the relational store with the
// same (job, worker) uniqueness the real schema enforces. Writes are visible
// immediately; transactions are not modelled.
type memoryStore struct {
	mu           sync.Mutex
	jobs         map[kernel.UUID]*job.Job
	applications map[kernel.UUID]appRow
	workers      map[kernel.UUID]ports.Worker
	failSaveFor  map[kernel.UUID]error
}

type appRow struct {
	id, jobID, workerID kernel.UUID
	status              jobapplication.Status
	start, end          *time.Time
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		jobs:         map[kernel.UUID]*job.Job{},
		applications: map[kernel.UUID]appRow{},
		workers:      map[kernel.UUID]ports.Worker{},
		failSaveFor:  map[kernel.UUID]error{},
	}
}

func (s *memoryStore) Create() commands.AssignmentUoW { return &memoryUoW{store: s} }

func (s *memoryStore) rowsFor(jobID, workerID kernel.UUID) []appRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	var rows []appRow
	for _, r := range s.applications {
		if r.jobID == jobID && r.workerID == workerID {
			rows = append(rows, r)
		}
	}
	return rows
}

type memoryUoW struct{ store *memoryStore }

func (u *memoryUoW) Begin(context.Context) error    { return nil }
func (u *memoryUoW) Commit(context.Context) error   { return nil }
func (u *memoryUoW) Rollback(context.Context) error { return nil }

func (u *memoryUoW) JobRepository() ports.JobRepository                 { return memoryJobs{u.store} }
func (u *memoryUoW) ApplicationRepository() ports.ApplicationRepository { return memoryApps{u.store} }
func (u *memoryUoW) WorkerRepository() ports.WorkerRepository           { return memoryWorkers{u.store} }

type memoryJobs struct{ s *memoryStore }

func (r memoryJobs) Get(_ context.Context, id kernel.UUID) (*job.Job, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	j, ok := r.s.jobs[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("jobId", id)
	}
	return j, nil
}

func (r memoryJobs) GetMany(ctx context.Context, ids []kernel.UUID) ([]*job.Job, error) {
	var out []*job.Job
	for _, id := range ids {
		if j, err := r.Get(ctx, id); err == nil {
			out = append(out, j)
		}
	}
	return out, nil
}

func (r memoryJobs) AddAll(context.Context, []*job.Job) error    { return nil }
func (r memoryJobs) UpsertAll(context.Context, []*job.Job) error { return nil }

type memoryApps struct{ s *memoryStore }

func (r memoryApps) restore(row appRow) *jobapplication.Application {
	app, err := jobapplication.RestoreApplication(row.id, row.jobID, row.workerID, row.status, row.start, row.end, nil)
	if err != nil {
		panic(err)
	}
	return app
}

func (r memoryApps) Get(_ context.Context, id kernel.UUID) (*jobapplication.Application, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	row, ok := r.s.applications[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("applicationId", id)
	}
	return r.restore(row), nil
}

func (r memoryApps) GetMany(ctx context.Context, ids []kernel.UUID) ([]*jobapplication.Application, error) {
	var out []*jobapplication.Application
	for _, id := range ids {
		if app, err := r.Get(ctx, id); err == nil {
			out = append(out, app)
		}
	}
	return out, nil
}

func (r memoryApps) FindByJobAndWorker(_ context.Context, jobID, workerID kernel.UUID) (*jobapplication.Application, error) {
	rows := r.s.rowsFor(jobID, workerID)
	if len(rows) == 0 {
		return nil, nil
	}
	return r.restore(rows[0]), nil
}

func (r memoryApps) Save(_ context.Context, app *jobapplication.Application) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failSaveFor[app.JobID()]; err != nil {
		return err
	}
	row := appRow{app.ID(), app.JobID(), app.WorkerID(), app.Status(), app.ScheduledStart(), app.ScheduledEnd()}
	for id, existing := range r.s.applications {
		if existing.jobID == row.jobID && existing.workerID == row.workerID {
			row.id = id
		}
	}
	r.s.applications[row.id] = row
	return nil
}

func (r memoryApps) Update(_ context.Context, app *jobapplication.Application) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.applications[app.ID()]; !ok {
		return errs.NewObjectNotFoundError("applicationId", app.ID())
	}
	r.s.applications[app.ID()] = appRow{app.ID(), app.JobID(), app.WorkerID(), app.Status(), app.ScheduledStart(), app.ScheduledEnd()}
	return nil
}

type memoryWorkers struct{ s *memoryStore }

func (r memoryWorkers) Get(_ context.Context, id kernel.UUID) (ports.Worker, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	w, ok := r.s.workers[id]
	if !ok {
		return ports.Worker{}, errs.NewObjectNotFoundError("workerId", id)
	}
	return w, nil
}

func (r memoryWorkers) GetMany(ctx context.Context, ids []kernel.UUID) ([]ports.Worker, error) {
	var out []ports.Worker
	for _, id := range ids {
		if w, err := r.Get(ctx, id); err == nil {
			out = append(out, w)
		}
	}
	return out, nil
}
