package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"staffing/internal/core/application/ingestion"
	"staffing/internal/core/domain/model/job"
	"staffing/internal/core/ports"
	"staffing/internal/telemetry"
)

// BulkCreateJobsCommandHandler validates a whole batch, then inserts it with
// one multi-row statement. Nothing is written unless every row is valid.
//
// Example:
//
//	cmd, _ := NewBulkCreateJobsCommand(rows)
//	n, err := handler.Handle(ctx, cmd)
//	var rowErr *ingestion.RowValidationError
//	if errors.As(err, &rowErr) {
//	    fmt.Printf("fix row %d (%s) and resubmit\n", rowErr.Line, rowErr.Title)
//	}
type BulkCreateJobsCommandHandler struct {
	writer bulkJobWriter
}

// NewBulkCreateJobsCommandHandler returns a handler that inserts every row of a batch or none.
func NewBulkCreateJobsCommandHandler(
	uowFactory IngestionUoWFactory,
	location *time.Location,
	logger *slog.Logger,
) BulkCreateJobsCommandHandler {
	return BulkCreateJobsCommandHandler{writer: bulkJobWriter{
		uowFactory: uowFactory,
		location:   location,
		mode:       ingestion.Create,
		logger:     logger.With("component", "bulk_create_jobs_handler"),
	}}
}

// Handle returns the number of jobs written.
func (h BulkCreateJobsCommandHandler) Handle(ctx context.Context, cmd BulkCreateJobsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}
	return h.writer.write(ctx, cmd.Rows(), func(ctx context.Context, repo ports.JobRepository, jobs []*job.Job) error {
		return repo.AddAll(ctx, jobs)
	})
}

// BulkUpdateJobsCommandHandler validates a whole batch, then upserts it by
// identifier with one multi-row statement.
type BulkUpdateJobsCommandHandler struct {
	writer bulkJobWriter
}

// NewBulkUpdateJobsCommandHandler returns a handler that upserts a batch by job id, all or nothing.
func NewBulkUpdateJobsCommandHandler(
	uowFactory IngestionUoWFactory,
	location *time.Location,
	logger *slog.Logger,
) BulkUpdateJobsCommandHandler {
	return BulkUpdateJobsCommandHandler{writer: bulkJobWriter{
		uowFactory: uowFactory,
		location:   location,
		mode:       ingestion.Update,
		logger:     logger.With("component", "bulk_update_jobs_handler"),
	}}
}

// Handle returns the number of jobs written.
func (h BulkUpdateJobsCommandHandler) Handle(ctx context.Context, cmd BulkUpdateJobsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}
	return h.writer.write(ctx, cmd.Rows(), func(ctx context.Context, repo ports.JobRepository, jobs []*job.Job) error {
		return repo.UpsertAll(ctx, jobs)
	})
}

type bulkJobWriter struct {
	uowFactory IngestionUoWFactory
	location   *time.Location
	mode       ingestion.Mode
	logger     *slog.Logger
}

func (w bulkJobWriter) write(
	ctx context.Context,
	rows []ingestion.RawRow,
	persist func(context.Context, ports.JobRepository, []*job.Job) error,
) (int, error) {
	uow := w.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	jobs, err := ingestion.Prepare(ctx, rows, uow.ClientRepository(), uow.TemplateRepository(), ingestion.Options{
		Mode:     w.mode,
		Location: w.location,
	})
	if err != nil {
		var rowErr *ingestion.RowValidationError
		if errors.As(err, &rowErr) {
			telemetry.IngestionRejects.Inc()
			w.logger.WarnContext(ctx, "Batch rejected", "mode", w.mode.String(), "line", rowErr.Line, "title", rowErr.Title)
		}
		return 0, err
	}

	if err = persist(ctx, uow.JobRepository(), jobs); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	telemetry.JobsIngested.WithLabelValues(w.mode.String()).Add(float64(len(jobs)))
	w.logger.InfoContext(ctx, "Batch written", "mode", w.mode.String(), "jobs", len(jobs))
	return len(jobs), nil
}
