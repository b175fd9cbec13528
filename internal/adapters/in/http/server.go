package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"staffing/internal/adapters/in/tabular"
	"staffing/internal/core/application/ingestion"
	"staffing/internal/core/application/usecases/commands"
	"staffing/internal/core/application/usecases/queries"
	"staffing/internal/core/domain/model/jobapplication"
	"staffing/internal/core/domain/model/kernel"
	"staffing/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Use case contracts consumed by Server. The command and query handlers
// satisfy them directly.
type (
	ApplicationStatusHandler interface {
		Handle(ctx context.Context, cmd commands.AssignApplicationCommand) (commands.AssignApplicationResult, error)
	}
	RescheduleHandler interface {
		Handle(ctx context.Context, cmd commands.RescheduleApplicationCommand) error
	}
	AssignApplicationsHandler interface {
		Handle(ctx context.Context, cmd commands.AssignApplicationsCommand) (commands.AssignmentBatchResult, error)
	}
	AssignWorkerToJobsHandler interface {
		Handle(ctx context.Context, cmd commands.AssignWorkerToJobsCommand) (commands.AssignmentBatchResult, error)
	}
	BulkCreateJobsHandler interface {
		Handle(ctx context.Context, cmd commands.BulkCreateJobsCommand) (int, error)
	}
	BulkUpdateJobsHandler interface {
		Handle(ctx context.Context, cmd commands.BulkUpdateJobsCommand) (int, error)
	}
	JobApplicationsQueryHandler interface {
		Handle(ctx context.Context, query queries.GetJobApplicationsQuery) ([]queries.GetJobApplicationsQueryResponse, error)
	}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	SetStatus          ApplicationStatusHandler
	Reschedule         RescheduleHandler
	AssignApplications AssignApplicationsHandler
	AssignWorker       AssignWorkerToJobsHandler
	BulkCreate         BulkCreateJobsHandler
	BulkUpdate         BulkUpdateJobsHandler
	JobApplications    JobApplicationsQueryHandler
}

// Server implements ServerInterface on top of the application use cases.
type Server struct {
	handlers Handlers
}

var _ ServerInterface = (*Server)(nil)

func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// StatusChange is the body of SetApplicationStatus.
type StatusChange struct {
	Status string `json:"status"`
}

// ScheduleChange is the body of RescheduleApplication.
type ScheduleChange struct {
	ScheduledStart time.Time `json:"scheduledStart"`
	ScheduledEnd   time.Time `json:"scheduledEnd"`
}

// ApplicationIDs is the body of AssignApplications.
type ApplicationIDs struct {
	ApplicationIDs []openapi_types.UUID `json:"applicationIds"`
}

// JobIDs is the body of AssignWorkerToJobs.
type JobIDs struct {
	JobIDs []openapi_types.UUID `json:"jobIds"`
}

// JobRows is the JSON body of the bulk job endpoints. Keys are the column
// names; values are text, booleans or numbers.
type JobRows struct {
	Rows []map[string]any `json:"rows"`
}

// Application is the state of an application after a status change.
type Application struct {
	ID             openapi_types.UUID `json:"id"`
	Status         string             `json:"status"`
	ScheduledStart *time.Time         `json:"scheduledStart"`
	ScheduledEnd   *time.Time         `json:"scheduledEnd"`
}

// Applicant is one row of ListJobApplications.
type Applicant struct {
	ID             openapi_types.UUID `json:"id"`
	WorkerID       openapi_types.UUID `json:"workerId"`
	WorkerName     string             `json:"workerName"`
	Status         string             `json:"status"`
	ScheduledStart *time.Time         `json:"scheduledStart"`
	ScheduledEnd   *time.Time         `json:"scheduledEnd"`
	HasContract    bool               `json:"hasContract"`
}

// Ingested reports how many jobs a bulk call wrote.
type Ingested struct {
	Count int `json:"count"`
}

// SetApplicationStatus handles POST /api/v1/applications/{applicationId}/status.
func (s *Server) SetApplicationStatus(ctx echo.Context, applicationId openapi_types.UUID) error {
	var body StatusChange
	if err := ctx.Bind(&body); err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	id, err := kernel.UUIDFromBytes(applicationId[:])
	if err != nil {
		return fail(ctx, err)
	}
	status, err := jobapplication.ParseStatus(body.Status)
	if err != nil {
		return fail(ctx, err)
	}
	cmd, err := commands.NewAssignApplicationCommand(id, status)
	if err != nil {
		return fail(ctx, err)
	}

	result, err := s.handlers.SetStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, successEnvelope(Application{
		ID:             result.ApplicationID.Bytes(),
		Status:         result.Status.String(),
		ScheduledStart: result.ScheduledStart,
		ScheduledEnd:   result.ScheduledEnd,
	}))
}

// RescheduleApplication handles PUT /api/v1/applications/{applicationId}/schedule.
func (s *Server) RescheduleApplication(ctx echo.Context, applicationId openapi_types.UUID) error {
	var body ScheduleChange
	if err := ctx.Bind(&body); err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	id, err := kernel.UUIDFromBytes(applicationId[:])
	if err != nil {
		return fail(ctx, err)
	}
	cmd, err := commands.NewRescheduleApplicationCommand(id, body.ScheduledStart, body.ScheduledEnd)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.handlers.Reschedule.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, successEnvelope(nil))
}

// AssignApplications handles POST /api/v1/applications/assign.
func (s *Server) AssignApplications(ctx echo.Context) error {
	var body ApplicationIDs
	if err := ctx.Bind(&body); err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	ids, err := toKernelIDs(body.ApplicationIDs)
	if err != nil {
		return fail(ctx, err)
	}
	cmd, err := commands.NewAssignApplicationsCommand(ids)
	if err != nil {
		return fail(ctx, err)
	}

	result, err := s.handlers.AssignApplications.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, successEnvelope(result))
}

// AssignWorkerToJobs handles POST /api/v1/workers/{workerId}/assignments.
func (s *Server) AssignWorkerToJobs(ctx echo.Context, workerId openapi_types.UUID) error {
	var body JobIDs
	if err := ctx.Bind(&body); err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	worker, err := kernel.UUIDFromBytes(workerId[:])
	if err != nil {
		return fail(ctx, err)
	}
	jobIDs, err := toKernelIDs(body.JobIDs)
	if err != nil {
		return fail(ctx, err)
	}
	cmd, err := commands.NewAssignWorkerToJobsCommand(worker, jobIDs)
	if err != nil {
		return fail(ctx, err)
	}

	result, err := s.handlers.AssignWorker.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, successEnvelope(result))
}

// ListJobApplications handles GET /api/v1/jobs/{jobId}/applications.
func (s *Server) ListJobApplications(ctx echo.Context, jobId openapi_types.UUID, params ListJobApplicationsParams) error {
	id, err := kernel.UUIDFromBytes(jobId[:])
	if err != nil {
		return fail(ctx, err)
	}

	var statuses []jobapplication.Status
	if params.Status != nil {
		for _, raw := range *params.Status {
			status, parseErr := jobapplication.ParseStatus(raw)
			if parseErr != nil {
				return fail(ctx, parseErr)
			}
			statuses = append(statuses, status)
		}
	}

	query, err := queries.NewGetJobApplicationsQuery(id, statuses)
	if err != nil {
		return fail(ctx, err)
	}
	rows, err := s.handlers.JobApplications.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]Applicant, len(rows))
	for i, row := range rows {
		response[i] = Applicant{
			ID:             row.ApplicationID.Bytes(),
			WorkerID:       row.WorkerID.Bytes(),
			WorkerName:     row.WorkerName,
			Status:         row.Status.String(),
			ScheduledStart: row.ScheduledStart,
			ScheduledEnd:   row.ScheduledEnd,
			HasContract:    row.HasContract,
		}
	}
	return ctx.JSON(http.StatusOK, successEnvelope(response))
}

// BulkCreateJobs handles POST /api/v1/jobs/bulk.
func (s *Server) BulkCreateJobs(ctx echo.Context) error {
	rows, err := readJobRows(ctx)
	if err != nil {
		return fail(ctx, err)
	}
	cmd, err := commands.NewBulkCreateJobsCommand(rows)
	if err != nil {
		return fail(ctx, err)
	}

	count, err := s.handlers.BulkCreate.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, successEnvelope(Ingested{Count: count}))
}

// BulkUpdateJobs handles PUT /api/v1/jobs/bulk.
func (s *Server) BulkUpdateJobs(ctx echo.Context) error {
	rows, err := readJobRows(ctx)
	if err != nil {
		return fail(ctx, err)
	}
	cmd, err := commands.NewBulkUpdateJobsCommand(rows)
	if err != nil {
		return fail(ctx, err)
	}

	count, err := s.handlers.BulkUpdate.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, successEnvelope(Ingested{Count: count}))
}

// readJobRows accepts either a JSON rows array or a multipart "file" holding
// CSV or XLSX.
func readJobRows(ctx echo.Context) ([]ingestion.RawRow, error) {
	if !isMultipart(ctx.Request()) {
		var body JobRows
		if err := ctx.Bind(&body); err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("request body", err)
		}
		rows := make([]ingestion.RawRow, len(body.Rows))
		for i, values := range body.Rows {
			rows[i] = ingestion.RawRowFromValues(i+1, values)
		}
		return rows, nil
	}

	header, err := ctx.FormFile("file")
	if err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("file", err)
	}
	format, err := tabular.FormatFromFilename(header.Filename)
	if err != nil {
		return nil, err
	}

	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("open uploaded file: %w", err)
	}
	defer file.Close()

	return tabular.Read(file, format)
}

func toKernelIDs(raw []openapi_types.UUID) ([]kernel.UUID, error) {
	ids := make([]kernel.UUID, 0, len(raw))
	for _, r := range raw {
		id, err := kernel.UUIDFromBytes(r[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// fail maps err to its response. Unexpected failures are passed to the echo
// error handler so they get logged.
func fail(ctx echo.Context, err error) error {
	body := describeError(err)
	if body.Code >= http.StatusInternalServerError {
		return err
	}
	return ctx.JSON(body.Code, Envelope{Error: &body})
}
