package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ListJobApplicationsParams are the query parameters of ListJobApplications.
type ListJobApplicationsParams struct {
	Status *[]string `form:"status,omitempty" json:"status,omitempty"`
}

// ServerInterface lists every operation of the API.
type ServerInterface interface {
	// (POST /api/v1/applications/{applicationId}/status)
	SetApplicationStatus(ctx echo.Context, applicationId openapi_types.UUID) error
	// (PUT /api/v1/applications/{applicationId}/schedule)
	RescheduleApplication(ctx echo.Context, applicationId openapi_types.UUID) error
	// (POST /api/v1/applications/assign)
	AssignApplications(ctx echo.Context) error
	// (POST /api/v1/workers/{workerId}/assignments)
	AssignWorkerToJobs(ctx echo.Context, workerId openapi_types.UUID) error
	// (GET /api/v1/jobs/{jobId}/applications)
	ListJobApplications(ctx echo.Context, jobId openapi_types.UUID, params ListJobApplicationsParams) error
	// (POST /api/v1/jobs/bulk)
	BulkCreateJobs(ctx echo.Context) error
	// (PUT /api/v1/jobs/bulk)
	BulkUpdateJobs(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to typed parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func bindPathUUID(ctx echo.Context, name string) (openapi_types.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return id, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return id, nil
}

func (w *ServerInterfaceWrapper) SetApplicationStatus(ctx echo.Context) error {
	applicationId, err := bindPathUUID(ctx, "applicationId")
	if err != nil {
		return err
	}
	return w.Handler.SetApplicationStatus(ctx, applicationId)
}

func (w *ServerInterfaceWrapper) RescheduleApplication(ctx echo.Context) error {
	applicationId, err := bindPathUUID(ctx, "applicationId")
	if err != nil {
		return err
	}
	return w.Handler.RescheduleApplication(ctx, applicationId)
}

func (w *ServerInterfaceWrapper) AssignApplications(ctx echo.Context) error {
	return w.Handler.AssignApplications(ctx)
}

func (w *ServerInterfaceWrapper) AssignWorkerToJobs(ctx echo.Context) error {
	workerId, err := bindPathUUID(ctx, "workerId")
	if err != nil {
		return err
	}
	return w.Handler.AssignWorkerToJobs(ctx, workerId)
}

func (w *ServerInterfaceWrapper) ListJobApplications(ctx echo.Context) error {
	jobId, err := bindPathUUID(ctx, "jobId")
	if err != nil {
		return err
	}

	var params ListJobApplicationsParams
	err = runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	return w.Handler.ListJobApplications(ctx, jobId, params)
}

func (w *ServerInterfaceWrapper) BulkCreateJobs(ctx echo.Context) error {
	return w.Handler.BulkCreateJobs(ctx)
}

func (w *ServerInterfaceWrapper) BulkUpdateJobs(ctx echo.Context) error {
	return w.Handler.BulkUpdateJobs(ctx)
}

// EchoRouter is satisfied by both *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers mounts every API operation on router.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.POST("/api/v1/applications/assign", wrapper.AssignApplications)
	router.POST("/api/v1/applications/:applicationId/status", wrapper.SetApplicationStatus)
	router.PUT("/api/v1/applications/:applicationId/schedule", wrapper.RescheduleApplication)
	router.POST("/api/v1/workers/:workerId/assignments", wrapper.AssignWorkerToJobs)
	router.GET("/api/v1/jobs/:jobId/applications", wrapper.ListJobApplications)
	router.POST("/api/v1/jobs/bulk", wrapper.BulkCreateJobs)
	router.PUT("/api/v1/jobs/bulk", wrapper.BulkUpdateJobs)
}
