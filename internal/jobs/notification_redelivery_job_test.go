package jobs_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"staffing/internal/core/application/usecases/commands"
	"staffing/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRedeliveryHandler struct{ mock.Mock }

func (m *MockRedeliveryHandler) Handle(
	ctx context.Context,
	cmd commands.RedeliverNotificationsCommand,
) (commands.RedeliveryReport, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.RedeliveryReport), args.Error(1)
}

func newJob(t *testing.T, handler *MockRedeliveryHandler, schedule string) (*jobs.NotificationRedeliveryJob, *bytes.Buffer) {
	t.Helper()
	cmd, err := commands.NewRedeliverNotificationsCommand(5, 50)
	require.NoError(t, err)
	var buf bytes.Buffer
	return jobs.NewNotificationRedeliveryJob(handler, cmd, schedule, slog.New(slog.NewTextHandler(&buf, nil))), &buf
}

func TestNotificationRedeliveryJob_RunOnceLogsReport(t *testing.T) {
	handler := new(MockRedeliveryHandler)
	handler.On("Handle", mock.Anything, mock.Anything).
		Return(commands.RedeliveryReport{Delivered: 2, Failed: 1}, nil).Once()
	job, logs := newJob(t, handler, "")

	job.RunOnce(t.Context())

	handler.AssertExpectations(t)
	assert.Contains(t, logs.String(), "delivered=2")
	assert.Contains(t, logs.String(), "failed=1")
}

func TestNotificationRedeliveryJob_RunOnceLogsError(t *testing.T) {
	handler := new(MockRedeliveryHandler)
	handler.On("Handle", mock.Anything, mock.Anything).
		Return(commands.RedeliveryReport{}, errors.New("outbox unavailable")).Once()
	job, logs := newJob(t, handler, "")

	job.RunOnce(t.Context())

	assert.Contains(t, logs.String(), "outbox unavailable")
}

func TestJobManager_RejectsBadSchedule(t *testing.T) {
	job, _ := newJob(t, new(MockRedeliveryHandler), "every minute")

	err := jobs.NewJobManager(job).StartAll()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "notification redelivery job")
}

func TestJobManager_StartStop(t *testing.T) {
	job, _ := newJob(t, new(MockRedeliveryHandler), "0 0 0 1 1 *")
	manager := jobs.NewJobManager(job)

	require.NoError(t, manager.StartAll())
	manager.StopAll()
}
