package commands_test

import (
	"errors"
	"testing"
	"time"

	"staffing/internal/core/application/usecases/commands"
	"staffing/internal/core/domain/model/jobapplication"
	"staffing/internal/core/domain/model/kernel"
	"staffing/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewRescheduleApplicationCommand(t *testing.T) {
	id := kernel.NewUUID()

	tests := []struct {
		name       string
		start, end time.Time
		wantErr    error
	}{
		{"window", jobStart, jobEnd, nil},
		{"zero length", jobStart, jobStart, nil},
		{"missing end", jobStart, time.Time{}, errs.ErrValueIsRequired},
		{"end before start", jobEnd, jobStart, errs.ErrValueIsInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := commands.NewRescheduleApplicationCommand(id, tt.start, tt.end)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, id, cmd.ApplicationID())
			assert.NoError(t, cmd.Validate())
		})
	}
}

func TestRescheduleApplicationCommandHandler_KeepsStatus(t *testing.T) {
	ctx := t.Context()
	app := restoreApplication(t, kernel.NewUUID(), kernel.NewUUID(), jobapplication.Confirmed)
	newStart, newEnd := jobStart.Add(time.Hour), jobEnd.Add(2*time.Hour)
	cmd, err := commands.NewRescheduleApplicationCommand(app.ID(), newStart, newEnd)
	require.NoError(t, err)

	repo := new(MockApplicationRepository)
	repo.On("Get", ctx, app.ID()).Return(app, nil).Once()
	repo.On("Update", ctx, mock.MatchedBy(func(a *jobapplication.Application) bool {
		return a.Status() == jobapplication.Confirmed && a.ScheduledStart().Equal(newStart) && a.ScheduledEnd().Equal(newEnd)
	})).Return(nil).Once()

	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ApplicationRepository").Return(repo).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockApplicationUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = commands.NewRescheduleApplicationCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRescheduleApplicationCommandHandler_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewRescheduleApplicationCommand(id, jobStart, jobEnd)
	require.NoError(t, err)

	repo := new(MockApplicationRepository)
	repo.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("applicationId", id)).Once()
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ApplicationRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockApplicationUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = commands.NewRescheduleApplicationCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestRescheduleApplicationCommandHandler_RejectsUnconstructedCommand(t *testing.T) {
	err := commands.NewRescheduleApplicationCommandHandler(new(MockApplicationUoWFactory)).
		Handle(t.Context(), commands.RescheduleApplicationCommand{})

	assert.True(t, errors.Is(err, commands.ErrRescheduleApplicationCommandIsNotConstructed))
}
