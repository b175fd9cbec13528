package commands_test

import (
	"errors"
	"testing"
	"time"

	"staffing/internal/core/application/ingestion"
	"staffing/internal/core/application/usecases/commands"
	"staffing/internal/core/domain/model/job"
	"staffing/internal/core/domain/model/kernel"
	"staffing/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var jst = time.FixedZone("JST", 9*60*60)

func rawRow(title string) ingestion.RawRow {
	return ingestion.RawRow{
		Title:        title,
		ClientName:   "Acme",
		Date:         "2025/5/1",
		StartTime:    "9:00",
		EndTime:      "12:00",
		RewardAmount: "1200",
		AddressText:  "Chiyoda, Tokyo",
	}
}

type ingestionMocks struct {
	uow     *MockUoW
	jobs    *MockJobRepository
	clients *MockNameResolver
	factory *MockIngestionUoWFactory
}

func newIngestionMocks(t *testing.T, clientID kernel.UUID) ingestionMocks {
	ctx := t.Context()
	m := ingestionMocks{
		uow:     new(MockUoW),
		jobs:    new(MockJobRepository),
		clients: new(MockNameResolver),
		factory: new(MockIngestionUoWFactory),
	}
	m.clients.On("FindIDsByNames", ctx, []string{"Acme"}).Return(map[string]kernel.UUID{"Acme": clientID}, nil).Once()
	m.uow.On("Begin", ctx).Return(nil).Once()
	m.uow.On("ClientRepository").Return(m.clients).Once()
	m.uow.On("TemplateRepository").Return(new(MockNameResolver)).Once()
	m.uow.On("Rollback", ctx).Return(nil).Once()
	m.factory.On("Create").Return(m.uow).Once()
	return m
}

func TestBulkCreateJobsCommandHandler_WritesBatchOnce(t *testing.T) {
	ctx := t.Context()
	clientID := kernel.NewUUID()
	m := newIngestionMocks(t, clientID)
	m.jobs.On("AddAll", ctx, mock.MatchedBy(func(jobs []*job.Job) bool {
		return len(jobs) == 3 && *jobs[0].ClientID() == clientID && jobs[2].Title() == "C"
	})).Return(nil).Once()
	m.uow.On("JobRepository").Return(m.jobs).Once()
	m.uow.On("Commit", ctx).Return(nil).Once()

	cmd, err := commands.NewBulkCreateJobsCommand([]ingestion.RawRow{rawRow("A"), rawRow("B"), rawRow("C")})
	require.NoError(t, err)

	n, err := commands.NewBulkCreateJobsCommandHandler(m.factory, jst, silentLogger).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 3, n)
	m.jobs.AssertExpectations(t)
	m.uow.AssertExpectations(t)
}

func TestBulkCreateJobsCommandHandler_InvalidRowWritesNothing(t *testing.T) {
	ctx := t.Context()
	m := newIngestionMocks(t, kernel.NewUUID())

	rows := make([]ingestion.RawRow, 0, 10)
	for i := range 10 {
		rows = append(rows, rawRow(string(rune('A'+i))))
	}
	rows[6].MaxWorkers = "0"
	cmd, err := commands.NewBulkCreateJobsCommand(rows)
	require.NoError(t, err)

	n, err := commands.NewBulkCreateJobsCommandHandler(m.factory, jst, silentLogger).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	var rowErr *ingestion.RowValidationError
	require.True(t, errors.As(err, &rowErr))
	assert.Equal(t, 7, rowErr.Line)
	assert.Equal(t, "G", rowErr.Title)
	assert.Zero(t, n)
	m.jobs.AssertNotCalled(t, "AddAll", mock.Anything, mock.Anything)
	m.uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestBulkUpdateJobsCommandHandler_UpsertsByID(t *testing.T) {
	ctx := t.Context()
	m := newIngestionMocks(t, kernel.NewUUID())
	existing := kernel.NewUUID()
	m.jobs.On("UpsertAll", ctx, mock.MatchedBy(func(jobs []*job.Job) bool {
		return len(jobs) == 2 && jobs[0].ID() == existing && jobs[1].ID() != existing
	})).Return(nil).Once()
	m.uow.On("JobRepository").Return(m.jobs).Once()
	m.uow.On("Commit", ctx).Return(nil).Once()

	known := rawRow("Renamed")
	known.ID = existing.String()
	cmd, err := commands.NewBulkUpdateJobsCommand([]ingestion.RawRow{known, rawRow("Fresh")})
	require.NoError(t, err)

	n, err := commands.NewBulkUpdateJobsCommandHandler(m.factory, jst, silentLogger).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 2, n)
	m.jobs.AssertExpectations(t)
}

func TestBulkUpdateJobsCommandHandler_RepeatedIDWritesNothing(t *testing.T) {
	ctx := t.Context()
	m := newIngestionMocks(t, kernel.NewUUID())
	existing := kernel.NewUUID().String()

	first, second := rawRow("Renamed"), rawRow("Renamed again")
	first.ID, second.ID = existing, existing
	cmd, err := commands.NewBulkUpdateJobsCommand([]ingestion.RawRow{first, rawRow("Fresh"), second})
	require.NoError(t, err)

	n, err := commands.NewBulkUpdateJobsCommandHandler(m.factory, jst, silentLogger).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	var rowErr *ingestion.RowValidationError
	require.ErrorAs(t, err, &rowErr)
	assert.Equal(t, 3, rowErr.Line)
	assert.Equal(t, []ingestion.FieldError{{Field: "id", Message: "duplicates row 1"}}, rowErr.Fields)
	assert.Zero(t, n)
	m.jobs.AssertNotCalled(t, "UpsertAll", mock.Anything, mock.Anything)
	m.uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestBulkCreateJobsCommandHandler_WriteFailureIsNotCommitted(t *testing.T) {
	ctx := t.Context()
	m := newIngestionMocks(t, kernel.NewUUID())
	m.jobs.On("AddAll", ctx, mock.Anything).Return(errors.New("deadlock detected")).Once()
	m.uow.On("JobRepository").Return(m.jobs).Once()

	cmd, err := commands.NewBulkCreateJobsCommand([]ingestion.RawRow{rawRow("A")})
	require.NoError(t, err)

	_, err = commands.NewBulkCreateJobsCommandHandler(m.factory, jst, silentLogger).Handle(ctx, cmd)

	require.EqualError(t, err, "deadlock detected")
	m.uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestNewBulkJobsCommands_RequireRows(t *testing.T) {
	_, err := commands.NewBulkCreateJobsCommand(nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewBulkUpdateJobsCommand([]ingestion.RawRow{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
