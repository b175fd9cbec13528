package commands_test

import (
	"errors"
	"testing"

	"staffing/internal/core/application/usecases/commands"
	"staffing/internal/core/domain/model/jobapplication"
	"staffing/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAssignApplications_EachItemUsesItsOwnJob(t *testing.T) {
	store := newMemoryStore()
	auto, manual := newJob(t, true, false), newJob(t, false, false)
	w1, w2 := newWorker("device-1"), newWorker("device-2")
	store.jobs[auto.ID()] = auto
	store.jobs[manual.ID()] = manual
	store.workers[w1.ID] = w1
	store.workers[w2.ID] = w2
	a1 := restoreApplication(t, auto.ID(), w1.ID, jobapplication.Applied)
	a2 := restoreApplication(t, manual.ID(), w2.ID, jobapplication.Applied)
	store.applications[a1.ID()] = appRow{a1.ID(), auto.ID(), w1.ID, jobapplication.Applied, nil, nil}
	store.applications[a2.ID()] = appRow{a2.ID(), manual.ID(), w2.ID, jobapplication.Applied, nil, nil}
	dispatcher := &recordingDispatcher{}

	cmd, err := commands.NewAssignApplicationsCommand([]kernel.UUID{a1.ID(), a2.ID(), kernel.NewUUID()})
	require.NoError(t, err)
	res, err := commands.NewAssignApplicationsCommandHandler(store, dispatcher, silentLogger).Handle(t.Context(), cmd)

	require.NoError(t, err)
	assert.Equal(t, 2, res.Success)
	assert.Equal(t, 1, res.Failed)
	assert.Equal(t, jobapplication.Confirmed, store.applications[a1.ID()].status)
	assert.Equal(t, jobapplication.Assigned, store.applications[a2.ID()].status)
	assert.Nil(t, store.applications[a2.ID()].start)

	require.Len(t, dispatcher.batches, 1, "notifications go out together after the loop")
	assert.Len(t, dispatcher.batches[0], 2)
}

func TestAssignApplications_CompletedItemFailsAlone(t *testing.T) {
	store := newMemoryStore()
	j := newJob(t, false, false)
	w1, w2 := newWorker("device-1"), newWorker("device-2")
	store.jobs[j.ID()] = j
	store.workers[w1.ID] = w1
	store.workers[w2.ID] = w2
	done := restoreApplication(t, j.ID(), w1.ID, jobapplication.Completed)
	open := restoreApplication(t, j.ID(), w2.ID, jobapplication.Rejected)
	store.applications[done.ID()] = appRow{done.ID(), j.ID(), w1.ID, jobapplication.Completed, nil, nil}
	store.applications[open.ID()] = appRow{open.ID(), j.ID(), w2.ID, jobapplication.Rejected, nil, nil}

	cmd, err := commands.NewAssignApplicationsCommand([]kernel.UUID{done.ID(), open.ID()})
	require.NoError(t, err)
	res, err := commands.NewAssignApplicationsCommandHandler(store, &recordingDispatcher{}, silentLogger).Handle(t.Context(), cmd)

	require.NoError(t, err)
	assert.Equal(t, 1, res.Success)
	assert.Equal(t, 1, res.Failed)
	assert.Equal(t, jobapplication.Completed, store.applications[done.ID()].status)
	assert.Equal(t, jobapplication.Assigned, store.applications[open.ID()].status)
}

func TestAssignApplications_ReadFailureFailsTheCall(t *testing.T) {
	ctx := t.Context()
	ids := []kernel.UUID{kernel.NewUUID()}
	cmd, err := commands.NewAssignApplicationsCommand(ids)
	require.NoError(t, err)

	appRepo := new(MockApplicationRepository)
	appRepo.On("GetMany", ctx, ids).Return(nil, errors.New("connection refused")).Once()
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ApplicationRepository").Return(appRepo).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()
	dispatcher := &recordingDispatcher{}

	_, err = commands.NewAssignApplicationsCommandHandler(factory, dispatcher, silentLogger).Handle(ctx, cmd)

	require.EqualError(t, err, "connection refused")
	assert.Empty(t, dispatcher.batches)
	uow.AssertExpectations(t)
}
