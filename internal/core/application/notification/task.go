package notification

import (
	"fmt"
	"time"

	"staffing/internal/core/domain/model/job"
	"staffing/internal/core/domain/model/jobapplication"
	"staffing/internal/core/domain/model/kernel"
	"staffing/internal/core/ports"
)

// DisplayLayout formats the start instant in the message body.
const DisplayLayout = "2006/01/02 15:04"

// Task is one pending selection notification.
type Task struct {
	WorkerID   kernel.UUID
	Address    string
	JobTitle   string
	Start      time.Time
	JobAddress string
}

// NewSelectionTask builds the task announcing app to worker w. The second
// result is false when nothing should be sent: the application is not
// Assigned or Confirmed, or the worker has no push address.
//
// The start shown is the application's committed start when it has one and
// the job's own schedule otherwise.
func NewSelectionTask(j *job.Job, app *jobapplication.Application, w ports.Worker) (Task, bool) {
	if !app.Status().IsSelected() || !w.HasPushAddress() {
		return Task{}, false
	}

	start := j.Schedule().Start
	if app.ScheduledStart() != nil {
		start = *app.ScheduledStart()
	}

	return Task{
		WorkerID:   w.ID,
		Address:    *w.PushAddress,
		JobTitle:   j.Title(),
		Start:      start,
		JobAddress: j.Address(),
	}, true
}

// Render produces the fixed message body with the start shown in loc.
func Render(t Task, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return fmt.Sprintf(
		"【採用のお知らせ】「%s」に採用されました。\n日時: %s\n場所: %s",
		t.JobTitle,
		t.Start.In(loc).Format(DisplayLayout),
		t.JobAddress,
	)
}
