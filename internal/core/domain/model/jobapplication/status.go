package jobapplication

import (
	"fmt"
	"strings"

	"staffing/internal/pkg/errs"
)

// Status is the lifecycle state of a job application.
//
//	Applied ──┬──> Assigned ──┬──> Completed
//	          │       │       │
//	          └──> Confirmed ─┘
//	          │       │
//	          └──> Rejected / Cancelled ──(re-activation)──> Assigned / Confirmed
//
// Applied, Assigned and Confirmed are active: at most one active application
// exists per (job, worker) pair. Rejected and Cancelled are terminal but can be
// re-activated by a repeated assignment. Completed is final.
type Status int

const (
	// Unknown (0) catches uninitialized values.
	Unknown Status = iota
	Applied
	Assigned
	Confirmed
	Rejected
	Cancelled
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Applied:   "APPLIED",
		Assigned:  "ASSIGNED",
		Confirmed: "CONFIRMED",
		Rejected:  "REJECTED",
		Cancelled: "CANCELLED",
		Completed: "COMPLETED",
	}
}

// Validate accepts every declared status except Unknown.
func (s Status) Validate() error {
	if s <= Unknown || s > Completed {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid application status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// ParseStatus reads the names produced by String, case-insensitively.
func ParseStatus(raw string) (Status, error) {
	needle := strings.ToUpper(strings.TrimSpace(raw))
	for status, name := range getStatusStrings() {
		if status != Unknown && name == needle {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid application status", raw),
	)
}

// IsActive reports Applied, Assigned and Confirmed.
func (s Status) IsActive() bool {
	return s == Applied || s == Assigned || s == Confirmed
}

// IsSelected reports the statuses that announce a selection to the worker.
func (s Status) IsSelected() bool {
	return s == Assigned || s == Confirmed
}

// IsReactivatable reports the terminal statuses a repeated assignment may reuse.
func (s Status) IsReactivatable() bool {
	return s == Rejected || s == Cancelled
}

// ValidateAdminTransition checks that an administrator may move the
// application out of its current status. Only Completed is locked.
func (s Status) ValidateAdminTransition() error {
	if err := s.Validate(); err != nil {
		return err
	}
	if s == Completed {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to change", s.String()),
		)
	}
	return nil
}

// ValidateAdminTarget accepts the targets of an administrative decision:
// Assigned, Rejected and Cancelled.
func ValidateAdminTarget(target Status) error {
	if target != Assigned && target != Rejected && target != Cancelled {
		return errs.NewValueIsInvalidErrorWithCause(
			"target status is invalid",
			fmt.Errorf("%s is not a valid administrative target", target.String()),
		)
	}
	return nil
}
