package job

import (
	"fmt"
	"strings"

	"staffing/internal/pkg/errs"
)

// Status is the publication state of a job.
//
//	Draft ──> Open ──> Filled ──> Completed
//	  │        │         │
//	  └────────┴─────────┴──────> Cancelled
//
// Assignment never moves a job between states; the lifecycle is driven by
// status edits outside this core.
type Status int

const (
	// Unknown (0) catches uninitialized values.
	Unknown Status = iota
	Draft
	Open
	Filled
	Completed
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Draft:     "DRAFT",
		Open:      "OPEN",
		Filled:    "FILLED",
		Completed: "COMPLETED",
		Cancelled: "CANCELLED",
	}
}

// Validate accepts every declared status except Unknown.
func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid job status", s))
	}
	return nil
}

// String returns the stored name of the status, or UNKNOWN.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// ParseStatus reads the upper-case names produced by String, case-insensitively.
func ParseStatus(raw string) (Status, error) {
	needle := strings.ToUpper(strings.TrimSpace(raw))
	for status, name := range getStatusStrings() {
		if status != Unknown && name == needle {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid job status", raw))
}
