package job

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"staffing/internal/core/domain/model/kernel"
	"staffing/internal/pkg/errs"
)

var (
	// ErrJobIsNotConstructed is returned by Validate for Job values not built by NewJob or RestoreJob.
	ErrJobIsNotConstructed = errors.New("Job must be created via NewJob constructor")
)

// Schedule is a concrete [Start, End] window.
type Schedule struct {
	Start time.Time
	End   time.Time
}

// Params carries every attribute of a job. It is the input of NewJob and RestoreJob.
type Params struct {
	ID              kernel.UUID
	Title           string
	Address         string
	Description     string
	ClientID        *kernel.UUID
	TemplateID      *kernel.UUID
	IsFlexible      bool
	AutoSetSchedule bool
	StartTime       time.Time
	EndTime         time.Time
	WorkPeriodStart time.Time
	WorkPeriodEnd   time.Time
	MaxWorkers      int
	Status          Status
	RewardAmount    float64
	RewardTaxMode   kernel.TaxMode
	BillingAmount   *float64
	BillingTaxMode  kernel.TaxMode
}

// Job is a unit of work offered by a client.
//
// Exactly one schedule representation is authoritative: the fixed
// StartTime/EndTime pair when the job is not flexible, the
// WorkPeriodStart/WorkPeriodEnd pair when it is. The other pair is kept as a
// shadow copy for listings.
//
// MaxWorkers >= 1 is enforced by NewJob only; RestoreJob accepts whatever was
// persisted because assignment never consults capacity.
type Job struct {
	id              kernel.UUID
	title           string
	address         string
	description     string
	clientID        *kernel.UUID
	templateID      *kernel.UUID
	isFlexible      bool
	autoSetSchedule bool
	startTime       time.Time
	endTime         time.Time
	workPeriodStart time.Time
	workPeriodEnd   time.Time
	maxWorkers      int
	status          Status
	rewardAmount    float64
	rewardTaxMode   kernel.TaxMode
	billingAmount   *float64
	billingTaxMode  kernel.TaxMode

	isConstructed bool
}

// NewJob creates a job from ingested or duplicated data and enforces every
// creation invariant. All violations are reported together.
//
// Example:
//
//	j, err := job.NewJob(job.Params{
//	    ID:             kernel.NewUUID(),
//	    Title:          "Event staff",
//	    Address:        "Chiyoda, Tokyo",
//	    StartTime:      start,
//	    EndTime:        end,
//	    MaxWorkers:     3,
//	    Status:         job.Open,
//	    RewardTaxMode:  kernel.TaxExcluded,
//	    BillingTaxMode: kernel.TaxExcluded,
//	})
func NewJob(p Params) (*Job, error) {
	j := &Job{isConstructed: true}

	if err := errors.Join(
		j.setID(p.ID),
		j.setTitle(p.Title),
		j.setAddress(p.Address),
		j.setSchedule(p),
		j.setMaxWorkers(p.MaxWorkers),
		j.setStatus(p.Status),
		j.setMoney(p),
	); err != nil {
		return nil, err
	}

	j.description = p.Description
	j.clientID = p.ClientID
	j.templateID = p.TemplateID
	j.autoSetSchedule = p.AutoSetSchedule
	return j, nil
}

// RestoreJob rebuilds a persisted job. Only identity and status are checked.
func RestoreJob(p Params) (*Job, error) {
	j := &Job{isConstructed: true}

	if err := errors.Join(
		j.setID(p.ID),
		j.setStatus(p.Status),
	); err != nil {
		return nil, err
	}

	j.title = p.Title
	j.address = p.Address
	j.description = p.Description
	j.clientID = p.ClientID
	j.templateID = p.TemplateID
	j.isFlexible = p.IsFlexible
	j.autoSetSchedule = p.AutoSetSchedule
	j.startTime = p.StartTime
	j.endTime = p.EndTime
	j.workPeriodStart = p.WorkPeriodStart
	j.workPeriodEnd = p.WorkPeriodEnd
	j.maxWorkers = p.MaxWorkers
	j.rewardAmount = p.RewardAmount
	j.rewardTaxMode = p.RewardTaxMode
	j.billingAmount = p.BillingAmount
	j.billingTaxMode = p.BillingTaxMode
	return j, nil
}

// Validate ensures the Job instance was built by NewJob or RestoreJob.
func (j *Job) Validate() error {
	if j == nil || !j.isConstructed {
		return ErrJobIsNotConstructed
	}
	return nil
}

// ID returns the job identifier.
func (j *Job) ID() kernel.UUID {
	return j.id
}

// Title returns the job title shown to workers.
func (j *Job) Title() string {
	return j.title
}

// Address returns the work location as free text.
func (j *Job) Address() string {
	return j.address
}

// Description returns the optional job description.
func (j *Job) Description() string {
	return j.description
}

// ClientID returns the client the job is billed to, or nil.
func (j *Job) ClientID() *kernel.UUID {
	return j.clientID
}

// TemplateID returns the report template attached to the job, or nil.
func (j *Job) TemplateID() *kernel.UUID {
	return j.templateID
}

// IsFlexible reports whether workers pick their own days within the work period.
func (j *Job) IsFlexible() bool {
	return j.isFlexible
}

// AutoSetSchedule reports whether assignment copies the job schedule onto the application.
func (j *Job) AutoSetSchedule() bool {
	return j.autoSetSchedule
}

// StartTime returns the start of a fixed shift.
func (j *Job) StartTime() time.Time {
	return j.startTime
}

// EndTime returns the end of a fixed shift.
func (j *Job) EndTime() time.Time {
	return j.endTime
}

// WorkPeriodStart returns the first day of a flexible job.
func (j *Job) WorkPeriodStart() time.Time {
	return j.workPeriodStart
}

// WorkPeriodEnd returns the end of the last day of a flexible job.
func (j *Job) WorkPeriodEnd() time.Time {
	return j.workPeriodEnd
}

// MaxWorkers returns how many workers the job needs.
func (j *Job) MaxWorkers() int {
	return j.maxWorkers
}

// Status returns the recruiting status.
func (j *Job) Status() Status {
	return j.status
}

// RewardAmount returns the pay per worker.
func (j *Job) RewardAmount() float64 {
	return j.rewardAmount
}

// RewardTaxMode tells whether RewardAmount includes tax.
func (j *Job) RewardTaxMode() kernel.TaxMode {
	return j.rewardTaxMode
}

// BillingAmount returns the amount billed to the client, or nil when unset.
func (j *Job) BillingAmount() *float64 {
	return j.billingAmount
}

// BillingTaxMode tells whether BillingAmount includes tax.
func (j *Job) BillingTaxMode() kernel.TaxMode {
	return j.billingTaxMode
}

// FixedSchedule returns the job's own start/end window.
func (j *Job) FixedSchedule() Schedule {
	return Schedule{Start: j.startTime, End: j.endTime}
}

// Schedule returns the authoritative window selected by IsFlexible.
func (j *Job) Schedule() Schedule {
	if j.isFlexible {
		return Schedule{Start: j.workPeriodStart, End: j.workPeriodEnd}
	}
	return j.FixedSchedule()
}

// LocksScheduleOnAssignment reports whether an assignment to this job is
// confirmed at the job's fixed time immediately. Flexible jobs never are.
func (j *Job) LocksScheduleOnAssignment() bool {
	return j.autoSetSchedule && !j.isFlexible
}

func (j *Job) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	j.id = id
	return nil
}

func (j *Job) setTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return errs.NewValueIsRequiredError("title")
	}
	j.title = title
	return nil
}

func (j *Job) setAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return errs.NewValueIsRequiredError("address")
	}
	j.address = address
	return nil
}

func (j *Job) setSchedule(p Params) error {
	j.isFlexible = p.IsFlexible
	if p.IsFlexible {
		if p.WorkPeriodStart.IsZero() || p.WorkPeriodEnd.IsZero() {
			return errs.NewValueIsRequiredError("work period")
		}
	} else if p.StartTime.IsZero() || p.EndTime.IsZero() {
		return errs.NewValueIsRequiredError("start and end time")
	}
	j.startTime = p.StartTime
	j.endTime = p.EndTime
	j.workPeriodStart = p.WorkPeriodStart
	j.workPeriodEnd = p.WorkPeriodEnd
	return nil
}

func (j *Job) setMaxWorkers(maxWorkers int) error {
	if maxWorkers < 1 {
		return errs.NewValueIsInvalidErrorWithCause("max workers is invalid", fmt.Errorf("%d is not greater than 0", maxWorkers))
	}
	j.maxWorkers = maxWorkers
	return nil
}

func (j *Job) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	j.status = status
	return nil
}

func (j *Job) setMoney(p Params) error {
	if err := errors.Join(p.RewardTaxMode.Validate(), p.BillingTaxMode.Validate()); err != nil {
		return err
	}
	if p.RewardAmount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("reward amount is invalid", fmt.Errorf("%v is negative", p.RewardAmount))
	}
	j.rewardAmount = p.RewardAmount
	j.rewardTaxMode = p.RewardTaxMode
	j.billingAmount = p.BillingAmount
	j.billingTaxMode = p.BillingTaxMode
	return nil
}
