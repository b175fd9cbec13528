package ingestion

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"staffing/internal/core/domain/model/kernel"
)

// Defaults applied to missing times.
const (
	DefaultStartTime = "00:00:00"
	DefaultEndTime   = "23:59:00"
)

const (
	affirmativeToken = "はい"
	taxIncludedToken = "税込"
)

var (
	datePattern   = regexp.MustCompile(`^(\d{4})[-/](\d{1,2})[-/](\d{1,2})$`)
	timePattern   = regexp.MustCompile(`^(\d{1,2}):(\d{1,2})(?::(\d{1,2}))?$`)
	nonAmountChar = regexp.MustCompile(`[^0-9.]`)
)

// NormalizedRow is a RawRow with canonical text forms. Dates are
// YYYY-MM-DD, times HH:MM:SS, amounts and flags already parsed.
type NormalizedRow struct {
	Line            int
	ID              string
	Title           string
	ClientName      string
	TemplateName    string
	Address         string
	Description     string
	IsFlexible      bool
	AutoSetSchedule bool
	Date            string
	PeriodStart     string
	PeriodEnd       string
	StartTime       string
	EndTime         string
	RewardAmount    float64
	BillingAmount   *float64
	MaxWorkers      string
	RewardTaxMode   kernel.TaxMode
	BillingTaxMode  kernel.TaxMode
	Status          string
}

// Normalize canonicalizes every column of r and applies fallback chaining:
// a fixed-schedule row without a date borrows period_start, a flexible row
// without period_end ends on period_start.
func Normalize(r RawRow) NormalizedRow {
	n := NormalizedRow{
		Line:            r.Line,
		ID:              strings.TrimSpace(r.ID),
		Title:           strings.TrimSpace(r.Title),
		ClientName:      strings.TrimSpace(r.ClientName),
		TemplateName:    strings.TrimSpace(r.TemplateName),
		Address:         strings.TrimSpace(r.AddressText),
		Description:     strings.TrimSpace(r.Description),
		IsFlexible:      ParseFlag(r.IsFlexible),
		AutoSetSchedule: ParseFlag(r.AutoSetSchedule),
		Date:            NormalizeDate(r.Date),
		PeriodStart:     NormalizeDate(r.PeriodStart),
		PeriodEnd:       NormalizeDate(r.PeriodEnd),
		StartTime:       NormalizeTime(r.StartTime, DefaultStartTime),
		EndTime:         NormalizeTime(r.EndTime, DefaultEndTime),
		BillingAmount:   ParseAmount(r.BillingAmount),
		MaxWorkers:      strings.TrimSpace(r.MaxWorkers),
		RewardTaxMode:   ParseTaxMode(r.RewardTaxMode),
		BillingTaxMode:  ParseTaxMode(r.BillingTaxMode),
		Status:          strings.TrimSpace(r.Status),
	}

	if reward := ParseAmount(r.RewardAmount); reward != nil {
		n.RewardAmount = *reward
	}

	if !n.IsFlexible && n.Date == "" && n.PeriodStart != "" {
		n.Date = n.PeriodStart
	}
	if n.IsFlexible && n.PeriodEnd == "" {
		n.PeriodEnd = n.PeriodStart
	}
	return n
}

// NormalizeDate turns "2025/5/1" or "2025-5-1" into "2025-05-01". Text that
// is not a date is returned trimmed and left for validation to reject.
func NormalizeDate(raw string) string {
	s := strings.TrimSpace(raw)
	m := datePattern.FindStringSubmatch(s)
	if m == nil {
		return s
	}
	return fmt.Sprintf("%s-%s-%s", m[1], pad2(m[2]), pad2(m[3]))
}

// NormalizeTime turns "9:0" into "09:00:00" and "9:05:7" into "09:05:07".
// Empty input yields fallback.
func NormalizeTime(raw, fallback string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return fallback
	}
	m := timePattern.FindStringSubmatch(s)
	if m == nil {
		return s
	}
	seconds := m[3]
	if seconds == "" {
		seconds = "0"
	}
	return fmt.Sprintf("%s:%s:%s", pad2(m[1]), pad2(m[2]), pad2(seconds))
}

// ParseFlag accepts the localized affirmative token, "true" in any case, or
// "1". Everything else is false.
func ParseFlag(raw string) bool {
	s := strings.TrimSpace(raw)
	return s == affirmativeToken || strings.EqualFold(s, "true") || s == "1"
}

// ParseAmount keeps only digits and the decimal point, then parses.
// Returns nil when nothing parsable remains.
func ParseAmount(raw string) *float64 {
	cleaned := nonAmountChar.ReplaceAllString(raw, "")
	if cleaned == "" {
		return nil
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}
	return &v
}

// ParseTaxMode maps the localized tax-included token and "INCL" to
// kernel.TaxIncluded; everything else is kernel.TaxExcluded.
func ParseTaxMode(raw string) kernel.TaxMode {
	s := strings.TrimSpace(raw)
	if s == taxIncludedToken || strings.EqualFold(s, string(kernel.TaxIncluded)) {
		return kernel.TaxIncluded
	}
	return kernel.TaxExcluded
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
