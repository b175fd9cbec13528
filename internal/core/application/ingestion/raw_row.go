package ingestion

import (
	"fmt"
	"strconv"
	"strings"
)

// Column names accepted in tabular input.
const (
	ColumnID              = "id"
	ColumnTitle           = "title"
	ColumnClientName      = "client_name"
	ColumnIsFlexible      = "is_flexible"
	ColumnAutoSetSchedule = "auto_set_schedule"
	ColumnDate            = "date"
	ColumnPeriodStart     = "period_start"
	ColumnPeriodEnd       = "period_end"
	ColumnStartTime       = "start_time"
	ColumnEndTime         = "end_time"
	ColumnRewardAmount    = "reward_amount"
	ColumnBillingAmount   = "billing_amount"
	ColumnMaxWorkers      = "max_workers"
	ColumnAddressText     = "address_text"
	ColumnDescription     = "description"
	ColumnTemplateName    = "template_name"
	ColumnRewardTaxMode   = "reward_tax_mode"
	ColumnBillingTaxMode  = "billing_tax_mode"
	ColumnStatus          = "status"
)

// RawRow is one input row exactly as supplied. Every column is text; an
// absent column is the empty string.
type RawRow struct {
	// Line is the 1-based position of the row in its source, used in errors.
	Line int `json:"-"`

	ID              string `json:"id"`
	Title           string `json:"title"`
	ClientName      string `json:"client_name"`
	IsFlexible      string `json:"is_flexible"`
	AutoSetSchedule string `json:"auto_set_schedule"`
	Date            string `json:"date"`
	PeriodStart     string `json:"period_start"`
	PeriodEnd       string `json:"period_end"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	RewardAmount    string `json:"reward_amount"`
	BillingAmount   string `json:"billing_amount"`
	MaxWorkers      string `json:"max_workers"`
	AddressText     string `json:"address_text"`
	Description     string `json:"description"`
	TemplateName    string `json:"template_name"`
	RewardTaxMode   string `json:"reward_tax_mode"`
	BillingTaxMode  string `json:"billing_tax_mode"`
	Status          string `json:"status"`
}

// RawRowFromFields builds a row from column name to value pairs. Column
// names are matched case-insensitively; unknown columns are ignored.
func RawRowFromFields(line int, fields map[string]string) RawRow {
	r := RawRow{Line: line}
	for name, value := range fields {
		if target := r.column(strings.ToLower(strings.TrimSpace(name))); target != nil {
			*target = value
		}
	}
	return r
}

// RawRowFromValues builds a row from decoded JSON values. Booleans become
// "true"/"false", numbers their shortest decimal form and null the empty
// string, so native JSON types go through the same normalizers as text.
func RawRowFromValues(line int, values map[string]any) RawRow {
	fields := make(map[string]string, len(values))
	for name, value := range values {
		fields[name] = textOf(value)
	}
	return RawRowFromFields(line, fields)
}

func textOf(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// RawRowFromRecord builds a row from a header and a positional record, as
// delimited text and spreadsheets provide them. Missing trailing cells are empty.
func RawRowFromRecord(line int, header, record []string) RawRow {
	fields := make(map[string]string, len(header))
	for i, name := range header {
		if i < len(record) {
			fields[name] = record[i]
		}
	}
	return RawRowFromFields(line, fields)
}

func (r *RawRow) column(name string) *string {
	switch name {
	case ColumnID:
		return &r.ID
	case ColumnTitle:
		return &r.Title
	case ColumnClientName:
		return &r.ClientName
	case ColumnIsFlexible:
		return &r.IsFlexible
	case ColumnAutoSetSchedule:
		return &r.AutoSetSchedule
	case ColumnDate:
		return &r.Date
	case ColumnPeriodStart:
		return &r.PeriodStart
	case ColumnPeriodEnd:
		return &r.PeriodEnd
	case ColumnStartTime:
		return &r.StartTime
	case ColumnEndTime:
		return &r.EndTime
	case ColumnRewardAmount:
		return &r.RewardAmount
	case ColumnBillingAmount:
		return &r.BillingAmount
	case ColumnMaxWorkers:
		return &r.MaxWorkers
	case ColumnAddressText:
		return &r.AddressText
	case ColumnDescription:
		return &r.Description
	case ColumnTemplateName:
		return &r.TemplateName
	case ColumnRewardTaxMode:
		return &r.RewardTaxMode
	case ColumnBillingTaxMode:
		return &r.BillingTaxMode
	case ColumnStatus:
		return &r.Status
	default:
		return nil
	}
}
