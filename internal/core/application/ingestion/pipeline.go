package ingestion

import (
	"context"
	"fmt"
	"time"

	"staffing/internal/core/domain/model/job"
	"staffing/internal/core/domain/model/kernel"
	"staffing/internal/core/ports"
)

// References holds the name to id maps resolved for one batch.
type References struct {
	Clients   map[string]kernel.UUID
	Templates map[string]kernel.UUID
}

// CollectNames returns the distinct non-empty client and template names of
// rows, in first-seen order.
func CollectNames(rows []NormalizedRow) (clients, templates []string) {
	seenClients := make(map[string]struct{})
	seenTemplates := make(map[string]struct{})
	for _, r := range rows {
		if _, ok := seenClients[r.ClientName]; r.ClientName != "" && !ok {
			seenClients[r.ClientName] = struct{}{}
			clients = append(clients, r.ClientName)
		}
		if _, ok := seenTemplates[r.TemplateName]; r.TemplateName != "" && !ok {
			seenTemplates[r.TemplateName] = struct{}{}
			templates = append(templates, r.TemplateName)
		}
	}
	return clients, templates
}

// ResolveReferences looks up every distinct name with one batched query per table.
func ResolveReferences(
	ctx context.Context,
	clients, templates ports.NameResolver,
	rows []NormalizedRow,
) (References, error) {
	clientNames, templateNames := CollectNames(rows)
	refs := References{
		Clients:   map[string]kernel.UUID{},
		Templates: map[string]kernel.UUID{},
	}

	if len(clientNames) > 0 {
		found, err := clients.FindIDsByNames(ctx, clientNames)
		if err != nil {
			return References{}, fmt.Errorf("resolve clients: %w", err)
		}
		refs.Clients = found
	}
	if len(templateNames) > 0 {
		found, err := templates.FindIDsByNames(ctx, templateNames)
		if err != nil {
			return References{}, fmt.Errorf("resolve templates: %w", err)
		}
		refs.Templates = found
	}
	return refs, nil
}

// Options configure Prepare.
type Options struct {
	Mode     Mode
	Location *time.Location
}

// Prepare runs the whole pipeline and returns one job per row, in input
// order. It stops at the first invalid row; nothing is returned for the
// rows before it. In update mode an id may appear on only one row.
func Prepare(
	ctx context.Context,
	rows []RawRow,
	clients, templates ports.NameResolver,
	opts Options,
) ([]*job.Job, error) {
	normalized := make([]NormalizedRow, 0, len(rows))
	for i, r := range rows {
		if r.Line == 0 {
			r.Line = i + 1
		}
		normalized = append(normalized, Normalize(r))
	}

	refs, err := ResolveReferences(ctx, clients, templates, normalized)
	if err != nil {
		return nil, err
	}

	v := Validator{Mode: opts.Mode, Location: opts.Location, Refs: refs}
	jobs := make([]*job.Job, 0, len(normalized))
	seen := make(map[string]int)
	for _, n := range normalized {
		row, err := v.Validate(n)
		if err != nil {
			return nil, err
		}
		if row.Existing {
			id := row.Params.ID.String()
			if first, ok := seen[id]; ok {
				return nil, &RowValidationError{
					Line:   row.Line,
					Title:  row.Params.Title,
					Fields: []FieldError{{Field: "id", Message: fmt.Sprintf("duplicates row %d", first)}},
				}
			}
			seen[id] = row.Line
		}
		j, err := Build(row)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, nil
}

// Build constructs the job aggregate of a validated row.
func Build(row ValidatedRow) (*job.Job, error) {
	j, err := job.NewJob(row.Params)
	if err != nil {
		return nil, &RowValidationError{
			Line:   row.Line,
			Title:  row.Params.Title,
			Fields: []FieldError{{Field: "row", Message: err.Error()}},
		}
	}
	return j, nil
}
