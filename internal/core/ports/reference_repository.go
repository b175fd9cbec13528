package ports

import (
	"context"

	"staffing/internal/core/domain/model/kernel"
)

// NameResolver maps human-entered names of a reference table onto
// identifiers. Names absent from the table are absent from the result.
type NameResolver interface {
	FindIDsByNames(ctx context.Context, names []string) (map[string]kernel.UUID, error)
}

// ClientRepository resolves client organisations by name.
type ClientRepository interface {
	NameResolver
}

// TemplateRepository resolves report templates by name.
type TemplateRepository interface {
	NameResolver
}
