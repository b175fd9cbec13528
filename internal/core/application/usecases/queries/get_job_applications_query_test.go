package queries_test

import (
	"testing"

	"staffing/internal/core/application/usecases/queries"
	"staffing/internal/core/domain/model/jobapplication"
	"staffing/internal/core/domain/model/kernel"
	"staffing/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetJobApplicationsQuery(t *testing.T) {
	q, err := queries.NewGetJobApplicationsQuery(kernel.NewUUID(), nil)
	require.NoError(t, err)
	assert.NoError(t, q.Validate())

	_, err = queries.NewGetJobApplicationsQuery(kernel.UUID{}, nil)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = queries.NewGetJobApplicationsQuery(kernel.NewUUID(), []jobapplication.Status{jobapplication.Unknown})
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

	assert.ErrorIs(t, queries.GetJobApplicationsQuery{}.Validate(), queries.ErrGetJobApplicationsQueryIsNotConstructed)
}
