package jobapplication_test

import (
	"testing"

	"staffing/internal/core/domain/model/jobapplication"
	"staffing/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Predicates(t *testing.T) {
	testCases := []struct {
		status          jobapplication.Status
		active          bool
		selected        bool
		reactivatable   bool
		adminChangeable bool
	}{
		{jobapplication.Applied, true, false, false, true},
		{jobapplication.Assigned, true, true, false, true},
		{jobapplication.Confirmed, true, true, false, true},
		{jobapplication.Rejected, false, false, true, true},
		{jobapplication.Cancelled, false, false, true, true},
		{jobapplication.Completed, false, false, false, false},
	}

	for _, tc := range testCases {
		t.Run(tc.status.String(), func(t *testing.T) {
			assert.Equal(t, tc.active, tc.status.IsActive())
			assert.Equal(t, tc.selected, tc.status.IsSelected())
			assert.Equal(t, tc.reactivatable, tc.status.IsReactivatable())
			if tc.adminChangeable {
				require.NoError(t, tc.status.ValidateAdminTransition())
			} else {
				require.ErrorIs(t, tc.status.ValidateAdminTransition(), errs.ErrValueIsInvalid)
			}
		})
	}
}

func TestStatus_Validate(t *testing.T) {
	require.Error(t, jobapplication.Unknown.Validate())
	require.Error(t, jobapplication.Status(99).Validate())
	require.NoError(t, jobapplication.Confirmed.Validate())
	assert.Equal(t, "UNKNOWN", jobapplication.Status(99).String())
}

func TestValidateAdminTarget(t *testing.T) {
	require.NoError(t, jobapplication.ValidateAdminTarget(jobapplication.Assigned))
	require.NoError(t, jobapplication.ValidateAdminTarget(jobapplication.Rejected))
	require.NoError(t, jobapplication.ValidateAdminTarget(jobapplication.Cancelled))

	err := jobapplication.ValidateAdminTarget(jobapplication.Confirmed)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "CONFIRMED is not a valid administrative target")

	require.Error(t, jobapplication.ValidateAdminTarget(jobapplication.Completed))
}

func TestParseStatus(t *testing.T) {
	s, err := jobapplication.ParseStatus("assigned")
	require.NoError(t, err)
	assert.Equal(t, jobapplication.Assigned, s)

	_, err = jobapplication.ParseStatus("hired")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
