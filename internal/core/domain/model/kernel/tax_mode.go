package kernel

import (
	"fmt"

	"staffing/internal/pkg/errs"
)

// TaxMode tells whether a monetary amount already includes consumption tax.
type TaxMode string

const (
	// TaxExcluded amounts are stated before tax. It is the default.
	TaxExcluded TaxMode = "EXCL"
	// TaxIncluded amounts already contain tax.
	TaxIncluded TaxMode = "INCL"
)

// Validate rejects anything other than EXCL and INCL.
func (m TaxMode) Validate() error {
	if m != TaxExcluded && m != TaxIncluded {
		return errs.NewValueIsInvalidErrorWithCause("tax mode", fmt.Errorf("%q is not a valid tax mode", string(m)))
	}
	return nil
}

func (m TaxMode) String() string {
	return string(m)
}
