// Package errs provides the error taxonomy shared by the staffing core.
//
// Every error type pairs a sentinel (ErrObjectNotFound, ErrValueIsInvalid,
// ErrValueIsOutOfRange, ErrValueIsRequired) with a struct carrying the
// offending parameter and an optional cause. Unwrap returns the sentinel so
// callers classify failures with errors.Is:
//
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // count the item as failed and move on
//	}
package errs
