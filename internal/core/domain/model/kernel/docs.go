// Package kernel provides the value objects shared by the job and
// application aggregates: UUID identifiers and the TaxMode of monetary
// amounts. Both are immutable; their zero values are invalid and fail
// Validate.
package kernel
