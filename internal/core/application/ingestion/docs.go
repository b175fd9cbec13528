// Package ingestion turns loosely typed tabular job rows into validated job
// aggregates ready for a batch write.
//
// The pipeline runs over the whole batch before anything is written:
//
//	RawRow ──Normalize──> NormalizedRow ──Resolve──> References
//	                            │                        │
//	                            └─────────Validate───────┘──> ValidatedRow ──Build──> *job.Job
//
// The first invalid row aborts the batch with a *RowValidationError naming
// the row and every offending field.
package ingestion
