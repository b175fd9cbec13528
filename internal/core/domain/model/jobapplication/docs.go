// Package jobapplication models the binding between one worker and one job
// and its lifecycle: application, assignment, schedule confirmation,
// completion, rejection, cancellation and re-activation.
//
// Key business rules:
//   - At most one active (Applied, Assigned, Confirmed) application per (job, worker)
//   - A repeated assignment reuses a Rejected or Cancelled row instead of inserting
//   - Confirmed applications always carry a scheduled start and end
//   - Completed applications are final
package jobapplication
