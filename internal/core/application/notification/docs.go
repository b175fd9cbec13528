// Package notification turns committed assignments into "you were
// selected" pushes. Assignment handlers return a list of Task values; the
// Dispatcher drains that list after the writes are committed, so the state
// machine itself never performs I/O.
package notification
