// Package errs provides the error types shared by the order, notification and
// chat packages of the MedAssist service.
//
// Each error type pairs a sentinel (ErrObjectNotFound, ErrValueIsRequired, ...)
// with a struct that carries the offending parameter and an optional cause.
// Unwrap returns the sentinel, so callers classify failures with errors.Is
// while messages keep the detail.
package errs
