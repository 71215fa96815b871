// Package internalcheck provides internal validation utilities.
//
// It enforces repository-wide policies as regular tests, currently that
// all cgo stays isolated in internal/bindings. It is not intended for
// external use and the API may change without notice.
package internalcheck
