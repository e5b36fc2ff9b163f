// Package diagnostic provides structured warnings and errors about the
// search catalog and the workflow setup.
//
// Key capabilities:
//   - Catalog problems (duplicate ids, missing slugs, blank titles)
//   - Load failures rendered as a single opaque error to the user
//   - Combined error values for callers that only need pass/fail
package diagnostic
