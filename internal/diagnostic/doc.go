// Package diagnostic provides structured warnings and errors for the
// adapter generator.
//
// Key capabilities:
//   - Per-class resolution failure reports
//   - Unsupported and invalid declaration conditions with class/property context
//   - Severity-tagged collection, merging, and combined error rendering
package diagnostic
