// Package diagnostic provides structured warnings and errors reported while
// analyzing mapper packages and generating adapters.
//
// Key capabilities:
//   - Unsupported method shapes (errors block generation)
//   - Methods whose adapters can only fail by panicking (warnings)
//   - Skipped interfaces (generic, empty, constraint-only)
package diagnostic
