// Package testutil provides utilities for testing the migration stages.
//
// Key components:
//   - LatteEnv: an isolated Latte/SynDock configuration tree, either on the
//     real filesystem under t.TempDir() or fully in memory
//   - SnapshotTree: byte-level capture of a directory tree for comparisons
//   - RecordingReporter: a types.Reporter that keeps every status line
//   - FailingFS: a types.FS wrapper that injects errors on chosen paths
//
// Usage guidelines:
//   - Prefer NewMemoryEnv; use NewLatteEnv when the real filesystem matters
//     (atomic writes, permissions, the CLI)
//   - All test data should be defined inline, not in external files
package testutil
