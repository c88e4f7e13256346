// Package types defines the core types and interfaces shared by the
// migration stages: the FS abstraction every stage reads and writes
// through, the Reporter that receives user-facing status lines, and the
// Summary a run produces.
package types
