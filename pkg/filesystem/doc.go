// Package filesystem provides implementations of types.FS.
//
// NewOS is the real filesystem used by the command. Its writes go through
// atomicfile, so a destination file is either fully written or untouched.
// NewAferoFS adapts any afero.Fs, which tests use with an in-memory backend.
package filesystem
