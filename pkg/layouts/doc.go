// Package layouts migrates Latte Dock layout files to SynDock layouts.
//
// Layouts are treated as opaque text. Migration is a blind, ordered,
// literal substitution over the whole file (see Replacements); nothing is
// parsed. Each source file layouts/<name>.layout.latte is written to
// layouts/<name>.layout.syndock under the destination root and the
// source is never modified.
package layouts
