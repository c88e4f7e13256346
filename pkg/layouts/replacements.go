package layouts

import "strings"

// Replacement is a single literal substitution applied to layout text
type Replacement struct {
	Old string
	New string
}

// Replacements is the table applied to every layout, in order. No New
// value contains any Old value, so applying the table twice is the same
// as applying it once.
var Replacements = []Replacement{
	{Old: "org.kde.latte.containment", New: "org.syndromatic.syndock.containment"},
	{Old: "org.kde.latte.plasmoid", New: "org.syndromatic.syndock.plasmoid"},
	{Old: "latte-dock", New: "syndock"},
	{Old: "Latte Dock", New: "SynDock"},
}

// Transform applies each replacement of table in order, replacing every
// occurrence. Later replacements see the output of earlier ones.
func Transform(content string, table []Replacement) string {
	for _, r := range table {
		content = strings.ReplaceAll(content, r.Old, r.New)
	}
	return content
}
