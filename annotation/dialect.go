package annotation

import (
	"slices"
	"strings"
)

// Markers holds the four literal marker tokens of a [Dialect].
type Markers struct {
	Next   string
	Start  string
	End    string
	Inline string
}

// Policy controls how a [Dialect] applies its markers.
type Policy struct {
	// InclusiveBounds makes a START/END block include both marker lines.
	// Otherwise only the lines strictly between them are masked.
	InclusiveBounds bool
	// Scoped requires a comment prefix to occur before a marker on its line.
	// It has no effect when the prefix list passed to [Dialect.Scan] is empty.
	Scoped bool
}

// Dialect is a named marker set with its [Policy].
type Dialect struct {
	Name    string
	Markers Markers
	Policy  Policy
}

var (
	// Hide masks whole regions including the marker lines, matching markers
	// anywhere on a line.
	Hide = Dialect{
		Name: "hide",
		Markers: Markers{
			Next:   "@stream-hide-next",
			Start:  "@stream-hide-start",
			End:    "@stream-hide-end",
			Inline: "@stream-hide-inline",
		},
		Policy: Policy{InclusiveBounds: true},
	}

	// Guard masks content while leaving marker lines visible, and only
	// honors markers that follow a comment prefix.
	Guard = Dialect{
		Name: "guard",
		Markers: Markers{
			Next:   "@stream-guard-next",
			Start:  "@stream-guard-start",
			End:    "@stream-guard-end",
			Inline: "@stream-guard-inline",
		},
		Policy: Policy{Scoped: true},
	}
)

// Dialects returns the built-in dialects.
func Dialects() []Dialect {
	return []Dialect{Hide, Guard}
}

// Names returns the names of the built-in dialects.
func Names() []string {
	names := make([]string, 0, 2)
	for _, d := range Dialects() {
		names = append(names, d.Name)
	}

	return names
}

// Lookup returns the built-in dialect with the given name.
func Lookup(name string) (Dialect, bool) {
	i := slices.IndexFunc(Dialects(), func(d Dialect) bool {
		return d.Name == name
	})
	if i < 0 {
		return Dialect{}, false
	}

	return Dialects()[i], true
}

// ScanText splits text into lines and calls [Dialect.Scan]. Both LF and CRLF
// line endings are accepted.
func (d Dialect) ScanText(text string, prefixes []string) []Range {
	if text == "" {
		return nil
	}

	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}

	return d.Scan(lines, prefixes)
}
