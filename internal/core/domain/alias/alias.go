/*
Package alias defines the core domain entity for an alias: a short,
user-defined key that expands to a destination, typically a URL.
*/
package alias

import "strings"

/*
Alias is a single record of the alias table. Name is the primary key.
Both fields are stored trimmed and are never empty once persisted.
*/
type Alias struct {
	Name        string `yaml:"alias"`
	Destination string `yaml:"destination"`
}

// Normalize returns a copy of a with surrounding whitespace removed from both fields.
func (a Alias) Normalize() Alias {
	return Alias{
		Name:        strings.TrimSpace(a.Name),
		Destination: strings.TrimSpace(a.Destination),
	}
}

// Valid reports whether both fields are non-empty after trimming.
func (a Alias) Valid() bool {
	n := a.Normalize()
	return n.Name != "" && n.Destination != ""
}
