package domain

import "strings"

type ID string

func (vo ID) String() string {
	return string(vo)
}

func (vo ID) IsEmpty() bool {
	return strings.TrimSpace(string(vo)) == ""
}

type Name string

func (vo Name) String() string {
	return string(vo)
}

// NormalizeName trims surrounding whitespace the way submitted form text is cleaned
// before it is stored.
func NormalizeName(value string) Name {
	return Name(strings.TrimSpace(value))
}
