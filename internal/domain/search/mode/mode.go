package mode

import "strings"

// Mode is how the query text is matched.
type Mode string

// Search mode constants.
const (
	// Browse lists every document; the query text is "*".
	Browse  Mode = "browse"
	Keyword Mode = "keyword"
)

// IsValid checks if the mode is one of the supported values.
func (m Mode) IsValid() bool {
	return m == Browse || m == Keyword
}

// Of derives the mode from query text.
func Of(query string) Mode {
	if strings.TrimSpace(query) == "*" {
		return Browse
	}
	return Keyword
}
