package db

// IndexInfo is the subset of FT.INFO the console displays.
type IndexInfo struct {
	Name       string
	NumDocs    int
	Attributes []IndexAttribute
	Indexing   bool
}

// IndexAttribute is one schema field of an index.
type IndexAttribute struct {
	Name string
	Type string // TAG, NUMERIC, TEXT, VECTOR
}

// IsValidIdentifier returns true if s matches [a-zA-Z0-9_:-]+.
func IsValidIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		isAlpha := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		isDigit := r >= '0' && r <= '9'
		isSpecial := r == '_' || r == ':' || r == '-'
		if !isAlpha && !isDigit && !isSpecial {
			return false
		}
	}
	return true
}
