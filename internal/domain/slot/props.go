package slot

// Bool returns the boolean prop at key, false when absent or not a bool.
func (p Props) Bool(key string) bool {
	b, _ := p[key].(bool)
	return b
}

// String returns the string prop at key.
func (p Props) String(key string) string {
	s, _ := p[key].(string)
	return s
}

// Strings returns the list prop at key. Accepts []string and []any of strings.
func (p Props) Strings(key string) []string {
	switch v := p[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// Map returns the nested object prop at key.
func (p Props) Map(key string) Props {
	m, _ := asMap(p[key])
	return m
}

// With returns a copy of p with v merged in at key.
func (p Props) With(key string, v any) Props {
	return MergeProps(p, Props{key: v})
}
