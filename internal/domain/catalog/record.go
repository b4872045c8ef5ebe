package catalog

// Record is a catalog row: a bag of primitive fields keyed by name.
// Unknown fields pass through untouched so catalog files can grow
// without code changes.
type Record map[string]any

// Str returns a string field, or "" when absent or not a string.
func (r Record) Str(key string) string {
	if v, ok := r[key].(string); ok {
		return v
	}
	return ""
}

// Float returns a numeric field as float64, or 0 when absent.
// Accepts float64, int and int64 encodings.
func (r Record) Float(key string) float64 {
	switch v := r[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return 0
}

// Has reports whether the field is present.
func (r Record) Has(key string) bool {
	_, ok := r[key]
	return ok
}

// ID returns the record's identifier field.
func (r Record) ID() string {
	return r.Str("id")
}

// Name returns the record's display name.
func (r Record) Name() string {
	return r.Str("name")
}

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
