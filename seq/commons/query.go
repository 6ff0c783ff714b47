package commons

// Query maps a field name to the value that field must hold. A nil expected
// value places no constraint on the field.
type Query map[string]any

// Active reports whether the query constrains the named field.
func (q Query) Active(field string) (any, bool) {
	expected, ok := q[field]
	if !ok || expected == nil {
		return nil, false
	}
	return expected, true
}
