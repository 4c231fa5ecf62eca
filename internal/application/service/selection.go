package service

// Selectable is an entity the operator can pick from a candidate list.
type Selectable interface {
	DisplayLabel() string
	IsActive() bool
}

// Resolve matches the operator's current free-text value against the candidate
// set by exact display label. Partial or edited text yields no selection: a
// selection is always re-confirmed against the visible list, never inferred.
func Resolve[T Selectable](input string, candidates []T) (T, bool) {
	for _, candidate := range candidates {
		if candidate.IsActive() && candidate.DisplayLabel() == input {
			return candidate, true
		}
	}
	var zero T
	return zero, false
}
