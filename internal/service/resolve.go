package service

import (
	"fmt"
	"strconv"

	"cycleops/internal/domain"
)

// numericID interprets identifier as a resource id. Anything that is not a
// positive integer is treated as a name.
func numericID(identifier string) (int, bool) {
	id, err := strconv.Atoi(identifier)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// resolveOne requires a name-filtered listing to have produced exactly one
// match. Zero or multiple matches are a NotFoundError, never an arbitrary
// pick.
func resolveOne[T any](kind, name string, matches []T) (T, error) {
	var zero T
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return zero, &domain.NotFoundError{
			Resource: kind,
			Message:  fmt.Sprintf("no match for %q", name),
		}
	default:
		return zero, &domain.NotFoundError{
			Resource: kind,
			Message:  fmt.Sprintf("%q is ambiguous (%d matches)", name, len(matches)),
		}
	}
}

// compact builds a request payload, dropping unset fields the way the
// original API client does.
func compact(fields map[string]any) map[string]any {
	payload := make(map[string]any, len(fields))
	for k, v := range fields {
		switch t := v.(type) {
		case nil:
			continue
		case string:
			if t == "" {
				continue
			}
		case int:
			if t == 0 {
				continue
			}
		case []int:
			if len(t) == 0 {
				continue
			}
		case map[string]any:
			if len(t) == 0 {
				continue
			}
		}
		payload[k] = v
	}
	return payload
}
