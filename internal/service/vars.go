package service

import (
	"fmt"
	"strconv"
	"strings"

	"cycleops/internal/domain"
)

// Assignment is a parsed --variable flag: a dotted path and the value to set
// at it. Integer path segments address list elements.
type Assignment struct {
	Path  []any // string keys and int indices
	Value any
}

// ParseAssignment validates and splits a single key=value token.
//
//	containers.0.image=nginx:1.23  valid
//	containers.0.image             invalid (no "=")
//	=nginx:1.23                    invalid (empty key)
func ParseAssignment(token string) (Assignment, error) {
	key, value, found := strings.Cut(token, "=")
	if !found {
		return Assignment{}, &domain.ValidationError{
			Message: fmt.Sprintf("variable %q must be in the form key=value", token),
		}
	}

	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)
	if key == "" || value == "" {
		return Assignment{}, &domain.ValidationError{
			Message: fmt.Sprintf("variable %q must have a non-empty key and value", token),
		}
	}

	segments := strings.Split(key, ".")
	path := make([]any, 0, len(segments))
	for _, seg := range segments {
		if idx, err := strconv.Atoi(seg); err == nil && idx >= 0 {
			path = append(path, idx)
		} else {
			path = append(path, seg)
		}
	}

	return Assignment{Path: path, Value: parseScalar(value)}, nil
}

// ParseAssignments validates a full --variable flag list. Any malformed token
// fails the whole list, before a request is ever issued.
func ParseAssignments(tokens []string) ([]Assignment, error) {
	assignments := make([]Assignment, 0, len(tokens))
	for _, token := range tokens {
		a, err := ParseAssignment(token)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, nil
}

// ApplyAssignments merges assignments into doc in order, creating nested
// objects and lists along each path. A path given twice keeps the last value.
// The merged document is returned; doc may be nil.
func ApplyAssignments(doc map[string]any, assignments []Assignment) (map[string]any, error) {
	if doc == nil {
		doc = map[string]any{}
	}
	for _, a := range assignments {
		node, err := setPath(doc, a.Path, a.Value)
		if err != nil {
			return nil, err
		}
		doc = node.(map[string]any)
	}
	return doc, nil
}

// setPath writes value at path under node, allocating intermediate
// containers as needed, and returns the (possibly reallocated) node.
func setPath(node any, path []any, value any) (any, error) {
	switch key := path[0].(type) {
	case string:
		m, ok := node.(map[string]any)
		if !ok {
			return nil, &domain.ValidationError{
				Message: fmt.Sprintf("path segment %q addresses a value that is not an object", key),
			}
		}
		if len(path) == 1 {
			m[key] = value
			return m, nil
		}
		child, exists := m[key]
		if !exists || child == nil {
			child = emptyNodeFor(path[1])
		}
		child, err := setPath(child, path[1:], value)
		if err != nil {
			return nil, err
		}
		m[key] = child
		return m, nil

	case int:
		list, ok := node.([]any)
		if !ok {
			return nil, &domain.ValidationError{
				Message: fmt.Sprintf("path index %d addresses a value that is not a list", key),
			}
		}
		for key >= len(list) {
			list = append(list, nil)
		}
		if len(path) == 1 {
			list[key] = value
			return list, nil
		}
		child := list[key]
		if child == nil {
			child = emptyNodeFor(path[1])
		}
		child, err := setPath(child, path[1:], value)
		if err != nil {
			return nil, err
		}
		list[key] = child
		return list, nil

	default:
		return nil, &domain.ValidationError{Message: "unsupported path segment"}
	}
}

// emptyNodeFor picks the container type implied by the next path segment.
func emptyNodeFor(next any) any {
	if _, isIndex := next.(int); isIndex {
		return []any{}
	}
	return map[string]any{}
}

// parseScalar maps the literals true/false to booleans, everything else
// stays a string.
func parseScalar(value string) any {
	switch strings.ToLower(value) {
	case "true":
		return true
	case "false":
		return false
	}
	return value
}
