// DoNew Mentoring API - REST backend for the DoNew mentoring platform
// Copyright 2026 DoNew
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/go-donew/mentoring-api

package database

import (
	"strings"

	"github.com/goccy/go-json"
)

// Op is a filter comparison operator.
type Op string

// Filter operators. Ordering operators apply to numbers only; includes
// applies to arrays (membership) and object fields (key presence).
const (
	OpEqual          Op = "=="
	OpNotEqual       Op = "!="
	OpLessThan       Op = "<"
	OpLessOrEqual    Op = "<="
	OpGreaterThan    Op = ">"
	OpGreaterOrEqual Op = ">="
	OpIncludes       Op = "includes"
)

// Filter is a single predicate over a document field. Field supports
// dotted paths into nested objects, so membership in the denormalized
// index maps can be tested with an equality filter such as
// `__participants.<userID> == true`.
type Filter struct {
	Field string
	Op    Op
	Value any
}

// Equals builds an equality filter.
func Equals(field string, value any) Filter {
	return Filter{Field: field, Op: OpEqual, Value: value}
}

// Includes builds a membership filter.
func Includes(field string, value any) Filter {
	return Filter{Field: field, Op: OpIncludes, Value: value}
}

// matchesAll reports whether a raw JSON document satisfies every
// filter. Documents that fail to decode never match.
func matchesAll(raw []byte, filters []Filter) bool {
	if len(filters) == 0 {
		return true
	}

	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return false
	}

	for _, filter := range filters {
		if !matches(doc, filter) {
			return false
		}
	}
	return true
}

func matches(doc map[string]any, filter Filter) bool {
	value, ok := lookupPath(doc, filter.Field)

	switch filter.Op {
	case OpEqual:
		return ok && equalValues(value, filter.Value)
	case OpNotEqual:
		// An absent field is not equal to anything.
		return !ok || !equalValues(value, filter.Value)
	case OpLessThan, OpLessOrEqual, OpGreaterThan, OpGreaterOrEqual:
		if !ok {
			return false
		}
		left, leftOK := asNumber(value)
		right, rightOK := asNumber(filter.Value)
		if !leftOK || !rightOK {
			return false
		}
		switch filter.Op {
		case OpLessThan:
			return left < right
		case OpLessOrEqual:
			return left <= right
		case OpGreaterThan:
			return left > right
		default:
			return left >= right
		}
	case OpIncludes:
		if !ok {
			return false
		}
		switch container := value.(type) {
		case []any:
			for _, element := range container {
				if equalValues(element, filter.Value) {
					return true
				}
			}
			return false
		case map[string]any:
			key, isString := filter.Value.(string)
			if !isString {
				return false
			}
			_, present := container[key]
			return present
		default:
			return false
		}
	default:
		return false
	}
}

// lookupPath resolves a dotted path against a decoded JSON document.
func lookupPath(doc map[string]any, path string) (any, bool) {
	parts := strings.Split(path, ".")
	var current any = doc
	for _, part := range parts {
		object, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = object[part]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// equalValues compares two JSON-ish values. Numbers compare across Go
// numeric types since decoded documents carry float64 while callers
// pass ints.
func equalValues(left, right any) bool {
	leftNum, leftOK := asNumber(left)
	rightNum, rightOK := asNumber(right)
	if leftOK && rightOK {
		return leftNum == rightNum
	}
	return left == right
}

func asNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}
