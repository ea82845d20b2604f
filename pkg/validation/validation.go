// Package validation provides a small composable rule pipeline for domain
// objects. A validator is an ordered list of rules; rules can be grouped into
// stop-on-first-failure chains and chains can be made dependent on another
// chain passing. Rules may consult storage, so every check takes a context and
// can fail with an infrastructure error distinct from a rule violation.
package validation

import (
	"context"
	"fmt"
	"strings"
)

// Violation is a single failed rule, reported against a named field.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error carries the ordered, non-empty set of violations found by a validator.
type Error struct {
	Violations []Violation
}

func (e *Error) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = fmt.Sprintf("%s: %s", v.Field, v.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Rule checks one aspect of a value and returns the violations it found.
// A non-nil error means the check itself could not be performed (e.g. a
// storage lookup failed) and aborts the whole validation.
type Rule[T any] interface {
	Check(ctx context.Context, value T) ([]Violation, error)
}

// RuleFunc adapts a function to the Rule interface.
type RuleFunc[T any] func(ctx context.Context, value T) ([]Violation, error)

func (f RuleFunc[T]) Check(ctx context.Context, value T) ([]Violation, error) {
	return f(ctx, value)
}

// Field builds a rule from a predicate. When the predicate reports false, the
// rule yields one violation against the named field with the given message.
func Field[T any](field string, ok func(ctx context.Context, value T) (bool, error), message func(value T) string) Rule[T] {
	return RuleFunc[T](func(ctx context.Context, value T) ([]Violation, error) {
		passed, err := ok(ctx, value)
		if err != nil {
			return nil, err
		}
		if passed {
			return nil, nil
		}
		return []Violation{{Field: field, Message: message(value)}}, nil
	})
}

// Group evaluates rules in order and stops at the first one that yields a
// violation. Only that rule's violations are reported.
func Group[T any](rules ...Rule[T]) Rule[T] {
	return RuleFunc[T](func(ctx context.Context, value T) ([]Violation, error) {
		for _, r := range rules {
			violations, err := r.Check(ctx, value)
			if err != nil {
				return nil, err
			}
			if len(violations) > 0 {
				return violations, nil
			}
		}
		return nil, nil
	})
}

// Dependent evaluates guard first and runs the remaining rules only when the
// guard found no violations. The guard's violations are reported either way.
func Dependent[T any](guard Rule[T], then ...Rule[T]) Rule[T] {
	return RuleFunc[T](func(ctx context.Context, value T) ([]Violation, error) {
		violations, err := guard.Check(ctx, value)
		if err != nil {
			return nil, err
		}
		if len(violations) > 0 {
			return violations, nil
		}
		return Group(then...).Check(ctx, value)
	})
}

// Validator is an ordered list of independent top-level rules.
type Validator[T any] struct {
	rules []Rule[T]
}

// New builds a validator from the given rules. Rules are evaluated in order
// and every top-level rule runs regardless of earlier failures.
func New[T any](rules ...Rule[T]) *Validator[T] {
	return &Validator[T]{rules: rules}
}

// Validate runs all rules against value. It returns nil when the value is
// valid, an *Error collecting every violation found, or the infrastructure
// error that prevented a rule from being checked.
func (v *Validator[T]) Validate(ctx context.Context, value T) error {
	var collected []Violation
	for _, r := range v.rules {
		violations, err := r.Check(ctx, value)
		if err != nil {
			return err
		}
		collected = append(collected, violations...)
	}
	if len(collected) > 0 {
		return &Error{Violations: collected}
	}
	return nil
}
