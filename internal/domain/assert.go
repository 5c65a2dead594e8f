package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type Operator string

const (
	OperatorBe          Operator = "be"
	OperatorNotBe       Operator = "not be"
	OperatorContain     Operator = "contain"
	OperatorNotContain  Operator = "not contain"
	OperatorLessThan    Operator = "be less than"
	OperatorGreaterThan Operator = "be greater than"
)

// Operators lists every operator Assert understands, in the order they are
// offered to step authors.
var Operators = []Operator{
	OperatorBe,
	OperatorNotBe,
	OperatorContain,
	OperatorNotContain,
	OperatorLessThan,
	OperatorGreaterThan,
}

const AssertPassedFormat = "The %s field was set to %s, as expected"

var (
	ErrUnknownOperator = errors.New("unknown operator")
	ErrNotNumeric      = errors.New("value is not numeric")
)

// Assertion is the outcome of comparing a field's actual value against an
// expectation. MessageFormat and MessageArgs feed straight into a Response.
type Assertion struct {
	Valid         bool
	MessageFormat string
	MessageArgs   []any
}

func (a *Assertion) Message() string {
	return fmt.Sprintf(a.MessageFormat, a.MessageArgs...)
}

// Assert checks actual against expected using op. Values are compared by
// their display form, and numerically when both sides are numbers. The
// ordering operators fail with ErrNotNumeric on non-numeric input.
func Assert(op Operator, actual, expected any, field string) (*Assertion, error) {
	got, want := display(actual), display(expected)

	var valid bool
	var failFormat string
	switch op {
	case OperatorBe:
		valid = equal(actual, expected)
		failFormat = "Expected %s field to be %s, but it was actually %s"
	case OperatorNotBe:
		valid = !equal(actual, expected)
		failFormat = "Expected %s field not to be %s, but it was set to %s"
	case OperatorContain:
		valid = strings.Contains(got, want)
		failFormat = "Expected %s field to contain %s, but it was actually %s"
	case OperatorNotContain:
		valid = !strings.Contains(got, want)
		failFormat = "Expected %s field not to contain %s, but it was set to %s"
	case OperatorLessThan, OperatorGreaterThan:
		a, aok := number(actual)
		e, eok := number(expected)
		if !aok || !eok {
			return nil, fmt.Errorf("%s %s %s: %w", field, op, want, ErrNotNumeric)
		}
		if op == OperatorLessThan {
			valid = a < e
			failFormat = "Expected %s field to be less than %s, but it was actually %s"
		} else {
			valid = a > e
			failFormat = "Expected %s field to be greater than %s, but it was actually %s"
		}
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownOperator, op)
	}

	if valid {
		return &Assertion{Valid: true, MessageFormat: AssertPassedFormat, MessageArgs: []any{field, got}}, nil
	}
	return &Assertion{MessageFormat: failFormat, MessageArgs: []any{field, want, got}}, nil
}

func equal(actual, expected any) bool {
	a, aok := number(actual)
	e, eok := number(expected)
	if aok && eok {
		return a == e
	}
	return display(actual) == display(expected)
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	}
	return 0, false
}

func display(v any) string {
	switch n := v.(type) {
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	case nil:
		return ""
	}
	return fmt.Sprint(v)
}
