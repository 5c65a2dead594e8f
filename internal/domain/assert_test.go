package domain_test

import (
	"testing"

	"github.com/stackmoxie/looksy-cog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperators(t *testing.T) {
	assert.Equal(t, []domain.Operator{
		"be", "not be", "contain", "not contain", "be less than", "be greater than",
	}, domain.Operators)
}

func TestAssert(t *testing.T) {
	tests := []struct {
		name     string
		op       domain.Operator
		actual   any
		expected any
		valid    bool
		message  string
	}{
		{"be strings", domain.OperatorBe, "test", "test", true, "The field field was set to test, as expected"},
		{"be mismatch", domain.OperatorBe, "foo", "bar", false, "Expected field field to be bar, but it was actually foo"},
		{"be numeric string", domain.OperatorBe, 0.3, "0.30", true, "The field field was set to 0.3, as expected"},
		{"not be", domain.OperatorNotBe, "foo", "bar", true, "The field field was set to foo, as expected"},
		{"not be equal", domain.OperatorNotBe, "foo", "foo", false, "Expected field field not to be foo, but it was set to foo"},
		{"contain", domain.OperatorContain, "hello world", "world", true, "The field field was set to hello world, as expected"},
		{"contain missing", domain.OperatorContain, "hello", "world", false, "Expected field field to contain world, but it was actually hello"},
		{"not contain", domain.OperatorNotContain, "hello", "world", true, "The field field was set to hello, as expected"},
		{"not contain present", domain.OperatorNotContain, "hello world", "world", false, "Expected field field not to contain world, but it was set to hello world"},
		{"less than", domain.OperatorLessThan, 1, 2.5, true, "The field field was set to 1, as expected"},
		{"less than equal", domain.OperatorLessThan, 2.5, "2.5", false, "Expected field field to be less than 2.5, but it was actually 2.5"},
		{"greater than", domain.OperatorGreaterThan, "10", 2, true, "The field field was set to 10, as expected"},
		{"greater than smaller", domain.OperatorGreaterThan, 0.1, 0.2, false, "Expected field field to be greater than 0.2, but it was actually 0.1"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := domain.Assert(tc.op, tc.actual, tc.expected, "field")
			require.NoError(t, err)
			assert.Equal(t, tc.valid, res.Valid)
			assert.Equal(t, tc.message, res.Message())
		})
	}
}

func TestAssert_Errors(t *testing.T) {
	_, err := domain.Assert("be roughly", 1, 1, "field")
	assert.ErrorIs(t, err, domain.ErrUnknownOperator)

	_, err = domain.Assert(domain.OperatorLessThan, "abc", 1, "field")
	assert.ErrorIs(t, err, domain.ErrNotNumeric)

	_, err = domain.Assert(domain.OperatorGreaterThan, 1, nil, "field")
	assert.ErrorIs(t, err, domain.ErrNotNumeric)
}

func TestAssert_ResponseArgs(t *testing.T) {
	res, err := domain.Assert(domain.OperatorBe, "test", "test", "name")
	require.NoError(t, err)

	resp := domain.Pass(res.MessageFormat, res.MessageArgs)
	require.Len(t, resp.MessageArgs, 2)
	assert.Equal(t, "name", resp.MessageArgs[0].GetStringValue())
	assert.Equal(t, "test", resp.MessageArgs[1].GetStringValue())
}
