package listreverse

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReverse(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected []any
	}{
		{name: "Token string", input: "A B C", expected: []any{"C", "B", "A"}},
		{name: "Empty sequence", input: []any{}, expected: []any{}},
		{name: "Single element", input: []string{"X"}, expected: []any{"X"}},
		{name: "Ints", input: []int{1, 2, 3, 4}, expected: []any{4, 3, 2, 1}},
		{name: "Scalar", input: 5, expected: []any{5}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := Reverse(tc.input)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.expected, result); diff != "" {
				t.Errorf("unexpected result (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReverseRejectsUnsupportedInput(t *testing.T) {
	_, err := Reverse(nil)
	assert.True(t, errors.Is(err, ErrNilInput))

	_, err = Reverse(map[string]string{})
	assert.True(t, errors.Is(err, ErrUnsupportedInput))
}

func TestReverseSlice(t *testing.T) {
	type notes []string

	assert.Nil(t, ReverseSlice([]int(nil)))
	assert.Equal(t, []int{}, ReverseSlice([]int{}))
	assert.Equal(t, notes{"g", "e", "c"}, ReverseSlice(notes{"c", "e", "g"}))

	in := []int{1, 2, 3}
	out := ReverseSlice(in)
	assert.Equal(t, []int{3, 2, 1}, out)
	assert.Equal(t, []int{1, 2, 3}, in)
}

func TestReverseTokens(t *testing.T) {
	assert.Equal(t, []string{"C", "B", "A"}, ReverseTokens(" A\tB\nC "))
	assert.Empty(t, ReverseTokens(""))
	assert.NotNil(t, ReverseTokens("   "))
}

func TestReverseTokensMatchesReverse(t *testing.T) {
	for _, input := range []string{"A B C", "  do\tre\u00a0mi \n", "", "X"} {
		seq, err := Reverse(input)
		require.NoError(t, err)

		tokens := ReverseTokens(input)
		require.Len(t, tokens, len(seq), input)
		for i := range tokens {
			assert.Equal(t, seq[i], tokens[i], input)
		}
	}
}

func TestReverseSlice_PropertyBased(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("involution", prop.ForAll(
		func(s []string) bool {
			return cmp.Equal(s, ReverseSlice(ReverseSlice(s)))
		},
		gen.SliceOf(gen.AlphaString()),
	))

	properties.Property("index mapping", prop.ForAll(
		func(s []int) bool {
			out := ReverseSlice(s)
			if len(out) != len(s) {
				return false
			}
			for i := range out {
				if out[i] != s[len(s)-1-i] {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.Int()),
	))

	properties.TestingRun(t)
}
