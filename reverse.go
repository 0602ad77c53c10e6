// Package listreverse reverses the order of elements in a sequence. A sequence
// can be given as a whitespace-delimited token string, a slice or array, or a
// single scalar which is treated as a one-element sequence:
//
//	Reverse("A B C")           // => [C B A]
//	ReverseSlice([]int{1, 2})  // => [2 1]
//	Reverse(5)                 // => [5]
//
// Every call returns a newly allocated slice; inputs are never modified.
package listreverse

import (
	"github.com/baditaflorin/go_list_reverse/internal/adapters/logger"
	"github.com/baditaflorin/go_list_reverse/internal/adapters/normalizer"
	"github.com/baditaflorin/go_list_reverse/internal/core/domain"
	"github.com/baditaflorin/go_list_reverse/internal/core/reverse"
	"golang.org/x/exp/slices"
)

// Errors reported for inputs that cannot be normalized.
var (
	ErrNilInput         = domain.ErrNilInput
	ErrUnsupportedInput = domain.ErrUnsupportedInput
)

var defaultReverser = reverse.NewReverser(logger.NewNopLogger(), normalizer.NewFieldsNormalizer())

// Reverse normalizes input and returns its elements in reverse order. Token
// strings are split on whitespace runs. Maps, channels, functions and nil
// values are rejected with ErrUnsupportedInput or ErrNilInput.
func Reverse(input any) ([]any, error) {
	return defaultReverser.Reverse(input)
}

// ReverseSlice returns a reversed copy of s, keeping its element type.
// A nil slice yields nil.
func ReverseSlice[S ~[]E, E any](s S) S {
	out := slices.Clone(s)
	slices.Reverse(out)
	return out
}

// ReverseTokens splits s on whitespace and returns the tokens in reverse order.
func ReverseTokens(s string) []string {
	// A string always normalizes into string tokens.
	seq, _ := defaultReverser.Reverse(s)
	tokens := make([]string, len(seq))
	for i, tok := range seq {
		tokens[i] = tok.(string)
	}
	return tokens
}
