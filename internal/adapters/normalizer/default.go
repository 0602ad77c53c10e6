package normalizer

import (
	"reflect"
	"strings"

	"github.com/baditaflorin/go_list_reverse/internal/core/domain"
	"github.com/baditaflorin/go_list_reverse/internal/ports"
	"github.com/pkg/errors"
)

// splitFunc breaks a token string into tokens, left to right.
type splitFunc func(string) []string

// FieldsNormalizer implements the default normalization strategy. Token strings
// are split on runs of Unicode whitespace.
type FieldsNormalizer struct{}

// NewFieldsNormalizer creates the default normalizer.
func NewFieldsNormalizer() ports.SequenceNormalizer {
	return &FieldsNormalizer{}
}

// Normalize converts input into an ordered sequence.
func (n *FieldsNormalizer) Normalize(input any) ([]any, error) {
	return normalize(input, strings.Fields)
}

// normalize holds the coercion rules shared by every normalizer; only the
// token splitting differs between them.
func normalize(input any, split splitFunc) ([]any, error) {
	switch v := input.(type) {
	case nil:
		return nil, domain.ErrNilInput
	case string:
		return toAny(split(v)), nil
	case []any:
		return v, nil
	case []string:
		return toAny(v), nil
	}

	rv := reflect.ValueOf(input)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		seq := make([]any, rv.Len())
		for i := range seq {
			seq[i] = rv.Index(i).Interface()
		}
		return seq, nil
	case reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return nil, errors.Wrapf(domain.ErrUnsupportedInput, "cannot normalize %T", input)
	case reflect.Pointer:
		if rv.IsNil() {
			return nil, errors.Wrapf(domain.ErrNilInput, "nil %T", input)
		}
	}

	// Anything else is a scalar.
	return []any{input}, nil
}

func toAny(tokens []string) []any {
	seq := make([]any, len(tokens))
	for i, tok := range tokens {
		seq[i] = tok
	}
	return seq
}
