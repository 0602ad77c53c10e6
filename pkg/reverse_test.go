package listreverse

import (
	"bytes"
	"testing"

	"github.com/baditaflorin/l"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubNormalizer always yields the same sequence.
type stubNormalizer struct{ seq []any }

func (s stubNormalizer) Normalize(any) ([]any, error) { return s.seq, nil }

func TestNewDefaults(t *testing.T) {
	r, err := New()
	require.NoError(t, err)
	defer r.Close()

	actual, err := r.Reverse("A  B\tC")
	require.NoError(t, err)
	assert.Equal(t, []any{"C", "B", "A"}, actual)
}

func TestWithNormalizerType(t *testing.T) {
	r, err := New(WithSilentLogger(), WithNormalizerType(SplitSpace))
	require.NoError(t, err)

	actual, err := r.Reverse("A  B\tC")
	require.NoError(t, err)
	assert.Equal(t, []any{"B\tC", "A"}, actual)
}

func TestWithNormalizerTakesPrecedence(t *testing.T) {
	r, err := New(
		WithSilentLogger(),
		WithNormalizerType(SplitSpace),
		WithNormalizer(stubNormalizer{seq: []any{1, 2, 3}}),
	)
	require.NoError(t, err)

	actual, err := r.Reverse("ignored")
	require.NoError(t, err)
	assert.Equal(t, []any{3, 2, 1}, actual)
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	lg, err := l.NewStandardFactory().CreateLogger(l.Config{Output: &buf})
	require.NoError(t, err)

	r, err := New(WithLogger(lg))
	require.NoError(t, err)

	_, err = r.Reverse(map[int]int{})
	require.Error(t, err)
	require.NoError(t, r.Close())

	assert.Contains(t, buf.String(), "Normalization failed")
}

func TestReverseErrors(t *testing.T) {
	r, err := New(WithSilentLogger())
	require.NoError(t, err)

	_, err = r.Reverse(nil)
	assert.True(t, errors.Is(err, ErrNilInput))

	_, err = r.Reverse(func() {})
	assert.True(t, errors.Is(err, ErrUnsupportedInput))
}

func TestParseNormalizerType(t *testing.T) {
	typ, err := ParseNormalizerType("space")
	require.NoError(t, err)
	assert.Equal(t, SplitSpace, typ)

	_, err = ParseNormalizerType("tabs")
	assert.Error(t, err)
}
