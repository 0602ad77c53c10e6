package reverse

import (
	"fmt"

	"github.com/baditaflorin/go_list_reverse/internal/ports"
	"golang.org/x/exp/slices"
)

// Reverser normalizes its input and returns the elements in opposite order.
type Reverser struct {
	logger     ports.Logger
	normalizer ports.SequenceNormalizer
}

// NewReverser creates a new Reverser.
func NewReverser(logger ports.Logger, normalizer ports.SequenceNormalizer) *Reverser {
	return &Reverser{
		logger:     logger,
		normalizer: normalizer,
	}
}

// Reverse returns a freshly allocated copy of the normalized input in reverse
// order. Normalizer errors are returned unchanged.
func (r *Reverser) Reverse(input any) ([]any, error) {
	r.logger.Debug("Starting reverse", "input_type", fmt.Sprintf("%T", input))

	seq, err := r.normalizer.Normalize(input)
	if err != nil {
		r.logger.Error("Normalization failed", "input_type", fmt.Sprintf("%T", input), "error", err)
		return nil, err
	}

	// Never hand back the normalizer's slice: it may alias the caller's.
	out := make([]any, len(seq))
	copy(out, seq)
	slices.Reverse(out)

	r.logger.Debug("Reversed sequence", "length", len(out))
	return out, nil
}
