package normalizer

import (
	"fmt"

	"github.com/baditaflorin/go_list_reverse/internal/ports"
	"github.com/pkg/errors"
)

// NormalizerType selects a splitting strategy.
type NormalizerType int

const (
	// FieldsNormalizerType splits on runs of any whitespace.
	FieldsNormalizerType NormalizerType = iota
	// SpaceNormalizerType splits on ' ' only.
	SpaceNormalizerType
)

// String returns the name used on the command line.
func (t NormalizerType) String() string {
	switch t {
	case FieldsNormalizerType:
		return "fields"
	case SpaceNormalizerType:
		return "space"
	default:
		return fmt.Sprintf("NormalizerType(%d)", int(t))
	}
}

// ParseNormalizerType maps a command-line name back to its type.
func ParseNormalizerType(name string) (NormalizerType, error) {
	switch name {
	case "", "fields":
		return FieldsNormalizerType, nil
	case "space":
		return SpaceNormalizerType, nil
	default:
		return FieldsNormalizerType, errors.Errorf("unknown split mode %q (want 'fields' or 'space')", name)
	}
}

// NormalizerFactory creates normalizers by type.
type NormalizerFactory struct{}

// NewNormalizerFactory creates a new normalizer factory.
func NewNormalizerFactory() *NormalizerFactory {
	return &NormalizerFactory{}
}

// CreateNormalizer creates a normalizer of the specified type. Unknown types
// fall back to the fields normalizer.
func (f *NormalizerFactory) CreateNormalizer(normalizerType NormalizerType) ports.SequenceNormalizer {
	switch normalizerType {
	case SpaceNormalizerType:
		return NewSpaceNormalizer()
	default:
		return NewFieldsNormalizer()
	}
}
