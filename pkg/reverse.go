package listreverse

import (
	"github.com/baditaflorin/go_list_reverse/internal/adapters/logger"
	"github.com/baditaflorin/go_list_reverse/internal/adapters/normalizer"
	"github.com/baditaflorin/go_list_reverse/internal/core/domain"
	"github.com/baditaflorin/go_list_reverse/internal/core/reverse"
	"github.com/baditaflorin/go_list_reverse/internal/ports"
	"github.com/baditaflorin/l"
)

// Errors a normalizer may report for inputs it cannot turn into a sequence.
var (
	ErrNilInput         = domain.ErrNilInput
	ErrUnsupportedInput = domain.ErrUnsupportedInput
)

// NormalizerType selects how token strings are split.
type NormalizerType = normalizer.NormalizerType

const (
	// SplitFields splits token strings on runs of any whitespace.
	SplitFields = normalizer.FieldsNormalizerType
	// SplitSpace splits token strings on ' ' only.
	SplitSpace = normalizer.SpaceNormalizerType
)

// ParseNormalizerType maps "fields" or "space" to a NormalizerType.
func ParseNormalizerType(name string) (NormalizerType, error) {
	return normalizer.ParseNormalizerType(name)
}

// Reverser reverses token strings, slices, arrays and scalars.
type Reverser struct {
	reverser ports.SequenceReverser
	logger   ports.Logger
}

// Option defines a functional option for configuring a Reverser.
type Option func(*reverserConfig)

type reverserConfig struct {
	Logger         ports.Logger
	Normalizer     ports.SequenceNormalizer
	NormalizerType NormalizerType
}

// WithLogger sets a custom l.Logger.
func WithLogger(lg l.Logger) Option {
	return func(cfg *reverserConfig) {
		cfg.Logger = logger.FromExisting(lg)
	}
}

// WithPortsLogger sets a logger implementing ports.Logger directly.
func WithPortsLogger(lg ports.Logger) Option {
	return func(cfg *reverserConfig) {
		cfg.Logger = lg
	}
}

// WithSilentLogger disables logging.
func WithSilentLogger() Option {
	return WithPortsLogger(logger.NewNopLogger())
}

// WithNormalizer sets a custom normalizer. It takes precedence over
// WithNormalizerType.
func WithNormalizer(n ports.SequenceNormalizer) Option {
	return func(cfg *reverserConfig) {
		cfg.Normalizer = n
	}
}

// WithNormalizerType picks one of the built-in normalizers.
func WithNormalizerType(t NormalizerType) Option {
	return func(cfg *reverserConfig) {
		cfg.NormalizerType = t
	}
}

// New creates a new Reverser. Without options it logs through a standard
// l logger and splits token strings on whitespace runs.
func New(opts ...Option) (*Reverser, error) {
	config := &reverserConfig{
		NormalizerType: SplitFields,
	}
	for _, opt := range opts {
		opt(config)
	}

	if config.Logger == nil {
		var err error
		config.Logger, err = logger.NewStdLogger()
		if err != nil {
			return nil, err
		}
	}

	if config.Normalizer == nil {
		config.Normalizer = normalizer.NewNormalizerFactory().CreateNormalizer(config.NormalizerType)
	}

	return &Reverser{
		reverser: reverse.NewReverser(config.Logger, config.Normalizer),
		logger:   config.Logger,
	}, nil
}

// Reverse returns a new slice holding the normalized input in reverse order.
//
//	Reverse("A B C")      // => [C B A]
//	Reverse([]int{1, 2})  // => [2 1]
//	Reverse(5)            // => [5]
func (r *Reverser) Reverse(input any) ([]any, error) {
	return r.reverser.Reverse(input)
}

// Close releases the logger.
func (r *Reverser) Close() error {
	return r.logger.Close()
}
