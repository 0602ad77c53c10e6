package ports

// SequenceNormalizer coerces a token string, an ordered collection or a
// scalar into an ordered sequence.
type SequenceNormalizer interface {
	Normalize(input any) ([]any, error)
}
