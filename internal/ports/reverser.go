package ports

// SequenceReverser defines the interface for reversing a normalized sequence.
type SequenceReverser interface {
	Reverse(input any) ([]any, error)
}
