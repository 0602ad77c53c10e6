package normalizer

import (
	"strings"

	"github.com/baditaflorin/go_list_reverse/internal/ports"
)

// SpaceNormalizer splits token strings on the single space character only.
// Tabs and newlines stay inside tokens; empty tokens from repeated spaces are dropped.
type SpaceNormalizer struct{}

// NewSpaceNormalizer creates a normalizer that splits on ' '.
func NewSpaceNormalizer() ports.SequenceNormalizer {
	return &SpaceNormalizer{}
}

// Normalize converts input into an ordered sequence.
func (n *SpaceNormalizer) Normalize(input any) ([]any, error) {
	return normalize(input, splitSpaces)
}

func splitSpaces(s string) []string {
	parts := strings.Split(s, " ")
	tokens := parts[:0]
	for _, p := range parts {
		if p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}
