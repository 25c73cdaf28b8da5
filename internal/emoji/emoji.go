// internal/emoji/emoji.go
package emoji

import (
	"github.com/forPelevin/gomoji"
	"github.com/rivo/uniseg"
)

// Validator checks candidate status icons.
type Validator struct{}

// NewValidator creates a new Validator
func NewValidator() *Validator {
	return &Validator{}
}

// IsSingleEmoji reports whether s is exactly one emoji grapheme cluster.
// Multi-codepoint emoji (skin tones, ZWJ sequences, flags) count as one.
func (v *Validator) IsSingleEmoji(s string) bool {
	if s == "" {
		return false
	}
	if uniseg.GraphemeClusterCount(s) != 1 {
		return false
	}
	return gomoji.ContainsEmoji(s)
}
