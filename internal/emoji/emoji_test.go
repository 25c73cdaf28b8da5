package emoji

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSingleEmoji(t *testing.T) {
	v := NewValidator()

	valid := []string{
		"🚌",
		"📅",
		"🤒",
		"🌴",
		"🏡",
		"👍🏽",    // skin tone modifier, one grapheme
		"👩‍💻",   // ZWJ sequence, one grapheme
	}
	for _, s := range valid {
		assert.True(t, v.IsSingleEmoji(s), s)
	}

	invalid := []string{
		"",
		"a",
		"ab",
		"1",
		"🚌🚌", // two graphemes
		"🚌 ", // emoji plus trailing space
		"x🚌",
		"hello",
	}
	for _, s := range invalid {
		assert.False(t, v.IsSingleEmoji(s), s)
	}
}
