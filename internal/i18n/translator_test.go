package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslateDefaultLanguage(t *testing.T) {
	tr := NewTranslator()

	assert.Equal(t, "In a meeting", tr.Translate(KeyMeeting, ""))
	assert.Equal(t, "Commuting", tr.Translate(KeyCommuting, "en"))
	assert.Equal(t, "Working remotely", tr.Translate(KeyRemoteWork, "en-US"))
}

func TestTranslateSupportedLanguages(t *testing.T) {
	tr := NewTranslator()

	assert.Equal(t, "Unterwegs", tr.Translate(KeyCommuting, "de"))
	assert.Equal(t, "Unterwegs", tr.Translate(KeyCommuting, "de-AT"))
	assert.Equal(t, "En vacances", tr.Translate(KeyVacationing, "fr"))
	assert.Equal(t, "De vacaciones", tr.Translate(KeyVacationing, "es"))
}

func TestTranslateFallbacks(t *testing.T) {
	tr := NewTranslator()

	// Unsupported and garbage languages fall back to English.
	assert.Equal(t, "Out sick", tr.Translate(KeySickLeave, "pt"))
	assert.Equal(t, "Out sick", tr.Translate(KeySickLeave, "not-a-lang-!!"))

	// Unknown keys surface as themselves.
	assert.Equal(t, "status.unknown", tr.Translate("status.unknown", "en"))
}
