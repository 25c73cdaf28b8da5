// internal/i18n/translator.go
package i18n

import (
	"golang.org/x/text/language"
)

// Message keys for the predefined status catalog.
const (
	KeyMeeting     = "status.meeting"
	KeyCommuting   = "status.commuting"
	KeySickLeave   = "status.sick-leave"
	KeyVacationing = "status.vacationing"
	KeyRemoteWork  = "status.remote-work"
)

// supported lists the languages we carry catalogs for. The first entry is
// the fallback and must stay English.
var supported = []language.Tag{
	language.English,
	language.German,
	language.French,
	language.Spanish,
}

var catalogs = map[language.Tag]map[string]string{
	language.English: {
		KeyMeeting:     "In a meeting",
		KeyCommuting:   "Commuting",
		KeySickLeave:   "Out sick",
		KeyVacationing: "Vacationing",
		KeyRemoteWork:  "Working remotely",
	},
	language.German: {
		KeyMeeting:     "In einem Meeting",
		KeyCommuting:   "Unterwegs",
		KeySickLeave:   "Krank gemeldet",
		KeyVacationing: "Im Urlaub",
		KeyRemoteWork:  "Arbeitet remote",
	},
	language.French: {
		KeyMeeting:     "En réunion",
		KeyCommuting:   "En déplacement",
		KeySickLeave:   "En arrêt maladie",
		KeyVacationing: "En vacances",
		KeyRemoteWork:  "Travaille à distance",
	},
	language.Spanish: {
		KeyMeeting:     "En una reunión",
		KeyCommuting:   "De camino",
		KeySickLeave:   "De baja por enfermedad",
		KeyVacationing: "De vacaciones",
		KeyRemoteWork:  "Trabajando en remoto",
	},
}

// Translator resolves message keys into a requested language, falling
// back to English for unset or unsupported languages.
type Translator struct {
	matcher language.Matcher
}

// NewTranslator creates a new Translator
func NewTranslator() *Translator {
	return &Translator{matcher: language.NewMatcher(supported)}
}

// Translate returns the message for key in the closest supported language
// to lang. An empty lang means "unset" and resolves to English. Unknown
// keys come back as the key itself so missing entries are visible.
func (t *Translator) Translate(key, lang string) string {
	tag := language.English
	if lang != "" {
		if parsed, err := language.Parse(lang); err == nil {
			_, idx, _ := t.matcher.Match(parsed)
			tag = supported[idx]
		}
	}

	if msg, ok := catalogs[tag][key]; ok {
		return msg
	}
	if msg, ok := catalogs[language.English][key]; ok {
		return msg
	}
	return key
}
