package service

import (
	"status-service/internal/i18n"
	"status-service/internal/model"
)

// Predefined status ids. Membership tests match these exactly.
const (
	StatusIDMeeting     = "meeting"
	StatusIDCommuting   = "commuting"
	StatusIDSickLeave   = "sick-leave"
	StatusIDVacationing = "vacationing"
	StatusIDRemoteWork  = "remote-work"
)

type predefinedEntry struct {
	id         string
	icon       string
	messageKey string
	clearAt    *model.ClearAtPolicy
}

// The catalog is fixed and ordered; ListAll must keep this order.
// Clear policies are surfaced to clients as suggestions only and are
// never applied to a written record.
var predefinedCatalog = []predefinedEntry{
	{
		id:         StatusIDMeeting,
		icon:       "📅",
		messageKey: i18n.KeyMeeting,
		clearAt:    &model.ClearAtPolicy{Type: model.ClearAtTypePeriod, Time: 3600},
	},
	{
		id:         StatusIDCommuting,
		icon:       "🚌",
		messageKey: i18n.KeyCommuting,
		clearAt:    &model.ClearAtPolicy{Type: model.ClearAtTypePeriod, Time: 1800},
	},
	{
		id:         StatusIDSickLeave,
		icon:       "🤒",
		messageKey: i18n.KeySickLeave,
		clearAt:    &model.ClearAtPolicy{Type: model.ClearAtTypeEndOf, Time: "day"},
	},
	{
		id:         StatusIDVacationing,
		icon:       "🌴",
		messageKey: i18n.KeyVacationing,
		clearAt:    nil,
	},
	{
		id:         StatusIDRemoteWork,
		icon:       "🏡",
		messageKey: i18n.KeyRemoteWork,
		clearAt:    &model.ClearAtPolicy{Type: model.ClearAtTypeEndOf, Time: "day"},
	},
}

// PredefinedStatusService owns the fixed catalog of translatable status
// templates a user can pick instead of typing a custom message.
type PredefinedStatusService struct {
	translator *i18n.Translator
}

// NewPredefinedStatusService creates a new PredefinedStatusService
func NewPredefinedStatusService(translator *i18n.Translator) *PredefinedStatusService {
	return &PredefinedStatusService{translator: translator}
}

// ListAll returns the catalog in its fixed order with messages translated
// into lang. An empty lang falls back to the default language.
func (s *PredefinedStatusService) ListAll(lang string) []model.PredefinedStatus {
	statuses := make([]model.PredefinedStatus, len(predefinedCatalog))
	for i, entry := range predefinedCatalog {
		statuses[i] = model.PredefinedStatus{
			ID:      entry.id,
			Icon:    entry.icon,
			Message: s.translator.Translate(entry.messageKey, lang),
			ClearAt: entry.clearAt,
		}
	}
	return statuses
}

// IconForID returns the fixed icon for a catalog id, or nil for an
// unknown id. No translation is involved.
func (s *PredefinedStatusService) IconForID(id string) *string {
	for _, entry := range predefinedCatalog {
		if entry.id == id {
			icon := entry.icon
			return &icon
		}
	}
	return nil
}

// TranslatedMessageForID returns the message for a catalog id translated
// into lang, or nil for an unknown id.
func (s *PredefinedStatusService) TranslatedMessageForID(id, lang string) *string {
	for _, entry := range predefinedCatalog {
		if entry.id == id {
			msg := s.translator.Translate(entry.messageKey, lang)
			return &msg
		}
	}
	return nil
}

// IsKnownID reports whether id is one of the catalog ids, by exact match.
func (s *PredefinedStatusService) IsKnownID(id string) bool {
	for _, entry := range predefinedCatalog {
		if entry.id == id {
			return true
		}
	}
	return false
}
