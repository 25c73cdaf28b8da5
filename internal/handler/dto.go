// internal/handler/dto.go
package handler

import (
	"status-service/internal/model"
	"status-service/internal/service"
)

// PublicStatusResponse is the status view shown to other users.
// Message and icon resolve the predefined template when one is set;
// invisible presence is presented as offline.
type PublicStatusResponse struct {
	UserID  string  `json:"userId"`
	Message *string `json:"message"`
	Icon    *string `json:"icon"`
	ClearAt *int64  `json:"clearAt"`
	Status  string  `json:"status"`
} // @name PublicStatusResponse

// PrivateStatusResponse is the status view a user gets of themselves:
// the true presence value plus how the record came to be.
type PrivateStatusResponse struct {
	PublicStatusResponse
	StatusIsUserDefined        bool    `json:"statusIsUserDefined"`
	MessageIsPredefined        bool    `json:"messageIsPredefined"`
	MessagePredefinedMessageID *string `json:"messagePredefinedMessageId"`
} // @name PrivateStatusResponse

// ToPublicStatusResponse projects a stored status into the view shown to
// third parties, resolving the message for the caller's language.
func ToPublicStatusResponse(status *model.UserStatus, predefined *service.PredefinedStatusService, lang string) PublicStatusResponse {
	icon := status.CustomIcon
	message := status.CustomMessage
	if status.MessageID != nil {
		// A stored template reference wins over any leftover custom
		// fields, translated per request.
		icon = predefined.IconForID(*status.MessageID)
		message = predefined.TranslatedMessageForID(*status.MessageID, lang)
	}

	visibleStatus := status.Status
	if visibleStatus == model.StatusInvisible {
		visibleStatus = model.StatusOffline
	}

	return PublicStatusResponse{
		UserID:  status.UserID,
		Message: message,
		Icon:    icon,
		ClearAt: status.ClearAt,
		Status:  string(visibleStatus),
	}
}

// ToPublicStatusResponses projects a list of stored statuses.
func ToPublicStatusResponses(statuses []model.UserStatus, predefined *service.PredefinedStatusService, lang string) []PublicStatusResponse {
	responses := make([]PublicStatusResponse, len(statuses))
	for i := range statuses {
		responses[i] = ToPublicStatusResponse(&statuses[i], predefined, lang)
	}
	return responses
}

// ToPrivateStatusResponse projects a stored status into the owner's view:
// invisible is not redacted and the record's provenance is exposed.
func ToPrivateStatusResponse(status *model.UserStatus, predefined *service.PredefinedStatusService, lang string) PrivateStatusResponse {
	resp := PrivateStatusResponse{
		PublicStatusResponse:       ToPublicStatusResponse(status, predefined, lang),
		StatusIsUserDefined:        status.IsUserDefined,
		MessageIsPredefined:        status.MessageID != nil,
		MessagePredefinedMessageID: status.MessageID,
	}
	resp.Status = string(status.Status)
	return resp
}
