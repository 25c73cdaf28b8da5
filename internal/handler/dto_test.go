package handler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"status-service/internal/emoji"
	"status-service/internal/i18n"
	"status-service/internal/model"
	"status-service/internal/service"
)

type memoryMapper struct {
	rows map[string]model.UserStatus
}

func (m *memoryMapper) FindByUserID(userID string) (*model.UserStatus, error) {
	row, ok := m.rows[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (m *memoryMapper) FindByUserIDs(userIDs []string) ([]model.UserStatus, error) {
	var result []model.UserStatus
	for _, id := range userIDs {
		if row, ok := m.rows[id]; ok {
			result = append(result, row)
		}
	}
	return result, nil
}

func (m *memoryMapper) FindAll(limit, offset *int) ([]model.UserStatus, error) {
	var result []model.UserStatus
	for _, row := range m.rows {
		result = append(result, row)
	}
	return result, nil
}

func (m *memoryMapper) InsertOrUpdate(status *model.UserStatus) (*model.UserStatus, error) {
	m.rows[status.UserID] = *status
	return status, nil
}

func (m *memoryMapper) Update(status *model.UserStatus) (*model.UserStatus, error) {
	m.rows[status.UserID] = *status
	return status, nil
}

func (m *memoryMapper) Delete(status *model.UserStatus) error {
	delete(m.rows, status.UserID)
	return nil
}

type testClock struct{}

func (testClock) Now() time.Time { return time.Unix(1700000000, 0) }

func newProjectionFixture() (*service.StatusService, *service.PredefinedStatusService) {
	predefined := service.NewPredefinedStatusService(i18n.NewTranslator())
	svc := service.NewStatusService(
		&memoryMapper{rows: make(map[string]model.UserStatus)},
		testClock{},
		predefined,
		emoji.NewValidator(),
		nil,
		zap.NewNop(),
	)
	return svc, predefined
}

func strPtr(s string) *string { return &s }

func TestPublicProjectionRedactsInvisible(t *testing.T) {
	_, predefined := newProjectionFixture()

	status := &model.UserStatus{
		UserID:        "alice",
		Status:        model.StatusInvisible,
		IsUserDefined: true,
	}

	public := ToPublicStatusResponse(status, predefined, "")
	assert.Equal(t, "offline", public.Status)

	private := ToPrivateStatusResponse(status, predefined, "")
	assert.Equal(t, "invisible", private.Status)
	assert.True(t, private.StatusIsUserDefined)
}

func TestPublicProjectionPassesOtherStatusesThrough(t *testing.T) {
	_, predefined := newProjectionFixture()

	for _, s := range []model.PresenceStatus{model.StatusOnline, model.StatusIdle, model.StatusDND, model.StatusOffline} {
		public := ToPublicStatusResponse(&model.UserStatus{UserID: "alice", Status: s}, predefined, "")
		assert.Equal(t, string(s), public.Status)
	}
}

func TestPublicProjectionResolvesPredefinedMessage(t *testing.T) {
	_, predefined := newProjectionFixture()

	status := &model.UserStatus{
		UserID:    "bob",
		Status:    model.StatusOnline,
		MessageID: strPtr("sick-leave"),
		// Leftover custom fields must be ignored when a template is set.
		CustomIcon:    strPtr("🚀"),
		CustomMessage: strPtr("stale"),
	}

	public := ToPublicStatusResponse(status, predefined, "")
	require.NotNil(t, public.Message)
	assert.Equal(t, "Out sick", *public.Message)
	require.NotNil(t, public.Icon)
	assert.Equal(t, "🤒", *public.Icon)

	// The projection must agree with the catalog lookups for any language.
	for _, lang := range []string{"", "en", "de", "fr", "es", "xx"} {
		public := ToPublicStatusResponse(status, predefined, lang)
		assert.Equal(t, predefined.TranslatedMessageForID("sick-leave", lang), public.Message, lang)
		assert.Equal(t, predefined.IconForID("sick-leave"), public.Icon, lang)
	}
}

func TestPublicProjectionUsesCustomFieldsVerbatim(t *testing.T) {
	_, predefined := newProjectionFixture()

	clearAt := int64(1700003600)
	status := &model.UserStatus{
		UserID:        "carol",
		Status:        model.StatusDND,
		CustomIcon:    strPtr("🚀"),
		CustomMessage: strPtr("shipping"),
		ClearAt:       &clearAt,
	}

	public := ToPublicStatusResponse(status, predefined, "de")
	require.NotNil(t, public.Message)
	assert.Equal(t, "shipping", *public.Message)
	require.NotNil(t, public.Icon)
	assert.Equal(t, "🚀", *public.Icon)
	require.NotNil(t, public.ClearAt)
	assert.Equal(t, clearAt, *public.ClearAt)
}

func TestPrivateProjectionExposesProvenance(t *testing.T) {
	_, predefined := newProjectionFixture()

	withTemplate := &model.UserStatus{
		UserID:    "dave",
		Status:    model.StatusOnline,
		MessageID: strPtr("meeting"),
	}
	private := ToPrivateStatusResponse(withTemplate, predefined, "")
	assert.True(t, private.MessageIsPredefined)
	require.NotNil(t, private.MessagePredefinedMessageID)
	assert.Equal(t, "meeting", *private.MessagePredefinedMessageID)

	withCustom := &model.UserStatus{
		UserID:        "dave",
		Status:        model.StatusOnline,
		CustomMessage: strPtr("hi"),
	}
	private = ToPrivateStatusResponse(withCustom, predefined, "")
	assert.False(t, private.MessageIsPredefined)
	assert.Nil(t, private.MessagePredefinedMessageID)
}

func TestProjectionEndToEnd(t *testing.T) {
	svc, predefined := newProjectionFixture()
	ctx := context.Background()

	_, err := svc.SetStatus(ctx, "u", "dnd", nil, true)
	require.NoError(t, err)
	stored, err := svc.SetPredefinedMessage(ctx, "u", "commuting", nil)
	require.NoError(t, err)

	public := ToPublicStatusResponse(stored, predefined, "")
	assert.Equal(t, "u", public.UserID)
	require.NotNil(t, public.Message)
	assert.Equal(t, "Commuting", *public.Message)
	require.NotNil(t, public.Icon)
	assert.Equal(t, "🚌", *public.Icon)
	assert.Nil(t, public.ClearAt)
	assert.Equal(t, "dnd", public.Status)
}
