package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"status-service/internal/model"
)

// StatusUpdatesChannel carries one event per successful status mutation.
const StatusUpdatesChannel = "status:updates"

// Status event types published on StatusUpdatesChannel.
const (
	EventStatusUpdated = "STATUS_UPDATED"
	EventStatusRemoved = "STATUS_REMOVED"
)

// StatusMapper is the storage collaborator, one row per user id.
// Absence is signalled with gorm.ErrRecordNotFound.
type StatusMapper interface {
	FindByUserID(userID string) (*model.UserStatus, error)
	FindByUserIDs(userIDs []string) ([]model.UserStatus, error)
	FindAll(limit, offset *int) ([]model.UserStatus, error)
	InsertOrUpdate(status *model.UserStatus) (*model.UserStatus, error)
	Update(status *model.UserStatus) (*model.UserStatus, error)
	Delete(status *model.UserStatus) error
}

// Clock is the wall-clock collaborator.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the system wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// EmojiValidator checks candidate status icons.
type EmojiValidator interface {
	IsSingleEmoji(s string) bool
}

// StatusService owns the read/mutate lifecycle of user status records.
// Each mutating call is one load-validate-persist round trip; storage
// provides last-write-wins semantics across concurrent writers.
type StatusService struct {
	mapper     StatusMapper
	clock      Clock
	predefined *PredefinedStatusService
	emoji      EmojiValidator
	redis      *redis.Client
	logger     *zap.Logger
}

// NewStatusService creates a new StatusService. The redis client is
// optional; without it status events are simply not broadcast.
func NewStatusService(
	mapper StatusMapper,
	clock Clock,
	predefined *PredefinedStatusService,
	emoji EmojiValidator,
	redisClient *redis.Client,
	logger *zap.Logger,
) *StatusService {
	return &StatusService{
		mapper:     mapper,
		clock:      clock,
		predefined: predefined,
		emoji:      emoji,
		redis:      redisClient,
		logger:     logger,
	}
}

// FindAll returns stored statuses with pass-through pagination.
func (s *StatusService) FindAll(ctx context.Context, limit, offset *int) ([]model.UserStatus, error) {
	return s.mapper.FindAll(limit, offset)
}

// GetByUserID returns the stored status for a user or ErrNotFound.
func (s *StatusService) GetByUserID(ctx context.Context, userID string) (*model.UserStatus, error) {
	status, err := s.mapper.FindByUserID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, userID)
	}
	if err != nil {
		return nil, err
	}
	return status, nil
}

// FindByUserIDs returns the stored statuses for the given users.
// Users without a record are absent from the result.
func (s *StatusService) FindByUserIDs(ctx context.Context, userIDs []string) ([]model.UserStatus, error) {
	return s.mapper.FindByUserIDs(userIDs)
}

// SetStatus overwrites a user's presence. statusTimestamp defaults to now
// when nil. Message fields are left untouched. A record is created on
// first write with nothing but the user id pre-populated.
func (s *StatusService) SetStatus(ctx context.Context, userID, status string, statusTimestamp *int64, isUserDefined bool) (*model.UserStatus, error) {
	userStatus, err := s.loadOrNew(userID, model.NewUserStatus)
	if err != nil {
		return nil, err
	}

	if !model.PresenceStatus(status).Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatusType, status)
	}

	timestamp := s.clock.Now().Unix()
	if statusTimestamp != nil {
		timestamp = *statusTimestamp
	}

	userStatus.Status = model.PresenceStatus(status)
	userStatus.StatusTimestamp = timestamp
	userStatus.IsUserDefined = isUserDefined

	updated, err := s.mapper.InsertOrUpdate(userStatus)
	if err != nil {
		return nil, err
	}
	s.broadcast(ctx, EventStatusUpdated, updated)
	return updated, nil
}

// Heartbeat refreshes automatic presence for an active client connection.
// Only online and idle are valid heartbeat states. An explicit
// user-defined presence other than offline is never clobbered; the stored
// record is returned unchanged instead.
func (s *StatusService) Heartbeat(ctx context.Context, userID, status string) (*model.UserStatus, error) {
	if status != string(model.StatusOnline) && status != string(model.StatusIdle) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatusType, status)
	}

	current, err := s.mapper.FindByUserID(userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if current != nil && current.IsUserDefined && current.Status != model.StatusOffline {
		return current, nil
	}

	return s.SetStatus(ctx, userID, status, nil, false)
}

// SetPredefinedMessage points a user's message at a catalog template,
// nulling any custom message fields in the same write.
func (s *StatusService) SetPredefinedMessage(ctx context.Context, userID, messageID string, clearAt *int64) (*model.UserStatus, error) {
	userStatus, err := s.loadOrNew(userID, model.NewOfflineUserStatus)
	if err != nil {
		return nil, err
	}

	if !s.predefined.IsKnownID(messageID) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMessageID, messageID)
	}
	if err := s.validateClearAt(clearAt); err != nil {
		return nil, err
	}

	userStatus.MessageID = &messageID
	userStatus.CustomIcon = nil
	userStatus.CustomMessage = nil
	userStatus.ClearAt = clearAt

	updated, err := s.mapper.InsertOrUpdate(userStatus)
	if err != nil {
		return nil, err
	}
	s.broadcast(ctx, EventStatusUpdated, updated)
	return updated, nil
}

// SetCustomMessage stores a free-text message with an optional icon,
// nulling any predefined template reference in the same write. Checks run
// in order icon, length, clearAt; the first failure aborts the write.
func (s *StatusService) SetCustomMessage(ctx context.Context, userID string, statusIcon *string, message string, clearAt *int64) (*model.UserStatus, error) {
	userStatus, err := s.loadOrNew(userID, model.NewOfflineUserStatus)
	if err != nil {
		return nil, err
	}

	if statusIcon != nil && !s.emoji.IsSingleEmoji(*statusIcon) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatusIcon, *statusIcon)
	}
	if utf8.RuneCountInString(message) > model.MaxMessageLength {
		return nil, fmt.Errorf("%w (%d characters)", ErrMessageTooLong, model.MaxMessageLength)
	}
	if err := s.validateClearAt(clearAt); err != nil {
		return nil, err
	}

	userStatus.MessageID = nil
	userStatus.CustomIcon = statusIcon
	userStatus.CustomMessage = &message
	userStatus.ClearAt = clearAt

	updated, err := s.mapper.InsertOrUpdate(userStatus)
	if err != nil {
		return nil, err
	}
	s.broadcast(ctx, EventStatusUpdated, updated)
	return updated, nil
}

// ClearStatus resets presence to canonical offline. Returns false when the
// user has no record; absence is a legitimate no-op for cleanup calls.
func (s *StatusService) ClearStatus(ctx context.Context, userID string) (bool, error) {
	userStatus, err := s.mapper.FindByUserID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	userStatus.Status = model.StatusOffline
	userStatus.StatusTimestamp = 0
	userStatus.IsUserDefined = false

	updated, err := s.mapper.Update(userStatus)
	if err != nil {
		return false, err
	}
	s.broadcast(ctx, EventStatusUpdated, updated)
	return true, nil
}

// ClearMessage nulls all four message fields and leaves presence
// untouched. Same absence semantics as ClearStatus.
func (s *StatusService) ClearMessage(ctx context.Context, userID string) (bool, error) {
	userStatus, err := s.mapper.FindByUserID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	userStatus.MessageID = nil
	userStatus.CustomMessage = nil
	userStatus.CustomIcon = nil
	userStatus.ClearAt = nil

	updated, err := s.mapper.Update(userStatus)
	if err != nil {
		return false, err
	}
	s.broadcast(ctx, EventStatusUpdated, updated)
	return true, nil
}

// Remove deletes the status row entirely. Same absence semantics as
// ClearStatus.
func (s *StatusService) Remove(ctx context.Context, userID string) (bool, error) {
	userStatus, err := s.mapper.FindByUserID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := s.mapper.Delete(userStatus); err != nil {
		return false, err
	}
	s.broadcastRemoved(ctx, userID)
	return true, nil
}

func (s *StatusService) loadOrNew(userID string, fresh func(string) *model.UserStatus) (*model.UserStatus, error) {
	userStatus, err := s.mapper.FindByUserID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fresh(userID), nil
	}
	if err != nil {
		return nil, err
	}
	return userStatus, nil
}

func (s *StatusService) validateClearAt(clearAt *int64) error {
	if clearAt != nil && *clearAt <= s.clock.Now().Unix() {
		return fmt.Errorf("%w: %d", ErrInvalidClearAt, *clearAt)
	}
	return nil
}

func (s *StatusService) broadcast(ctx context.Context, eventType string, status *model.UserStatus) {
	if s.redis == nil {
		return
	}

	// Watchers get the third-party view of presence.
	visible := status.Status
	if visible == model.StatusInvisible {
		visible = model.StatusOffline
	}

	data, err := json.Marshal(map[string]interface{}{
		"type":   eventType,
		"userId": status.UserID,
		"status": visible,
	})
	if err != nil {
		s.logger.Error("failed to marshal status event", zap.Error(err))
		return
	}

	if err := s.redis.Publish(ctx, StatusUpdatesChannel, data).Err(); err != nil {
		s.logger.Error("failed to broadcast status event", zap.Error(err))
	}
}

func (s *StatusService) broadcastRemoved(ctx context.Context, userID string) {
	if s.redis == nil {
		return
	}

	data, err := json.Marshal(map[string]interface{}{
		"type":   EventStatusRemoved,
		"userId": userID,
	})
	if err != nil {
		s.logger.Error("failed to marshal status event", zap.Error(err))
		return
	}

	if err := s.redis.Publish(ctx, StatusUpdatesChannel, data).Err(); err != nil {
		s.logger.Error("failed to broadcast status event", zap.Error(err))
	}
}
