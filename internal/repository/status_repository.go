package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"status-service/internal/model"
)

// StatusRepository handles user status data access
type StatusRepository struct {
	db *gorm.DB
}

// NewStatusRepository creates a new StatusRepository
func NewStatusRepository(db *gorm.DB) *StatusRepository {
	return &StatusRepository{db: db}
}

// FindByUserID finds the status row for a user.
// Returns gorm.ErrRecordNotFound if the user has no row.
func (r *StatusRepository) FindByUserID(userID string) (*model.UserStatus, error) {
	var status model.UserStatus
	err := r.db.First(&status, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// FindByUserIDs finds the status rows for the given users.
// Missing users are simply absent from the result.
func (r *StatusRepository) FindByUserIDs(userIDs []string) ([]model.UserStatus, error) {
	var statuses []model.UserStatus
	err := r.db.Where("user_id IN ?", userIDs).Find(&statuses).Error
	return statuses, err
}

// FindAll returns status rows ordered by user id with optional pagination.
func (r *StatusRepository) FindAll(limit, offset *int) ([]model.UserStatus, error) {
	var statuses []model.UserStatus
	query := r.db.Order("user_id")
	if limit != nil {
		query = query.Limit(*limit)
	}
	if offset != nil {
		query = query.Offset(*offset)
	}
	err := query.Find(&statuses).Error
	return statuses, err
}

// InsertOrUpdate upserts the status row keyed by user id.
func (r *StatusRepository) InsertOrUpdate(status *model.UserStatus) (*model.UserStatus, error) {
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"status", "status_timestamp", "is_user_defined",
			"message_id", "custom_icon", "custom_message", "clear_at",
		}),
	}).Create(status).Error
	if err != nil {
		return nil, err
	}
	return status, nil
}

// Update saves an existing status row.
func (r *StatusRepository) Update(status *model.UserStatus) (*model.UserStatus, error) {
	// Save alone skips fields reset to their zero value; nulled message
	// columns must reach the database as NULL.
	err := r.db.Model(status).
		Select("status", "status_timestamp", "is_user_defined",
			"message_id", "custom_icon", "custom_message", "clear_at").
		Updates(map[string]interface{}{
			"status":           status.Status,
			"status_timestamp": status.StatusTimestamp,
			"is_user_defined":  status.IsUserDefined,
			"message_id":       status.MessageID,
			"custom_icon":      status.CustomIcon,
			"custom_message":   status.CustomMessage,
			"clear_at":         status.ClearAt,
		}).Error
	if err != nil {
		return nil, err
	}
	return status, nil
}

// Delete removes the status row.
func (r *StatusRepository) Delete(status *model.UserStatus) error {
	return r.db.Delete(&model.UserStatus{}, "user_id = ?", status.UserID).Error
}
