// internal/model/user_status.go
package model

// PresenceStatus defines user presence status
type PresenceStatus string

const (
	StatusOnline    PresenceStatus = "online"
	StatusIdle      PresenceStatus = "idle"
	StatusDND       PresenceStatus = "dnd"
	StatusInvisible PresenceStatus = "invisible"
	StatusOffline   PresenceStatus = "offline"
)

// Valid reports whether s is one of the five supported presence values.
// Matching is exact, no case folding.
func (s PresenceStatus) Valid() bool {
	switch s {
	case StatusOnline, StatusIdle, StatusDND, StatusInvisible, StatusOffline:
		return true
	}
	return false
}

// MaxMessageLength is the maximum custom message length in Unicode code points.
const MaxMessageLength = 80

// UserStatus is the one status row kept per user.
// MessageID and the two custom fields are mutually exclusive: whichever
// write path runs last nulls the other path's fields.
type UserStatus struct {
	UserID          string         `gorm:"primaryKey;size:64" json:"userId"`
	Status          PresenceStatus `gorm:"type:varchar(20);not null;default:'offline'" json:"status"`
	StatusTimestamp int64          `gorm:"not null;default:0" json:"statusTimestamp"`
	IsUserDefined   bool           `gorm:"not null;default:false" json:"isUserDefined"`
	MessageID       *string        `gorm:"size:32" json:"messageId,omitempty"`
	CustomIcon      *string        `gorm:"size:16" json:"customIcon,omitempty"`
	CustomMessage   *string        `gorm:"size:320" json:"customMessage,omitempty"`
	ClearAt         *int64         `json:"clearAt,omitempty"`
}

// TableName specifies the table name for UserStatus
func (UserStatus) TableName() string {
	return "user_statuses"
}

// NewUserStatus returns a fresh record with only the user id populated.
// Used by the presence write path, which overwrites the presence fields
// itself before persisting.
func NewUserStatus(userID string) *UserStatus {
	return &UserStatus{UserID: userID}
}

// NewOfflineUserStatus returns a fresh record with canonical offline
// presence defaults. Used by the message write paths, which must not
// invent a presence state on first write.
func NewOfflineUserStatus(userID string) *UserStatus {
	return &UserStatus{
		UserID:          userID,
		Status:          StatusOffline,
		StatusTimestamp: 0,
		IsUserDefined:   false,
	}
}
