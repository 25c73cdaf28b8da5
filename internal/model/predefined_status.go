// internal/model/predefined_status.go
package model

// ClearAtPolicy types for predefined statuses
const (
	ClearAtTypePeriod = "period"
	ClearAtTypeEndOf  = "end-of"
)

// ClearAtPolicy describes when a predefined status suggests clearing its
// message: a relative period in seconds, or the end of a calendar unit.
// It is informational for clients only and never applied on write.
type ClearAtPolicy struct {
	Type string `json:"type"`
	Time any    `json:"time"`
}

// PredefinedStatus is one entry of the fixed status catalog.
// Message holds the translated text for the language the entry was
// listed with.
type PredefinedStatus struct {
	ID      string         `json:"id"`
	Icon    string         `json:"icon"`
	Message string         `json:"message"`
	ClearAt *ClearAtPolicy `json:"clearAt"`
}
