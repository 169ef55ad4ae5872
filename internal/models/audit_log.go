package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AuditActionStatementParsed    = "statement_parsed"
	AuditActionIncomeVerified     = "income_verified"
	AuditActionVerificationReused = "verification_reused"
	AuditActionVerificationViewed = "verification_viewed"
	AuditActionVerificationListed = "verification_listed"

	AuditResourceStatement          = "statement"
	AuditResourceIncomeVerification = "income_verification"
)

// AuditLog records who looked at or produced applicant income data
type AuditLog struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID     *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Action     string     `gorm:"type:varchar(100);not null;index" json:"action"`
	Resource   string     `gorm:"type:varchar(100);not null;index:idx_audit_logs_resource,priority:1" json:"resource"`
	ResourceID string     `gorm:"type:varchar(255);index:idx_audit_logs_resource,priority:2" json:"resource_id,omitempty"`
	IPAddress  string     `gorm:"type:varchar(45)" json:"ip_address,omitempty"`
	UserAgent  string     `gorm:"type:text" json:"user_agent,omitempty"`
	Metadata   JSONBMap   `gorm:"type:text" json:"metadata,omitempty"`
	CreatedAt  time.Time  `gorm:"not null;index" json:"created_at"`
}

func (al *AuditLog) SetMetadata(key string, value any) {
	if al.Metadata == nil {
		al.Metadata = make(JSONBMap)
	}
	al.Metadata[key] = value
}

func (al *AuditLog) GetMetadata(key string, defaultValue any) any {
	if al.Metadata == nil {
		return defaultValue
	}

	if value, exists := al.Metadata[key]; exists {
		return value
	}

	return defaultValue
}

func (al *AuditLog) String() string {
	userStr := "anonymous"
	if al.UserID != nil {
		userStr = al.UserID.String()
	}

	return fmt.Sprintf("AuditLog[User: %s, Action: %s, Resource: %s/%s, IP: %s, Time: %s]",
		userStr, al.Action, al.Resource, al.ResourceID, al.IPAddress, al.CreatedAt.Format(time.RFC3339))
}

func (al *AuditLog) TableName() string {
	return "audit_logs"
}

func (al *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if al.ID == uuid.Nil {
		al.ID = uuid.New()
	}

	if al.CreatedAt.IsZero() {
		al.CreatedAt = time.Now()
	}
	return nil
}

// JSONBMap is stored as JSON text so the same column works on postgres and sqlite
type JSONBMap map[string]any

// Value implements driver.Valuer interface
func (m JSONBMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return nil, nil
	}
	bytes, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(bytes), nil
}

func (m *JSONBMap) Scan(value any) error {
	if value == nil {
		*m = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into JSONBMap", value)
	}

	if len(bytes) == 0 {
		*m = nil
		return nil
	}

	return json.Unmarshal(bytes, m)
}

func (m JSONBMap) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}
	return json.Marshal(map[string]any(m))
}

func (m *JSONBMap) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var tmp map[string]any
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*m = JSONBMap(tmp)
	return nil
}
