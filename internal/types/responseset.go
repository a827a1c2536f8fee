package types

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ResponseSet is the persisted snapshot of a user's assessment answers,
// keyed by question id. Exactly one row per user; replaced whole on
// every save and deleted on reset.
type ResponseSet struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Responses datatypes.JSON `gorm:"type:jsonb" json:"responses"`
	Skipped   bool           `gorm:"not null;default:false" json:"skipped"`
	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
}

func (ResponseSet) TableName() string { return "assessment_response_set" }

// ResponseMap decodes the jsonb payload.
func (r *ResponseSet) ResponseMap() (map[string]string, error) {
	out := make(map[string]string)
	if len(r.Responses) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(r.Responses, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SetResponseMap encodes the map into the jsonb payload.
func (r *ResponseSet) SetResponseMap(m map[string]string) error {
	raw, err := json.Marshal(m)
	if err != nil {
		return err
	}
	r.Responses = datatypes.JSON(raw)
	return nil
}
