package types

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/yungbote/lifebalance-backend/internal/lifebalance"
)

// InsightRecord is the persisted derived summary of a completed
// assessment. One row per user, fully replaced on regeneration and
// deleted together with the response set on reset.
type InsightRecord struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Takeaways   datatypes.JSON `gorm:"type:jsonb" json:"takeaways"`
	ActionItems datatypes.JSON `gorm:"type:jsonb" json:"action_items"`
	GeneratedAt time.Time      `gorm:"not null" json:"generated_at"`
	CreatedAt   time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"not null" json:"updated_at"`
}

func (InsightRecord) TableName() string { return "insight_record" }

// Insights decodes the row into the domain type.
func (r *InsightRecord) Insights() (lifebalance.Insights, error) {
	out := lifebalance.Insights{
		Takeaways:   make(map[lifebalance.Area][]string),
		ActionItems: make(map[lifebalance.Area][]string),
		GeneratedAt: r.GeneratedAt,
	}
	if len(r.Takeaways) > 0 {
		if err := json.Unmarshal(r.Takeaways, &out.Takeaways); err != nil {
			return lifebalance.Insights{}, err
		}
	}
	if len(r.ActionItems) > 0 {
		if err := json.Unmarshal(r.ActionItems, &out.ActionItems); err != nil {
			return lifebalance.Insights{}, err
		}
	}
	return out, nil
}

// ApplyInsights encodes the domain type onto the row.
func (r *InsightRecord) ApplyInsights(ins lifebalance.Insights) error {
	takeaways, err := json.Marshal(ins.Takeaways)
	if err != nil {
		return err
	}
	actions, err := json.Marshal(ins.ActionItems)
	if err != nil {
		return err
	}
	r.Takeaways = datatypes.JSON(takeaways)
	r.ActionItems = datatypes.JSON(actions)
	r.GeneratedAt = ins.GeneratedAt
	return nil
}
