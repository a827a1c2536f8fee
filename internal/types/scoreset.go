package types

import (
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/lifebalance-backend/internal/lifebalance"
)

// ScoreSet is the persisted per-user life balance scores, one column per
// area. Exactly one row per user.
type ScoreSet struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Health    int       `gorm:"not null;default:50" json:"health"`
	Work      int       `gorm:"not null;default:50" json:"work"`
	Play      int       `gorm:"not null;default:50" json:"play"`
	Love      int       `gorm:"not null;default:50" json:"love"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (ScoreSet) TableName() string { return "score_set" }

// Scores converts the row into the domain value type.
func (s *ScoreSet) Scores() (lifebalance.Scores, error) {
	return lifebalance.ScoresFromMap(map[lifebalance.Area]int{
		lifebalance.AreaHealth: s.Health,
		lifebalance.AreaWork:   s.Work,
		lifebalance.AreaPlay:   s.Play,
		lifebalance.AreaLove:   s.Love,
	})
}

// ApplyScores writes the domain value type back onto the row.
func (s *ScoreSet) ApplyScores(scores lifebalance.Scores) {
	s.Health = scores.Get(lifebalance.AreaHealth)
	s.Work = scores.Get(lifebalance.AreaWork)
	s.Play = scores.Get(lifebalance.AreaPlay)
	s.Love = scores.Get(lifebalance.AreaLove)
}
