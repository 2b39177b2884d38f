package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ConsolidatedScore is the running cross-evaluator statistic of one
// project. It is owned by the consolidation service: every update goes
// through a fold under a row lock, and the average is carried forward
// incrementally rather than recomputed from the evaluation rows.
type ConsolidatedScore struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	ProjectID uint `gorm:"not null;uniqueIndex" json:"project_id"`

	AverageScore decimal.Decimal `gorm:"type:numeric(9,2);default:0" swaggertype:"string" json:"average_score"`
	HighestScore decimal.Decimal `gorm:"type:numeric(9,2);default:0" swaggertype:"string" json:"highest_score"`
	LowestScore  decimal.Decimal `gorm:"type:numeric(9,2);default:0" swaggertype:"string" json:"lowest_score"`

	TotalEvaluations int `gorm:"default:0" json:"total_evaluations"`

	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Project *Project `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"project,omitempty"`
}

func (ConsolidatedScore) TableName() string { return "consolidated_scores" }
