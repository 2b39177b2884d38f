package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Evaluation is the judge-panel scorecard of one project within one
// competition. JudgeCount, Total and FinalScore are derived from the
// attached marks and recomputed on every mark replacement; they are
// never accepted as input.
type Evaluation struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	ProjectID     uint `gorm:"not null;uniqueIndex:idx_eval_per_project_event" json:"project_id"`
	SubSubEventID uint `gorm:"not null;uniqueIndex:idx_eval_per_project_event" json:"sub_sub_event_id"`

	IsDisqualified bool   `gorm:"default:false" json:"is_disqualified"`
	Remarks        string `gorm:"type:text" json:"remarks"`

	JudgeCount int             `gorm:"default:0" json:"judge_count"`
	Total      decimal.Decimal `gorm:"type:numeric(9,2);default:0" swaggertype:"string" json:"total"`
	FinalScore decimal.Decimal `gorm:"type:numeric(9,2);default:0" swaggertype:"string" json:"final_score"`

	SubmittedAt time.Time `gorm:"autoCreateTime" json:"submitted_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Project     *Project     `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"project,omitempty"`
	SubSubEvent *SubSubEvent `gorm:"foreignKey:SubSubEventID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"sub_sub_event,omitempty"`

	JudgeMarks []EvaluationJudgeMark `gorm:"foreignKey:EvaluationID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"judge_marks,omitempty"`
}

func (Evaluation) TableName() string { return "evaluations" }

// EvaluationJudgeMark is one judge's mark inside an evaluation. JudgeName
// is authoritative; SubSubEventJudgeID is a non-owning link into the judge
// registry that may be NULL or go stale without invalidating the mark.
type EvaluationJudgeMark struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	EvaluationID uint `gorm:"not null;uniqueIndex:idx_mark_per_judge" json:"evaluation_id"`

	SubSubEventJudgeID *uint `gorm:"index" json:"sub_sub_event_judge_id"`

	JudgeName string          `gorm:"type:varchar(200);not null;uniqueIndex:idx_mark_per_judge" json:"judge_name"`
	Mark      decimal.Decimal `gorm:"type:numeric(7,2);not null" swaggertype:"string" json:"mark"`
	Comments  string          `gorm:"type:text" json:"comments"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	Evaluation       *Evaluation       `gorm:"foreignKey:EvaluationID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"evaluation,omitempty"`
	SubSubEventJudge *SubSubEventJudge `gorm:"foreignKey:SubSubEventJudgeID;references:ID;constraint:OnDelete:SET NULL,OnUpdate:CASCADE;" json:"sub_sub_event_judge,omitempty"`
}

func (EvaluationJudgeMark) TableName() string { return "evaluation_judge_marks" }
