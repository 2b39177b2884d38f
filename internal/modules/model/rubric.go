package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// RubricDefinition names one scoring criterion of the legacy rubric
// path, e.g. code "creativity" with max mark 10.
type RubricDefinition struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Code    string `gorm:"type:varchar(100);uniqueIndex;not null" json:"code"`
	Name    string `gorm:"type:varchar(255);not null" json:"name"`
	MaxMark int    `gorm:"default:10" json:"max_mark"`
}

func (RubricDefinition) TableName() string { return "rubric_definitions" }

// RubricEvaluation is the legacy single-evaluator scoring path: one
// evaluator fills a rubric for a project and the total is the sum of
// the rubric values. These rows feed the consolidated score, the
// judge-mark Evaluation path does not.
type RubricEvaluation struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	ProjectID uint `gorm:"not null;index" json:"project_id"`

	Evaluator string `gorm:"type:varchar(255)" json:"evaluator"`

	// RubricMarks maps rubric codes to marks, e.g. {"creativity": 15}.
	RubricMarks    datatypes.JSONMap `gorm:"type:jsonb" swaggertype:"object" json:"rubric_marks"`
	NumberOfJudges int               `gorm:"default:2" json:"number_of_judges"`

	Total decimal.Decimal `gorm:"type:numeric(9,2);default:0" swaggertype:"string" json:"total"`

	SubmittedAt time.Time `gorm:"autoCreateTime" json:"submitted_at"`

	Project *Project `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"project,omitempty"`
}

func (RubricEvaluation) TableName() string { return "rubric_evaluations" }
