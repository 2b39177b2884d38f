package model

// SubSubEventJudge is the registry of judges linked to one competition.
// A judge mark keeps working even if its registry row is deleted later,
// so this table is only a lookup aid for marks, never their owner.
type SubSubEventJudge struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	SubSubEventID uint   `gorm:"not null;uniqueIndex:idx_judge_per_event" json:"sub_sub_event_id"`
	Name          string `gorm:"type:varchar(200);not null;uniqueIndex:idx_judge_per_event" json:"name"`
	Order         int    `gorm:"column:sort_order;default:0" json:"order"`

	SubSubEvent *SubSubEvent `gorm:"foreignKey:SubSubEventID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"sub_sub_event,omitempty"`
}

func (SubSubEventJudge) TableName() string { return "sub_sub_event_judges" }
