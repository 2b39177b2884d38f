package model

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// The event hierarchy is three levels deep: a MainEvent (the festival),
// its SubEvents (tracks), and SubSubEvents (the individual competitions
// projects register for and judges score within).

type MainEvent struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"type:varchar(255);not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	EventID     string `gorm:"type:varchar(100);uniqueIndex;not null" json:"event_id"`
	IsOpen      bool   `gorm:"default:true" json:"is_open"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	SubEvents []SubEvent `gorm:"foreignKey:MainEventID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"sub_events,omitempty"`
}

func (MainEvent) TableName() string { return "main_events" }

func (e *MainEvent) BeforeCreate(tx *gorm.DB) error {
	if e.EventID == "" {
		e.EventID = "EVT" + time.Now().Format("20060102150405")
	}
	return nil
}

type SubEvent struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	MainEventID uint   `gorm:"not null;index" json:"main_event_id"`
	Name        string `gorm:"type:varchar(255);not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	EventID     string `gorm:"type:varchar(100);uniqueIndex;not null" json:"event_id"`
	IsOpen      bool   `gorm:"default:true" json:"is_open"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	MainEvent    *MainEvent    `gorm:"foreignKey:MainEventID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"main_event,omitempty"`
	SubSubEvents []SubSubEvent `gorm:"foreignKey:SubEventID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"sub_sub_events,omitempty"`
}

func (SubEvent) TableName() string { return "sub_events" }

func (e *SubEvent) BeforeCreate(tx *gorm.DB) error {
	if e.EventID == "" {
		e.EventID = "EVT_S" + timestampMicros()
	}
	return nil
}

type SubSubEvent struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	MainEventID uint   `gorm:"not null;index" json:"main_event_id"`
	SubEventID  uint   `gorm:"not null;index" json:"sub_event_id"`
	Name        string `gorm:"type:varchar(255);not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	EventID     string `gorm:"type:varchar(100);uniqueIndex;not null" json:"event_id"`
	IsOpen      bool   `gorm:"default:true" json:"is_open"`

	Rules                   string `gorm:"type:text" json:"rules"`
	MinTeamSize             int    `gorm:"default:1" json:"min_team_size"`
	MaxTeamSize             int    `gorm:"default:1" json:"max_team_size"`
	MinFemaleParticipants   int    `gorm:"default:0" json:"min_female_participants"`
	IsFacultyMentorRequired bool   `gorm:"default:false" json:"is_faculty_mentor_required"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	MainEvent *MainEvent `gorm:"foreignKey:MainEventID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"main_event,omitempty"`
	SubEvent  *SubEvent  `gorm:"foreignKey:SubEventID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"sub_event,omitempty"`

	Judges   []SubSubEventJudge `gorm:"foreignKey:SubSubEventID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"judges,omitempty"`
	Projects []Project          `gorm:"foreignKey:SubSubEventID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"projects,omitempty"`
}

func (SubSubEvent) TableName() string { return "sub_sub_events" }

func (e *SubSubEvent) BeforeCreate(tx *gorm.DB) error {
	if e.EventID == "" {
		e.EventID = "EVT_SS" + timestampMicros()
	}
	return nil
}

func timestampMicros() string {
	now := time.Now()
	return now.Format("20060102150405") + fmt.Sprintf("%06d", now.Nanosecond()/1000)
}
