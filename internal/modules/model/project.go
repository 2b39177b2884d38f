package model

import (
	"time"

	"gorm.io/datatypes"
)

type Project struct {
	ID            uint  `gorm:"primaryKey" json:"id"`
	SubSubEventID *uint `gorm:"index" json:"sub_sub_event_id"`

	TeamName     string `gorm:"type:varchar(255);not null" json:"team_name"`
	ProjectTopic string `gorm:"type:text;not null" json:"project_topic"`

	CaptainName  string `gorm:"type:varchar(100);not null" json:"captain_name"`
	CaptainEmail string `gorm:"type:varchar(255);not null" json:"captain_email"`
	CaptainPhone string `gorm:"type:varchar(20)" json:"captain_phone"`

	// TeamMembers holds the ordered list of member emails as submitted.
	TeamMembers       datatypes.JSON `gorm:"type:jsonb" swaggertype:"array,string" json:"team_members"`
	FacultyMentorName *string        `gorm:"type:varchar(255)" json:"faculty_mentor_name"`

	// ProjectCode is assigned exactly once during submission and never
	// regenerated; it stays NULL when the project has no event association.
	ProjectCode *string `gorm:"type:varchar(255);uniqueIndex" json:"project_code"`

	SubmittedAt time.Time `gorm:"autoCreateTime" json:"submitted_at"`

	SubSubEvent *SubSubEvent `gorm:"foreignKey:SubSubEventID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"sub_sub_event,omitempty"`
	Members     []TeamMember `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"members,omitempty"`
}

func (Project) TableName() string { return "projects" }

// TeamMember is the denormalized per-member row kept alongside the
// JSON email list so duplicate registrations can be checked per email.
type TeamMember struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ProjectID uint   `gorm:"not null;index" json:"project_id"`
	Name      string `gorm:"type:varchar(255);not null" json:"name"`
	Email     string `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	Phone     string `gorm:"type:varchar(20)" json:"phone"`

	Project *Project `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"project,omitempty"`
}

func (TeamMember) TableName() string { return "team_members" }
