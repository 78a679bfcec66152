package models

import (
	"github.com/lib/pq"
)

type CandidateProfile struct {
	BaseModel
	UserID          string `gorm:"uniqueIndex;not null"`
	FullName        string `gorm:"not null"`
	Headline        string
	Summary         string
	ExperienceYears int            `gorm:"default:0"`
	City            string         `gorm:"index"`
	Skills          pq.StringArray `gorm:"type:text[]" json:"skills" swaggerignore:"true"`
	Languages       pq.StringArray `gorm:"type:text[]" json:"languages" swaggerignore:"true"`
	DesiredRate     float64        `gorm:"default:0"`
	ProfileViews    int            `gorm:"default:0"`
	IsPublic        bool           `gorm:"default:true"`
}
