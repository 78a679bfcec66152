package models

import (
	"time"

	"github.com/lib/pq"
)

type Job struct {
	BaseModel
	RecruiterID    string `gorm:"not null;index"`
	Title          string `gorm:"not null"`
	Description    string
	City           string
	EmploymentType string // "full_time", "part_time", "contract", "internship"
	SalaryMin      float64
	SalaryMax      float64
	ExperienceMin  int
	Skills         pq.StringArray `gorm:"type:text[]" json:"skills" swaggerignore:"true"`
	Status         JobStatus      `gorm:"type:varchar(20);default:'draft';index"`
	Deadline       *time.Time
	Views          int

	// Relations
	Applications []Application `gorm:"foreignKey:JobID"`
}
