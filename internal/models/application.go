package models

import "time"

type Application struct {
	BaseModel
	JobID       string            `gorm:"not null;index;uniqueIndex:idx_job_candidate"`
	CandidateID string            `gorm:"not null;index;uniqueIndex:idx_job_candidate"`
	CoverLetter string
	Status      ApplicationStatus `gorm:"type:varchar(20);default:'submitted';index"`
	DecidedAt   *time.Time

	// Relations
	Job       *Job  `gorm:"foreignKey:JobID"`
	Candidate *User `gorm:"foreignKey:CandidateID"`
}
