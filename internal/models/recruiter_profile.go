package models

type RecruiterProfile struct {
	BaseModel
	UserID        string `gorm:"uniqueIndex;not null"`
	CompanyName   string `gorm:"not null"`
	ContactPerson string
	Phone         string
	Website       string
	City          string
	Description   string
	IsVerified    bool `gorm:"default:false"`
}
