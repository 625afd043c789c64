package models

// User is an internal account that reviews applications. Applicants
// themselves never have accounts; the public form is unauthenticated.
type User struct {
	BaseModel
	Name         string   `gorm:"not null" json:"name"`
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"not null;default:'staff'" json:"role"`
}
