package model

type User struct {
	ID       int    `gorm:"primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	// Password holds the bcrypt hash. Never serialized.
	Password string `gorm:"not null" json:"-"`
}
