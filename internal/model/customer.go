package model

type Customer struct {
	ID      int     `gorm:"primaryKey" json:"id"`
	Name    string  `gorm:"not null" json:"name"`
	Contact *string `json:"contact"`
}
