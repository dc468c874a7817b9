package model

// Product is a catalog entry. Price is a fixed-point decimal (2dp) and stock
// a non-negative unit count; stock 0 means "out of stock", not an error state.
type Product struct {
	ID       int     `gorm:"primaryKey" json:"id"`
	Name     string  `gorm:"not null" json:"name"`
	Price    Money   `gorm:"type:decimal(10,2);not null" json:"price"`
	Stock    int     `gorm:"not null" json:"stock"`
	ImageURL *string `gorm:"column:image_url" json:"imageUrl"`
}
