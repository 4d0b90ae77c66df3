package model

import "time"

// Sale is an immutable ledger entry. SKU and name are denormalized so
// the history survives product deletion; price is the unit price at the
// time of sale, never looked up again.
type Sale struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProductID uint      `gorm:"index" json:"product_id"`
	SKU       string    `gorm:"type:varchar(50)" json:"sku"`
	Name      string    `gorm:"type:varchar(255)" json:"name"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	Price     float64   `gorm:"not null" json:"price"`
	SaleDate  time.Time `gorm:"index" json:"sale_date"`
}

func (Sale) TableName() string {
	return "sales"
}
