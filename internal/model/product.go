package model

import "github.com/hannahbenyin498-lang/inventory-system/internal/stock"

type Product struct {
	BaseModel
	// SKU is caller-assigned and unique among non-empty SKUs. Uniqueness
	// is enforced in the service layer, not with a DB index, because any
	// number of products may have no SKU at all.
	SKU      string       `gorm:"type:varchar(50);index" json:"sku"`
	Name     string       `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Category string       `gorm:"type:varchar(100);default:'Uncategorized'" json:"category"`
	Quantity int          `gorm:"not null;default:0" json:"quantity" validate:"gte=0"`
	Price    float64      `gorm:"not null;default:0" json:"price" validate:"gte=0"`
	Status   stock.Status `gorm:"type:varchar(20)" json:"status"`
	// Image is an opaque relative path; the server never opens or
	// validates the file it points to.
	Image string `gorm:"type:varchar(255)" json:"image"`
}

func (Product) TableName() string {
	return "products"
}

// StatusRow projects the product onto the fields status reconciliation
// reads.
func (p *Product) StatusRow() stock.StatusRow {
	return stock.StatusRow{
		ID:       p.ID,
		Category: p.Category,
		Quantity: p.Quantity,
		Status:   p.Status,
	}
}
