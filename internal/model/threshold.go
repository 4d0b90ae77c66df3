package model

// Setting is a key/value row; low_stock_default holds the global
// threshold.
type Setting struct {
	Key   string `gorm:"primaryKey;type:varchar(100)" json:"key"`
	Value string `gorm:"type:varchar(255)" json:"value"`
}

func (Setting) TableName() string {
	return "settings"
}

// SettingLowStockDefault is the settings key for the global low-stock
// threshold.
const SettingLowStockDefault = "low_stock_default"

// CategoryThreshold is a per-category override of the global low-stock
// threshold.
type CategoryThreshold struct {
	Category  string `gorm:"primaryKey;type:varchar(100)" json:"category"`
	Threshold int    `gorm:"not null" json:"threshold" validate:"gte=0"`
}

func (CategoryThreshold) TableName() string {
	return "category_thresholds"
}
