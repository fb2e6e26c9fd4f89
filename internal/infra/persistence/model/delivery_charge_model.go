package model

import (
	"time"
)

// DeliveryChargeModel is the GORM-specific struct for the 'delivery_charges' table.
// One row per delivery zone.
type DeliveryChargeModel struct {
	LocationType string  `gorm:"type:varchar(32);primary_key"`
	Charge       float64 `gorm:"type:decimal(10,2);not null"`
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeliveryChargeModel) TableName() string {
	return "delivery_charges"
}

// Tables lists every model managed by auto-migration, in dependency order.
func Tables() []any {
	return []any{
		&ProductModel{},
		&OrderModel{},
		&OrderItemModel{},
		&UserActivityModel{},
		&DeliveryChargeModel{},
	}
}
