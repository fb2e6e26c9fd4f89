package postgres

import (
	"log/slog"

	"storefront/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// StoreCapabilities describes which optional schema pieces the connected
// database actually has. Deployments migrated at different times differ:
// older ones lack the cost_price, images and priority product columns and
// the delivery_charges table. The repositories consult this descriptor to
// pick full or reduced projections instead of sniffing per-query errors.
type StoreCapabilities struct {
	ProductCostPrice bool
	ProductImages    bool
	ProductPriority  bool
	DeliveryCharges  bool
}

// NewStoreCapabilities probes the schema once at startup.
func NewStoreCapabilities(db *gorm.DB, logger *slog.Logger) *StoreCapabilities {
	migrator := db.Migrator()

	caps := &StoreCapabilities{
		ProductCostPrice: migrator.HasColumn(&model.ProductModel{}, "cost_price"),
		ProductImages:    migrator.HasColumn(&model.ProductModel{}, "images"),
		ProductPriority:  migrator.HasColumn(&model.ProductModel{}, "priority"),
		DeliveryCharges:  migrator.HasTable(&model.DeliveryChargeModel{}),
	}

	logger.Info("probed store schema capabilities",
		slog.Bool("productCostPrice", caps.ProductCostPrice),
		slog.Bool("productImages", caps.ProductImages),
		slog.Bool("productPriority", caps.ProductPriority),
		slog.Bool("deliveryCharges", caps.DeliveryCharges),
	)

	return caps
}

// productColumns returns the select list matching the schema generation.
func (c *StoreCapabilities) productColumns() []string {
	columns := []string{"id", "name", "description", "price", "image_url", "stock", "created_at", "updated_at"}
	if c.ProductCostPrice {
		columns = append(columns, "cost_price")
	}
	if c.ProductImages {
		columns = append(columns, "images")
	}
	if c.ProductPriority {
		columns = append(columns, "priority")
	}

	return columns
}

// productOrder returns the catalog ordering clause the schema supports.
func (c *StoreCapabilities) productOrder() string {
	if c.ProductPriority {
		return "priority ASC, created_at DESC"
	}

	return "created_at DESC"
}
