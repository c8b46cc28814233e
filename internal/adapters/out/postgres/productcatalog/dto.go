// Package productcatalog implements the product catalog and pricing
// provider on PostgreSQL. Products live in one table keyed by product code;
// promotional prices live in a second table keyed by promotion code and
// product code, overriding the standard price per product while a promotion
// is active.
package productcatalog

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO is the database representation of one sellable product with
// its standard price.
type ProductDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Code        string          `gorm:"size:10;uniqueIndex"`
	Description string          `gorm:"size:100"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName specifies the database table name for catalog products.
func (ProductDTO) TableName() string {
	return "products"
}

// PromotionPriceDTO is one promotional price override: while the named
// promotion applies, the product is sold at this price instead of its
// standard one.
type PromotionPriceDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	PromotionCode string          `gorm:"size:50;uniqueIndex:idx_promotion_product"`
	ProductCode   string          `gorm:"size:10;uniqueIndex:idx_promotion_product"`
	Price         decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName specifies the database table name for promotion prices.
func (PromotionPriceDTO) TableName() string {
	return "promotion_prices"
}
