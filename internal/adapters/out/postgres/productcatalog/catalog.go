package productcatalog

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/core/ports"
	"ordertaking/internal/pkg/errs"
)

// catalogService identifies this adapter in remote-service failures.
var catalogService = order.ServiceInfo{Name: "ProductCatalog", Endpoint: "postgres"}

// Product is one catalog entry as callers outside the adapter see it.
type Product struct {
	Code        kernel.ProductCode
	Description string
	Price       kernel.Price
}

// GormProductCatalog implements ports.ProductCatalog using GORM.
type GormProductCatalog struct {
	db *gorm.DB
}

// NewGormProductCatalog creates a new GORM product catalog.
func NewGormProductCatalog(db *gorm.DB) *GormProductCatalog {
	return &GormProductCatalog{db: db}
}

// Exists reports whether a product with the given code is in the catalog.
// Database failures surface as *order.RemoteServiceError so the workflow can
// distinguish "unknown product" from "catalog unreachable".
func (c *GormProductCatalog) Exists(ctx context.Context, code kernel.ProductCode) (bool, error) {
	if err := code.Validate(); err != nil {
		return false, err
	}

	var count int64
	if err := c.db.WithContext(ctx).
		Model(&ProductDTO{}).
		Where("code = ?", code.String()).
		Count(&count).Error; err != nil {
		return false, order.NewRemoteServiceError(catalogService, err)
	}

	return count > 0, nil
}

// GetByCode retrieves one product by its code.
func (c *GormProductCatalog) GetByCode(ctx context.Context, code kernel.ProductCode) (Product, error) {
	if err := code.Validate(); err != nil {
		return Product{}, err
	}

	var dto ProductDTO
	if err := c.db.WithContext(ctx).First(&dto, "code = ?", code.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Product{}, errs.NewObjectNotFoundError("product", code.String())
		}
		return Product{}, order.NewRemoteServiceError(catalogService, err)
	}

	return toProduct(dto)
}

// LoadPriceBook loads every standard and promotional price into memory and
// returns the pricing provider the workflow runs against. Under promotional
// pricing a product missing from the promotion's table falls back to its
// standard price; an unrecognized promotion code prices everything from the
// standard book.
//
// The returned functions never fail: the validation stage has already
// rejected codes the catalog does not know.
func (c *GormProductCatalog) LoadPriceBook(ctx context.Context) (ports.GetPricingFunction, error) {
	var productDTOs []ProductDTO
	if err := c.db.WithContext(ctx).Find(&productDTOs).Error; err != nil {
		return nil, order.NewRemoteServiceError(catalogService, err)
	}

	standard := make(map[string]kernel.Price, len(productDTOs))
	for _, dto := range productDTOs {
		price, err := kernel.NewPrice(dto.Price)
		if err != nil {
			return nil, err
		}
		standard[dto.Code] = price
	}

	var promotionDTOs []PromotionPriceDTO
	if err := c.db.WithContext(ctx).Find(&promotionDTOs).Error; err != nil {
		return nil, order.NewRemoteServiceError(catalogService, err)
	}

	promotions := make(map[order.PromotionCode]map[string]kernel.Price)
	for _, dto := range promotionDTOs {
		price, err := kernel.NewPrice(dto.Price)
		if err != nil {
			return nil, err
		}

		code := order.PromotionCode(dto.PromotionCode)
		if promotions[code] == nil {
			promotions[code] = make(map[string]kernel.Price)
		}
		promotions[code][dto.ProductCode] = price
	}

	standardPricing := func(code kernel.ProductCode) kernel.Price {
		return standard[code.String()]
	}

	return func(method order.PricingMethod) ports.PricingFunction {
		if method.Kind() != order.PricingMethodPromotion {
			return standardPricing
		}

		promotion, ok := promotions[method.PromotionCode()]
		if !ok {
			return standardPricing
		}

		return func(code kernel.ProductCode) kernel.Price {
			if price, found := promotion[code.String()]; found {
				return price
			}
			return standard[code.String()]
		}
	}, nil
}

func toProduct(dto ProductDTO) (Product, error) {
	code, err := kernel.NewProductCode("ProductCode", dto.Code)
	if err != nil {
		return Product{}, err
	}

	price, err := kernel.NewPrice(dto.Price)
	if err != nil {
		return Product{}, err
	}

	return Product{Code: code, Description: dto.Description, Price: price}, nil
}
