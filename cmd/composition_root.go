package cmd

import (
	"context"

	"github.com/labstack/gommon/log"
	"gorm.io/gorm"

	"ordertaking/internal/adapters/out/addrcheck"
	"ordertaking/internal/adapters/out/mail"
	"ordertaking/internal/adapters/out/postgres/productcatalog"
	"ordertaking/internal/core/application/usecases/commands"
	"ordertaking/internal/core/domain/services"
)

type CompositionRoot struct {
	gormDB  *gorm.DB
	catalog *productcatalog.GormProductCatalog
	logger  *log.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *log.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:  gormDB,
		catalog: productcatalog.NewGormProductCatalog(gormDB),
		logger:  logger,
	}
}

// CreatePlaceOrderCommandHandler wires the workflow: the postgres catalog
// for product existence and pricing, the screening address checker, and the
// log-backed acknowledgment sender. The price book is loaded once here.
func (c *CompositionRoot) CreatePlaceOrderCommandHandler(
	ctx context.Context,
) (commands.PlaceOrderCommandHandler, error) {
	getPricingFunction, err := c.catalog.LoadPriceBook(ctx)
	if err != nil {
		return commands.PlaceOrderCommandHandler{}, err
	}

	return commands.NewPlaceOrderCommandHandler(
		services.NewOrderValidator(c.catalog, addrcheck.NewScreeningChecker()),
		services.NewOrderPricer(getPricingFunction),
		services.CalculateShippingCost,
		services.NewAcknowledger(mail.RenderLetter, mail.NewLogSender(c.logger)),
	), nil
}
