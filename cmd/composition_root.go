package cmd

import (
	"log/slog"

	httpin "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/out/kafka"
	"storefront/internal/adapters/out/postgres"
	"storefront/internal/adapters/out/postgres/catalogrepo"
	"storefront/internal/adapters/out/postgres/categoryrepo"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

// CompositionRoot wires the application layer to its adapters. Handlers are
// created per call; the repositories and the event publisher are shared.
type CompositionRoot struct {
	gormDB       *gorm.DB
	uowFactory   *postgres.GormUnitOfWorkFactory
	catalogRepo  *catalogrepo.GormCatalogRepository
	categoryRepo *categoryrepo.GormCategoryRepository
	publisher    *kafka.OrderEventPublisher
	logger       *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:       gormDB,
		uowFactory:   postgres.NewGormUnitOfWorkFactory(gormDB),
		catalogRepo:  catalogrepo.NewGormCatalogRepository(gormDB),
		categoryRepo: categoryrepo.NewGormCategoryRepository(gormDB),
		publisher: kafka.NewOrderEventPublisher(
			[]string{configs.KafkaHost},
			configs.KafkaNotificationTopic,
			configs.KafkaInvoiceTopic,
		),
		logger: logger,
	}
}

// Close releases shared adapter resources.
func (c *CompositionRoot) Close() error {
	return c.publisher.Close()
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.PlacementUoWFactory = FuncPlacementUoWFactory(func() commands.PlacementUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.publisher, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateRecordPaymentScreenshotCommandHandler() commands.RecordPaymentScreenshotCommandHandler {
	return commands.NewRecordPaymentScreenshotCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateVerifyPaymentCommandHandler() commands.VerifyPaymentCommandHandler {
	return commands.NewVerifyPaymentCommandHandler(c.orderUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	return commands.NewCreateProductCommandHandler(c.catalogRepo)
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() commands.UpdateProductCommandHandler {
	return commands.NewUpdateProductCommandHandler(c.catalogRepo)
}

func (c *CompositionRoot) CreateDeleteProductCommandHandler() commands.DeleteProductCommandHandler {
	return commands.NewDeleteProductCommandHandler(c.catalogRepo)
}

func (c *CompositionRoot) CreateApplyDiscountCommandHandler() commands.ApplyDiscountCommandHandler {
	return commands.NewApplyDiscountCommandHandler(c.catalogRepo, c.logger)
}

func (c *CompositionRoot) CreateCreateCategoryCommandHandler() commands.CreateCategoryCommandHandler {
	return commands.NewCreateCategoryCommandHandler(c.categoryUoWFactory())
}

func (c *CompositionRoot) CreateUpdateCategoryCommandHandler() commands.UpdateCategoryCommandHandler {
	return commands.NewUpdateCategoryCommandHandler(c.categoryUoWFactory())
}

func (c *CompositionRoot) CreateDeleteCategoryCommandHandler() commands.DeleteCategoryCommandHandler {
	return commands.NewDeleteCategoryCommandHandler(c.categoryUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateTrackOrdersQueryHandler() queries.TrackOrdersQueryHandler {
	return queries.NewTrackOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListProductsQueryHandler() queries.ListProductsQueryHandler {
	return queries.NewListProductsQueryHandler(c.catalogRepo)
}

func (c *CompositionRoot) CreateListFeaturedProductsQueryHandler() queries.ListFeaturedProductsQueryHandler {
	return queries.NewListFeaturedProductsQueryHandler(c.catalogRepo, c.categoryRepo)
}

func (c *CompositionRoot) CreateListCategoriesQueryHandler() queries.ListCategoriesQueryHandler {
	return queries.NewListCategoriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCatalogDivergenceQueryHandler() queries.GetCatalogDivergenceQueryHandler {
	return queries.NewGetCatalogDivergenceQueryHandler(c.catalogRepo, c.categoryRepo)
}

// CreateServerHandlers bundles every handler for the HTTP server.
func (c *CompositionRoot) CreateServerHandlers() httpin.Handlers {
	return httpin.Handlers{
		PlaceOrder:              c.CreatePlaceOrderCommandHandler(),
		RecordPaymentScreenshot: c.CreateRecordPaymentScreenshotCommandHandler(),
		VerifyPayment:           c.CreateVerifyPaymentCommandHandler(),
		UpdateOrderStatus:       c.CreateUpdateOrderStatusCommandHandler(),
		CancelOrder:             c.CreateCancelOrderCommandHandler(),
		CreateProduct:           c.CreateCreateProductCommandHandler(),
		UpdateProduct:           c.CreateUpdateProductCommandHandler(),
		DeleteProduct:           c.CreateDeleteProductCommandHandler(),
		ApplyDiscount:           c.CreateApplyDiscountCommandHandler(),
		CreateCategory:          c.CreateCreateCategoryCommandHandler(),
		UpdateCategory:          c.CreateUpdateCategoryCommandHandler(),
		DeleteCategory:          c.CreateDeleteCategoryCommandHandler(),
		GetOrder:                c.CreateGetOrderQueryHandler(),
		GetAllOrders:            c.CreateGetAllOrdersQueryHandler(),
		TrackOrders:             c.CreateTrackOrdersQueryHandler(),
		ListProducts:            c.CreateListProductsQueryHandler(),
		ListFeaturedProducts:    c.CreateListFeaturedProductsQueryHandler(),
		ListCategories:          c.CreateListCategoriesQueryHandler(),
		GetCatalogDivergence:    c.CreateGetCatalogDivergenceQueryHandler(),
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) categoryUoWFactory() commands.CategoryUoWFactory {
	return FuncCategoryUoWFactory(func() commands.CategoryUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPlacementUoWFactory func() commands.PlacementUoW

func (f FuncPlacementUoWFactory) Create() commands.PlacementUoW {
	return f()
}

type FuncCategoryUoWFactory func() commands.CategoryUoW

func (f FuncCategoryUoWFactory) Create() commands.CategoryUoW {
	return f()
}
