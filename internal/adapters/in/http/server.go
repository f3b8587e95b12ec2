// Package http exposes the storefront's REST API. It coordinates between
// HTTP handlers and application use cases: requests are bound and turned
// into commands or queries, domain errors are mapped to status codes.
package http

import (
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
)

// Server implements the REST API on top of the application layer's command
// and query handlers.
type Server struct {
	// Command handlers
	placeOrderHandler              commands.PlaceOrderCommandHandler
	recordPaymentScreenshotHandler commands.RecordPaymentScreenshotCommandHandler
	verifyPaymentHandler           commands.VerifyPaymentCommandHandler
	updateOrderStatusHandler       commands.UpdateOrderStatusCommandHandler
	cancelOrderHandler             commands.CancelOrderCommandHandler
	createProductHandler           commands.CreateProductCommandHandler
	updateProductHandler           commands.UpdateProductCommandHandler
	deleteProductHandler           commands.DeleteProductCommandHandler
	applyDiscountHandler           commands.ApplyDiscountCommandHandler
	createCategoryHandler          commands.CreateCategoryCommandHandler
	updateCategoryHandler          commands.UpdateCategoryCommandHandler
	deleteCategoryHandler          commands.DeleteCategoryCommandHandler

	// Query handlers
	getOrderHandler             queries.GetOrderQueryHandler
	getAllOrdersHandler         queries.GetAllOrdersQueryHandler
	trackOrdersHandler          queries.TrackOrdersQueryHandler
	listProductsHandler         queries.ListProductsQueryHandler
	listFeaturedProductsHandler queries.ListFeaturedProductsQueryHandler
	listCategoriesHandler       queries.ListCategoriesQueryHandler
	getCatalogDivergenceHandler queries.GetCatalogDivergenceQueryHandler

	spec *openapi3.T
}

// Handlers bundles the application-layer dependencies of the server.
type Handlers struct {
	PlaceOrder              commands.PlaceOrderCommandHandler
	RecordPaymentScreenshot commands.RecordPaymentScreenshotCommandHandler
	VerifyPayment           commands.VerifyPaymentCommandHandler
	UpdateOrderStatus       commands.UpdateOrderStatusCommandHandler
	CancelOrder             commands.CancelOrderCommandHandler
	CreateProduct           commands.CreateProductCommandHandler
	UpdateProduct           commands.UpdateProductCommandHandler
	DeleteProduct           commands.DeleteProductCommandHandler
	ApplyDiscount           commands.ApplyDiscountCommandHandler
	CreateCategory          commands.CreateCategoryCommandHandler
	UpdateCategory          commands.UpdateCategoryCommandHandler
	DeleteCategory          commands.DeleteCategoryCommandHandler

	GetOrder             queries.GetOrderQueryHandler
	GetAllOrders         queries.GetAllOrdersQueryHandler
	TrackOrders          queries.TrackOrdersQueryHandler
	ListProducts         queries.ListProductsQueryHandler
	ListFeaturedProducts queries.ListFeaturedProductsQueryHandler
	ListCategories       queries.ListCategoriesQueryHandler
	GetCatalogDivergence queries.GetCatalogDivergenceQueryHandler
}

// NewServer creates an HTTP server from the given handlers. The OpenAPI
// document is served as-is on /openapi.json; pass nil to disable it.
func NewServer(handlers Handlers, spec *openapi3.T) *Server {
	return &Server{
		placeOrderHandler:              handlers.PlaceOrder,
		recordPaymentScreenshotHandler: handlers.RecordPaymentScreenshot,
		verifyPaymentHandler:           handlers.VerifyPayment,
		updateOrderStatusHandler:       handlers.UpdateOrderStatus,
		cancelOrderHandler:             handlers.CancelOrder,
		createProductHandler:           handlers.CreateProduct,
		updateProductHandler:           handlers.UpdateProduct,
		deleteProductHandler:           handlers.DeleteProduct,
		applyDiscountHandler:           handlers.ApplyDiscount,
		createCategoryHandler:          handlers.CreateCategory,
		updateCategoryHandler:          handlers.UpdateCategory,
		deleteCategoryHandler:          handlers.DeleteCategory,
		getOrderHandler:                handlers.GetOrder,
		getAllOrdersHandler:            handlers.GetAllOrders,
		trackOrdersHandler:             handlers.TrackOrders,
		listProductsHandler:            handlers.ListProducts,
		listFeaturedProductsHandler:    handlers.ListFeaturedProducts,
		listCategoriesHandler:          handlers.ListCategories,
		getCatalogDivergenceHandler:    handlers.GetCatalogDivergence,
		spec:                           spec,
	}
}

// RegisterRoutes attaches every endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.GET("/openapi.json", s.OpenAPISpec)

	api := e.Group("/api/v1")

	api.POST("/orders", s.PlaceOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/track", s.TrackOrders)
	api.GET("/orders/:orderId", s.GetOrder)
	api.DELETE("/orders/:orderId", s.CancelOrder)
	api.POST("/orders/:orderId/payment-screenshot", s.RecordPaymentScreenshot)
	api.POST("/orders/:orderId/verify-payment", s.VerifyPayment)
	api.PATCH("/orders/:orderId/status", s.UpdateOrderStatus)
	api.POST("/orders/:orderId/book", s.BookOrder)

	api.GET("/products", s.GetProducts)
	api.GET("/products/featured", s.GetFeaturedProducts)
	api.POST("/products", s.CreateProduct)
	api.PUT("/products/:productId", s.UpdateProduct)
	api.DELETE("/products/:productId", s.DeleteProduct)
	api.POST("/products/discount", s.ApplyDiscount)

	api.GET("/categories", s.GetCategories)
	api.POST("/categories", s.CreateCategory)
	api.PUT("/categories/:name", s.UpdateCategory)
	api.DELETE("/categories/:name", s.DeleteCategory)
	api.GET("/categories/divergence", s.GetCatalogDivergence)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// OpenAPISpec handles GET /openapi.json - serves the API contract.
func (s *Server) OpenAPISpec(ctx echo.Context) error {
	if s.spec == nil {
		return ctx.NoContent(http.StatusNotFound)
	}
	return ctx.JSON(http.StatusOK, s.spec)
}
