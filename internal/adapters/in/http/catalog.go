package http

import (
	"net/http"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// Wire types for the catalog and category endpoints.
type (
	ProductRequest struct {
		Name          string  `json:"name"`
		LocalName     string  `json:"localName"`
		Price         int64   `json:"price"`
		OriginalPrice *int64  `json:"originalPrice,omitempty"`
		ImageRef      string  `json:"imageRef"`
		VideoRef      *string `json:"videoRef,omitempty"`
		Category      string  `json:"category"`
	}

	CreateProductResponse struct {
		ID string `json:"id"`
	}

	Product struct {
		ID            string  `json:"id"`
		Name          string  `json:"name"`
		LocalName     string  `json:"localName"`
		Price         int64   `json:"price"`
		OriginalPrice *int64  `json:"originalPrice,omitempty"`
		ImageRef      string  `json:"imageRef"`
		VideoRef      *string `json:"videoRef,omitempty"`
		Category      string  `json:"category"`
	}

	DiscountRequest struct {
		Discount float64 `json:"discount"`
	}

	DiscountResponse struct {
		Updated int64  `json:"updated"`
		Error   string `json:"error,omitempty"`
	}

	CategoryRequest struct {
		DisplayName string `json:"displayName"`
		Description string `json:"description,omitempty"`
	}

	CreateCategoryResponse struct {
		Name string `json:"name"`
	}

	Category struct {
		Name        string    `json:"name"`
		DisplayName string    `json:"displayName"`
		Description string    `json:"description,omitempty"`
		Active      bool      `json:"active"`
		CreatedAt   time.Time `json:"createdAt"`
		UpdatedAt   time.Time `json:"updatedAt"`
	}

	CatalogDivergence struct {
		OrphanPartitions  []string `json:"orphanPartitions"`
		PendingPartitions []string `json:"pendingPartitions"`
	}
)

func toProducts(responses []queries.ProductResponse) []Product {
	products := make([]Product, len(responses))
	for i, response := range responses {
		products[i] = Product{
			ID:            response.ID,
			Name:          response.Name,
			LocalName:     response.LocalName,
			Price:         response.Price,
			OriginalPrice: response.OriginalPrice,
			ImageRef:      response.ImageRef,
			VideoRef:      response.VideoRef,
			Category:      response.Category,
		}
	}
	return products
}

func bindProductID(ctx echo.Context) (uuid.UUID, error) {
	return uuid.Parse(ctx.Param("productId"))
}

// GetProducts handles GET /api/v1/products - lists products, optionally
// filtered by category.
func (s *Server) GetProducts(ctx echo.Context) error {
	var categoryName string
	if err := runtime.BindQueryParameter("form", true, false, "category",
		ctx.QueryParams(), &categoryName); err != nil {
		return badRequest(ctx, "Invalid category parameter")
	}

	query, err := queries.NewListProductsQuery(categoryName)
	if err != nil {
		return respondError(ctx, err)
	}

	products, err := s.listProductsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toProducts(products))
}

// GetFeaturedProducts handles GET /api/v1/products/featured - lists a few
// products from every active category for the landing page.
func (s *Server) GetFeaturedProducts(ctx echo.Context) error {
	limit := 4
	if err := runtime.BindQueryParameter("form", true, false, "limit",
		ctx.QueryParams(), &limit); err != nil {
		return badRequest(ctx, "Invalid limit parameter")
	}

	query, err := queries.NewListFeaturedProductsQuery(limit)
	if err != nil {
		return respondError(ctx, err)
	}

	products, err := s.listFeaturedProductsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toProducts(products))
}

// CreateProduct handles POST /api/v1/products - adds a product to the
// catalog.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var request ProductRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateProductCommand(
		request.Name, request.LocalName,
		request.Price, request.OriginalPrice,
		request.ImageRef, request.VideoRef,
		request.Category,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	id, err := s.createProductHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, CreateProductResponse{ID: id.String()})
}

// UpdateProduct handles PUT /api/v1/products/:productId - replaces a
// product's attributes, moving it between categories if needed.
func (s *Server) UpdateProduct(ctx echo.Context) error {
	productID, err := bindProductID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid product identifier")
	}

	var request ProductRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateProductCommand(
		productID,
		request.Name, request.LocalName,
		request.Price, request.OriginalPrice,
		request.ImageRef, request.VideoRef,
		request.Category,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.updateProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// DeleteProduct handles DELETE /api/v1/products/:productId.
func (s *Server) DeleteProduct(ctx echo.Context) error {
	productID, err := bindProductID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid product identifier")
	}

	cmd, err := commands.NewDeleteProductCommand(productID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.deleteProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ApplyDiscount handles POST /api/v1/products/discount - applies a
// storewide discount to every product carrying an original price.
func (s *Server) ApplyDiscount(ctx echo.Context) error {
	var request DiscountRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewApplyDiscountCommand(request.Discount)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.applyDiscountHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		// The bulk update is best-effort per partition: when some
		// partitions succeeded, report the count alongside the failures
		// instead of discarding it in an error response.
		if updated > 0 {
			return ctx.JSON(http.StatusMultiStatus, DiscountResponse{
				Updated: updated,
				Error:   err.Error(),
			})
		}
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, DiscountResponse{Updated: updated})
}

// GetCategories handles GET /api/v1/categories - lists the category
// directory. By default only active categories are returned; pass all=true
// to include deactivated ones.
func (s *Server) GetCategories(ctx echo.Context) error {
	includeAll := false
	if err := runtime.BindQueryParameter("form", true, false, "all",
		ctx.QueryParams(), &includeAll); err != nil {
		return badRequest(ctx, "Invalid all parameter")
	}

	categories, err := s.listCategoriesHandler.Handle(ctx.Request().Context(),
		queries.NewListCategoriesQuery(!includeAll))
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]Category, len(categories))
	for i, c := range categories {
		response[i] = Category{
			Name:        c.Name,
			DisplayName: c.DisplayName,
			Description: c.Description,
			Active:      c.Active,
			CreatedAt:   c.CreatedAt,
			UpdatedAt:   c.UpdatedAt,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateCategory handles POST /api/v1/categories - registers a category in
// the directory.
func (s *Server) CreateCategory(ctx echo.Context) error {
	var request CategoryRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateCategoryCommand(request.DisplayName, request.Description)
	if err != nil {
		return respondError(ctx, err)
	}

	name, err := s.createCategoryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, CreateCategoryResponse{Name: name})
}

// UpdateCategory handles PUT /api/v1/categories/:name - renames a category.
// The canonical name is immutable; only the display attributes change.
func (s *Server) UpdateCategory(ctx echo.Context) error {
	var request CategoryRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateCategoryCommand(ctx.Param("name"),
		request.DisplayName, request.Description)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.updateCategoryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// DeleteCategory handles DELETE /api/v1/categories/:name - deactivates a
// category. The partition and its products stay in place; the category just
// stops being listed.
func (s *Server) DeleteCategory(ctx echo.Context) error {
	cmd, err := commands.NewDeleteCategoryCommand(ctx.Param("name"))
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.deleteCategoryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetCatalogDivergence handles GET /api/v1/categories/divergence - reports
// drift between the directory and the physical partitions.
func (s *Server) GetCatalogDivergence(ctx echo.Context) error {
	response, err := s.getCatalogDivergenceHandler.Handle(ctx.Request().Context(),
		queries.NewGetCatalogDivergenceQuery())
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, CatalogDivergence{
		OrphanPartitions:  response.OrphanPartitions,
		PendingPartitions: response.PendingPartitions,
	})
}
