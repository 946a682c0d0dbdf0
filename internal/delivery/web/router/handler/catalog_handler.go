package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	deliverycontext "agrifarma/internal/delivery/context"
	"agrifarma/internal/delivery/web/flash"
	"agrifarma/internal/delivery/web/response"
	"agrifarma/internal/domain/entity"
	domainerrors "agrifarma/internal/domain/errors"
	"agrifarma/internal/errors"
	"agrifarma/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const maxSkippedRowsShown = 5

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves product listings.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// AddProductRequest is the listing form. Price and stock stay text so the
// usecase can report malformed numbers.
type AddProductRequest struct {
	Name          string `form:"name" validate:"max=100" label:"Name"`
	Price         string `form:"price"`
	Description   string `form:"description"`
	Category      string `form:"category" validate:"max=50" label:"Category"`
	Subcategory   string `form:"subcategory" validate:"max=50" label:"Subcategory"`
	StockQuantity string `form:"stock_quantity"`
	Featured      string `form:"featured"`
}

// ProductQuery filters the public listing.
type ProductQuery struct {
	Category string `query:"category"`
	Search   string `query:"search"`
}

// ProductsView feeds the products template.
type ProductsView struct {
	Products         []*entity.Product
	Categories       []string
	SelectedCategory string
	SearchQuery      string
}

// ShowAddProduct renders the listing and import forms.
func (h *CatalogHandler) ShowAddProduct(c echo.Context) error {
	categories, err := h.catalogUC.ListProductCategories(c.Request().Context())
	if err != nil {
		return errors.Wrap(err, "failed to list product categories")
	}

	return response.Render(c, http.StatusOK, "add_product", "Add product", categories)
}

// AddProduct creates a listing owned by the current member.
func (h *CatalogHandler) AddProduct(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req AddProductRequest
	if err := bindForm(c, &req); err != nil {
		return response.FlashError(c, err, "/add")
	}

	image, closeImage, err := formUpload(c, "image")
	if err != nil {
		return response.FlashError(c, err, "/add")
	}
	defer closeImage()

	_, err = h.catalogUC.AddProduct(c.Request().Context(), userID, &usecase.AddProductInput{
		Name:          req.Name,
		Price:         req.Price,
		Description:   req.Description,
		Category:      req.Category,
		Subcategory:   req.Subcategory,
		StockQuantity: req.StockQuantity,
		Featured:      checkbox(req.Featured),
		Image:         image,
	})
	if err != nil {
		return h.handleAppError(c, err, "/add")
	}

	return response.FlashRedirect(c, flash.Success, "Product added successfully!", "/products")
}

// ListProducts renders the filtered catalog.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	var query ProductQuery
	if err := c.Bind(&query); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid product filter")
	}

	filter := entity.ProductFilter{Category: query.Category, Search: query.Search}.Normalized()

	out, err := h.catalogUC.ListProducts(c.Request().Context(), filter)
	if err != nil {
		return errors.Wrap(err, "failed to list products")
	}

	return response.Render(c, http.StatusOK, "products", "Products", ProductsView{
		Products:         out.Products,
		Categories:       out.Categories,
		SelectedCategory: filter.Category,
		SearchQuery:      filter.Search,
	})
}

// ProductDetail renders one product or the 404 page.
func (h *CatalogHandler) ProductDetail(c echo.Context) error {
	productID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.catalogUC.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return err
	}

	return response.Render(c, http.StatusOK, "product_detail", product.Name, product)
}

// ProductQR returns a PNG share code for the product page.
func (h *CatalogHandler) ProductQR(c echo.Context) error {
	productID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	png, err := h.catalogUC.ProductQR(c.Request().Context(), productID)
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=86400")

	return c.Blob(http.StatusOK, "image/png", png)
}

// ImportProducts creates listings from an uploaded workbook.
func (h *CatalogHandler) ImportProducts(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	workbook, closeWorkbook, err := formUpload(c, "workbook")
	if err != nil {
		return response.FlashError(c, err, "/add")
	}
	defer closeWorkbook()
	if workbook == nil {
		return response.FlashRedirect(c, flash.Danger, "Please choose a spreadsheet to import.", "/add")
	}

	out, err := h.catalogUC.ImportProducts(c.Request().Context(), userID, workbook.Content)
	if err != nil {
		return h.handleAppError(c, err, "/add")
	}

	flash.Add(c, flash.Success, fmt.Sprintf("Imported %d products.", out.Imported))
	if len(out.Skipped) > 0 {
		flash.Add(c, flash.Warning, skippedSummary(out.Skipped))
	}

	return response.Redirect(c, "/products")
}

func (h *CatalogHandler) handleAppError(c echo.Context, err error, location string) error {
	if isKind(err, domainerrors.KindPersistence) {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Error("Catalog request failed", slog.Any("error", err))
	}

	return response.FlashError(c, err, location)
}

func skippedSummary(skipped []usecase.ImportSkip) string {
	parts := make([]string, 0, maxSkippedRowsShown)
	for i, skip := range skipped {
		if i == maxSkippedRowsShown {
			parts = append(parts, fmt.Sprintf("and %d more", len(skipped)-maxSkippedRowsShown))

			break
		}
		parts = append(parts, fmt.Sprintf("row %d: %s", skip.Line, skip.Reason))
	}

	return fmt.Sprintf("Skipped %d rows (%s)", len(skipped), strings.Join(parts, "; "))
}

// checkbox interprets an HTML checkbox value.
func checkbox(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "on", "true", "1", "yes":
		return true
	default:
		return false
	}
}
