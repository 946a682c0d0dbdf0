package handler

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"agrifarma/internal/delivery/web/flash"
	"agrifarma/internal/domain/entity"
	domainerrors "agrifarma/internal/domain/errors"
	mockusecase "agrifarma/internal/mocks/usecase"
	"agrifarma/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogFixture struct {
	*webHarness
	catalogUC *mockusecase.MockCatalogUsecase
}

func newCatalogFixture(t *testing.T) *catalogFixture {
	f := &catalogFixture{
		webHarness: newWebHarness(t),
		catalogUC:  mockusecase.NewMockCatalogUsecase(t),
	}

	h := NewCatalogHandler(CatalogHandlerParams{CatalogUC: f.catalogUC, Logger: discardLogger})
	f.e.POST("/add", h.AddProduct)
	f.e.GET("/products", h.ListProducts)
	f.e.POST("/products/import", h.ImportProducts)
	f.e.GET("/product/:id", h.ProductDetail)
	f.e.GET("/product/:id/qr", h.ProductQR)

	return f
}

func multipartRequest(t *testing.T, target, field, filename string, content []byte) *http.Request {
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	if field != "" {
		part, err := writer.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, target, body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())

	return req
}

func TestCatalogHandler_AddProduct(t *testing.T) {
	f := newCatalogFixture(t)
	userID := f.login()
	f.catalogUC.EXPECT().
		AddProduct(mock.Anything, userID, mock.MatchedBy(func(in *usecase.AddProductInput) bool {
			return in.Name == "Urea" && in.Price == "12.50" && in.StockQuantity == "" && in.Featured && in.Image == nil
		})).
		Return(&entity.Product{Name: "Urea"}, nil)

	rec := f.postForm("/add", url.Values{
		"name":        {"Urea"},
		"price":       {"12.50"},
		"description": {"50kg bag"},
		"category":    {"Fertilizer"},
		"featured":    {"on"},
	})

	f.requireRedirect(rec, "/products", flash.Success, "Product added successfully!")
}

func TestCatalogHandler_AddProduct_InvalidPrice(t *testing.T) {
	f := newCatalogFixture(t)
	f.login()
	f.catalogUC.EXPECT().AddProduct(mock.Anything, mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidPrice)

	rec := f.postForm("/add", url.Values{"name": {"Urea"}, "price": {"0"}})

	f.requireRedirect(rec, "/add", flash.Danger, "Price must be greater than 0.")
}

func TestCatalogHandler_ListProducts_TrimsFilter(t *testing.T) {
	f := newCatalogFixture(t)
	out := &usecase.ProductListOutput{Categories: []string{"Seeds"}}
	f.catalogUC.EXPECT().
		ListProducts(mock.Anything, entity.ProductFilter{Category: "Seeds", Search: "wheat"}).
		Return(out, nil)

	rec := f.get("/products?category=+Seeds+&search=wheat+")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "products", f.renderer.name)
	assert.Equal(t, ProductsView{Categories: []string{"Seeds"}, SelectedCategory: "Seeds", SearchQuery: "wheat"}, f.renderer.page.Data)
}

func TestCatalogHandler_ProductDetail(t *testing.T) {
	f := newCatalogFixture(t)
	product := &entity.Product{ID: uuid.New(), Name: "Tractor"}
	f.catalogUC.EXPECT().GetProduct(mock.Anything, product.ID).Return(product, nil)

	rec := f.get("/product/" + product.ID.String())

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "product_detail", f.renderer.name)
	assert.Equal(t, "Tractor", f.renderer.page.Title)
}

func TestCatalogHandler_ProductDetail_NotFound(t *testing.T) {
	f := newCatalogFixture(t)
	id := uuid.New()
	f.catalogUC.EXPECT().GetProduct(mock.Anything, id).Return(nil, domainerrors.ErrProductNotFound)

	rec := f.get("/product/" + id.String())

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "404", f.renderer.name)
}

func TestCatalogHandler_ProductQR(t *testing.T) {
	f := newCatalogFixture(t)
	id := uuid.New()
	png := []byte("\x89PNG fake")
	f.catalogUC.EXPECT().ProductQR(mock.Anything, id).Return(png, nil)

	rec := f.get("/product/" + id.String() + "/qr")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestCatalogHandler_ImportProducts(t *testing.T) {
	f := newCatalogFixture(t)
	userID := f.login()
	skipped := make([]usecase.ImportSkip, 0, 7)
	for line := 2; line <= 8; line++ {
		skipped = append(skipped, usecase.ImportSkip{Line: line, Reason: "missing price"})
	}
	f.catalogUC.EXPECT().
		ImportProducts(mock.Anything, userID, mock.Anything).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, workbook io.Reader) (*usecase.ImportOutput, error) {
			content, err := io.ReadAll(workbook)
			require.NoError(t, err)
			assert.Equal(t, "xlsx-bytes", string(content))

			return &usecase.ImportOutput{Imported: 3, Skipped: skipped}, nil
		})

	rec := f.do(multipartRequest(t, "/products/import", "workbook", "products.xlsx", []byte("xlsx-bytes")))

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/products", rec.Header().Get(echo.HeaderLocation))
	messages := f.flashes(rec)
	assert.Equal(t, []flash.Message{
		{Category: flash.Success, Text: "Imported 3 products."},
		{Category: flash.Warning, Text: "Skipped 7 rows (row 2: missing price; row 3: missing price; row 4: missing price; " +
			"row 5: missing price; row 6: missing price; and 2 more)"},
	}, messages)
}

func TestCatalogHandler_ImportProducts_NoFile(t *testing.T) {
	f := newCatalogFixture(t)
	f.login()

	rec := f.do(multipartRequest(t, "/products/import", "", "", nil))

	f.requireRedirect(rec, "/add", flash.Danger, "Please choose a spreadsheet to import.")
}

func TestCheckbox(t *testing.T) {
	for value, want := range map[string]bool{"on": true, "True": true, "1": true, "": false, "off": false} {
		assert.Equal(t, want, checkbox(value), value)
	}
}
