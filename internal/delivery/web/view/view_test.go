package view_test

import (
	"bytes"
	"net/http"
	"testing"
	"time"

	"agrifarma/internal/delivery/web/flash"
	"agrifarma/internal/delivery/web/response"
	"agrifarma/internal/delivery/web/router/handler"
	"agrifarma/internal/delivery/web/view"
	"agrifarma/internal/domain/entity"
	"agrifarma/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtures() (*entity.User, *entity.Product, *entity.Post, *entity.Order) {
	joined := time.Date(2024, time.March, 5, 9, 0, 0, 0, time.UTC)
	productID := uuid.New()

	user := &entity.User{
		ID:                 uuid.New(),
		Username:           "amina",
		Email:              "amina@example.com",
		Location:           "Nakuru",
		Expertise:          "Soil health",
		JoinDate:           joined,
		IsConsultant:       true,
		ConsultantCategory: "Agronomy",
		ConsultantApproved: true,
	}
	product := &entity.Product{
		ID:            productID,
		UserID:        user.ID,
		Name:          "Maize seed",
		Price:         decimal.RequireFromString("12.5"),
		Description:   "Drought tolerant hybrid",
		Image:         "products/maize seed.png",
		Category:      "Seeds",
		Subcategory:   "Cereals",
		StockQuantity: 4,
		Active:        true,
		CreatedDate:   joined,
	}
	post := &entity.Post{
		ID:             uuid.New(),
		UserID:         user.ID,
		Title:          "Rotating legumes",
		Content:        "Beans after maize keep the soil rich.",
		Type:           entity.PostTypeForum,
		ProductID:      &productID,
		Tags:           "soil, legumes,",
		CreatedDate:    joined,
		AuthorUsername: user.Username,
	}
	order := &entity.Order{
		ID:              uuid.New(),
		UserID:          user.ID,
		ProductID:       productID,
		Quantity:        2,
		TotalPrice:      decimal.RequireFromString("25"),
		Status:          entity.OrderStatusPending,
		ShippingAddress: "12 Market Road",
		CreatedDate:     joined,
		ProductName:     product.Name,
	}

	return user, product, post, order
}

func TestRenderer_Pages(t *testing.T) {
	renderer, err := view.New()
	require.NoError(t, err)

	user, product, post, order := fixtures()
	item := &entity.CartItem{ProductID: product.ID, Quantity: 2, Product: product}
	orphan := &entity.CartItem{ProductID: uuid.New(), Quantity: 1}
	cart := &entity.Cart{Items: []*entity.CartItem{item, orphan}, Total: decimal.RequireFromString("25")}
	category := &entity.Category{ID: uuid.New(), Name: "Seeds", Type: entity.CategoryTypeProduct}

	tests := []struct {
		name     string
		data     any
		contains []string
	}{
		{
			name:     "index",
			data:     &usecase.HomeOutput{FeaturedProducts: []*entity.Product{product}, LatestPosts: []*entity.Post{post}},
			contains: []string{"Maize seed", "12.50", "/uploads/products%2Fmaize%20seed.png", "Rotating legumes", "Mar 05, 2024"},
		},
		{
			name:     "index",
			data:     &usecase.HomeOutput{},
			contains: []string{"No featured products yet.", "Nothing posted yet."},
		},
		{
			name: "dashboard",
			data: &usecase.DashboardOutput{
				User:     user,
				Products: []*entity.Product{product},
				Posts:    []*entity.Post{post},
				Orders:   []*entity.Order{order},
			},
			contains: []string{"Welcome, amina", "Approved consultant", "(4 in stock)", "25.00"},
		},
		{
			name: "products",
			data: handler.ProductsView{
				Products:         []*entity.Product{product},
				Categories:       []string{"Seeds", "Tools"},
				SelectedCategory: "Seeds",
				SearchQuery:      "maize",
			},
			contains: []string{`<option value="Seeds" selected>`, `value="maize"`, "Seeds / Cereals"},
		},
		{
			name:     "product_detail",
			data:     product,
			contains: []string{"4 in stock", "/add_to_cart/" + product.ID.String(), "/product/" + product.ID.String() + "/qr"},
		},
		{
			name:     "product_detail",
			data:     &entity.Product{ID: uuid.New(), Name: "Hoe", Price: decimal.NewFromInt(3)},
			contains: []string{"Out of stock"},
		},
		{
			name:     "add_product",
			data:     []*entity.Category{category},
			contains: []string{`<option value="Seeds">`, `name="workbook"`},
		},
		{
			name:     "cart",
			data:     cart,
			contains: []string{"Maize seed", `data-product="` + product.ID.String() + `"`, `id="cart-total">25.00`},
		},
		{
			name:     "cart",
			data:     &entity.Cart{},
			contains: []string{"Your cart is empty."},
		},
		{
			name:     "checkout",
			data:     cart,
			contains: []string{"Maize seed &times; 2", "shipping_address"},
		},
		{
			name:     "order_confirmation",
			data:     order,
			contains: []string{order.ID.String(), "pending", "12 Market Road"},
		},
		{
			name:     "orders",
			data:     []*entity.Order{order},
			contains: []string{"Mar 05, 2024", "Maize seed", "25.00"},
		},
		{
			name:     "posts",
			data:     handler.PostsView{Type: entity.PostTypeForum, Posts: []*entity.Post{post}},
			contains: []string{"Forum", "/forum/new", ">soil</span>", ">legumes</span>", "/product/" + product.ID.String()},
		},
		{
			name:     "posts",
			data:     handler.PostsView{Type: entity.PostTypeBlog},
			contains: []string{"Blog", "Nothing posted yet."},
		},
		{
			name:     "new_post",
			data:     handler.NewPostView{Type: entity.PostTypeBlog, Categories: []*entity.Category{category}},
			contains: []string{"New blog article", `action="/blog/new"`, category.ID.String()},
		},
		{
			name:     "consultants",
			data:     []*entity.User{user},
			contains: []string{"amina", "Agronomy", "Nakuru", "/book_consultation/" + user.ID.String()},
		},
		{
			name:     "become_consultant",
			contains: []string{`name="experience"`},
		},
		{
			name:     "book_consultation",
			data:     user,
			contains: []string{"Book amina", `value="Agronomy"`},
		},
		{
			name:     "login",
			data:     handler.LoginView{Next: "/orders"},
			contains: []string{`name="next" value="/orders"`},
		},
		{
			name:     "register",
			contains: []string{`name="profile_picture"`},
		},
		{
			name:     "reset_request",
			contains: []string{`action="/reset_request"`},
		},
		{
			name:     "reset_password",
			data:     handler.ResetPasswordView{Token: "abc.def", Email: user.Email},
			contains: []string{"For amina@example.com", `action="/reset_password/abc.def"`},
		},
		{
			name:     "error",
			data:     response.ErrorView{Status: http.StatusTooManyRequests, Message: "Slow down"},
			contains: []string{"429", "Slow down"},
		},
		{
			name:     "404",
			contains: []string{"does not exist"},
		},
		{
			name:     "500",
			contains: []string{"Something went wrong"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.True(t, renderer.Has(tt.name))

			page := &view.Page{
				Title:     "Page",
				Session:   &entity.Session{UserID: user.ID, Username: user.Username},
				CartCount: 3,
				Flashes:   []flash.Message{{Category: flash.Success, Text: "Saved!"}},
				CSRFToken: "csrf-123",
				Data:      tt.data,
			}

			var buf bytes.Buffer
			require.NoError(t, renderer.Render(&buf, tt.name, page, nil))

			body := buf.String()
			assert.Contains(t, body, "<title>Page | AgriFarma</title>")
			assert.Contains(t, body, `content="csrf-123"`)
			assert.Contains(t, body, "Saved!")
			for _, want := range tt.contains {
				assert.Contains(t, body, want)
			}
		})
	}
}

func TestRenderer_AnonymousLayout(t *testing.T) {
	renderer, err := view.New()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, renderer.Render(&buf, "index", &view.Page{Data: &usecase.HomeOutput{}}, nil))

	body := buf.String()
	assert.Contains(t, body, "<title>AgriFarma</title>")
	assert.Contains(t, body, `href="/login"`)
	assert.NotContains(t, body, `href="/logout"`)
}

func TestRenderer_UnknownTemplate(t *testing.T) {
	renderer, err := view.New()
	require.NoError(t, err)

	assert.False(t, renderer.Has("layout"))
	assert.False(t, renderer.Has("missing"))

	var buf bytes.Buffer
	err = renderer.Render(&buf, "missing", &view.Page{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `template "missing" not found`)
}
