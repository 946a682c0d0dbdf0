// Package router contains routing for the web delivery.
package router

import (
	"net/http"
	"time"

	"agrifarma/config"
	"agrifarma/internal/delivery/web/middleware"
	"agrifarma/internal/delivery/web/router/handler"
	"agrifarma/internal/domain/entity"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

const throttledMessage = "Too many attempts. Please wait a moment and try again."

type RouterParams struct {
	fx.In

	HomeHandler          *handler.HomeHandler
	AccountHandler       *handler.AccountHandler
	CatalogHandler       *handler.CatalogHandler
	ContentHandler       *handler.ContentHandler
	ConsultationHandler  *handler.ConsultationHandler
	CartHandler          *handler.CartHandler
	CheckoutHandler      *handler.CheckoutHandler
	PasswordResetHandler *handler.PasswordResetHandler
	UploadHandler        *handler.UploadHandler
	SessionMiddleware    *middleware.SessionMiddleware
	Config               *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	home          *handler.HomeHandler
	account       *handler.AccountHandler
	catalog       *handler.CatalogHandler
	content       *handler.ContentHandler
	consultation  *handler.ConsultationHandler
	cart          *handler.CartHandler
	checkout      *handler.CheckoutHandler
	passwordReset *handler.PasswordResetHandler
	upload        *handler.UploadHandler
	session       *middleware.SessionMiddleware
	config        *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		home:          params.HomeHandler,
		account:       params.AccountHandler,
		catalog:       params.CatalogHandler,
		content:       params.ContentHandler,
		consultation:  params.ConsultationHandler,
		cart:          params.CartHandler,
		checkout:      params.CheckoutHandler,
		passwordReset: params.PasswordResetHandler,
		upload:        params.UploadHandler,
		session:       params.SessionMiddleware,
		config:        params.Config,
	}
}

// RegisterRoutes sets up every page and endpoint of the site.
func (r *router) RegisterRoutes(e *echo.Echo) {
	login := r.session.RequireLogin
	throttle := r.credentialThrottle()

	e.GET("/health", handler.HealthCheck)
	e.GET("/", r.home.Index)
	e.GET("/uploads/*", r.upload.Serve)

	// Accounts
	e.GET("/register", r.account.ShowRegister)
	e.POST("/register", r.account.Register)
	e.GET("/login", r.account.ShowLogin)
	e.POST("/login", r.account.Login, throttle)
	e.GET("/logout", r.account.Logout)
	e.GET("/dashboard", r.account.Dashboard, login("Please login to access dashboard."))

	// Password recovery
	e.GET("/reset_request", r.passwordReset.ShowResetRequest)
	e.POST("/reset_request", r.passwordReset.ResetRequest, throttle)
	e.GET("/reset_password/:token", r.passwordReset.ShowResetPassword)
	e.POST("/reset_password/:token", r.passwordReset.ResetPassword, throttle)

	// Catalog
	e.GET("/add", r.catalog.ShowAddProduct, login("Please login to add products."))
	e.POST("/add", r.catalog.AddProduct, login("Please login to add products."))
	e.POST("/products/import", r.catalog.ImportProducts, login("Please login to add products."))
	e.GET("/products", r.catalog.ListProducts)
	e.GET("/product/:id", r.catalog.ProductDetail)
	e.GET("/product/:id/qr", r.catalog.ProductQR)

	// Forum and blog
	for _, postType := range []entity.PostType{entity.PostTypeForum, entity.PostTypeBlog} {
		base := "/" + string(postType)
		requirePost := login("Please login to create a post.")

		e.GET(base, r.content.List(postType))
		e.GET(base+"/new", r.content.ShowNew(postType), requirePost)
		e.POST(base+"/new", r.content.Create(postType), requirePost)
	}

	// Consultants
	e.GET("/consultants", r.consultation.ListConsultants)
	consultantGroup := e.Group("/become_consultant", login("Please login to become a consultant."))
	{
		consultantGroup.GET("", r.consultation.ShowBecomeConsultant)
		consultantGroup.POST("", r.consultation.BecomeConsultant)
	}
	bookingGroup := e.Group("/book_consultation", login("Please login to book consultation."))
	{
		bookingGroup.GET("/:id", r.consultation.ShowBookConsultation)
		bookingGroup.POST("/:id", r.consultation.BookConsultation)
	}

	// Cart
	e.GET("/cart", r.cart.ShowCart, login("Please login to view cart."))
	e.Match([]string{http.MethodGet, http.MethodPost}, "/add_to_cart/:id", r.cart.AddToCart, login("Please login to add items to cart."))
	e.POST("/cart/update/:id", r.cart.UpdateQuantity, r.session.RequireLoginJSON)
	e.Match([]string{http.MethodGet, http.MethodPost}, "/cart/remove/:id", r.cart.RemoveFromCart, login("Please login to manage cart."))

	// Checkout
	requireCheckout := login("Please login to checkout.")
	e.GET("/checkout", r.checkout.ShowCheckout, requireCheckout)
	e.POST("/checkout", r.checkout.Checkout, requireCheckout)
	e.GET("/order_confirmation", r.checkout.OrderConfirmation, requireCheckout)
	e.GET("/orders", r.checkout.Orders, login("Please login to view orders."))
}

// credentialThrottle limits credential submissions per client IP.
func (r *router) credentialThrottle() echo.MiddlewareFunc {
	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(r.config.RateLimit.RequestsPerSecond),
		Burst:     r.config.RateLimit.Burst,
		ExpiresIn: 5 * time.Minute,
	})

	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusForbidden, "Unable to identify client.")
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return echo.NewHTTPError(http.StatusTooManyRequests, throttledMessage)
		},
	})
}
