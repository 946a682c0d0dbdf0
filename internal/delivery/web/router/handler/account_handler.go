package handler

import (
	"log/slog"
	"net/http"
	"net/url"

	"agrifarma/config"
	deliverycontext "agrifarma/internal/delivery/context"
	"agrifarma/internal/delivery/web/flash"
	webmiddleware "agrifarma/internal/delivery/web/middleware"
	"agrifarma/internal/delivery/web/response"
	domainerrors "agrifarma/internal/domain/errors"
	"agrifarma/internal/errors"
	"agrifarma/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	SessionUC usecase.SessionUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// AccountHandler covers registration, login and the member dashboard.
type AccountHandler struct {
	accountUC    usecase.AccountUsecase
	sessionUC    usecase.SessionUsecase
	secureCookie bool
	logger       *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC:    params.AccountUC,
		sessionUC:    params.SessionUC,
		secureCookie: params.Config.Auth != nil && params.Config.Auth.SecureCookie,
		logger:       params.Logger,
	}
}

// RegisterRequest is the registration form.
type RegisterRequest struct {
	Username   string `form:"username" validate:"max=80" label:"Username"`
	Email      string `form:"email" validate:"max=120" label:"Email"`
	Password   string `form:"password"`
	Mobile     string `form:"mobile" validate:"max=20" label:"Mobile"`
	Location   string `form:"location" validate:"max=100" label:"Location"`
	Profession string `form:"profession" validate:"max=100" label:"Profession"`
	Expertise  string `form:"expertise" validate:"max=200" label:"Expertise"`
}

// LoginRequest is the login form.
type LoginRequest struct {
	Email    string `form:"email"`
	Password string `form:"password"`
	Next     string `form:"next" query:"next"`
}

// LoginView feeds the login template.
type LoginView struct {
	Next string
}

// ShowRegister renders the registration form.
func (h *AccountHandler) ShowRegister(c echo.Context) error {
	return response.Render(c, http.StatusOK, "register", "Register", nil)
}

// Register creates the account and sends the member to the login page.
func (h *AccountHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindForm(c, &req); err != nil {
		return response.FlashError(c, err, "/register")
	}

	picture, closePicture, err := formUpload(c, "profile_picture")
	if err != nil {
		return response.FlashError(c, err, "/register")
	}
	defer closePicture()

	_, err = h.accountUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Username:       req.Username,
		Email:          req.Email,
		Password:       req.Password,
		Mobile:         req.Mobile,
		Location:       req.Location,
		Profession:     req.Profession,
		Expertise:      req.Expertise,
		ProfilePicture: picture,
	})
	if err != nil {
		return h.handleAppError(c, err, "/register")
	}

	return response.FlashRedirect(c, flash.Success, "Registration successful! Please login.", "/login")
}

// ShowLogin renders the login form, keeping the next parameter.
func (h *AccountHandler) ShowLogin(c echo.Context) error {
	return response.Render(c, http.StatusOK, "login", "Login", LoginView{
		Next: webmiddleware.SafeNext(c.QueryParam("next"), ""),
	})
}

// Login starts a session and follows next when it points inside the site.
func (h *AccountHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindForm(c, &req); err != nil {
		return response.FlashError(c, err, "/login")
	}

	next := webmiddleware.SafeNext(req.Next, "")
	retry := "/login"
	if next != "" {
		retry += "?next=" + url.QueryEscape(next)
	}

	out, err := h.sessionUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrValidationFailed) {
			return response.FlashRedirect(c, flash.Danger, "Please enter both email and password.", retry)
		}

		return h.handleAppError(c, err, retry)
	}

	webmiddleware.SetSessionCookie(c, out.Token, out.Session.ExpiresAt, h.secureCookie)
	flash.Add(c, flash.Success, "Login successful!")

	return response.Redirect(c, webmiddleware.SafeNext(next, "/dashboard"))
}

// Logout ends the session and clears the cookie.
func (h *AccountHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(webmiddleware.SessionCookieName); err == nil && cookie.Value != "" {
		if err := h.sessionUC.Logout(c.Request().Context(), cookie.Value); err != nil {
			return errors.Wrap(err, "failed to end session")
		}
	}
	webmiddleware.ClearSessionCookie(c, h.secureCookie)

	return response.FlashRedirect(c, flash.Info, "You have been logged out.", "/login")
}

// Dashboard shows the member's own listings, posts and recent orders.
func (h *AccountHandler) Dashboard(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	dashboard, err := h.accountUC.Dashboard(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return response.FlashRedirect(c, flash.Danger, "User not found. Please login again.", "/logout")
		}

		return errors.Wrap(err, "failed to load dashboard")
	}

	return response.Render(c, http.StatusOK, "dashboard", "Dashboard", dashboard)
}

// handleAppError flashes user-facing failures and lets the error handler
// deal with everything else.
func (h *AccountHandler) handleAppError(c echo.Context, err error, location string) error {
	if isKind(err, domainerrors.KindPersistence) {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Error("Account request failed", slog.Any("error", err))
	}

	return response.FlashError(c, err, location)
}
