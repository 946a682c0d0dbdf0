package handler

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"agrifarma/config"
	deliverycontext "agrifarma/internal/delivery/context"
	"agrifarma/internal/delivery/web/flash"
	"agrifarma/internal/delivery/web/response"
	domainerrors "agrifarma/internal/domain/errors"
	"agrifarma/internal/errors"
	"agrifarma/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PasswordResetHandlerParams holds dependencies for PasswordResetHandler, injected by Fx.
type PasswordResetHandlerParams struct {
	fx.In

	PasswordResetUC usecase.PasswordResetUsecase
	Config          *config.Config
	Logger          *slog.Logger
}

// PasswordResetHandler serves the credential recovery pages. The reset link
// is shown to the user instead of being mailed.
type PasswordResetHandler struct {
	passwordResetUC usecase.PasswordResetUsecase
	baseURL         string
	logger          *slog.Logger
}

// NewPasswordResetHandler is the constructor for PasswordResetHandler
func NewPasswordResetHandler(params PasswordResetHandlerParams) *PasswordResetHandler {
	return &PasswordResetHandler{
		passwordResetUC: params.PasswordResetUC,
		baseURL:         strings.TrimRight(params.Config.HTTP.BaseURL, "/"),
		logger:          params.Logger,
	}
}

// ResetRequestRequest is the reset request form.
type ResetRequestRequest struct {
	Email string `form:"email" validate:"max=120" label:"Email"`
}

// ResetPasswordRequest is the new password form.
type ResetPasswordRequest struct {
	Password        string `form:"password"`
	ConfirmPassword string `form:"confirm_password"`
}

// ResetPasswordView feeds the reset_password template.
type ResetPasswordView struct {
	Token string
	Email string
}

// ShowResetRequest renders the email form.
func (h *PasswordResetHandler) ShowResetRequest(c echo.Context) error {
	return response.Render(c, http.StatusOK, "reset_request", "Reset password", nil)
}

// ResetRequest issues a reset link for a registered email.
func (h *PasswordResetHandler) ResetRequest(c echo.Context) error {
	var req ResetRequestRequest
	if err := bindForm(c, &req); err != nil {
		return response.FlashError(c, err, "/reset_request")
	}
	if strings.TrimSpace(req.Email) == "" {
		return response.FlashRedirect(c, flash.Danger, "Please enter your email address.", "/reset_request")
	}

	token, err := h.passwordResetUC.RequestPasswordReset(c.Request().Context(), req.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return response.FlashRedirect(c, flash.Warning, domainerrors.MessageOf(err), "/reset_request")
		}

		return h.handleAppError(c, err, "/reset_request")
	}

	return response.FlashRedirect(c, flash.Info, "Password reset link (simulated): "+h.resetLink(token), "/login")
}

// ShowResetPassword renders the new password form for a valid token.
func (h *PasswordResetHandler) ShowResetPassword(c echo.Context) error {
	token := c.Param("token")

	email, err := h.passwordResetUC.VerifyResetToken(c.Request().Context(), token)
	if err != nil {
		return h.handleAppError(c, err, "/reset_request")
	}

	return response.Render(c, http.StatusOK, "reset_password", "Choose a new password", ResetPasswordView{
		Token: token,
		Email: email,
	})
}

// ResetPassword stores the new password and revokes existing sessions.
func (h *PasswordResetHandler) ResetPassword(c echo.Context) error {
	token := c.Param("token")
	formPath := "/reset_password/" + url.PathEscape(token)

	var req ResetPasswordRequest
	if err := bindForm(c, &req); err != nil {
		return response.FlashError(c, err, formPath)
	}

	err := h.passwordResetUC.ResetPassword(c.Request().Context(), &usecase.ResetPasswordInput{
		Token:           token,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	switch {
	case err == nil:
		return response.FlashRedirect(c, flash.Success, "Your password has been reset. Please log in.", "/login")
	case errors.Is(err, domainerrors.ErrResetTokenInvalid):
		return response.FlashError(c, err, "/reset_request")
	default:
		return h.handleAppError(c, err, formPath)
	}
}

func (h *PasswordResetHandler) resetLink(token string) string {
	return h.baseURL + "/reset_password/" + url.PathEscape(token)
}

func (h *PasswordResetHandler) handleAppError(c echo.Context, err error, location string) error {
	if isKind(err, domainerrors.KindPersistence) {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Error("Password reset failed", slog.Any("error", err))
	}

	return response.FlashError(c, err, location)
}
