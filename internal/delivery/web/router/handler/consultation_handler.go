package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "agrifarma/internal/delivery/context"
	"agrifarma/internal/delivery/web/flash"
	"agrifarma/internal/delivery/web/response"
	domainerrors "agrifarma/internal/domain/errors"
	"agrifarma/internal/errors"
	"agrifarma/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ConsultationHandlerParams holds dependencies for ConsultationHandler, injected by Fx.
type ConsultationHandlerParams struct {
	fx.In

	ConsultationUC usecase.ConsultationUsecase
	Logger         *slog.Logger
}

// ConsultationHandler serves the consultant directory and booking forms.
type ConsultationHandler struct {
	consultationUC usecase.ConsultationUsecase
	logger         *slog.Logger
}

// NewConsultationHandler is the constructor for ConsultationHandler
func NewConsultationHandler(params ConsultationHandlerParams) *ConsultationHandler {
	return &ConsultationHandler{
		consultationUC: params.ConsultationUC,
		logger:         params.Logger,
	}
}

// BecomeConsultantRequest is the consultant application form.
type BecomeConsultantRequest struct {
	Category   string `form:"category" validate:"max=100" label:"Category"`
	Experience string `form:"experience"`
	Expertise  string `form:"expertise" validate:"max=200" label:"Expertise"`
	Summary    string `form:"summary"`
}

// BookConsultationRequest is the booking form.
type BookConsultationRequest struct {
	Category      string `form:"category" validate:"max=100" label:"Category"`
	Description   string `form:"description"`
	ScheduledDate string `form:"scheduled_date"`
}

// ListConsultants renders the approved consultants.
func (h *ConsultationHandler) ListConsultants(c echo.Context) error {
	consultants, err := h.consultationUC.ListConsultants(c.Request().Context())
	if err != nil {
		return errors.Wrap(err, "failed to list consultants")
	}

	return response.Render(c, http.StatusOK, "consultants", "Consultants", consultants)
}

// ShowBecomeConsultant renders the application form.
func (h *ConsultationHandler) ShowBecomeConsultant(c echo.Context) error {
	return response.Render(c, http.StatusOK, "become_consultant", "Become a consultant", nil)
}

// BecomeConsultant files the application; an administrator approves it later.
func (h *ConsultationHandler) BecomeConsultant(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req BecomeConsultantRequest
	if err := bindForm(c, &req); err != nil {
		return response.FlashError(c, err, "/become_consultant")
	}

	err = h.consultationUC.BecomeConsultant(c.Request().Context(), userID, &usecase.BecomeConsultantInput{
		Category:   req.Category,
		Experience: req.Experience,
		Expertise:  req.Expertise,
		Summary:    req.Summary,
	})
	if err != nil {
		return h.handleAppError(c, err, "/become_consultant")
	}

	return response.FlashRedirect(c, flash.Success, "Application submitted! Waiting for admin approval.", "/dashboard")
}

// ShowBookConsultation renders the booking form for an approved consultant.
func (h *ConsultationHandler) ShowBookConsultation(c echo.Context) error {
	consultantID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	consultant, err := h.consultationUC.GetBookableConsultant(c.Request().Context(), consultantID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrConsultantNotApproved) {
			return response.FlashError(c, err, "/consultants")
		}

		return err
	}

	return response.Render(c, http.StatusOK, "book_consultation", "Book a consultation", consultant)
}

// BookConsultation creates a pending consultation request.
func (h *ConsultationHandler) BookConsultation(c echo.Context) error {
	clientID, err := currentUserID(c)
	if err != nil {
		return err
	}

	consultantID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	formPath := "/book_consultation/" + consultantID.String()

	var req BookConsultationRequest
	if err := bindForm(c, &req); err != nil {
		return response.FlashError(c, err, formPath)
	}

	_, err = h.consultationUC.BookConsultation(c.Request().Context(), clientID, consultantID, &usecase.BookConsultationInput{
		Category:      req.Category,
		Description:   req.Description,
		ScheduledDate: req.ScheduledDate,
	})
	switch {
	case err == nil:
		return response.FlashRedirect(c, flash.Success, "Consultation request sent successfully!", "/consultants")
	case errors.Is(err, domainerrors.ErrUserNotFound):
		return err
	case errors.Is(err, domainerrors.ErrConsultantNotApproved):
		return response.FlashError(c, err, "/consultants")
	default:
		return h.handleAppError(c, err, formPath)
	}
}

func (h *ConsultationHandler) handleAppError(c echo.Context, err error, location string) error {
	if isKind(err, domainerrors.KindPersistence) {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Error("Consultation request failed", slog.Any("error", err))
	}

	return response.FlashError(c, err, location)
}
