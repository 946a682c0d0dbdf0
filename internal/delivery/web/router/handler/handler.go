// Package handler holds the echo handlers of the web delivery.
package handler

import (
	"mime/multipart"
	"net/http"

	deliverycontext "agrifarma/internal/delivery/context"
	domainerrors "agrifarma/internal/domain/errors"
	"agrifarma/internal/errors"
	"agrifarma/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// currentUserID returns the id of the logged-in member. Routes using it sit
// behind RequireLogin, so a missing session is a wiring bug.
func currentUserID(c echo.Context) (uuid.UUID, error) {
	session, ok := deliverycontext.GetSession(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrSessionInvalid
	}

	return session.UserID, nil
}

// pathID parses a UUID route parameter. Malformed ids are treated as unknown pages.
func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, echo.ErrNotFound
	}

	return id, nil
}

// bindForm binds and validates a request DTO.
func bindForm(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return c.Validate(req)
}

// formUpload opens an optional uploaded file. The returned closer is never nil.
func formUpload(c echo.Context, field string) (*usecase.FileUpload, func(), error) {
	noop := func() {}

	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, noop, nil
		}

		return nil, noop, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}
	if header.Filename == "" || header.Size == 0 {
		return nil, noop, nil
	}

	file, err := header.Open()
	if err != nil {
		return nil, noop, errors.Wrap(err, "failed to open upload")
	}

	return &usecase.FileUpload{
		Filename:    header.Filename,
		ContentType: contentType(header),
		Content:     file,
	}, func() { _ = file.Close() }, nil
}

func contentType(header *multipart.FileHeader) string {
	if ct := header.Header.Get(echo.HeaderContentType); ct != "" {
		return ct
	}

	return echo.MIMEOctetStream
}

// isKind reports whether err is an AppError of the given kind.
func isKind(err error, kind domainerrors.Kind) bool {
	appErr, ok := errors.AsType[domainerrors.AppError](err)

	return ok && appErr.Kind() == kind
}
