package handler

import (
	"io"
	"log/slog"
	"net/http"
	"strings"

	"leadhub/internal/delivery/api/response"
	"leadhub/internal/domain/entity"
	"leadhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const importFormField = "file"

// ImportHandlerParams holds dependencies for ImportHandler, injected by Fx.
type ImportHandlerParams struct {
	fx.In

	ImportUC usecase.ImportUsecase
	Logger   *slog.Logger
}

// ImportHandler accepts vendor CSV exports.
type ImportHandler struct {
	importUC usecase.ImportUsecase
	logger   *slog.Logger
}

// NewImportHandler is the constructor for ImportHandler
func NewImportHandler(params ImportHandlerParams) *ImportHandler {
	return &ImportHandler{
		importUC: params.ImportUC,
		logger:   params.Logger,
	}
}

// ImportVendors reads the CSV from the multipart field "file" or, failing that, the raw body.
func (h *ImportHandler) ImportVendors(c echo.Context) error {
	return withCaller(c, func(caller *entity.Caller) error {
		var source io.Reader = c.Request().Body

		if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
			fileHeader, err := c.FormFile(importFormField)
			if err != nil {
				return response.BadRequest(c, "MISSING_FILE", "Multipart field "+importFormField+" is required")
			}

			file, err := fileHeader.Open()
			if err != nil {
				return response.BadRequest(c, "INVALID_FILE", "Uploaded file cannot be read")
			}
			defer file.Close()

			source = file
		}

		summary, err := h.importUC.ImportVendors(c.Request().Context(), caller, source)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, summary)
	})
}
