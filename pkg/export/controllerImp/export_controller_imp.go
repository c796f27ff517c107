package controllerImp

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"cropcast/pkg/apperr"
	"cropcast/pkg/export"
	"cropcast/pkg/middleware"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportCtrl struct{ r *export.Reporter }

func New(r *export.Reporter) *ExportCtrl { return &ExportCtrl{r} }

// Farm serves GET /farms/:id/export.
func (h *ExportCtrl) Farm(c echo.Context) error {
	buf, name, err := h.r.FarmWorkbook(c.Param("id"), middleware.UserID(c))
	if err != nil {
		return apperr.JSON(c, err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, name))
	return c.Blob(http.StatusOK, xlsxMIME, buf.Bytes())
}
