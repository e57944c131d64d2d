package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/application/report"
)

// ReportHandler maneja la descarga del reporte de inventario en PDF.
type ReportHandler struct {
	uc *report.InventoryReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.InventoryReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// InventoryPDF godoc
// @Summary      Reporte de inventario en PDF
// @Description  Versión imprimible del tablero: tarjetas de métricas y
//
//	tabla de productos bajo mínimo.
//
// @Tags         reports
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/inventory.pdf [get]
func (h *ReportHandler) InventoryPDF(c *fiber.Ctx) error {
	pdf, err := h.uc.Generate(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="relatorio-estoque.pdf"`)
	return c.Send(pdf)
}
