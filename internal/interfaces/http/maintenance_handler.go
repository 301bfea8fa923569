package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-ferreteria-api/internal/application/dto"
	"github.com/jhoicas/pos-ferreteria-api/internal/application/usecase"
)

// MaintenanceHandler expone operaciones administrativas (protegido).
type MaintenanceHandler struct {
	uc *usecase.MaintenanceUseCase
}

// NewMaintenanceHandler construye el handler.
func NewMaintenanceHandler(uc *usecase.MaintenanceUseCase) *MaintenanceHandler {
	return &MaintenanceHandler{uc: uc}
}

// Reset godoc
// @Summary      Borrar los datos operativos
// @Description  Elimina ventas, productos, clientes y categorías. Conserva usuarios y configuración.
// @Tags         maintenance
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reset [post]
func (h *MaintenanceHandler) Reset(c *fiber.Ctx) error {
	if err := h.uc.Reset(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "RESET_FAILED", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "Datos restablecidos"})
}
