package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/dashboard-pro/internal/application/dto"
	"github.com/tu-usuario/dashboard-pro/internal/application/usecase"
)

// MessageHandler maneja las peticiones HTTP de mensajes de soporte.
type MessageHandler struct {
	uc *usecase.MessageUseCase
}

// NewMessageHandler construye el handler.
func NewMessageHandler(uc *usecase.MessageUseCase) *MessageHandler {
	return &MessageHandler{uc: uc}
}

// Create godoc
// @Summary      Enviar mensaje de soporte
// @Tags         messages
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMessageRequest  true  "Mensaje"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/messages [post]
func (h *MessageHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMessageRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar mensajes (con remitente resuelto)
// @Tags         messages
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MessageListResponse
// @Router       /api/messages [get]
func (h *MessageHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// MarkRead godoc
// @Summary      Marcar mensaje como leído (no-op si no existe)
// @Tags         messages
// @Security     Bearer
// @Param        id  path  int  true  "ID del mensaje"
// @Success      204
// @Router       /api/messages/{id}/read [put]
func (h *MessageHandler) MarkRead(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return invalidID(c)
	}
	if err := h.uc.MarkRead(int64(id)); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
