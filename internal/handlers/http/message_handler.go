package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/warbler-backend/internal/handlers/dto"
	"github.com/rafabene/warbler-backend/internal/services"
)

// MessageHandler lida com mensagens, likes e a timeline
type MessageHandler struct {
	messageService *services.MessageService
}

// NewMessageHandler cria um novo MessageHandler
func NewMessageHandler(messageService *services.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// CreateMessage publica uma mensagem do usuário logado
// @Summary      Publicar mensagem
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateMessageRequest true "Texto"
// @Success      201 {object} dto.MessageResponse
// @Failure      400 {object} dto.ErrorResponse
// @Router       /messages [post]
func (h *MessageHandler) CreateMessage(c *gin.Context) {
	var req dto.CreateMessageRequest
	if err := c.ShouldBind(&req); err != nil {
		writeBindingError(c, err)
		return
	}

	message, err := h.messageService.CreateMessage(c.Request.Context(), currentUserID(c), req.Text)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToMessageResponse(message))
}

// GetMessage busca uma mensagem
// @Summary      Mensagem
// @Tags         messages
// @Produce      json
// @Param        id path string true "ID da mensagem"
// @Success      200 {object} dto.MessageResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /messages/{id} [get]
func (h *MessageHandler) GetMessage(c *gin.Context) {
	message, err := h.messageService.GetMessage(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMessageResponse(message))
}

// DeleteMessage apaga uma mensagem do usuário logado
// @Summary      Apagar mensagem
// @Tags         messages
// @Param        id path string true "ID da mensagem"
// @Success      204
// @Failure      403 {object} dto.ErrorResponse
// @Router       /messages/{id} [delete]
func (h *MessageHandler) DeleteMessage(c *gin.Context) {
	if err := h.messageService.DeleteMessage(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ToggleLike curte ou descurte uma mensagem
// @Summary      Curtir / descurtir
// @Tags         messages
// @Produce      json
// @Param        id path string true "ID da mensagem"
// @Success      200 {object} dto.LikeResponse
// @Router       /messages/{id}/like [post]
func (h *MessageHandler) ToggleLike(c *gin.Context) {
	liked, err := h.messageService.ToggleLike(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LikeResponse{MessageID: c.Param("id"), Liked: liked})
}

// Timeline retorna a home do usuário logado
// @Summary      Timeline
// @Tags         messages
// @Produce      json
// @Param        limit query int false "Máximo de mensagens"
// @Success      200 {array} dto.MessageResponse
// @Router       /timeline [get]
func (h *MessageHandler) Timeline(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	messages, err := h.messageService.Timeline(c.Request.Context(), currentUserID(c), limit)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMessageResponses(messages))
}
