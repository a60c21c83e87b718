package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/warbler-backend/internal/handlers/dto"
	"github.com/rafabene/warbler-backend/internal/services"
)

// UserHandler lida com requisições HTTP relacionadas a usuários e follows
type UserHandler struct {
	userService         *services.UserService
	relationshipService *services.RelationshipService
	messageService      *services.MessageService
}

// NewUserHandler cria um novo UserHandler
func NewUserHandler(
	userService *services.UserService,
	relationshipService *services.RelationshipService,
	messageService *services.MessageService,
) *UserHandler {
	return &UserHandler{
		userService:         userService,
		relationshipService: relationshipService,
		messageService:      messageService,
	}
}

// ListUsers busca usuários por username
// @Summary      Lista usuários
// @Tags         users
// @Produce      json
// @Param        q         query string false "Trecho do username"
// @Param        page      query int    false "Página"
// @Param        page_size query int    false "Itens por página"
// @Success      200 {array} dto.UserResponse
// @Router       /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	users, err := h.userService.SearchUsers(c.Request.Context(), c.Query("q"), page, pageSize)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponses(users))
}

// GetUser busca o perfil de um usuário por ID
// @Summary      Perfil do usuário
// @Tags         users
// @Produce      json
// @Param        id path string true "ID do usuário"
// @Success      200 {object} dto.ProfileResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	profile, err := h.userService.GetProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}

// Followers lista quem segue o usuário
// @Summary      Seguidores
// @Tags         users
// @Produce      json
// @Param        id path string true "ID do usuário"
// @Success      200 {array} dto.UserResponse
// @Router       /users/{id}/followers [get]
func (h *UserHandler) Followers(c *gin.Context) {
	ctx := c.Request.Context()

	if _, err := h.userService.GetUser(ctx, c.Param("id")); err != nil {
		writeError(c, err)
		return
	}

	users, err := h.relationshipService.Followers(ctx, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponses(users))
}

// Following lista quem o usuário segue
// @Summary      Seguindo
// @Tags         users
// @Produce      json
// @Param        id path string true "ID do usuário"
// @Success      200 {array} dto.UserResponse
// @Router       /users/{id}/following [get]
func (h *UserHandler) Following(c *gin.Context) {
	ctx := c.Request.Context()

	if _, err := h.userService.GetUser(ctx, c.Param("id")); err != nil {
		writeError(c, err)
		return
	}

	users, err := h.relationshipService.Following(ctx, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponses(users))
}

// Likes lista as mensagens curtidas pelo usuário
// @Summary      Curtidas do usuário
// @Tags         users
// @Produce      json
// @Param        id path string true "ID do usuário"
// @Success      200 {array} dto.MessageResponse
// @Router       /users/{id}/likes [get]
func (h *UserHandler) Likes(c *gin.Context) {
	ctx := c.Request.Context()

	if _, err := h.userService.GetUser(ctx, c.Param("id")); err != nil {
		writeError(c, err)
		return
	}

	messages, err := h.messageService.Likes(ctx, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMessageResponses(messages))
}

// Messages lista as mensagens do usuário, mais recentes primeiro
// @Summary      Mensagens do usuário
// @Tags         users
// @Produce      json
// @Param        id path string true "ID do usuário"
// @Success      200 {array} dto.MessageResponse
// @Router       /users/{id}/messages [get]
func (h *UserHandler) Messages(c *gin.Context) {
	ctx := c.Request.Context()

	if _, err := h.userService.GetUser(ctx, c.Param("id")); err != nil {
		writeError(c, err)
		return
	}

	messages, err := h.messageService.UserMessages(ctx, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMessageResponses(messages))
}

// Follow faz o usuário logado seguir outro
// @Summary      Seguir usuário
// @Tags         follows
// @Param        id path string true "ID do usuário a seguir"
// @Success      204
// @Failure      409 {object} dto.ErrorResponse
// @Router       /users/follow/{id} [post]
func (h *UserHandler) Follow(c *gin.Context) {
	if err := h.relationshipService.Follow(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Unfollow faz o usuário logado deixar de seguir outro
// @Summary      Deixar de seguir
// @Tags         follows
// @Param        id path string true "ID do usuário"
// @Success      204
// @Failure      404 {object} dto.ErrorResponse
// @Router       /users/follow/{id} [delete]
func (h *UserHandler) Unfollow(c *gin.Context) {
	if err := h.relationshipService.Unfollow(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// UpdateProfile altera o perfil do usuário logado
// @Summary      Editar perfil
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body dto.UpdateProfileRequest true "Novos dados"
// @Success      200 {object} dto.UserResponse
// @Failure      401 {object} dto.ErrorResponse
// @Router       /users/me [patch]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), currentUserID(c), req.ToProfileInput())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// DeleteAccount apaga a conta do usuário logado com tudo que depende dela
// @Summary      Apagar conta
// @Tags         users
// @Success      204
// @Router       /users/me [delete]
func (h *UserHandler) DeleteAccount(c *gin.Context) {
	if err := h.userService.DeleteUser(c.Request.Context(), currentUserID(c)); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
