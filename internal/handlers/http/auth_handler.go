package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domainerrors "github.com/rafabene/warbler-backend/internal/domain/errors"
	"github.com/rafabene/warbler-backend/internal/handlers/dto"
	"github.com/rafabene/warbler-backend/internal/services"
)

// CurrentUserIDKey é a chave do ID do usuário autenticado no contexto do Gin
const CurrentUserIDKey = "current_user_id"

// CookieConfig controla o cookie de sessão
type CookieConfig struct {
	Name   string
	Secure bool
	TTL    time.Duration
}

// AuthHandler lida com cadastro, login e logout
type AuthHandler struct {
	accounts *services.AccountService
	sessions *services.SessionService
	cookie   CookieConfig
}

// NewAuthHandler cria um novo AuthHandler
func NewAuthHandler(accounts *services.AccountService, sessions *services.SessionService, cookie CookieConfig) *AuthHandler {
	return &AuthHandler{
		accounts: accounts,
		sessions: sessions,
		cookie:   cookie,
	}
}

// Signup cria uma nova conta
// @Summary      Cadastra um usuário
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body dto.SignupRequest true "Dados de cadastro"
// @Success      201 {object} dto.UserResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Router       /signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBind(&req); err != nil {
		writeBindingError(c, err)
		return
	}

	user, err := h.accounts.Register(c.Request.Context(), services.SignupInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// Login autentica e abre a sessão
// @Summary      Login
// @Tags         auth
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        request body dto.LoginRequest true "Credenciais"
// @Success      200 {object} dto.UserResponse
// @Failure      401 {object} dto.ErrorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		// Credenciais incompletas recebem a mesma resposta que credenciais erradas
		writeError(c, domainerrors.ErrInvalidCredentials)
		return
	}

	result, err := h.sessions.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, result.Token, int(h.cookie.TTL.Seconds()), "/", "", h.cookie.Secure, true)

	c.JSON(http.StatusOK, dto.ToUserResponse(result.User))
}

// Logout encerra a sessão e limpa o cookie
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       /logout [get]
func (h *AuthHandler) Logout(c *gin.Context) {
	token, _ := c.Cookie(h.cookie.Name)

	if err := h.sessions.Logout(c.Request.Context(), token); err != nil {
		writeError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, "", -1, "/", "", h.cookie.Secure, true)

	c.JSON(http.StatusOK, gin.H{"message": dto.T(c, "auth.logged_out")})
}

// RequireSession bloqueia requisições sem sessão válida
func (h *AuthHandler) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(h.cookie.Name)
		if err != nil || token == "" {
			writeError(c, domainerrors.ErrUnauthorized)
			return
		}

		userID, err := h.sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			writeError(c, err)
			return
		}

		c.Set(CurrentUserIDKey, userID)
		c.Next()
	}
}

func currentUserID(c *gin.Context) string {
	return c.GetString(CurrentUserIDKey)
}
