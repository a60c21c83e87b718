package dto

import (
	"github.com/gin-gonic/gin"

	"github.com/rafabene/warbler-backend/internal/handlers/middleware"
	"github.com/rafabene/warbler-backend/internal/infrastructure/i18n"
)

// fallbackLanguage é usado quando a rota não passou pelo middleware de i18n
const fallbackLanguage = "en"

// T traduz key no idioma da requisição.
// Sem serviço i18n no contexto a própria chave é devolvida.
// Uso: dto.T(c, "error.not_found.detail", map[string]interface{}{"Resource": "User"})
func T(c *gin.Context, key string, params ...map[string]interface{}) string {
	service := translator(c)
	if service == nil {
		return key
	}
	return service.T(GetLanguage(c), key, params...)
}

// TError traduz um erro sentinela do domínio (o texto do erro é a chave)
func TError(c *gin.Context, err error) string {
	return T(c, err.Error())
}

// GetLanguage retorna o idioma detectado para a requisição
func GetLanguage(c *gin.Context) string {
	if lang := c.GetString(middleware.LanguageContextKey); lang != "" {
		return lang
	}
	if service := translator(c); service != nil {
		return service.GetDefaultLanguage()
	}
	return fallbackLanguage
}

func translator(c *gin.Context) *i18n.Service {
	value, exists := c.Get(middleware.I18nServiceContextKey)
	if !exists {
		return nil
	}
	service, _ := value.(*i18n.Service)
	return service
}
