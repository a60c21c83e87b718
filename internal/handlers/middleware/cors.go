package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS configura CORS para a aplicação.
// allowedOrigins é uma lista separada por vírgula; "*" libera qualquer origem.
func CORS(allowedOrigins string) gin.HandlerFunc {
	config := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	origins := make([]string, 0)
	for _, o := range strings.Split(allowedOrigins, ",") {
		o = strings.TrimSpace(o)
		if o == "" {
			continue
		}
		if o == "*" {
			// Com credentials a origem precisa ser ecoada, nunca "*"
			config.AllowOriginFunc = func(string) bool { return true }
			origins = nil
			break
		}
		origins = append(origins, o)
	}
	config.AllowOrigins = origins
	if len(origins) == 0 && config.AllowOriginFunc == nil {
		config.AllowOriginFunc = func(string) bool { return true }
	}

	return cors.New(config)
}
