package middleware

import (
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/warbler-backend/internal/infrastructure/i18n"
)

const (
	// LanguageContextKey é a chave usada para armazenar o idioma no contexto do Gin
	LanguageContextKey = "language"
	// I18nServiceContextKey é a chave usada para armazenar o serviço i18n no contexto
	I18nServiceContextKey = "i18n_service"
	// LanguageCookieName guarda a escolha explícita feita via ?lang=
	LanguageCookieName = "warbler_lang"

	languageCookieMaxAge = 365 * 24 * 60 * 60
)

// I18nMiddleware gerencia a detecção de idioma nas requisições
type I18nMiddleware struct {
	i18nService *i18n.Service
}

// NewI18nMiddleware cria um novo middleware de i18n
func NewI18nMiddleware(i18nService *i18n.Service) *I18nMiddleware {
	return &I18nMiddleware{
		i18nService: i18nService,
	}
}

// DetectLanguage detecta e configura o idioma da requisição
// Prioridade:
// 1. Query parameter ?lang=pt-BR (também grava o cookie de preferência)
// 2. Cookie warbler_lang
// 3. Accept-Language header, respeitando os pesos q
// 4. Idioma padrão
func (m *I18nMiddleware) DetectLanguage() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := m.match(c.Query("lang"))
		if lang != "" {
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(LanguageCookieName, lang, languageCookieMaxAge, "/", "", false, false)
		}

		if lang == "" {
			if cookie, err := c.Cookie(LanguageCookieName); err == nil {
				lang = m.match(cookie)
			}
		}

		if lang == "" {
			lang = m.parseAcceptLanguage(c.GetHeader("Accept-Language"))
		}

		if lang == "" {
			lang = m.i18nService.GetDefaultLanguage()
		}

		c.Set(LanguageContextKey, lang)
		c.Set(I18nServiceContextKey, m.i18nService)

		c.Next()
	}
}

type weightedLanguage struct {
	tag    string
	weight float64
}

// parseAcceptLanguage devolve o idioma suportado de maior peso q.
// Exemplo: "en;q=0.5,pt-BR" -> "pt-BR"
func (m *I18nMiddleware) parseAcceptLanguage(acceptLang string) string {
	if acceptLang == "" {
		return ""
	}

	var candidates []weightedLanguage
	for _, part := range strings.Split(acceptLang, ",") {
		tag, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		tag = strings.TrimSpace(tag)
		if tag == "" || tag == "*" {
			continue
		}

		weight := 1.0
		if q, ok := strings.CutPrefix(strings.TrimSpace(params), "q="); ok {
			parsed, err := strconv.ParseFloat(q, 64)
			if err != nil {
				continue
			}
			weight = parsed
		}
		if weight <= 0 {
			continue
		}

		candidates = append(candidates, weightedLanguage{tag: tag, weight: weight})
	}

	// Estável: empates mantêm a ordem do header
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].weight > candidates[j].weight
	})

	for _, candidate := range candidates {
		if lang := m.match(candidate.tag); lang != "" {
			return lang
		}
	}

	return ""
}

// match resolve uma tag para um idioma suportado:
// exata (pt-BR), sem região (en-US -> en) ou variante regional (pt -> pt-BR)
func (m *I18nMiddleware) match(tag string) string {
	if tag == "" {
		return ""
	}

	if m.i18nService.IsLanguageSupported(tag) {
		return tag
	}

	base, _, hasRegion := strings.Cut(tag, "-")
	if hasRegion && m.i18nService.IsLanguageSupported(base) {
		return base
	}

	supported := m.i18nService.GetSupportedLanguages()
	sort.Strings(supported)
	for _, lang := range supported {
		if strings.EqualFold(strings.SplitN(lang, "-", 2)[0], base) {
			return lang
		}
	}

	return ""
}
