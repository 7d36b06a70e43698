package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Countries offered in the registration form. Codes are ISO 3166-1 alpha-2.
var allowedCountries = []gin.H{
	{"code": "LY", "name": "ليبيا"},
	{"code": "EG", "name": "مصر"},
	{"code": "TN", "name": "تونس"},
	{"code": "DZ", "name": "الجزائر"},
	{"code": "MA", "name": "المغرب"},
	{"code": "SD", "name": "السودان"},
	{"code": "SA", "name": "السعودية"},
	{"code": "AE", "name": "الإمارات"},
	{"code": "QA", "name": "قطर"},
	{"code": "KW", "name": "الكويت"},
	{"code": "BH", "name": "البحرين"},
	{"code": "OM", "name": "عمان"},
	{"code": "JO", "name": "الأردن"},
	{"code": "LB", "name": "لبنان"},
	{"code": "IQ", "name": "العراق"},
	{"code": "SY", "name": "سوريا"},
	{"code": "YE", "name": "اليمن"},
	{"code": "PS", "name": "فلسطين"},
	{"code": "MR", "name": "موريتانيا"},
	{"code": "TR", "name": "Türkiye"},
	{"code": "GB", "name": "United Kingdom"},
	{"code": "DE", "name": "Germany"},
	{"code": "FR", "name": "France"},
	{"code": "IT", "name": "Italy"},
	{"code": "ES", "name": "Spain"},
	{"code": "NL", "name": "Netherlands"},
	{"code": "SE", "name": "Sweden"},
	{"code": "NO", "name": "Norway"},
	{"code": "MT", "name": "Malta"},
	{"code": "GR", "name": "Greece"},
}

type CountriesHandler struct{}

func NewCountriesHandler() *CountriesHandler {
	return &CountriesHandler{}
}

func (h *CountriesHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"countries": allowedCountries})
}

// DefaultCountry resolves the pre-selected country from a client hint and
// falls back to Libya.
func (h *CountriesHandler) DefaultCountry(c *gin.Context) {
	hint := strings.ToUpper(c.Query("country"))
	if hint == "" {
		hint = strings.ToUpper(c.GetHeader("CF-IPCountry"))
	}
	for _, country := range allowedCountries {
		if country["code"] == hint {
			c.JSON(http.StatusOK, gin.H{"country": hint})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"country": "LY"})
}
