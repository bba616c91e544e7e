package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Host         string
	Port         int
	AllowOrigins []string
	LogLevel     string
	LogFile      string
	MaxBodyKB    int
	RateRPS      float64
	RateBurst    int

	ProductsPath string
	RulesPath    string

	SuggestLimit    int
	SuggestMinScore float64
	MaxBasketItems  int
}

func Load() Config {
	port, _ := strconv.Atoi(getenv("PORT", "8081"))
	bodyKB, _ := strconv.Atoi(getenv("MAX_BODY_KB", "64"))
	rps, _ := strconv.ParseFloat(getenv("RATE_RPS", "20"), 64)
	burst, _ := strconv.Atoi(getenv("RATE_BURST", "40"))
	limit, _ := strconv.Atoi(getenv("SUGGEST_LIMIT", "5"))
	minScore, _ := strconv.ParseFloat(getenv("SUGGEST_MIN_SCORE", "60"), 64)
	maxBasket, _ := strconv.Atoi(getenv("MAX_BASKET_ITEMS", "12"))
	origins := strings.Split(getenv("ALLOW_ORIGINS", "*"), ",")
	return Config{
		Host:         getenv("HOST", "127.0.0.1"),
		Port:         port,
		AllowOrigins: origins,
		LogLevel:     getenv("LOG_LEVEL", "info"),
		LogFile:      getenv("LOG_FILE", "logs/basket-service.log"),
		MaxBodyKB:    bodyKB,
		RateRPS:      rps,
		RateBurst:    burst,

		ProductsPath: getenv("PRODUCTS_PATH", "data/products.xlsx"),
		RulesPath:    getenv("RULES_PATH", "data/rules.csv"),

		SuggestLimit:    limit,
		SuggestMinScore: minScore,
		MaxBasketItems:  maxBasket,
	}
}

func (c Config) Addr() string { return fmt.Sprintf("%s:%d", c.Host, c.Port) }

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
