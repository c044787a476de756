package main

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"bookclub/internal/enrich"
	apphttp "bookclub/internal/http"
	"bookclub/internal/httpx"
	"bookclub/internal/platform/genai"
	"bookclub/internal/platform/googlebooks"
	"bookclub/internal/platform/openlibrary"
	"bookclub/internal/store"
	"bookclub/internal/usecase"
)

func main() {
	_ = godotenv.Load(".env.local")

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	serverAddress := getEnv("APP_ADDR", ":8000")
	googleBooksURL := getEnv("GOOGLE_BOOKS_URL", "https://www.googleapis.com/books/v1")
	openLibraryURL := getEnv("OPEN_LIBRARY_URL", "https://openlibrary.org")
	genaiURL := getEnv("GENAI_URL", "https://generativelanguage.googleapis.com/v1beta")
	genaiKey := mustGetEnv("GENAI_API_KEY", logger)
	genaiModel := getEnv("GENAI_MODEL", "gemini-pro")
	userAgent := getEnv("HTTP_USER_AGENT", "bookclub/1.0")
	providerTimeout := getEnvInt("PROVIDER_TIMEOUT_SECONDS", 15)
	providerRPS := getEnvInt("PROVIDER_RPS", 5)
	providerRetries := getEnvInt("PROVIDER_MAX_RETRIES", 2)

	booksClient := googlebooks.NewClient(googleBooksURL, providerRPS, providerRetries)
	languageClient := openlibrary.NewClient(openLibraryURL, userAgent, providerRPS, providerRetries)
	summaryClient := genai.NewClient(genaiURL, genaiKey, genaiModel, providerRPS)
	enricher := enrich.NewService(booksClient, languageClient, summaryClient,
		time.Duration(providerTimeout)*time.Second, logger)

	catalog := store.NewCatalog()
	ledger := store.NewLedger()
	library := store.NewLibrary(catalog, ledger)
	service := usecase.NewService(catalog, ledger, library, enricher)

	bookHandler := apphttp.NewBookHandler(service)
	ratingHandler := apphttp.NewRatingHandler(service)
	topHandler := apphttp.NewTopHandler(service)

	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.HandleFunc("GET /books", bookHandler.List)
	router.HandleFunc("POST /books", bookHandler.Create)
	router.HandleFunc("GET /books/{id}", bookHandler.Get)
	router.HandleFunc("PUT /books/{id}", bookHandler.Replace)
	router.HandleFunc("DELETE /books/{id}", bookHandler.Delete)

	router.HandleFunc("GET /ratings", ratingHandler.List)
	router.HandleFunc("GET /ratings/{id}", ratingHandler.Get)
	router.HandleFunc("POST /ratings/{id}/values", ratingHandler.AppendValue)

	router.HandleFunc("GET /top", topHandler.Top)

	rateLimit := httpx.NewRateLimitMiddleware(20, 40)

	var handler http.Handler = router
	handler = httpx.RequestSizeLimitMiddleware(1 << 20)(handler)
	handler = httpx.SecurityHeadersMiddleware(handler)
	handler = rateLimit.Middleware(handler)
	handler = httpx.AccessLogMiddleware(logger)(handler)
	handler = httpx.RecoveryMiddleware(logger)(handler)
	handler = httpx.RequestIDMiddleware(handler)

	httpServer := &http.Server{
		Addr:         serverAddress,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		// Create runs three sequential provider calls, each with its own
		// timeout; the write deadline has to outlast the worst case.
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	logger.Info().Str("addr", serverAddress).Msg("starting server")
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal().Err(err).Msg("server error")
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func mustGetEnv(key string, logger zerolog.Logger) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	logger.Fatal().Str("key", key).Msg("missing required environment variable")
	return ""
}
