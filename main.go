package main

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/styleai-app/styleai-server/ai"
	"github.com/styleai-app/styleai-server/api"
	"github.com/styleai-app/styleai-server/config"
	"github.com/styleai-app/styleai-server/shops"
	"github.com/styleai-app/styleai-server/stylist"
	"github.com/styleai-app/styleai-server/utils"
	"github.com/styleai-app/styleai-server/vision"
)

func main() {
	setupLogging()
	config.LoadConfig()

	if err := utils.ConnectMongo(config.MongoURI); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}

	// An empty key is tolerated at boot; AI endpoints then report a
	// configuration error instead of crashing the process.
	if config.GeminiAPIKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set; AI endpoints will return a configuration error")
	}
	gen := ai.NewClient(config.GeminiAPIKey)

	handlers := &api.API{
		Engine:   stylist.NewEngine(gen, log.Logger),
		Detector: vision.NewDetector(gen, log.Logger),
		Analyzer: vision.NewAnalyzer(gen, log.Logger),
		Resolver: shops.NewSearchLinkResolver(shops.DefaultStores()),
		Log:      log.Logger,
	}

	r := mux.NewRouter()
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	}).Methods("GET")
	api.RegisterRoutes(r, handlers)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type", "X-Client-Info", "Apikey"},
	}).Handler(utils.LatencyMiddleware(r))

	log.Info().Str("port", config.Port).Msg("server starting")
	if err := http.ListenAndServe(":"+config.Port, corsHandler); err != nil {
		log.Fatal().Err(err).Msg("server failed to start")
	}
}

func setupLogging() {
	zerolog.TimeFieldFormat = time.RFC3339
	cw := zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stdout
		w.TimeFormat = time.RFC3339
	})
	log.Logger = zerolog.New(cw).With().Timestamp().Logger()
}
