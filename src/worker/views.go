package worker

import (
	"net/http"
	"time"

	"strategy/src/clients/telegram"
	"strategy/src/clients/tinvest"
	"strategy/src/config"
	"strategy/src/database"
	"strategy/src/ratelimit"
	"strategy/src/repositories"
	"strategy/src/services"
	"strategy/src/utils"
	redis_utils "strategy/src/utils/redis"
	"strategy/src/worker/controllers"
	"strategy/src/worker/handlers"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

type Server struct {
	Router     *chi.Mux
	Handler    *handlers.Handler
	Controller *controllers.Controller
	Logger     *logrus.Logger
}

func NewServer(cfg *config.Config, logger *logrus.Logger) (*Server, error) {
	db, err := database.SetupDB(cfg)
	if err != nil {
		return nil, err
	}

	// The counter must be shared across every caller of the brokerage API.
	// Without a Redis host the process falls back to a local counter.
	var counter ratelimit.Counter
	if cfg.Databases.Redis.Host != "" {
		redisHandler, err := redis_utils.NewRedisHandler(cfg)
		if err != nil {
			return nil, err
		}
		counter = ratelimit.NewRedisCounter(redisHandler)
	} else {
		logger.Warn("no Redis configured, using process-local request counter")
		counter = ratelimit.NewMemoryCounter()
	}
	limiter := ratelimit.NewLimiter(counter, cfg.RateLimit.Threshold,
		time.Duration(cfg.RateLimit.BackoffSeconds)*time.Second)

	marketClient, err := tinvest.NewClient(cfg, limiter)
	if err != nil {
		return nil, err
	}
	botClient, err := telegram.NewClient(cfg)
	if err != nil {
		return nil, err
	}

	userRepository := repositories.NewUserRepository(db)
	holdingRepository := repositories.NewHoldingRepository(db)
	priceRepository := repositories.NewInstrumentPriceRepository(db)
	dividendRepository := repositories.NewDividendRepository(db)
	candidateRepository := repositories.NewCandidateRepository(db)
	settingsRepository := repositories.NewSettingsRepository(db)

	notifier := services.NewNotifierService(holdingRepository, settingsRepository, botClient)
	refreshService := services.NewRefreshService(
		cfg.ExternalClients.TInvest.Token, marketClient, priceRepository, holdingRepository, notifier)
	dividendService := services.NewDividendService(
		cfg.ExternalClients.TInvest.Token, marketClient, priceRepository, dividendRepository, settingsRepository)
	candidateService := services.NewCandidateService(dividendRepository, candidateRepository, settingsRepository)
	dashboardService := services.NewDashboardService(
		holdingRepository, priceRepository, dividendRepository, candidateRepository, settingsRepository)
	portfolioService := services.NewPortfolioService(
		userRepository, settingsRepository, holdingRepository, dividendRepository)

	controller := controllers.NewController(
		refreshService, dividendService, candidateService, dashboardService, portfolioService, limiter)

	server := &Server{
		Router:     chi.NewRouter(),
		Handler:    handlers.NewHandler(controller),
		Controller: controller,
		Logger:     logger,
	}
	server.InitRoutes()
	return server, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

func (s *Server) InitRoutes() {
	s.Router.Use(s.loggerMiddleware)
	s.Router.Get("/alive", handlers.Healthcheck)
	s.Router.Route("/api", func(r chi.Router) {
		r.Post("/refresh/assets", s.Handler.RefreshAssets)
		r.Post("/refresh/dividends/{userID}", s.Handler.RefreshDividends)
		r.Post("/refresh/candidates/{userID}", s.Handler.GenerateCandidates)
		r.Post("/counter/reset", s.Handler.ResetCounter)
		r.Get("/dashboard/{userID}", s.Handler.Dashboard)
		r.Get("/dividends/{userID}", s.Handler.Dividends)
		r.Get("/candidates/{userID}", s.Handler.Candidates)

		r.Post("/users", s.Handler.CreateUser)
		r.Post("/users/{userID}/holdings", s.Handler.AddHolding)
		r.Get("/settings/{userID}", s.Handler.Settings)
		r.Put("/settings/{userID}", s.Handler.UpdateSettings)
		r.Delete("/holdings/{holdingID}", s.Handler.RemoveHolding)
		r.Patch("/holdings/{holdingID}", s.Handler.UpdateHoldingField)
		r.Patch("/events/{eventID}/priority", s.Handler.SetEventPriority)
	})
}

func (s *Server) loggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(utils.WithLogger(r.Context(), s.Logger)))
	})
}

func NewHTTPServer(server *Server, port string) *http.Server {
	httpServer := &http.Server{
		Addr:        ":" + port,
		ReadTimeout: 30 * time.Second,
		// Refresh triggers are synchronous and may sit inside the rate-limit
		// backoff loop for a while.
		WriteTimeout: 30 * time.Minute,
		Handler:      server,
	}
	return httpServer
}
