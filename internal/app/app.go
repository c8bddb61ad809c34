package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/synthapp/synth/config"
	"github.com/synthapp/synth/internal/database"
	"github.com/synthapp/synth/internal/domain"
	httpHandler "github.com/synthapp/synth/internal/http"
	"github.com/synthapp/synth/internal/http/middleware"
	"github.com/synthapp/synth/internal/migrations"
	"github.com/synthapp/synth/internal/provider"
	"github.com/synthapp/synth/internal/repository"
	"github.com/synthapp/synth/internal/service"
	"github.com/synthapp/synth/internal/websocket"
	"github.com/synthapp/synth/pkg/cache"
	"github.com/synthapp/synth/pkg/crypto"
	"github.com/synthapp/synth/pkg/logger"
	"github.com/synthapp/synth/pkg/mailer"
	"github.com/synthapp/synth/pkg/ratelimiter"
	"github.com/synthapp/synth/pkg/tracing"
)

const (
	cacheCleanupInterval = time.Minute
	rssFetchTimeout      = 10 * time.Second
	dbStatsInterval      = 5 * time.Second
	hubStopTimeout       = 5 * time.Second
)

// AppInterface defines the interface for the App
type AppInterface interface {
	Initialize() error
	Start() error
	Shutdown(ctx context.Context) error

	// Getters for app components accessed in tests and by the CLI
	GetConfig() *config.Config
	GetLogger() logger.Logger
	GetMux() *http.ServeMux
	GetDB() *sql.DB
	GetMailer() mailer.Mailer
	Handler() http.Handler

	GetVerificationService() *service.VerificationService
	GetPassportService() *service.PassportService
	GetDiscoveryService() *service.DiscoveryService
	GetVerificationRepository() domain.VerificationRepository

	// Server status methods
	IsServerCreated() bool
	WaitForServerStart(ctx context.Context) bool

	// Methods for initialization steps
	InitTracing() error
	InitDB() error
	InitMailer() error
	InitRepositories() error
	InitServices() error
	InitHandlers() error

	// Graceful shutdown methods
	SetShutdownTimeout(timeout time.Duration)
	GetActiveRequestCount() int64
	GetShutdownContext() context.Context
}

// App encapsulates the application dependencies and configuration
type App struct {
	config *config.Config
	logger logger.Logger
	db     *sql.DB
	mailer mailer.Mailer

	// skipMigrations is set when the database handle is injected
	skipMigrations bool
	stopDBStats    func()

	// Repositories
	profileRepo      domain.ProfileRepository
	eventRepo        domain.EventRepository
	interestRepo     domain.InterestRepository
	reviewRepo       domain.ReviewRepository
	friendRepo       domain.FriendRepository
	followRepo       domain.FollowRepository
	matchingRepo     domain.MatchingRepository
	verificationRepo domain.VerificationRepository
	chatRepo         domain.ChatRepository
	passportRepo     domain.PassportRepository
	notificationRepo domain.NotificationRepository
	moderationRepo   domain.ModerationRepository
	cityRepo         domain.CityRepository

	// Services
	authService         *service.AuthService
	profileService      *service.ProfileService
	eventService        *service.EventService
	interestService     *service.InterestService
	reviewService       *service.ReviewService
	friendService       *service.FriendService
	followService       *service.FollowService
	matchingService     *service.MatchingService
	verificationService *service.VerificationService
	chatService         *service.ChatService
	passportService     *service.PassportService
	notificationService *service.NotificationService
	moderationService   *service.ModerationService
	cityService         *service.CityService
	newsService         *service.NewsService
	discoveryService    *service.DiscoveryService

	// providers
	ticketmaster *provider.TicketmasterClient
	jambase      *provider.JamBaseClient
	setlistFM    *provider.SetlistFMClient

	// shared infrastructure
	hub         *websocket.Hub
	hubDone     chan error
	cipher      *crypto.ChatCipher
	rateLimiter *ratelimiter.RateLimiter
	cityCache   *cache.InMemoryCache[[]*domain.City]
	newsCache   *cache.InMemoryCache[[]*domain.NewsArticle]

	// HTTP handlers
	mux    *http.ServeMux
	server *http.Server

	// Server synchronization
	serverMu      sync.RWMutex
	serverStarted chan struct{}

	// Graceful shutdown management
	shutdownCtx     context.Context
	shutdownCancel  context.CancelFunc
	activeRequests  int64          // atomic counter for active HTTP requests
	requestWg       sync.WaitGroup // wait group for active requests
	shutdownTimeout time.Duration  // configurable shutdown timeout
}

// AppOption defines a functional option for configuring the App
type AppOption func(*App)

// WithMockDB configures the app to use a mock database. Schema setup and
// migrations are skipped.
func WithMockDB(db *sql.DB) AppOption {
	return func(a *App) {
		a.db = db
		a.skipMigrations = true
	}
}

// WithMockMailer configures the app to use a mock mailer
func WithMockMailer(m mailer.Mailer) AppOption {
	return func(a *App) {
		a.mailer = m
	}
}

// WithLogger sets a custom logger
func WithLogger(logger logger.Logger) AppOption {
	return func(a *App) {
		a.logger = logger
	}
}

// NewApp creates a new application instance
func NewApp(cfg *config.Config, opts ...AppOption) AppInterface {
	shutdownCtx, shutdownCancel := context.WithCancel(context.Background())

	shutdownTimeout := cfg.Server.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = 30 * time.Second
	}

	app := &App{
		config:          cfg,
		logger:          logger.NewLoggerWithLevel(cfg.LogLevel),
		mux:             http.NewServeMux(),
		serverStarted:   make(chan struct{}),
		shutdownCtx:     shutdownCtx,
		shutdownCancel:  shutdownCancel,
		shutdownTimeout: shutdownTimeout,
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

// InitTracing initializes OpenCensus tracing
func (a *App) InitTracing() error {
	tracingConfig := &a.config.Tracing

	if err := tracing.InitTracing(tracingConfig); err != nil {
		return fmt.Errorf("failed to initialize tracing: %w", err)
	}

	if tracingConfig.Enabled {
		a.logger.WithField("service_name", tracingConfig.ServiceName).
			WithField("sampling_rate", tracingConfig.SamplingProbability).
			Info("Tracing initialized successfully")
	}

	return nil
}

// InitDB connects to PostgreSQL, creates the schema and runs pending migrations
func (a *App) InitDB() error {
	if a.db != nil {
		if !a.skipMigrations {
			return a.migrate()
		}
		return nil
	}

	password := a.config.Database.Password
	maskedPassword := ""
	if len(password) > 0 {
		maskedPassword = fmt.Sprintf("%c...%c", password[0], password[len(password)-1])
	}
	a.logger.Info(fmt.Sprintf("Connecting to database %s:%d, user %s, sslmode %s, password: %s, dbname: %s",
		a.config.Database.Host, a.config.Database.Port, a.config.Database.User, a.config.Database.SSLMode, maskedPassword, a.config.Database.DBName))

	driverName := "postgres"
	if a.config.Tracing.Enabled {
		var err error
		driverName, err = tracing.RegisterSQLDriver(driverName)
		if err != nil {
			return err
		}
		a.logger.Info("Database driver wrapped with OpenCensus tracing")
	}

	db, err := database.ConnectToDatabase(&a.config.Database, driverName)
	if err != nil {
		return err
	}
	a.db = db

	if a.config.Tracing.Enabled {
		a.stopDBStats = tracing.RecordDBStats(db, dbStatsInterval)
	}

	if err := database.InitializeDatabase(context.Background(), db); err != nil {
		db.Close()
		return fmt.Errorf("failed to initialize database schema: %w", err)
	}

	return a.migrate()
}

func (a *App) migrate() error {
	migrationManager := migrations.NewManager(a.logger)
	if err := migrationManager.RunMigrations(context.Background(), a.config, a.db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// InitMailer initializes the mailer service
func (a *App) InitMailer() error {
	// Skip if mailer already set (e.g., by mock)
	if a.mailer != nil {
		return nil
	}

	a.mailer = mailer.New(&mailer.Config{
		SMTPHost:     a.config.SMTP.Host,
		SMTPPort:     a.config.SMTP.Port,
		SMTPUsername: a.config.SMTP.Username,
		SMTPPassword: a.config.SMTP.Password,
		FromEmail:    a.config.SMTP.FromEmail,
		FromName:     a.config.SMTP.FromName,
		RootURL:      a.config.RootURL,
	}, a.logger)

	if a.config.SMTP.Host == "" {
		a.logger.Info("SMTP host not configured, emails are logged instead of sent")
	} else {
		a.logger.WithField("smtp_host", a.config.SMTP.Host).Info("Using SMTP mailer")
	}

	return nil
}

// InitRepositories initializes all repositories
func (a *App) InitRepositories() error {
	if a.db == nil {
		return fmt.Errorf("database must be initialized before repositories")
	}

	a.profileRepo = repository.NewProfileRepository(a.db)
	a.eventRepo = repository.NewEventRepository(a.db)
	a.interestRepo = repository.NewInterestRepository(a.db)
	a.reviewRepo = repository.NewReviewRepository(a.db)
	a.friendRepo = repository.NewFriendRepository(a.db)
	a.followRepo = repository.NewFollowRepository(a.db)
	a.matchingRepo = repository.NewMatchingRepository(a.db)
	a.verificationRepo = repository.NewVerificationRepository(a.db)
	a.chatRepo = repository.NewChatRepository(a.db)
	a.passportRepo = repository.NewPassportRepository(a.db)
	a.notificationRepo = repository.NewNotificationRepository(a.db)
	a.moderationRepo = repository.NewModerationRepository(a.db)
	a.cityRepo = repository.NewCityRepository(a.db)

	return nil
}

// InitServices initializes all application services
func (a *App) InitServices() error {
	var err error
	a.authService, err = service.NewAuthService(service.AuthServiceConfig{
		JWTSecret:    a.config.Auth.JWTSecret,
		AdminUserIDs: a.config.Auth.AdminUserIDs,
		Logger:       a.logger,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize auth service: %w", err)
	}

	a.notificationService = service.NewNotificationService(a.notificationRepo, a.logger)
	a.verificationService = service.NewVerificationService(a.verificationRepo, a.profileRepo, a.authService, a.logger)
	a.profileService = service.NewProfileService(a.profileRepo, a.verificationService, a.logger)
	a.eventService = service.NewEventService(a.eventRepo, a.logger)
	a.interestService = service.NewInterestService(a.interestRepo, a.eventRepo, a.profileRepo, a.logger)
	a.passportService = service.NewPassportService(a.passportRepo, a.profileRepo, a.eventRepo, a.reviewRepo, a.logger)
	a.reviewService = service.NewReviewService(a.reviewRepo, a.eventRepo, a.passportService, a.logger)
	a.followService = service.NewFollowService(a.followRepo, a.logger)
	a.moderationService = service.NewModerationService(a.moderationRepo, a.friendRepo, a.logger)

	a.friendService = service.NewFriendService(
		a.friendRepo,
		a.profileRepo,
		a.moderationRepo,
		a.notificationService,
		a.mailer,
		a.logger,
	)

	a.matchingService = service.NewMatchingService(
		a.matchingRepo,
		a.eventRepo,
		a.profileRepo,
		a.notificationService,
		a.mailer,
		a.logger,
	)

	// Chat messages are encrypted at rest and fanned out through the hub
	a.hub = websocket.NewHub(a.config.CORS.AllowedOrigins, a.logger)
	a.cipher = crypto.NewChatCipher(a.config.Chat.KeySalt, a.config.Chat.KeyIterations)
	a.chatService = service.NewChatService(
		a.chatRepo,
		a.friendService,
		a.profileRepo,
		a.cipher,
		a.hub,
		a.logger,
	)

	a.cityCache = cache.NewInMemoryCache[[]*domain.City](cacheCleanupInterval)
	a.cityService = service.NewCityService(a.cityRepo, a.cityCache, a.logger)

	a.newsCache = cache.NewInMemoryCache[[]*domain.NewsArticle](cacheCleanupInterval)
	a.newsService = service.NewNewsService(
		provider.NewRSSFetcher(rssFetchTimeout, a.logger),
		a.newsCache,
		a.config.News.CacheTTL,
		a.logger,
	)

	// Third-party event APIs
	a.ticketmaster = provider.NewTicketmasterClient(a.config.Providers.Ticketmaster, a.logger)
	a.jambase = provider.NewJamBaseClient(a.config.Providers.JamBase, a.logger)
	a.setlistFM = provider.NewSetlistFMClient(a.config.Providers.SetlistFM, a.logger)
	a.discoveryService = service.NewDiscoveryService(
		a.ticketmaster,
		a.jambase,
		a.setlistFM,
		a.eventService,
		a.eventRepo,
		a.logger,
	)

	a.rateLimiter = ratelimiter.NewRateLimiter()
	a.rateLimiter.SetPolicy(ratelimiter.TierStrict, a.config.RateLimit.Strict.Limit, a.config.RateLimit.Strict.Window)
	a.rateLimiter.SetPolicy(ratelimiter.TierModerate, a.config.RateLimit.Moderate.Limit, a.config.RateLimit.Moderate.Window)
	a.rateLimiter.SetPolicy(ratelimiter.TierLenient, a.config.RateLimit.Lenient.Limit, a.config.RateLimit.Lenient.Window)

	return nil
}

// InitHandlers initializes all HTTP handlers and routes
func (a *App) InitHandlers() error {
	// Create a new ServeMux to avoid route conflicts on restart
	a.mux = http.NewServeMux()

	rateLimit := middleware.NewRateLimit(a.rateLimiter, a.logger)

	handlers := []interface{ RegisterRoutes(*http.ServeMux) }{
		httpHandler.NewSystemHandler(a.db, a.config.Version, a.logger),
		httpHandler.NewProfileHandler(a.profileService, a.authService, a.logger),
		httpHandler.NewEventHandler(a.eventService, a.profileService, a.authService, a.logger),
		httpHandler.NewInterestHandler(a.interestService, a.authService, a.logger),
		httpHandler.NewReviewHandler(a.reviewService, a.authService, a.logger),
		httpHandler.NewFriendHandler(a.friendService, a.authService, a.logger),
		httpHandler.NewFollowHandler(a.followService, a.authService, a.logger),
		httpHandler.NewMatchingHandler(a.matchingService, a.authService, a.logger),
		httpHandler.NewVerificationHandler(a.verificationService, a.authService, a.logger),
		httpHandler.NewChatHandler(a.chatService, a.hub, a.authService, a.logger),
		httpHandler.NewPassportHandler(a.passportService, a.authService, a.logger),
		httpHandler.NewNotificationHandler(a.notificationService, a.authService, a.logger),
		httpHandler.NewModerationHandler(a.moderationService, a.authService, a.logger),
		httpHandler.NewCityHandler(a.cityService, a.logger),
		httpHandler.NewNewsHandler(a.newsService, a.logger),
		httpHandler.NewProviderHandler(a.discoveryService, a.authService, rateLimit, a.logger),
	}

	for _, h := range handlers {
		h.RegisterRoutes(a.mux)
	}

	return nil
}

// Handler returns the mux wrapped in the middleware chain served by Start
func (a *App) Handler() http.Handler {
	var handler http.Handler = a.mux

	handler = a.gracefulShutdownMiddleware(handler)
	handler = middleware.MetricsMiddleware(handler)
	handler = middleware.CORSMiddleware(a.config.CORS.AllowedOrigins)(handler)

	if a.config.Tracing.Enabled {
		handler = middleware.TracingMiddleware(handler)
	}

	return handler
}

// Start starts the chat hub and the HTTP server
func (a *App) Start() error {
	handler := a.Handler()

	addr := fmt.Sprintf("%s:%d", a.config.Server.Host, a.config.Server.Port)
	a.logger.WithField("address", addr).
		WithField("root_url", a.config.RootURL).
		Info(fmt.Sprintf("Server starting on %s", addr))

	if a.hub != nil && a.hubDone == nil {
		a.hubDone = make(chan error, 1)
		go func() {
			a.hubDone <- a.hub.Run(a.shutdownCtx)
		}()
	}

	// Create a fresh notification channel and update the server
	a.serverMu.Lock()
	if a.serverStarted != nil {
		select {
		case <-a.serverStarted:
		default:
			close(a.serverStarted)
		}
	}
	a.serverStarted = make(chan struct{})

	a.server = &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverStarted := a.serverStarted
	a.serverMu.Unlock()

	// Signal that the server has been created and is about to start
	close(serverStarted)

	return a.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("Starting graceful shutdown...")

	// Signal shutdown to all components, the chat hub included
	a.shutdownCancel()

	a.serverMu.RLock()
	server := a.server
	a.serverMu.RUnlock()

	if server == nil {
		a.logger.Info("No server to shutdown")
		return a.cleanupResources()
	}

	activeCount := a.getActiveRequestCount()
	a.logger.WithField("active_requests", activeCount).Info("Active requests at shutdown start")

	shutdownTimeout := a.shutdownTimeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < shutdownTimeout {
			shutdownTimeout = remaining - time.Second // Leave 1 second buffer
			if shutdownTimeout < 0 {
				shutdownTimeout = 0
			}
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	serverShutdownDone := make(chan error, 1)
	go func() {
		a.logger.WithField("timeout", shutdownTimeout).Info("Starting HTTP server shutdown")
		serverShutdownDone <- server.Shutdown(shutdownCtx)
	}()

	requestsDone := make(chan struct{})
	go func() {
		defer close(requestsDone)

		done := make(chan struct{})
		go func() {
			a.requestWg.Wait()
			close(done)
		}()

		ticker := time.NewTicker(5 * time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-done:
				a.logger.Info("All requests completed")
				return
			case <-ticker.C:
				a.logger.WithField("active_requests", a.getActiveRequestCount()).Info("Still waiting for requests to complete...")
			case <-shutdownCtx.Done():
				a.logger.WithField("active_requests", a.getActiveRequestCount()).Warn("Shutdown timeout reached, forcing shutdown")
				return
			}
		}
	}()

	var shutdownErr error
	select {
	case err := <-serverShutdownDone:
		shutdownErr = err
		a.logger.Info("HTTP server shutdown completed")
	case <-shutdownCtx.Done():
		a.logger.Warn("Shutdown timeout reached")
		shutdownErr = fmt.Errorf("shutdown timeout exceeded")
	}

	if shutdownErr == nil {
		select {
		case <-requestsDone:
		case <-time.After(2 * time.Second):
			if activeCount := a.getActiveRequestCount(); activeCount > 0 {
				a.logger.WithField("active_requests", activeCount).Warn("Some requests still active, proceeding with shutdown")
			}
		}
	}

	if cleanupErr := a.cleanupResources(); cleanupErr != nil {
		a.logger.WithField("error", cleanupErr.Error()).Error("Error during resource cleanup")
		if shutdownErr == nil {
			shutdownErr = cleanupErr
		}
	}

	if shutdownErr != nil {
		a.logger.WithField("error", shutdownErr.Error()).Error("Graceful shutdown completed with errors")
	} else {
		a.logger.Info("Graceful shutdown completed successfully")
	}

	return shutdownErr
}

// cleanupResources stops background workers and closes the database
func (a *App) cleanupResources() error {
	a.logger.Info("Cleaning up resources...")

	if a.hubDone != nil {
		select {
		case <-a.hubDone:
		case <-time.After(hubStopTimeout):
			a.logger.Warn("Websocket hub did not stop in time")
		}
		a.hubDone = nil
	}

	if a.rateLimiter != nil {
		a.rateLimiter.Stop()
	}
	if a.cityCache != nil {
		a.cityCache.Stop()
	}
	if a.newsCache != nil {
		a.newsCache.Stop()
	}
	if a.cipher != nil {
		a.cipher.Close()
	}
	for _, client := range []interface{ Close() }{a.ticketmaster, a.jambase, a.setlistFM} {
		if client != nil {
			client.Close()
		}
	}

	if a.stopDBStats != nil {
		a.stopDBStats()
	}

	if a.db != nil {
		a.logger.Info("Closing database connection")
		if err := a.db.Close(); err != nil {
			a.logger.WithField("error", err.Error()).Error("Error closing database connection")
			return err
		}
	}

	a.logger.Info("Resource cleanup completed")
	return nil
}

// IsServerCreated safely checks if the server has been created
func (a *App) IsServerCreated() bool {
	a.serverMu.RLock()
	defer a.serverMu.RUnlock()
	return a.server != nil
}

// WaitForServerStart waits for the server to be created and initialized.
// Returns true if the server started successfully, false if ctx expired.
func (a *App) WaitForServerStart(ctx context.Context) bool {
	a.serverMu.RLock()
	started := a.serverStarted
	a.serverMu.RUnlock()

	if started == nil {
		a.logger.Error("serverStarted channel is nil - server initialization error")
		<-ctx.Done()
		return false
	}

	select {
	case <-started:
		return a.IsServerCreated()
	case <-ctx.Done():
		return false
	}
}

// Initialize sets up all components of the application
func (a *App) Initialize() error {
	a.logger.WithField("version", a.config.Version).Info("Starting Synth API")

	steps := []func() error{
		a.InitTracing,
		a.InitDB,
		a.InitMailer,
		a.InitRepositories,
		a.InitServices,
		a.InitHandlers,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}

	a.logger.Info("Application successfully initialized")
	return nil
}

// GetConfig returns the app's configuration
func (a *App) GetConfig() *config.Config {
	return a.config
}

// GetLogger returns the app's logger
func (a *App) GetLogger() logger.Logger {
	return a.logger
}

// GetMux returns the app's HTTP multiplexer
func (a *App) GetMux() *http.ServeMux {
	return a.mux
}

// GetDB returns the app's database connection
func (a *App) GetDB() *sql.DB {
	return a.db
}

// GetMailer returns the app's mailer
func (a *App) GetMailer() mailer.Mailer {
	return a.mailer
}

func (a *App) GetVerificationService() *service.VerificationService {
	return a.verificationService
}

func (a *App) GetPassportService() *service.PassportService {
	return a.passportService
}

func (a *App) GetDiscoveryService() *service.DiscoveryService {
	return a.discoveryService
}

func (a *App) GetVerificationRepository() domain.VerificationRepository {
	return a.verificationRepo
}

func (a *App) incrementActiveRequests() {
	atomic.AddInt64(&a.activeRequests, 1)
	a.requestWg.Add(1)
}

func (a *App) decrementActiveRequests() {
	atomic.AddInt64(&a.activeRequests, -1)
	a.requestWg.Done()
}

func (a *App) getActiveRequestCount() int64 {
	return atomic.LoadInt64(&a.activeRequests)
}

// GetActiveRequestCount returns the current number of active requests
func (a *App) GetActiveRequestCount() int64 {
	return a.getActiveRequestCount()
}

// SetShutdownTimeout sets the timeout for graceful shutdown
func (a *App) SetShutdownTimeout(timeout time.Duration) {
	a.shutdownTimeout = timeout
	a.logger.WithField("shutdown_timeout", timeout.String()).Info("Shutdown timeout configured")
}

// GetShutdownContext returns the shutdown context for components that need to watch for shutdown
func (a *App) GetShutdownContext() context.Context {
	return a.shutdownCtx
}

func (a *App) isShuttingDown() bool {
	select {
	case <-a.shutdownCtx.Done():
		return true
	default:
		return false
	}
}

// gracefulShutdownMiddleware tracks active requests and refuses new ones once
// shutdown has started.
func (a *App) gracefulShutdownMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if a.isShuttingDown() {
			httpHandler.WriteJSONError(w, "Server is shutting down", http.StatusServiceUnavailable)
			return
		}

		a.incrementActiveRequests()
		defer a.decrementActiveRequests()

		next.ServeHTTP(w, r)
	})
}

// Ensure App implements AppInterface
var _ AppInterface = (*App)(nil)
