package app

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/coursemint/api/api"
	"github.com/coursemint/api/config"
	"github.com/coursemint/api/database"
	"github.com/coursemint/api/router"
	"github.com/coursemint/api/services/cron"
	"github.com/coursemint/api/services/payment"
	"github.com/coursemint/api/utils/cache"
	"github.com/coursemint/api/utils/middleware"
	"github.com/coursemint/api/utils/session"
)

func SetupAndRunServer() error {
	// Load ENV
	if err := config.LoadENV(); err != nil {
		return err
	}

	getEnv, err := config.Get()
	if err != nil {
		return err
	}

	// Initialize GORM database connection
	store, err := database.StartGORM()
	if err != nil {
		log.Println("Check whether Postgres is running and the DB_* variables are set")
		return err
	}

	if err := store.Init(); err != nil {
		log.Println("Error running migrations")
		return err
	}

	// Session store: Redis when reachable, in-process fallback otherwise.
	// The fallback keeps dev setups working; sessions then die with the
	// process.
	var sessions session.Store
	redisCache, err := cache.NewRedisCache(getEnv.REDIS_URL)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v. Falling back to in-memory sessions.", err)
		sessions = session.NewMemoryStore()
	} else {
		sessions = session.NewRedisStore(redisCache)
	}

	provider := payment.NewStripeProvider(
		getEnv.STRIPE_SECRET_KEY,
		getEnv.STRIPE_WEBHOOK_SECRET,
		getEnv.CHECKOUT_SUCCESS_URL,
		getEnv.CHECKOUT_CANCEL_URL,
	)

	// Initialize Cron Manager (only if enabled via environment variable)
	var cronManager *cron.CronManager
	if os.Getenv("CRON_ENABLED") != "false" { // Default to enabled
		cronManager = cron.NewCronManager(store)
		if err := cronManager.Start(); err != nil {
			log.Printf("Warning: Failed to start cron jobs: %v", err)
			// Don't fail the app, just log the warning
		}
	}

	// Defer Closing DB and stopping cron jobs
	defer func() {
		if cronManager != nil {
			cronManager.Stop()
		}
		if redisCache != nil {
			redisCache.Close()
		}
		store.Close()
	}()

	// Init API
	server := api.NewAPIServer(fmt.Sprintf(":%d", getEnv.PORT))
	app := server.GetEngine()

	// Attach Middleware
	middleware.SetupSecurity(app, middleware.SecurityConfig{
		AllowedOrigins:    getEnv.ALLOWED_ORIGINS,
		RateLimitRequests: 100,             // 100 requests
		RateLimitWindow:   1 * time.Minute, // per minute
	})

	// Upload directory must exist before the first save; served statically.
	if err := os.MkdirAll(getEnv.UPLOAD_DIR, 0o755); err != nil {
		return err
	}
	app.Static("/uploads", getEnv.UPLOAD_DIR)

	// Setup Routes
	router.SetupRoutes(app, router.Config{
		Store:     store,
		Sessions:  sessions,
		Provider:  provider,
		UploadDir: getEnv.UPLOAD_DIR,
	})

	// Get the PORT & Start the Server
	return server.Run()
}
