package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/coursemint/api/database"
	"github.com/coursemint/api/handlers"
	admin_handlers "github.com/coursemint/api/handlers/admin"
	auth_handlers "github.com/coursemint/api/handlers/auth"
	checkout_handlers "github.com/coursemint/api/handlers/checkout"
	course_handlers "github.com/coursemint/api/handlers/course"
	purchase_handlers "github.com/coursemint/api/handlers/purchase"
	"github.com/coursemint/api/services/payment"
	"github.com/coursemint/api/utils/middleware"
	"github.com/coursemint/api/utils/session"
)

// Config carries everything SetupRoutes needs beyond the fiber app.
type Config struct {
	Store     database.Storage
	Sessions  session.Store
	Provider  payment.Provider
	UploadDir string
}

func SetupRoutes(app *fiber.App, cfg Config) {
	sessionMiddleware := middleware.NewSessionMiddleware(cfg.Sessions, cfg.Store)

	authHandler := auth_handlers.NewAuthHandler(cfg.Store, cfg.Sessions)
	courseHandler := course_handlers.NewCourseHandler(cfg.Store)
	purchaseHandler := purchase_handlers.NewPurchaseHandler(cfg.Store)
	checkoutHandler := checkout_handlers.NewCheckoutHandler(cfg.Store, cfg.Provider)
	adminHandler := admin_handlers.NewAdminHandler(cfg.Store)
	uploadHandler := admin_handlers.NewUploadHandler(cfg.UploadDir)

	// Health check endpoint (public)
	app.Get("/ping", func(c *fiber.Ctx) error {
		return handlers.HandleCheckHealth(c, cfg.Store)
	})

	api := app.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	authGroup.Post("/signup", authHandler.SignUp)
	authGroup.Post("/signin", authHandler.SignIn)
	authGroup.Post("/signout", authHandler.SignOut)
	authGroup.Get("/session", authHandler.GetSession)

	// Public catalog
	api.Get("/courses", courseHandler.ListCourses)
	api.Get("/courses/:id", courseHandler.GetCourse)

	// Purchase history (session required)
	api.Get("/purchases", sessionMiddleware.Required(), purchaseHandler.ListPurchases)

	// Checkout: starting one needs an owner for the pending purchase;
	// the webhook authenticates via its signature instead.
	api.Post("/create-checkout", sessionMiddleware.Required(), checkoutHandler.CreateCheckout)
	api.Post("/stripe-webhook", checkoutHandler.HandleWebhook)

	// Admin console
	adminGroup := api.Group("/admin")
	adminGroup.Get("/check", sessionMiddleware.Required(), adminHandler.CheckAdmin)
	adminGroup.Post("/create", sessionMiddleware.Required(), adminHandler.CreateAdmin)

	required := sessionMiddleware.Required()
	requireAdmin := sessionMiddleware.RequireAdmin()
	adminGroup.Post("/courses", required, requireAdmin, courseHandler.CreateCourse)
	adminGroup.Put("/courses/:id", required, requireAdmin, courseHandler.UpdateCourse)
	adminGroup.Delete("/courses/:id", required, requireAdmin, courseHandler.DeleteCourse)
	adminGroup.Post("/upload", required, requireAdmin, uploadHandler.Upload)
}
