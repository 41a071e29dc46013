package main

import (
	"encoding/json"
	"html/template"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"

	"github.com/DavidBallares/proyecto-gag/app/config"
	"github.com/DavidBallares/proyecto-gag/app/database"
	"github.com/DavidBallares/proyecto-gag/app/routes/admin"
	"github.com/DavidBallares/proyecto-gag/app/routes/animals"
	"github.com/DavidBallares/proyecto-gag/app/routes/auth"
	"github.com/DavidBallares/proyecto-gag/app/routes/calendario"
	"github.com/DavidBallares/proyecto-gag/app/routes/crops"
	"github.com/DavidBallares/proyecto-gag/app/routes/tickets"
	"github.com/DavidBallares/proyecto-gag/app/services"
)

// jsonScript marshals a value for embedding in a script block. Returning
// template.JS keeps the contextual autoescaper from quoting the payload into
// a string literal.
func jsonScript(v interface{}) (template.JS, error) {
	b, err := json.Marshal(v)
	return template.JS(b), err
}

// customErrorHandler handles HTTP errors with custom templates
func customErrorHandler(c *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError

	// Retrieve the custom status code if it's a *fiber.Error
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	// Check if this is an API request
	if len(c.Path()) >= 4 && c.Path()[:4] == "/api" {
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"code":    code,
		})
	}

	// Handle different error codes for web requests
	switch code {
	case 404:
		return c.Status(404).Render("404", fiber.Map{
			"Title":       "Página no encontrada - GAG",
			"CurrentPage": "",
		})
	case 403:
		return c.Status(403).Render("error", fiber.Map{
			"Title":        "Acceso denegado - GAG",
			"CurrentPage":  "",
			"ErrorCode":    "403",
			"ErrorTitle":   "Acceso Denegado",
			"ErrorMessage": "No tienes permiso para acceder a este recurso.",
		})
	case 401:
		return c.Status(401).Render("error", fiber.Map{
			"Title":        "No autorizado - GAG",
			"CurrentPage":  "",
			"ErrorCode":    "401",
			"ErrorTitle":   "No Autorizado",
			"ErrorMessage": "Inicia sesión para acceder a este recurso.",
		})
	case 500:
		return c.Status(500).Render("500", fiber.Map{
			"Title":        "Error del servidor - GAG",
			"CurrentPage":  "",
			"ErrorCode":    "500",
			"ErrorTitle":   "Error Interno del Servidor",
			"ErrorMessage": "Estamos presentando dificultades técnicas. Intenta de nuevo más tarde.",
			"ShowRetry":    true,
		})
	default:
		return c.Status(code).Render("error", fiber.Map{
			"Title":        "Error - GAG",
			"CurrentPage":  "",
			"ErrorCode":    code,
			"ErrorTitle":   "Ocurrió un Error",
			"ErrorMessage": err.Error(),
		})
	}
}

func main() {
	// Set global time zone to Colombia time
	loc, err := time.LoadLocation("America/Bogota")
	if err != nil {
		log.Printf("Warning: Failed to load America/Bogota location, falling back to UTC-5: %v", err)
		time.Local = time.FixedZone("COT", -5*60*60)
	} else {
		time.Local = loc
	}
	log.Printf("Application time zone set to: %s", time.Local.String())

	// Initialize configuration and database
	config.Init()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Start background scheduler
	services.StartScheduler(config.GetDB())

	// Initialize template engine
	engine := html.New("./app/templates", ".html")
	engine.AddFunc("json", jsonScript)
	engine.Reload(true) // Enable template reloading for development
	engine.Debug(false) // Disable debug mode to reduce verbose logs

	// Create Fiber app
	app := fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layouts/main",
		PassLocalsToViews: true,
		ErrorHandler:      customErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Static files
	app.Static("/static", "./static")
	app.Get("/favicon.ico", func(c *fiber.Ctx) error {
		return c.SendFile("./static/favicon.ico")
	})

	// Routes
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/auth/login")
	})

	// Setup auth routes
	auth.SetupAuthRoutes(app)

	// Setup calendar routes
	calendario.SetupCalendarRoutes(app)

	// Setup crop routes
	crops.SetupCropsRoutes(app)

	// Setup animal routes
	animals.SetupAnimalsRoutes(app)

	// Setup support ticket routes
	tickets.SetupTicketRoutes(app)

	// Setup administration routes
	admin.SetupAdminRoutes(app)

	// Get port from environment or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Printf("Server starting on port %s", port)
	log.Fatal(app.Listen(":" + port))
}
