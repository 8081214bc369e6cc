package main

import (
	"log/slog"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/Ydharm/Whatsapp-FAQ-Bot/bot"
	"github.com/Ydharm/Whatsapp-FAQ-Bot/config"
	"github.com/Ydharm/Whatsapp-FAQ-Bot/handlers"
	"github.com/Ydharm/Whatsapp-FAQ-Bot/services"
	"github.com/Ydharm/Whatsapp-FAQ-Bot/webhooks"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found")
	}

	// Initialize structured logger
	logHandler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(logHandler))

	// Load configuration
	cfg := config.LoadConfig()

	// Build the responder: catalog + classifier + generator. A nil generator
	// means every request answers from the canned fallback table.
	catalog := bot.DefaultCatalog()

	// Keep the interface nil when unconfigured, a typed nil would defeat
	// the responder's fallback-only check
	var generator bot.TextGenerator
	llmEnabled := false
	if g := services.NewOpenAIGenerator(cfg); g != nil {
		generator = g
		llmEnabled = true
		slog.Info("OpenAI client initialized", "model", cfg.OpenAIModel)
	}

	responder := bot.NewResponder(catalog, generator)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			slog.Error("Request error", "error", err, "status", code)
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path}\n",
	}))

	// Register webhook routes
	webhooks.RegisterRoutes(app, cfg, responder)

	// Test page routes
	app.Get("/", handlers.Home(catalog, llmEnabled))
	app.Post("/test", handlers.TestBot(responder, llmEnabled))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "whatsapp-faq-bot",
		})
	})

	slog.Info("Server starting", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		slog.Error("Server failed to start", "error", err)
		os.Exit(1)
	}
}
