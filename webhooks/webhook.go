package webhooks

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/Ydharm/Whatsapp-FAQ-Bot/bot"
	"github.com/Ydharm/Whatsapp-FAQ-Bot/config"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config, responder *bot.Responder) {
	webhook := app.Group("/webhook")

	// Webhook verification endpoint
	webhook.Get("/", verifyWebhook(cfg))

	// Webhook message handler
	webhook.Post("/", handleWebhookEvent(responder))
}

// verifyWebhook handles provider webhook verification
func verifyWebhook(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Query("hub.verify_token")
		challenge := c.Query("hub.challenge")

		if token == cfg.VerifyToken {
			slog.Info("Webhook verified successfully")
			return c.SendString(challenge)
		}

		slog.Warn("Webhook verification failed", "token", token)
		return c.Status(fiber.StatusForbidden).SendString("Invalid verification token")
	}
}

// handleWebhookEvent processes an incoming message and answers on the
// webhook response itself
func handleWebhookEvent(responder *bot.Responder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var payload WebhookPayload
		if err := c.BodyParser(&payload); err != nil {
			slog.Error("Failed to parse webhook body", "error", err)
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}

		messageText := payload.MessageText()
		if messageText == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "no message text found",
			})
		}

		from := payload.Sender()
		slog.Info("Received webhook message", "from", from)

		result := responder.Process(c.Context(), messageText)
		if !result.Success {
			slog.Error("Message processing failed", "from", from)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": result.Reply,
			})
		}

		return c.JSON(WebhookResponse{
			Success: true,
			Reply:   result.Reply,
			Intent:  result.Intent,
			From:    from,
		})
	}
}
