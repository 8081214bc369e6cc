package handlers

import (
	"bytes"
	"html/template"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Ydharm/Whatsapp-FAQ-Bot/bot"
)

var resultTemplate = template.Must(template.New("result").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Pneuma Bot - Response</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body {
            font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            min-height: 100vh;
            padding: 20px;
        }
        .container {
            max-width: 800px;
            margin: 0 auto;
            background: rgba(255, 255, 255, 0.95);
            border-radius: 20px;
            box-shadow: 0 20px 40px rgba(0, 0, 0, 0.1);
            padding: 40px;
        }
        .header { text-align: center; margin-bottom: 30px; }
        .logo {
            font-size: 2.5rem;
            font-weight: bold;
            background: linear-gradient(45deg, #667eea, #764ba2);
            -webkit-background-clip: text;
            -webkit-text-fill-color: transparent;
            background-clip: text;
            margin-bottom: 10px;
        }
        .chat-container { background: #f8f9ff; border-radius: 15px; padding: 30px; margin-bottom: 20px; }
        .message-bubble {
            margin-bottom: 20px;
            padding: 15px 20px;
            border-radius: 18px;
            max-width: 80%;
            word-wrap: break-word;
        }
        .user-message { background: #667eea; color: white; margin-left: auto; }
        .bot-message { background: white; color: #333; border: 2px solid #e0e6ed; margin-right: auto; }
        .message-info { font-size: 0.8rem; color: #666; margin-bottom: 10px; display: flex; gap: 10px; }
        .intent-badge {
            background: #25d366;
            color: white;
            padding: 4px 12px;
            border-radius: 12px;
            font-size: 0.7rem;
            font-weight: 500;
            text-transform: uppercase;
        }
        .back-btn {
            display: inline-block;
            background: linear-gradient(45deg, #667eea, #764ba2);
            color: white;
            text-decoration: none;
            padding: 12px 24px;
            border-radius: 25px;
            font-weight: 600;
        }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <div class="logo">PNEUMA</div>
            <h2>{{if .LLMEnabled}}LLM-Generated Response{{else}}Canned Response (No API Key){{end}}</h2>
        </div>

        <div class="chat-container">
            <div class="message-info">
                <span>{{if .LLMEnabled}}🤖 LLM Bot{{else}}🤖 Fallback Bot{{end}}</span>
                <span class="intent-badge">{{.Intent}}</span>
            </div>
            <div class="message-bubble user-message">{{.Message}}</div>
            <div class="message-bubble bot-message">{{.Reply}}</div>
        </div>

        <a href="/" class="back-btn">← Test Another Message</a>
    </div>
</body>
</html>`))

type resultData struct {
	LLMEnabled bool
	Intent     string
	Message    string
	Reply      template.HTML
}

// TestBot handles the form on the landing page and renders the bot's reply
func TestBot(responder *bot.Responder, llmEnabled bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		message := c.FormValue("message")
		if message == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "no message provided",
			})
		}

		result := responder.Process(c.Context(), message)
		intent := result.Intent
		if intent == "" {
			intent = "unknown"
		}

		// Canned replies carry newlines that HTML collapses
		reply := template.HTML(strings.ReplaceAll(template.HTMLEscapeString(result.Reply), "\n", "<br>"))

		var buf bytes.Buffer
		if err := resultTemplate.Execute(&buf, resultData{
			LLMEnabled: llmEnabled,
			Intent:     intent,
			Message:    message,
			Reply:      reply,
		}); err != nil {
			slog.Error("Failed to render result page", "error", err)
			return fiber.ErrInternalServerError
		}

		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.Send(buf.Bytes())
	}
}
