package handlers

import (
	"bytes"
	"html/template"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/Ydharm/Whatsapp-FAQ-Bot/bot"
)

var homeTemplate = template.Must(template.New("home").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Pneuma WhatsApp Bot - LLM Powered</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body {
            font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            min-height: 100vh;
            display: flex;
            align-items: center;
            justify-content: center;
            padding: 20px;
        }
        .container {
            background: rgba(255, 255, 255, 0.95);
            border-radius: 20px;
            box-shadow: 0 20px 40px rgba(0, 0, 0, 0.1);
            padding: 40px;
            max-width: 800px;
            width: 100%;
        }
        .header { text-align: center; margin-bottom: 40px; }
        .logo {
            font-size: 3rem;
            font-weight: bold;
            background: linear-gradient(45deg, #667eea, #764ba2);
            -webkit-background-clip: text;
            -webkit-text-fill-color: transparent;
            background-clip: text;
            margin-bottom: 10px;
        }
        .subtitle { color: #666; font-size: 1.2rem; margin-bottom: 10px; }
        .status {
            display: inline-flex;
            align-items: center;
            background: #25d366;
            color: white;
            padding: 8px 16px;
            border-radius: 20px;
            font-size: 0.9rem;
            font-weight: 500;
        }
        .intents-title { font-size: 1.5rem; color: #333; margin-bottom: 20px; text-align: center; }
        .intent-card {
            background: linear-gradient(135deg, #f5f7fa 0%, #c3cfe2 100%);
            padding: 25px;
            border-radius: 15px;
            margin-bottom: 20px;
        }
        .intent-title { font-size: 1.2rem; font-weight: bold; color: #333; margin-bottom: 10px; }
        .intent-samples { color: #666; font-size: 0.9rem; font-style: italic; }
        .chat-section { background: #f8f9ff; border-radius: 15px; padding: 30px; margin-top: 40px; }
        .chat-title { font-size: 1.4rem; color: #333; font-weight: 600; margin-bottom: 25px; }
        .chat-form { display: flex; gap: 15px; align-items: stretch; }
        .message-input {
            flex: 1;
            padding: 15px 20px;
            border: 2px solid #e0e6ed;
            border-radius: 25px;
            font-size: 1rem;
            outline: none;
        }
        .send-btn {
            background: linear-gradient(45deg, #25d366, #20b358);
            color: white;
            border: none;
            padding: 15px 25px;
            border-radius: 25px;
            font-size: 1rem;
            font-weight: 600;
            cursor: pointer;
        }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <div class="logo">PNEUMA</div>
            <div class="subtitle">LLM-Powered WhatsApp Bot</div>
            <div class="status">{{if .LLMEnabled}}● LLM Connected{{else}}● Fallback Mode (No API Key){{end}}</div>
        </div>

        <div class="intents-title">{{len .Intents}} Key Intents</div>
        {{range .Intents}}
        <div class="intent-card">
            <div class="intent-title">{{.Name}}</div>
            <div class="intent-samples">
                {{range $i, $p := .SamplePhrases}}{{if $i}}, {{end}}"{{$p}}"{{end}}
            </div>
        </div>
        {{end}}

        <div class="chat-section">
            <div class="chat-title">🤖 Test the Bot</div>
            <form class="chat-form" action="/test" method="post">
                <input type="text" class="message-input" name="message" placeholder="Ask about deals, rewards, or account setup..." required>
                <button type="submit" class="send-btn">Send</button>
            </form>
        </div>
    </div>
</body>
</html>`))

type homeData struct {
	LLMEnabled bool
	Intents    []bot.Intent
}

// Home renders the landing page with the intent cards and the test form
func Home(catalog *bot.Catalog, llmEnabled bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var buf bytes.Buffer
		if err := homeTemplate.Execute(&buf, homeData{
			LLMEnabled: llmEnabled,
			Intents:    catalog.Intents(),
		}); err != nil {
			slog.Error("Failed to render home page", "error", err)
			return fiber.ErrInternalServerError
		}

		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.Send(buf.Bytes())
	}
}
