package routes

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"

	"github.com/courtlab/HoopCoachBack/internal/config"
	"github.com/gofiber/fiber/v2"
)

//go:embed openapi.yaml
var openAPISpec []byte

const docsIndexHTML = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{ .Title }}</title>
  <style>
    :root {
      color-scheme: light;
      --bg: #f6f4ef;
      --panel: #ffffff;
      --text: #1a1510;
      --muted: #6b5d4f;
      --accent: #c2570f;
      --border: #ddd6cb;
    }
    * { box-sizing: border-box; }
    body {
      margin: 0;
      font-family: Georgia, "Times New Roman", serif;
      color: var(--text);
      background: linear-gradient(180deg, #fcfaf6 0%, var(--bg) 100%);
    }
    main {
      max-width: 880px;
      margin: 0 auto;
      padding: 48px 20px 64px;
    }
    .panel {
      background: var(--panel);
      border: 1px solid var(--border);
      border-radius: 14px;
      padding: 28px;
      margin-bottom: 24px;
    }
    h1 { margin: 0 0 8px; }
    p.lead { color: var(--muted); margin: 0 0 16px; }
    code {
      font-family: "SFMono-Regular", Menlo, Consolas, monospace;
      background: #f1ece3;
      border-radius: 4px;
      padding: 2px 6px;
    }
    ul { line-height: 1.8; }
    a { color: var(--accent); }
  </style>
</head>
<body>
  <main>
    <div class="panel">
      <h1>{{ .Title }}</h1>
      <p class="lead">Backend API for athlete training, Player Card onboarding, and the coach roster.</p>
      <p>The machine-readable contract is at <a href="/docs/openapi.yaml"><code>/docs/openapi.yaml</code></a>.</p>
    </div>
    <div class="panel">
      <h2>Surfaces</h2>
      <ul>
        <li><code>POST /api/contact</code> public contact form</li>
        <li><code>/api/auth</code> register, login, session introspection</li>
        <li><code>/api/v1/dashboard</code> role-keyed training dashboard</li>
        <li><code>/api/v1/profile/wizard</code> Player Card onboarding flow</li>
        <li><code>/api/v1/workouts</code> catalog and completion logging</li>
        <li><code>/api/v1/measurements</code> body-weight tracking</li>
        <li><code>/api/v1/leaderboard</code> weekly session ranking</li>
        <li><code>/api/v1/coach/athletes</code> coach roster (coach role)</li>
        <li><code>GET /api/v1/ws/activity</code> live activity feed (coach role)</li>
      </ul>
    </div>
  </main>
</body>
</html>`

type docsPageData struct {
	Title string
}

// registerDocsRoutes mounts the documentation surface. Docs are a
// development convenience and never ship outside development builds.
func registerDocsRoutes(app fiber.Router, cfg *config.Config) error {
	if !cfg.DocsEnabled() {
		return nil
	}

	indexTemplate, err := template.New("docs-index").Parse(docsIndexHTML)
	if err != nil {
		return fmt.Errorf("parse docs template: %w", err)
	}

	app.Get("/docs", func(c *fiber.Ctx) error {
		var body bytes.Buffer
		if err := indexTemplate.Execute(&body, docsPageData{Title: "HoopCoach API Docs"}); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to render api docs")
		}

		applyDocsBaseHeaders(c, fiber.MIMETextHTMLCharsetUTF8)
		return c.Status(fiber.StatusOK).Send(body.Bytes())
	})

	app.Get("/docs/openapi.yaml", func(c *fiber.Ctx) error {
		applyDocsBaseHeaders(c, "application/yaml; charset=utf-8")
		return c.Status(fiber.StatusOK).Send(openAPISpec)
	})

	return nil
}

func applyDocsBaseHeaders(c *fiber.Ctx, contentType string) {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set("Content-Security-Policy", "default-src 'none'; style-src 'unsafe-inline'; img-src data:")
	c.Set("X-Content-Type-Options", "nosniff")
	c.Set("Referrer-Policy", "no-referrer")
}
