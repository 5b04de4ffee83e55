// Package webserver serves the embedded guess-grid frontend. The page is
// static; everything it needs to know about the game API comes from the
// /config endpoint, so the same embedded bundle works against any API host.
package webserver

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

//go:embed web
var uiFS embed.FS

// Config is the payload the frontend fetches before its first API call
type Config struct {
	APIURL   string `json:"apiUrl"`
	GameType string `json:"gameType"`
}

// Start runs the web UI server until its listener fails
func Start(host string, port int, cfg Config) error {
	app, err := newApp(cfg)
	if err != nil {
		return err
	}
	return app.Listen(fmt.Sprintf("%s:%d", host, port))
}

func newApp(cfg Config) (*fiber.App, error) {
	if cfg.GameType == "" {
		cfg.GameType = "pokedle"
	}

	content, err := fs.Sub(uiFS, "web")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded frontend: %w", err)
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	})

	app.Use(logger.New(logger.Config{
		Format: "${time} UI ${status} ${method} ${path} ${latency}\n",
	}))
	app.Use(cors.New())

	// Registered before the catch-all so the frontend can find the API
	app.Get("/config", func(c *fiber.Ctx) error {
		return c.JSON(cfg)
	})

	app.Get("*", serveStatic(content))

	return app, nil
}

// serveStatic reads files out of the embedded bundle. Paths that match no
// file fall back to index.html, which keeps client-side routes working.
func serveStatic(content fs.FS) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := strings.TrimPrefix(c.Path(), "/")
		if name == "" {
			name = "index.html"
		}

		data, err := fs.ReadFile(content, name)
		if err != nil {
			name = "index.html"
			if data, err = fs.ReadFile(content, name); err != nil {
				return c.Status(fiber.StatusInternalServerError).SendString("frontend not embedded")
			}
		}

		c.Set("Content-Type", contentType(name))
		return c.Send(data)
	}
}

func contentType(name string) string {
	switch path.Ext(name) {
	case ".html":
		return "text/html; charset=utf-8"
	case ".js":
		return "application/javascript; charset=utf-8"
	case ".css":
		return "text/css; charset=utf-8"
	default:
		return "application/octet-stream"
	}
}
