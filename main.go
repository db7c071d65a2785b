package main

import (
	_ "embed"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/felipe-jimenez-ai/mentoria/config"
	"github.com/felipe-jimenez-ai/mentoria/handlers"
	"github.com/felipe-jimenez-ai/mentoria/internal/aiclient"
	"github.com/felipe-jimenez-ai/mentoria/internal/session"
	"github.com/felipe-jimenez-ai/mentoria/internal/studyservice"
	"github.com/felipe-jimenez-ai/mentoria/internal/transcript"
	"github.com/felipe-jimenez-ai/mentoria/middleware"
)

//go:embed static/index.html
var indexHTML string

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	config.InitLogger()
	cfg := config.Load()

	if cfg.GroqAPIKey == "" {
		config.Log.Warn("GROQ_API_KEY is not set; material generation will fail until it is configured")
	}

	fetcher := transcript.NewFetcher()
	generator := aiclient.NewGenerator(aiclient.Config{
		APIKey:  cfg.GroqAPIKey,
		BaseURL: cfg.GroqBaseURL,
		Model:   cfg.Model,
	})
	sessions := session.NewManager(cfg.SessionTTL)
	service := studyservice.New(fetcher, generator, config.Log, cfg.ChunkChars)
	h := handlers.NewApplicationHandler(service, sessions, config.Log)

	app := fiber.New(fiber.Config{AppName: "mentoria"})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	app.Use(middleware.RequestLogger())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "ok",
			"message": "Study assistant is healthy",
		})
	})

	app.Get("/", func(c *fiber.Ctx) error {
		c.Type("html", "utf-8")
		return c.SendString(indexHTML)
	})

	apiV1 := app.Group("/api/v1")
	apiV1.Post("/transcripts", h.FetchTranscript)
	apiV1.Post("/materials", h.GenerateMaterial)
	apiV1.Get("/materials/download", h.DownloadMaterial)
	apiV1.Get("/session", h.GetSession)

	config.Log.Infof("Starting study assistant on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
