package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	config "github.com/maheshrc27/viralshorts/configs"
	"github.com/maheshrc27/viralshorts/internal/api/handlers"
	"github.com/maheshrc27/viralshorts/internal/repository"
	"github.com/maheshrc27/viralshorts/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg := config.LoadConfig()

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  10 * time.Minute,
		WriteTimeout: 10 * time.Minute,
		BodyLimit:    100 * 1024 * 1024, // 100 MB
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			return true
		},
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		MaxAge:       3600,
	}))

	app.Static("/output", cfg.OutputDir)

	runner := service.NewToolRunner()
	tokenRepo := repository.NewFileTokenRepository(cfg.TokenFile, cfg.SecretKey)

	captionService := service.NewCaptionService()
	fetchService := service.NewFetchService()
	voiceService := service.NewVoiceService(*cfg, runner)

	var archiveService *service.ArchiveService
	if cfg.R2.BucketName != "" {
		archiveService = service.NewArchiveService(*cfg)
	}

	assemblyService := service.NewAssemblyService(*cfg, captionService, fetchService, runner, archiveService)
	uploadService := service.NewUploadService(*cfg, tokenRepo, service.NewYoutubePublisher(*cfg), service.NewCodeExchanger(*cfg))
	generatorService := service.NewPackageGenerator(*cfg)
	footageService := service.NewFootageService(*cfg)

	api := app.Group("/api")
	api.Get("/health", handlers.Health)

	generator := handlers.NewGeneratorHandler(generatorService)
	api.Post("/generate", generator.Generate)

	footage := handlers.NewFootageHandler(footageService)
	api.Get("/footage", footage.Search)

	voice := handlers.NewVoiceHandler(voiceService)
	api.Post("/tts", voice.Synthesize)
	api.Get("/tts/voices", voice.ListVoices)

	assembly := handlers.NewAssemblyHandler(assemblyService)
	api.Post("/assemble", assembly.Assemble)

	upload := handlers.NewUploadHandler(uploadService)
	api.Post("/youtube/upload", upload.Upload)
	api.Post("/youtube/auth-callback", upload.AuthCallback)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Printf("Server is running on http://localhost:%s", cfg.Port)

	gracefulShutdown(app)
}

func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Fatalf("Failed to shut down server: %v", err)
	}

	log.Println("Server shutdown complete.")
}
