package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"cinescope/api"
	"cinescope/config"
	"cinescope/handlers"
	"cinescope/services/metadata"

	"gopkg.in/natefinch/lumberjack.v2"
)

func main() {

	fixtureMode := flag.Bool("fixtures", false, "serve bundled fixture data instead of calling TMDB")
	portOverride := flag.Int("port", 0, "override server port from config")
	flag.Parse()

	fmt.Println("🚀 Cinescope Starting...")

	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("Warning: %v", err)
	}

	// Determine config path (env or default)
	configPath := os.Getenv("CINESCOPE_CONFIG")
	if configPath == "" {
		configPath = filepath.Join("cache", "settings.json")
	}

	// Init config manager and load settings (creates defaults if missing)
	cfgManager := config.NewManager(configPath)
	settings, err := cfgManager.Load()
	if err != nil {
		log.Fatalf("failed to load settings: %v", err)
	}
	if err := config.ApplyEnv(&settings, os.LookupEnv); err != nil {
		log.Fatalf("invalid environment: %v", err)
	}

	// Set up file logging with rotation
	if settings.Log.File != "" {
		logDir := filepath.Dir(settings.Log.File)
		if err := os.MkdirAll(logDir, 0755); err != nil {
			log.Printf("Warning: could not create log directory %s: %v", logDir, err)
		} else {
			fileWriter := &lumberjack.Logger{
				Filename:   settings.Log.File,
				MaxSize:    settings.Log.MaxSize,
				MaxBackups: settings.Log.MaxBackups,
				MaxAge:     settings.Log.MaxAge,
				Compress:   settings.Log.Compress,
			}
			defer fileWriter.Close()
			log.SetOutput(io.MultiWriter(os.Stdout, fileWriter))
			log.SetFlags(log.LstdFlags | log.Lshortfile)
			log.Printf("Logging to file: %s", settings.Log.File)
		}
	}

	if *portOverride > 0 {
		settings.Server.Port = *portOverride
	}
	if *fixtureMode {
		settings.Environment = config.EnvironmentDevelopment
	}

	fixtures := metadata.NewEmbeddedFixtureStore()
	if dir := settings.Fixtures.Directory; dir != "" {
		fixtures = metadata.NewDirFixtureStore(dir)
		log.Printf("[movies] using fixtures from %s", dir)
	}

	if !settings.FixtureMode() && settings.TMDB.APIKey == "" {
		log.Printf("Warning: no TMDB API key configured; set %s or tmdb.apiKey in %s", config.EnvAPIKey, cfgManager.Path())
	}

	movieService := metadata.NewService(metadata.Config{
		APIKey:      settings.TMDB.APIKey,
		BaseURL:     settings.TMDB.BaseURL,
		Language:    settings.TMDB.Language,
		FixtureMode: settings.FixtureMode(),
		Fixtures:    fixtures,
		HTTPClient:  &http.Client{Timeout: settings.TMDB.Timeout()},
		Debug:       settings.Log.Debug(),
	})
	if movieService.FixtureMode() {
		fmt.Println("🧪 Fixture mode enabled: popular, movie and genre data come from bundled fixtures.")
	}

	pagesHandler, err := handlers.NewPagesHandler(movieService)
	if err != nil {
		log.Fatalf("failed to load page templates: %v", err)
	}

	r := api.NewRouter()
	api.Register(r, pagesHandler, handlers.NewMoviesHandler(movieService), handlers.NewHealthHandler(movieService))

	addr := fmt.Sprintf("%s:%d", settings.Server.Host, settings.Server.Port)
	fmt.Printf("Server starting on %s\n", addr)

	// Create HTTP server with timeouts
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Setup graceful shutdown
	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-shutdownChan
	log.Println("🛑 Shutdown signal received, cleaning up...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("✅ Shutdown complete")
}
