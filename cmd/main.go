package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"vizigoBack/internal/config"
	"vizigoBack/internal/metrics"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	configPath := flag.String("config", "config/config.yaml", "Path to the YAML config file")
	addr := flag.String("addr", "", "HTTP network address (overrides config)")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *addr != "" {
		cfg.Server.Address = *addr
	}

	infoLog := log.New(os.Stdout, "INFO\t", log.Ldate|log.Ltime)
	errorLog := log.New(os.Stderr, "ERROR\t", log.Ldate|log.Ltime|log.Lshortfile)

	metrics.Register()

	store, notifier, closeStore, err := openStore(context.Background(), cfg, infoLog)
	if err != nil {
		errorLog.Fatal(err)
	}
	defer closeStore()

	app := initializeApp(cfg, store, notifier, errorLog, infoLog)

	srv := &http.Server{
		Addr:         cfg.Server.Address,
		ErrorLog:     errorLog,
		Handler:      newCORS().Handler(app.routes()),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	infoLog.Printf("Starting server on %s (store: %s)", cfg.Server.Address, cfg.Store.Driver)
	if err := srv.ListenAndServe(); err != nil {
		errorLog.Fatal(err)
	}
}
