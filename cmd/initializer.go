package main

import (
	"context"
	"fmt"
	"log"

	firebase "firebase.google.com/go"
	"github.com/redis/go-redis/v9"
	"google.golang.org/api/option"

	"vizigoBack/internal/config"
	"vizigoBack/internal/handlers"
	"vizigoBack/internal/repositories"
	"vizigoBack/internal/services"
)

type application struct {
	errorLog      *log.Logger
	infoLog       *log.Logger
	cfg           config.Config
	bikeHandler   *handlers.BikeHandler
	rentalHandler *handlers.RentalHandler
}

func initializeApp(cfg config.Config, store repositories.Store, notifier services.RentalNotifier, errorLog, infoLog *log.Logger) *application {
	store = repositories.Instrument(store)

	// Repositories
	bikeRepo := repositories.BikeRepository{Store: store}
	rentalRepo := repositories.RentalRepository{Store: store}

	// Services
	bikeService := &services.BikeService{BikeRepo: &bikeRepo}
	rentalService := &services.RentalService{RentalRepo: &rentalRepo, Notifier: notifier, ErrorLog: errorLog}

	// Handlers
	bikeHandler := &handlers.BikeHandler{Service: bikeService, ErrorLog: errorLog}
	rentalHandler := &handlers.RentalHandler{Service: rentalService, ErrorLog: errorLog}

	return &application{
		errorLog:      errorLog,
		infoLog:       infoLog,
		cfg:           cfg,
		bikeHandler:   bikeHandler,
		rentalHandler: rentalHandler,
	}
}

// openStore connects the configured document store. The returned func
// releases it. The notifier is nil unless rental notifications are configured.
func openStore(ctx context.Context, cfg config.Config, infoLog *log.Logger) (repositories.Store, services.RentalNotifier, func(), error) {
	var notifier services.RentalNotifier

	switch cfg.Store.Driver {
	case config.DriverFirebase:
		app, err := firebase.NewApp(ctx, &firebase.Config{DatabaseURL: cfg.Firebase.DatabaseURL},
			option.WithCredentialsFile(cfg.Firebase.CredentialsFile))
		if err != nil {
			return nil, nil, nil, fmt.Errorf("initialize firebase app: %w", err)
		}
		store, err := repositories.NewFirebaseStore(ctx, app)
		if err != nil {
			return nil, nil, nil, err
		}
		if cfg.Notifications.RentalTopic != "" {
			client, err := app.Messaging(ctx)
			if err != nil {
				return nil, nil, nil, fmt.Errorf("firebase messaging client: %w", err)
			}
			notifier = &services.FCMRentalNotifier{Client: client, Topic: cfg.Notifications.RentalTopic}
			infoLog.Printf("Rental notifications go to FCM topic %q", cfg.Notifications.RentalTopic)
		}
		infoLog.Printf("Connected to Firebase Realtime Database %s", cfg.Firebase.DatabaseURL)
		return store, notifier, func() {}, nil

	case config.DriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, nil, fmt.Errorf("ping redis: %w", err)
		}
		warnNoNotifier(cfg, infoLog)
		infoLog.Printf("Connected to redis at %s", cfg.Redis.Address)
		return repositories.NewRedisStore(client), nil, func() { _ = client.Close() }, nil

	case config.DriverMemory:
		warnNoNotifier(cfg, infoLog)
		infoLog.Printf("Using in-memory store; data is lost on restart")
		return repositories.NewMemoryStore(), nil, func() {}, nil
	}
	return nil, nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
}

func warnNoNotifier(cfg config.Config, infoLog *log.Logger) {
	if cfg.Notifications.RentalTopic != "" {
		infoLog.Printf("Rental notifications need the firebase driver; topic %q ignored", cfg.Notifications.RentalTopic)
	}
}
