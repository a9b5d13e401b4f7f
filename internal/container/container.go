package container

import (
	"log/slog"

	"github.com/apnigaddi/server/internal/config"
	"github.com/apnigaddi/server/internal/mailer"
	"github.com/apnigaddi/server/internal/models"
	"github.com/apnigaddi/server/internal/services"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container holds all application dependencies
type Container struct {
	Logger         *slog.Logger
	Config         *config.Config
	MongoDBClient  *mongo.Client
	BookingRepo    *models.MongodbRepo
	Dispatcher     *mailer.Dispatcher
	BookingService *services.BookingService
}

// NewContainer creates a new dependency injection container
func NewContainer(logger *slog.Logger, cfg *config.Config, mongoDBClient *mongo.Client) *Container {
	repo := models.MongodbNewRepo(mongoDBClient)

	sender := mailer.NewSMTPSender(cfg.EmailHost, cfg.EmailPort, cfg.EmailUser, cfg.EmailPass)
	dispatcher := mailer.NewDispatcher(sender, mailer.OwnerContact{
		Name:  cfg.OwnerName,
		Phone: cfg.OwnerPhone,
		Email: cfg.OwnerEmail,
	}, logger)

	bookingService := services.NewBookingService(repo, dispatcher, logger)

	return &Container{
		Logger:         logger,
		Config:         cfg,
		MongoDBClient:  mongoDBClient,
		BookingRepo:    repo,
		Dispatcher:     dispatcher,
		BookingService: bookingService,
	}
}
