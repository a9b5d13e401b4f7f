package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/apnigaddi/server/internal/helpers"
	"github.com/apnigaddi/server/internal/mailer"
	"github.com/apnigaddi/server/internal/models"
	"github.com/apnigaddi/server/internal/pricing"
)

// Notifier dispatches the post-creation emails for a booking.
type Notifier interface {
	Notify(booking *models.Booking) mailer.NotifyResult
}

type BookingService struct {
	bookingRepo models.BookingRepo
	notifier    Notifier
	logger      *slog.Logger

	// generateID is swapped out in tests to force collisions.
	generateID func() string
}

func NewBookingService(bookingRepo models.BookingRepo, notifier Notifier, logger *slog.Logger) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		notifier:    notifier,
		logger:      logger,
		generateID:  helpers.GenerateBookingID,
	}
}

// CreateBooking runs the full creation workflow: validate, price, generate
// an ID, persist, then hand off to the notifier. Validation failures are
// returned as the []models.FieldError before anything is stored; once the
// booking is persisted, notification outcomes cannot change the result.
func (bs *BookingService) CreateBooking(ctx context.Context, req *models.BookingRequest) (*models.Booking, []models.FieldError, error) {
	if fieldErrs := req.Validate(time.Now()); len(fieldErrs) > 0 {
		return nil, fieldErrs, nil
	}

	bookingDate, err := req.ParseBookingDate()
	if err != nil {
		// Unreachable after Validate, kept as a guard.
		return nil, []models.FieldError{{Field: "bookingDate", Message: "Booking date must be a valid date"}}, nil
	}

	booking := &models.Booking{
		BookingID:     bs.generateID(),
		CustomerName:  helpers.StringTrim(req.CustomerName),
		CustomerEmail: helpers.StringTrim(req.CustomerEmail),
		CustomerPhone: helpers.StringTrim(req.CustomerPhone),
		Address:       helpers.StringTrim(req.Address),
		Landmark:      helpers.StringTrim(req.Landmark),
		VehicleType:   req.VehicleType,
		Quantity:      req.Quantity,
		BookingDate:   bookingDate,
		BookingTime:   helpers.StringTrim(req.BookingTime),
		TotalAmount:   pricing.Total(req.VehicleType, req.Quantity),
	}

	created, err := bs.bookingRepo.CreateBooking(ctx, booking)
	if err != nil {
		return nil, nil, err
	}

	// Fire-and-forget relative to the response: the emails may still be in
	// flight after the 201 is written, and their outcome never alters it.
	go bs.notifier.Notify(created)

	return created, nil, nil
}

func (bs *BookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	return bs.bookingRepo.GetBookingByID(ctx, id)
}

func (bs *BookingService) ListBookings(ctx context.Context) ([]*models.Booking, error) {
	return bs.bookingRepo.ListBookings(ctx)
}

func (bs *BookingService) UpdateBookingStatus(ctx context.Context, id string, status models.BookingStatus) (*models.Booking, error) {
	if !status.IsValid() {
		return nil, models.ErrInvalidStatus
	}
	return bs.bookingRepo.UpdateBookingStatus(ctx, id, status)
}

func (bs *BookingService) DeleteBooking(ctx context.Context, id string) error {
	return bs.bookingRepo.DeleteBooking(ctx, id)
}
