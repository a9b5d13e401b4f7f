package models

import (
	"fmt"
	"regexp"
	"time"

	"github.com/apnigaddi/server/internal/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

const (
	VehicleTypeAuto = "auto"
	VehicleTypeCar  = "car"
)

const (
	BookingDbName  = "booking-app"
	BookingColName = "bookings"
)

// DateLayout is the wire format for booking dates.
const DateLayout = "2006-01-02"

type Booking struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	BookingID     string             `bson:"booking_id" json:"bookingId" validate:"required"`
	CustomerName  string             `bson:"customer_name" json:"customerName" validate:"required"`
	CustomerEmail string             `bson:"customer_email" json:"customerEmail" validate:"required"`
	CustomerPhone string             `bson:"customer_phone" json:"customerPhone" validate:"required"`
	Address       string             `bson:"address" json:"address" validate:"required"`
	Landmark      string             `bson:"landmark" json:"landmark" validate:"required"`
	VehicleType   string             `bson:"vehicle_type" json:"vehicleType" validate:"required,oneof=auto car"`
	Quantity      int                `bson:"quantity" json:"quantity" validate:"required,min=1"`
	BookingDate   time.Time          `bson:"booking_date" json:"bookingDate" validate:"required"`
	BookingTime   string             `bson:"booking_time" json:"bookingTime" validate:"required"`
	TotalAmount   float64            `bson:"total_amount" json:"totalAmount"`
	Status        BookingStatus      `bson:"status" json:"status" validate:"required,oneof=pending confirmed cancelled"`
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
}

func (b *Booking) BeforeCreate() error {
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	if b.Status == "" {
		b.Status = StatusPending
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}
	return nil
}

// FieldError is a single validation failure, serialized into the 400
// response's errors array.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// BookingRequest is the POST /api/bookings payload.
type BookingRequest struct {
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`
	Address       string `json:"address"`
	Landmark      string `json:"landmark"`
	VehicleType   string `json:"vehicleType"`
	Quantity      int    `json:"quantity"`
	BookingDate   string `json:"bookingDate"`
	BookingTime   string `json:"bookingTime"`
}

// One-or-more non-whitespace, @, non-whitespace, dot, non-whitespace.
var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// Validate checks every rule and collects all failures in field order.
// The server-side check is authoritative; whatever the client validated
// before submitting is advisory only.
func (r *BookingRequest) Validate(now time.Time) []FieldError {
	var errs []FieldError

	if helpers.StringTrim(r.CustomerName) == "" {
		errs = append(errs, FieldError{Field: "customerName", Message: "Customer name is required"})
	}
	if helpers.StringTrim(r.CustomerEmail) == "" || !emailPattern.MatchString(helpers.StringTrim(r.CustomerEmail)) {
		errs = append(errs, FieldError{Field: "customerEmail", Message: "Valid email is required"})
	}
	if helpers.StringTrim(r.CustomerPhone) == "" {
		errs = append(errs, FieldError{Field: "customerPhone", Message: "Phone number is required"})
	}
	if helpers.StringTrim(r.Address) == "" {
		errs = append(errs, FieldError{Field: "address", Message: "Address is required"})
	}
	if helpers.StringTrim(r.Landmark) == "" {
		errs = append(errs, FieldError{Field: "landmark", Message: "Landmark is required"})
	}
	if r.VehicleType != VehicleTypeAuto && r.VehicleType != VehicleTypeCar {
		errs = append(errs, FieldError{Field: "vehicleType", Message: "Vehicle type must be auto or car"})
	}
	if r.Quantity < 1 || r.Quantity > 10 {
		errs = append(errs, FieldError{Field: "quantity", Message: "Quantity must be between 1 and 10"})
	}
	if helpers.StringTrim(r.BookingDate) == "" {
		errs = append(errs, FieldError{Field: "bookingDate", Message: "Booking date is required"})
	} else if date, err := r.ParseBookingDate(); err != nil {
		errs = append(errs, FieldError{Field: "bookingDate", Message: "Booking date must be a valid date"})
	} else if date.Before(truncateToMidnight(now)) {
		errs = append(errs, FieldError{Field: "bookingDate", Message: "Booking date cannot be in the past"})
	}
	if helpers.StringTrim(r.BookingTime) == "" {
		errs = append(errs, FieldError{Field: "bookingTime", Message: "Booking time is required"})
	}

	return errs
}

func (r *BookingRequest) ParseBookingDate() (time.Time, error) {
	return time.Parse(DateLayout, helpers.StringTrim(r.BookingDate))
}

// truncateToMidnight drops the time-of-day so date comparisons are
// calendar-day comparisons.
func truncateToMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
