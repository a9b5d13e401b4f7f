package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CreatedBookingPayload is the trimmed booking view returned by
// POST /api/bookings. The full entity (including contact details) comes back
// from the GET endpoints.
type CreatedBookingPayload struct {
	ID           primitive.ObjectID `json:"id"`
	BookingID    string             `json:"bookingId"`
	CustomerName string             `json:"customerName"`
	VehicleType  string             `json:"vehicleType"`
	Quantity     int                `json:"quantity"`
	BookingDate  string             `json:"bookingDate"`
	BookingTime  string             `json:"bookingTime"`
	TotalAmount  float64            `json:"totalAmount"`
	Address      string             `json:"address"`
	Landmark     string             `json:"landmark"`
	Status       BookingStatus      `json:"status"`
}

func NewCreatedBookingPayload(b *Booking) CreatedBookingPayload {
	return CreatedBookingPayload{
		ID:           b.ID,
		BookingID:    b.BookingID,
		CustomerName: b.CustomerName,
		VehicleType:  b.VehicleType,
		Quantity:     b.Quantity,
		BookingDate:  b.BookingDate.Format(DateLayout),
		BookingTime:  b.BookingTime,
		TotalAmount:  b.TotalAmount,
		Address:      b.Address,
		Landmark:     b.Landmark,
		Status:       b.Status,
	}
}
