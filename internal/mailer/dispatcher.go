package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"log/slog"
	"sync"

	"github.com/apnigaddi/server/internal/helpers"
	"github.com/apnigaddi/server/internal/models"
)

// OwnerContact holds the business owner details included in every
// confirmation email and used as the owner-notification recipient.
type OwnerContact struct {
	Name  string
	Phone string
	Email string
}

// NotifyResult carries the independently captured outcome of each send.
type NotifyResult struct {
	CustomerErr error
	OwnerErr    error
}

// Dispatcher sends the customer confirmation and the owner notification for
// a booking. Both sends are best-effort: each is attempted regardless of the
// other's outcome, and neither affects the booking itself.
type Dispatcher struct {
	sender Sender
	owner  OwnerContact
	logger *slog.Logger
}

func NewDispatcher(sender Sender, owner OwnerContact, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		sender: sender,
		owner:  owner,
		logger: logger,
	}
}

// Notify dispatches both emails concurrently and logs each outcome.
func (d *Dispatcher) Notify(booking *models.Booking) NotifyResult {
	var result NotifyResult
	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		result.CustomerErr = d.sendCustomerConfirmation(booking)
		d.logOutcome("customer confirmation", booking, result.CustomerErr)
	}()
	go func() {
		defer wg.Done()
		result.OwnerErr = d.sendOwnerNotification(booking)
		d.logOutcome("owner notification", booking, result.OwnerErr)
	}()
	wg.Wait()

	return result
}

func (d *Dispatcher) sendCustomerConfirmation(booking *models.Booking) error {
	body, err := renderTemplate(customerTemplate, d.templateData(booking))
	if err != nil {
		return err
	}
	subject := fmt.Sprintf("Booking Confirmation - %s", booking.BookingID)
	return d.sender.Send(booking.CustomerEmail, subject, body)
}

func (d *Dispatcher) sendOwnerNotification(booking *models.Booking) error {
	body, err := renderTemplate(ownerTemplate, d.templateData(booking))
	if err != nil {
		return err
	}
	subject := fmt.Sprintf("New Booking Received - %s", booking.BookingID)
	return d.sender.Send(d.owner.Email, subject, body)
}

func (d *Dispatcher) logOutcome(kind string, booking *models.Booking, err error) {
	if err != nil {
		d.logger.Error("Email send failed",
			"email", kind,
			"booking_id", booking.BookingID,
			"error", err,
		)
		return
	}
	d.logger.Info("Email sent",
		"email", kind,
		"booking_id", booking.BookingID,
	)
}

type emailData struct {
	BookingID     string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Address       string
	Landmark      string
	VehicleType   string
	Quantity      int
	Date          string
	Time          string
	Time12        string
	Owner         OwnerContact
}

func (d *Dispatcher) templateData(booking *models.Booking) emailData {
	return emailData{
		BookingID:     booking.BookingID,
		CustomerName:  booking.CustomerName,
		CustomerEmail: booking.CustomerEmail,
		CustomerPhone: booking.CustomerPhone,
		Address:       booking.Address,
		Landmark:      booking.Landmark,
		VehicleType:   helpers.Capitalize(booking.VehicleType),
		Quantity:      booking.Quantity,
		Date:          booking.BookingDate.Format("Jan 2, 2006"),
		Time:          booking.BookingTime,
		Time12:        helpers.Format12Hour(booking.BookingTime),
		Owner:         d.owner,
	}
}

func renderTemplate(t *template.Template, data emailData) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render email template: %v", err)
	}
	return buf.String(), nil
}

var customerTemplate = template.Must(template.New("customer").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #2c3e50; text-align: center;">Booking Confirmation</h2>

  <div style="background-color: #f8f9fa; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3 style="color: #27ae60; margin-top: 0;">Booking Details</h3>
    <p><strong>Booking ID:</strong> {{.BookingID}}</p>
    <p><strong>Name:</strong> {{.CustomerName}}</p>
    <p><strong>Vehicle Type:</strong> {{.VehicleType}}</p>
    <p><strong>Quantity:</strong> {{.Quantity}}</p>
    <p><strong>Date:</strong> {{.Date}}</p>
    <p><strong>Time:</strong> {{.Time}}</p>
    <p><strong>Address:</strong> {{.Address}}</p>
    <p><strong>Landmark:</strong> {{.Landmark}}</p>
  </div>

  <div style="background-color: #e8f5e8; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3 style="color: #27ae60; margin-top: 0;">Contact Information</h3>
    <p><strong>Business Owner:</strong> {{.Owner.Name}}</p>
    <p><strong>Phone:</strong> {{.Owner.Phone}}</p>
    <p><strong>Email:</strong> {{.Owner.Email}}</p>
  </div>

  <p style="color: #7f8c8d; font-size: 14px; text-align: center;">
    Thank you for choosing our service! Please keep this confirmation for your records.
  </p>
</div>
`))

var ownerTemplate = template.Must(template.New("owner").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #2c3e50; text-align: center;">New Booking Notification</h2>

  <div style="background-color: #f8f9fa; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3 style="color: #e74c3c; margin-top: 0;">Customer Details</h3>
    <p><strong>Booking ID:</strong> {{.BookingID}}</p>
    <p><strong>Name:</strong> {{.CustomerName}}</p>
    <p><strong>Email:</strong> {{.CustomerEmail}}</p>
    <p><strong>Phone:</strong> {{.CustomerPhone}}</p>
    <p><strong>Address:</strong> {{.Address}}</p>
    <p><strong>Landmark:</strong> {{.Landmark}}</p>
  </div>

  <div style="background-color: #fff3cd; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3 style="color: #856404; margin-top: 0;">Booking Details</h3>
    <p><strong>Vehicle Type:</strong> {{.VehicleType}}</p>
    <p><strong>Quantity:</strong> {{.Quantity}}</p>
    <p><strong>Date:</strong> {{.Date}}</p>
    <p><strong>Time:</strong> {{.Time12}}</p>
  </div>

  <p style="color: #7f8c8d; font-size: 14px; text-align: center;">
    Please contact the customer to confirm the booking details.
  </p>
</div>
`))
