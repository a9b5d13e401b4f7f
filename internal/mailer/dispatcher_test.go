package mailer

import (
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/apnigaddi/server/internal/models"
)

type sentMail struct {
	to      string
	subject string
	body    string
}

type fakeSender struct {
	mu    sync.Mutex
	sent  []sentMail
	fails map[string]error // keyed by recipient
}

func (f *fakeSender) Send(to, subject, htmlBody string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: htmlBody})
	if err, ok := f.fails[to]; ok {
		return err
	}
	return nil
}

func (f *fakeSender) sentTo(to string) *sentMail {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.sent {
		if f.sent[i].to == to {
			return &f.sent[i]
		}
	}
	return nil
}

var testOwner = OwnerContact{Name: "Aman", Phone: "6306876007", Email: "owner@bookingapp.com"}

func testBooking() *models.Booking {
	return &models.Booking{
		BookingID:     "BK1700000000000AB12C",
		CustomerName:  "Jane Doe",
		CustomerEmail: "jane@x.com",
		CustomerPhone: "555",
		Address:       "1 Main St",
		Landmark:      "Park",
		VehicleType:   "car",
		Quantity:      2,
		BookingDate:   time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		BookingTime:   "14:30",
		TotalAmount:   100,
		Status:        models.StatusPending,
	}
}

func newTestDispatcher(sender Sender) *Dispatcher {
	return NewDispatcher(sender, testOwner, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestNotifySendsBothEmails(t *testing.T) {
	sender := &fakeSender{}
	d := newTestDispatcher(sender)
	booking := testBooking()

	result := d.Notify(booking)
	if result.CustomerErr != nil || result.OwnerErr != nil {
		t.Fatalf("unexpected errors: %+v", result)
	}

	customer := sender.sentTo("jane@x.com")
	if customer == nil {
		t.Fatal("customer confirmation was not sent")
	}
	if !strings.Contains(customer.subject, booking.BookingID) {
		t.Errorf("customer subject %q missing booking id", customer.subject)
	}
	for _, want := range []string{"Jane Doe", "Car", "14:30", "1 Main St", "Park", testOwner.Name, testOwner.Phone, testOwner.Email} {
		if !strings.Contains(customer.body, want) {
			t.Errorf("customer body missing %q", want)
		}
	}

	owner := sender.sentTo(testOwner.Email)
	if owner == nil {
		t.Fatal("owner notification was not sent")
	}
	if !strings.Contains(owner.subject, booking.BookingID) {
		t.Errorf("owner subject %q missing booking id", owner.subject)
	}
	// Owner email carries the customer phone and the 12-hour time form.
	for _, want := range []string{"555", "jane@x.com", "2:30 PM"} {
		if !strings.Contains(owner.body, want) {
			t.Errorf("owner body missing %q", want)
		}
	}
}

func TestNotifyIsolatesFailures(t *testing.T) {
	cases := []struct {
		name         string
		failCustomer bool
		failOwner    bool
	}{
		{"customer fails", true, false},
		{"owner fails", false, true},
		{"both fail", true, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sender := &fakeSender{fails: map[string]error{}}
			if tc.failCustomer {
				sender.fails["jane@x.com"] = errors.New("smtp down")
			}
			if tc.failOwner {
				sender.fails[testOwner.Email] = errors.New("smtp down")
			}

			result := newTestDispatcher(sender).Notify(testBooking())

			if (result.CustomerErr != nil) != tc.failCustomer {
				t.Errorf("CustomerErr = %v, failCustomer = %v", result.CustomerErr, tc.failCustomer)
			}
			if (result.OwnerErr != nil) != tc.failOwner {
				t.Errorf("OwnerErr = %v, failOwner = %v", result.OwnerErr, tc.failOwner)
			}

			// Both sends must have been attempted regardless of outcomes.
			if sender.sentTo("jane@x.com") == nil {
				t.Error("customer send was not attempted")
			}
			if sender.sentTo(testOwner.Email) == nil {
				t.Error("owner send was not attempted")
			}
		})
	}
}
