package handlers

import (
	"errors"
	"net/http"

	"github.com/apnigaddi/server/internal/helpers"
	"github.com/apnigaddi/server/internal/models"
	"github.com/apnigaddi/server/internal/services"
	"github.com/gin-gonic/gin"
)

func CreateBooking(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.BookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": []models.FieldError{
				{Field: "body", Message: "Invalid request body"},
			}})
			return
		}

		booking, fieldErrs, err := bs.CreateBooking(c.Request.Context(), &req)
		if len(fieldErrs) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrs})
			return
		}
		if err != nil {
			// Duplicate IDs are an internal condition, not user-correctable.
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "Server error",
				"error":   shortError(err),
			})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "Booking created successfully",
			"booking": models.NewCreatedBookingPayload(booking),
		})
	}
}

func ListBookings(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookings, err := bs.ListBookings(c.Request.Context())
		if err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "Server error",
				"error":   shortError(err),
			})
			return
		}
		c.JSON(http.StatusOK, bookings)
	}
}

func GetBooking(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := helpers.StringTrim(c.Param("id"))
		booking, err := bs.GetBooking(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, models.ErrBookingNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Booking not found"})
				return
			}
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "Server error",
				"error":   shortError(err),
			})
			return
		}
		c.JSON(http.StatusOK, booking)
	}
}

func UpdateBookingStatus(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := helpers.StringTrim(c.Param("id"))

		var reqBody struct {
			Status string `json:"status"`
		}
		if err := c.ShouldBindJSON(&reqBody); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": []models.FieldError{
				{Field: "status", Message: "Invalid status"},
			}})
			return
		}

		booking, err := bs.UpdateBookingStatus(c.Request.Context(), id, models.BookingStatus(reqBody.Status))
		if err != nil {
			switch {
			case errors.Is(err, models.ErrInvalidStatus):
				c.JSON(http.StatusBadRequest, gin.H{"errors": []models.FieldError{
					{Field: "status", Message: "Invalid status"},
				}})
			case errors.Is(err, models.ErrBookingNotFound):
				c.JSON(http.StatusNotFound, gin.H{"message": "Booking not found"})
			default:
				_ = c.Error(err)
				c.JSON(http.StatusInternalServerError, gin.H{
					"message": "Server error",
					"error":   shortError(err),
				})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Booking status updated",
			"booking": booking,
		})
	}
}

func DeleteBooking(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := helpers.StringTrim(c.Param("id"))
		if err := bs.DeleteBooking(c.Request.Context(), id); err != nil {
			if errors.Is(err, models.ErrBookingNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Booking not found"})
				return
			}
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "Server error",
				"error":   shortError(err),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Booking deleted successfully"})
	}
}

// shortError keeps internal detail out of responses; the full error is
// logged server-side by the middleware and repo layers.
func shortError(err error) string {
	if errors.Is(err, models.ErrDuplicateBookingID) {
		return "duplicate booking id"
	}
	return "internal error"
}
