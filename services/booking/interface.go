package booking

import (
	"angoni/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Service defines the booking operations exposed to handlers.
type Service interface {
	Create(input models.BookingInput, meta models.RequestMeta) (*models.Booking, error)
	List(filter models.BookingFilter) ([]models.Booking, error)
	GetByReference(reference string) (*models.Booking, error)
	Update(id string, fields bson.M) (*models.Booking, error)
}
