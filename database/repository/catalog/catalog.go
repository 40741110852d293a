// File: database/repository/catalog/catalog.go
package catalogRepo

import (
	"context"
	"errors"
	"time"

	"angoni/database"
	"angoni/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no catalog record matches the lookup.
var ErrNotFound = errors.New("catalog record not found")

// CatalogRepository defines data access for browsable inventory: packages,
// vehicles, shuttle routes and destinations.
type CatalogRepository interface {
	ListPackages(filter models.PackageFilter) ([]models.SafariPackage, error)
	GetPackage(id string) (*models.SafariPackage, error)
	CreatePackage(pkg *models.SafariPackage) error
	UpdatePackage(id string, fields bson.M) (*models.SafariPackage, error)
	DeletePackage(id string) error

	ListVehicles(filter models.VehicleFilter) ([]models.Vehicle, error)
	GetVehicle(id string) (*models.Vehicle, error)
	CreateVehicle(vehicle *models.Vehicle) error
	UpdateVehicle(id string, fields bson.M) (*models.Vehicle, error)
	DeleteVehicle(id string) error
	CountAvailableVehicles() (int64, error)

	ListShuttles() ([]models.ShuttleRoute, error)
	ListDestinations(featuredOnly bool) ([]models.Destination, error)
}

// MongoCatalogRepo implements CatalogRepository using MongoDB.
type MongoCatalogRepo struct {
	packages     *mongo.Collection
	vehicles     *mongo.Collection
	shuttles     *mongo.Collection
	destinations *mongo.Collection
}

// NewMongoCatalogRepo creates a new instance of CatalogRepository using MongoDB.
func NewMongoCatalogRepo() CatalogRepository {
	return &MongoCatalogRepo{
		packages:     database.Collection("safari_packages"),
		vehicles:     database.Collection("vehicles"),
		shuttles:     database.Collection("shuttle_routes"),
		destinations: database.Collection("destinations"),
	}
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}
