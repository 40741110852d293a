package catalog

import (
	"errors"

	catalogRepo "angoni/database/repository/catalog"
	"angoni/models"
	"angoni/services/analytics"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrNotFound is returned when a catalog lookup misses.
var ErrNotFound = errors.New("catalog record not found")

// Service exposes the browsable inventory. Reads record usage events
// best-effort; writes are admin-driven pass-throughs.
type Service interface {
	ListPackages(filter models.PackageFilter, meta models.RequestMeta) ([]models.SafariPackage, error)
	GetPackage(id string, meta models.RequestMeta) (*models.SafariPackage, error)
	CreatePackage(pkg *models.SafariPackage) error
	UpdatePackage(id string, fields bson.M) (*models.SafariPackage, error)
	DeletePackage(id string) error

	ListVehicles(filter models.VehicleFilter, meta models.RequestMeta) ([]models.Vehicle, error)
	GetVehicle(id string, meta models.RequestMeta) (*models.Vehicle, error)
	CreateVehicle(vehicle *models.Vehicle) error
	UpdateVehicle(id string, fields bson.M) (*models.Vehicle, error)
	DeleteVehicle(id string) error

	ListShuttles(meta models.RequestMeta) ([]models.ShuttleRoute, error)
	ListDestinations(featuredOnly bool) ([]models.Destination, error)
}

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	Repo     catalogRepo.CatalogRepository
	Recorder analytics.Recorder
}

func (s *DefaultCatalogService) ListPackages(filter models.PackageFilter, meta models.RequestMeta) ([]models.SafariPackage, error) {
	packages, err := s.Repo.ListPackages(filter)
	if err != nil {
		return nil, err
	}
	s.Recorder.Record("packages_viewed", map[string]interface{}{"count": len(packages)}, meta)
	return packages, nil
}

func (s *DefaultCatalogService) GetPackage(id string, meta models.RequestMeta) (*models.SafariPackage, error) {
	pkg, err := s.Repo.GetPackage(id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	s.Recorder.Record("package_viewed", map[string]interface{}{"package_id": id, "title": pkg.Title}, meta)
	return pkg, nil
}

func (s *DefaultCatalogService) CreatePackage(pkg *models.SafariPackage) error {
	return s.Repo.CreatePackage(pkg)
}

func (s *DefaultCatalogService) UpdatePackage(id string, fields bson.M) (*models.SafariPackage, error) {
	pkg, err := s.Repo.UpdatePackage(id, fields)
	if err != nil && errors.Is(err, catalogRepo.ErrNotFound) {
		return nil, ErrNotFound
	}
	return pkg, err
}

func (s *DefaultCatalogService) DeletePackage(id string) error {
	err := s.Repo.DeletePackage(id)
	if err != nil && errors.Is(err, catalogRepo.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *DefaultCatalogService) ListVehicles(filter models.VehicleFilter, meta models.RequestMeta) ([]models.Vehicle, error) {
	vehicles, err := s.Repo.ListVehicles(filter)
	if err != nil {
		return nil, err
	}
	s.Recorder.Record("vehicles_viewed", map[string]interface{}{"count": len(vehicles)}, meta)
	return vehicles, nil
}

func (s *DefaultCatalogService) GetVehicle(id string, meta models.RequestMeta) (*models.Vehicle, error) {
	vehicle, err := s.Repo.GetVehicle(id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	s.Recorder.Record("vehicle_viewed", map[string]interface{}{"vehicle_id": id}, meta)
	return vehicle, nil
}

func (s *DefaultCatalogService) CreateVehicle(vehicle *models.Vehicle) error {
	return s.Repo.CreateVehicle(vehicle)
}

func (s *DefaultCatalogService) UpdateVehicle(id string, fields bson.M) (*models.Vehicle, error) {
	vehicle, err := s.Repo.UpdateVehicle(id, fields)
	if err != nil && errors.Is(err, catalogRepo.ErrNotFound) {
		return nil, ErrNotFound
	}
	return vehicle, err
}

func (s *DefaultCatalogService) DeleteVehicle(id string) error {
	err := s.Repo.DeleteVehicle(id)
	if err != nil && errors.Is(err, catalogRepo.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *DefaultCatalogService) ListShuttles(meta models.RequestMeta) ([]models.ShuttleRoute, error) {
	shuttles, err := s.Repo.ListShuttles()
	if err != nil {
		return nil, err
	}
	s.Recorder.Record("shuttles_viewed", map[string]interface{}{"count": len(shuttles)}, meta)
	return shuttles, nil
}

func (s *DefaultCatalogService) ListDestinations(featuredOnly bool) ([]models.Destination, error) {
	return s.Repo.ListDestinations(featuredOnly)
}
