// File: database/repository/catalog/packages.go
package catalogRepo

import (
	"fmt"
	"time"

	"angoni/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListPackages returns active packages newest-first, narrowed by the filter.
func (r *MongoCatalogRepo) ListPackages(filter models.PackageFilter) ([]models.SafariPackage, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	query := bson.M{"status": "active"}
	if filter.Type != "" {
		query["type"] = filter.Type
	}
	if filter.Destination != "" {
		query["destination"] = filter.Destination
	}
	price := bson.M{}
	if filter.MinPrice > 0 {
		price["$gte"] = filter.MinPrice
	}
	if filter.MaxPrice > 0 {
		price["$lte"] = filter.MaxPrice
	}
	if len(price) > 0 {
		query["price"] = price
	}
	if filter.Featured {
		query["featured"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.packages.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}
	defer cursor.Close(ctx)

	packages := []models.SafariPackage{}
	if err := cursor.All(ctx, &packages); err != nil {
		return nil, fmt.Errorf("failed to decode packages: %w", err)
	}
	return packages, nil
}

// GetPackage retrieves a single package by its ID.
func (r *MongoCatalogRepo) GetPackage(id string) (*models.SafariPackage, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var pkg models.SafariPackage
	if err := r.packages.FindOne(ctx, bson.M{"id": id}).Decode(&pkg); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("package with id %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch package with id %s: %w", id, err)
	}
	return &pkg, nil
}

// CreatePackage inserts a new package document.
func (r *MongoCatalogRepo) CreatePackage(pkg *models.SafariPackage) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now().UTC()
	pkg.ID = uuid.New().String()
	pkg.CreatedAt = now
	pkg.UpdatedAt = now
	if pkg.Status == "" {
		pkg.Status = "active"
	}

	if _, err := r.packages.InsertOne(ctx, pkg); err != nil {
		return fmt.Errorf("failed to create package: %w", err)
	}
	return nil
}

// UpdatePackage applies a partial update and returns the updated document.
func (r *MongoCatalogRepo) UpdatePackage(id string, fields bson.M) (*models.SafariPackage, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	delete(fields, "id")
	delete(fields, "created_at")
	fields["updated_at"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var pkg models.SafariPackage
	err := r.packages.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": fields}, opts).Decode(&pkg)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("package with id %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update package with id %s: %w", id, err)
	}
	return &pkg, nil
}

// DeletePackage removes a package document by its ID.
func (r *MongoCatalogRepo) DeletePackage(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.packages.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete package with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("package with id %s: %w", id, ErrNotFound)
	}
	return nil
}
