package models

import "time"

// SafariPackage is a bookable travel package.
type SafariPackage struct {
	ID           string    `bson:"id" json:"id"`
	Title        string    `bson:"title" json:"title"`
	Description  string    `bson:"description,omitempty" json:"description,omitempty"`
	Type         string    `bson:"type" json:"type"` // e.g. "safari", "beach", "mountain"
	Destination  string    `bson:"destination" json:"destination"`
	Price        float64   `bson:"price" json:"price"`
	DurationDays int       `bson:"duration_days,omitempty" json:"duration_days,omitempty"`
	Featured     bool      `bson:"featured" json:"featured"`
	Status       string    `bson:"status" json:"status"` // "active" packages are browsable
	ImageURL     string    `bson:"image_url,omitempty" json:"image_url,omitempty"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// Vehicle is a rentable vehicle.
type Vehicle struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Type        string    `bson:"type" json:"type"` // e.g. "4x4", "minibus"
	PricePerDay float64   `bson:"price_per_day" json:"price_per_day"`
	Seats       int       `bson:"seats,omitempty" json:"seats,omitempty"`
	Featured    bool      `bson:"featured" json:"featured"`
	Status      string    `bson:"status" json:"status"` // "available" vehicles are browsable
	ImageURL    string    `bson:"image_url,omitempty" json:"image_url,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// ShuttleRoute is a scheduled shuttle connection.
type ShuttleRoute struct {
	ID             string    `bson:"id" json:"id"`
	Name           string    `bson:"name" json:"name"`
	Origin         string    `bson:"origin" json:"origin"`
	Destination    string    `bson:"destination" json:"destination"`
	Price          float64   `bson:"price" json:"price"`
	DepartureTimes []string  `bson:"departure_times,omitempty" json:"departure_times,omitempty"`
	Status         string    `bson:"status" json:"status"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
}

// Destination is a browsable travel destination.
type Destination struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Region      string    `bson:"region,omitempty" json:"region,omitempty"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Featured    bool      `bson:"featured" json:"featured"`
	Status      string    `bson:"status" json:"status"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

// PackageFilter narrows package browse queries. Zero values mean "no filter".
type PackageFilter struct {
	Type        string
	Destination string
	MinPrice    float64
	MaxPrice    float64
	Featured    bool
}

// VehicleFilter narrows vehicle browse queries.
type VehicleFilter struct {
	Type     string
	MinPrice float64
	MaxPrice float64
	Featured bool
}
