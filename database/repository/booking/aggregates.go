// File: database/repository/booking/aggregates.go
package bookingRepo

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Count returns the total number of booking documents, computed store-side.
func (r *MongoBookingRepo) Count() (int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}
	return count, nil
}

// PaidAmounts returns the total_amount of every booking whose payment_status
// is "paid". Only the amount field is transferred; the summation stays with
// the caller.
func (r *MongoBookingRepo) PaidAmounts() ([]float64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"total_amount": 1, "_id": 0})
	cursor, err := r.coll.Find(ctx, bson.M{"payment_status": "paid"}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch paid bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		TotalAmount float64 `bson:"total_amount"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode paid amounts: %w", err)
	}

	amounts := make([]float64, 0, len(rows))
	for _, row := range rows {
		amounts = append(amounts, row.TotalAmount)
	}
	return amounts, nil
}

// LeadEmails returns the lead_email of every booking. Deduplication stays
// with the caller.
func (r *MongoBookingRepo) LeadEmails() ([]string, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"lead_email": 1, "_id": 0})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch lead emails: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		LeadEmail string `bson:"lead_email"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode lead emails: %w", err)
	}

	emails := make([]string, 0, len(rows))
	for _, row := range rows {
		emails = append(emails, row.LeadEmail)
	}
	return emails, nil
}
