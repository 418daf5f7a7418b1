// FILE: database/repository/booking/indexes.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	idxDateEmailTreatment = "unique_date_email_treatment"
	idxDateTreatmentSlot  = "unique_date_treatment_slot"
)

// ensureIndexes creates the indexes on the bookings collection. The two
// unique compound indexes are what actually enforce the admission
// invariants; the application-level pre-check only exists to produce a
// friendly conflict message without a write attempt.
func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// One booking per patient per treatment per date.
		{
			Keys:    bson.D{{Key: "appointmentDate", Value: 1}, {Key: "email", Value: 1}, {Key: "treatment", Value: 1}},
			Options: options.Index().SetUnique(true).SetName(idxDateEmailTreatment),
		},
		// A slot is an exclusive resource per treatment per date.
		{
			Keys:    bson.D{{Key: "appointmentDate", Value: 1}, {Key: "treatment", Value: 1}, {Key: "slot", Value: 1}},
			Options: options.Index().SetUnique(true).SetName(idxDateTreatmentSlot),
		},
		// Primary read pattern for a patient's booking list.
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("email_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}
	return nil
}
