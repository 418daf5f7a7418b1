package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"docportal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCatalogRepo implements CatalogRepository using MongoDB.
type MongoCatalogRepo struct {
	coll *mongo.Collection
}

// NewMongoCatalogRepo creates a CatalogRepository backed by the
// appointmentOptions collection.
func NewMongoCatalogRepo(db *mongo.Database) *MongoCatalogRepo {
	return &MongoCatalogRepo{coll: db.Collection("appointmentOptions")}
}

// newContext creates a context with the given timeout.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

// GetAll retrieves every appointment option in the catalog.
func (r *MongoCatalogRepo) GetAll(ctx context.Context) ([]models.AppointmentOption, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve appointment options: %w", err)
	}
	defer cursor.Close(ctx)

	var opts []models.AppointmentOption
	for cursor.Next(ctx) {
		var o models.AppointmentOption
		if err := cursor.Decode(&o); err != nil {
			return nil, fmt.Errorf("failed to decode appointment option: %w", err)
		}
		opts = append(opts, o)
	}
	return opts, cursor.Err()
}

// GetByName retrieves one appointment option by its treatment name.
// Returns nil without error when the name is not in the catalog.
func (r *MongoCatalogRepo) GetByName(ctx context.Context, name string) (*models.AppointmentOption, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var opt models.AppointmentOption
	if err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(&opt); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch appointment option %q: %w", name, err)
	}
	return &opt, nil
}

// GetSpecialties retrieves only the treatment names, projected server-side.
func (r *MongoCatalogRepo) GetSpecialties(ctx context.Context) ([]models.Specialty, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"name": 1, "_id": 0})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve specialties: %w", err)
	}
	defer cursor.Close(ctx)

	var specialties []models.Specialty
	for cursor.Next(ctx) {
		var s models.Specialty
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode specialty: %w", err)
		}
		specialties = append(specialties, s)
	}
	return specialties, cursor.Err()
}
