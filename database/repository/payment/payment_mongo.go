package paymentRepo

import (
	"context"
	"fmt"
	"time"

	"docportal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoPaymentRepo implements PaymentRepository using MongoDB. It spans the
// payments and bookings collections because reconciliation is a single
// multi-document transaction across both.
type MongoPaymentRepo struct {
	paymentColl *mongo.Collection
	bookingColl *mongo.Collection
}

// NewMongoPaymentRepo creates a PaymentRepository and installs its indexes.
func NewMongoPaymentRepo(db *mongo.Database) (*MongoPaymentRepo, error) {
	repo := &MongoPaymentRepo{
		paymentColl: db.Collection("payments"),
		bookingColl: db.Collection("bookings"),
	}
	if err := repo.ensureIndexes(); err != nil {
		return nil, fmt.Errorf("payments: %w", err)
	}
	return repo, nil
}

// ApplyPayment performs the two-step payment effect transactionally: insert
// the payment record, then set paid/transactionId on the booking. Either both
// become visible or neither does.
func (r *MongoPaymentRepo) ApplyPayment(ctx context.Context, payment *models.Payment) (*models.Booking, error) {
	payment.CreatedAt = time.Now()

	client := r.paymentColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return nil, fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	var updated models.Booking

	txnFn := func(sc mongo.SessionContext) error {
		if _, err := r.paymentColl.InsertOne(sc, payment); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return ErrDuplicateTransaction
			}
			return fmt.Errorf("insert payment failed: %w", err)
		}

		// paid:false keeps the false->true transition one-shot: a booking
		// settled by an earlier transaction never matches again, and the
		// abort rolls the payment insert back with it.
		filter := bson.M{"id": payment.BookingID, "paid": false}
		update := bson.M{"$set": bson.M{
			"paid":          true,
			"transactionId": payment.TransactionID,
		}}

		res, err := r.bookingColl.UpdateOne(sc, filter, update)
		if err != nil {
			return fmt.Errorf("update booking failed: %w", err)
		}
		if res.MatchedCount == 0 {
			err := r.bookingColl.FindOne(sc, bson.M{"id": payment.BookingID}).Err()
			if err == mongo.ErrNoDocuments {
				return ErrBookingNotFound
			}
			if err != nil {
				return fmt.Errorf("booking lookup failed: %w", err)
			}
			return ErrBookingAlreadyPaid
		}

		if err := r.bookingColl.FindOne(sc, bson.M{"id": payment.BookingID}).Decode(&updated); err != nil {
			return fmt.Errorf("reload booking failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if err == ErrDuplicateTransaction || err == ErrBookingNotFound || err == ErrBookingAlreadyPaid {
			return nil, err
		}
		return nil, fmt.Errorf("payment transaction failed: %w", err)
	}

	return &updated, nil
}

// GetByTransactionID retrieves a payment by its transaction reference.
// Returns nil without error when no payment matches.
func (r *MongoPaymentRepo) GetByTransactionID(ctx context.Context, transactionID string) (*models.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var payment models.Payment
	if err := r.paymentColl.FindOne(ctx, bson.M{"transactionId": transactionID}).Decode(&payment); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch payment for transaction %s: %w", transactionID, err)
	}
	return &payment, nil
}
