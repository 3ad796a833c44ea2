package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/artonus/pos-api/internal/core/domain"
	"github.com/artonus/pos-api/internal/core/ports"
)

const bookingsCollection = "bookings"

type BookingRepository struct {
	coll *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{coll: db.Collection(bookingsCollection)}
}

type mongoBooking struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	CustomerName    string             `bson:"customer_name"`
	Email           string             `bson:"email"`
	Service         string             `bson:"service"`
	AppointmentDate time.Time          `bson:"appointment_date"`
	Status          string             `bson:"status"`
	CreatedAt       time.Time          `bson:"created_at"`
}

// Create inserts a new booking document.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoBooking{
		CustomerName:    b.CustomerName,
		Email:           b.Email,
		Service:         b.Service,
		AppointmentDate: b.AppointmentDate.UTC(),
		Status:          string(b.Status),
		CreatedAt:       b.CreatedAt.UTC(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert booking: %w", err)
	}

	created := *b
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

// Find returns all bookings matching filter in insertion order.
func (r *BookingRepository) Find(ctx context.Context, filter ports.ListBookingsFilter) ([]*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, buildFilter(filter))
	if err != nil {
		return nil, fmt.Errorf("find bookings: %w", err)
	}
	defer cur.Close(ctx)

	bookings := make([]*domain.Booking, 0)
	for cur.Next(ctx) {
		var mb mongoBooking
		if err := cur.Decode(&mb); err != nil {
			return nil, fmt.Errorf("decode booking: %w", err)
		}
		bookings = append(bookings, toDomain(mb))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate bookings: %w", err)
	}
	return bookings, nil
}

// buildFilter translates the optional list parameters into a mongo query.
// Absent fields add no constraint, so the zero filter matches everything.
func buildFilter(f ports.ListBookingsFilter) bson.M {
	query := bson.M{}
	if f.CustomerName != "" {
		query["customer_name"] = bson.M{"$regex": f.CustomerName, "$options": "i"}
	}
	if f.Status != "" {
		query["status"] = f.Status
	}
	if f.From != nil || f.To != nil {
		date := bson.M{}
		if f.From != nil {
			date["$gte"] = f.From.UTC()
		}
		if f.To != nil {
			date["$lte"] = f.To.UTC()
		}
		query["appointment_date"] = date
	}
	return query
}

func toDomain(mb mongoBooking) *domain.Booking {
	return &domain.Booking{
		ID:              mb.ID.Hex(),
		CustomerName:    mb.CustomerName,
		Email:           mb.Email,
		Service:         mb.Service,
		AppointmentDate: mb.AppointmentDate.UTC(),
		Status:          domain.BookingStatus(mb.Status),
		CreatedAt:       mb.CreatedAt.UTC(),
	}
}
