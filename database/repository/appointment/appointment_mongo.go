package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"schedly/database"
	"schedly/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo returns a SlotStore backed by the "appointments"
// collection. A unique compound index on (date, time) makes Book atomic:
// a concurrent insert of the same slot surfaces as a duplicate-key error.
func NewMongoAppointmentRepo() SlotStore {
	coll := database.Collection("appointments")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := coll.Indexes().CreateOne(ctx, indexModel); err != nil {
		panic(fmt.Sprintf("failed to create appointments index: %v", err))
	}

	return &mongoAppointmentRepo{coll: coll}
}

type appointmentDoc struct {
	ID   string `bson:"id"`
	Date string `bson:"date"`
	Time string `bson:"time"`
}

func (r *mongoAppointmentRepo) IsBooked(ctx context.Context, slot models.Slot) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"date": slot.Date.String(), "time": slot.Time.String()}
	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("failed to query appointment: %w", err)
	}
	return count > 0, nil
}

func (r *mongoAppointmentRepo) Book(ctx context.Context, slot models.Slot) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	doc := appointmentDoc{
		ID:   uuid.New().String(),
		Date: slot.Date.String(),
		Time: slot.Time.String(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrAlreadyBooked
		}
		return fmt.Errorf("failed to book slot: %w", err)
	}
	return nil
}

func (r *mongoAppointmentRepo) ListBooked(ctx context.Context) ([]models.Slot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []appointmentDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}

	slots := make([]models.Slot, 0, len(docs))
	for _, d := range docs {
		date, err := models.ParseDate(d.Date)
		if err != nil {
			return nil, fmt.Errorf("corrupt appointment record %q: %w", d.ID, err)
		}
		tod, err := models.ParseTimeOfDay(d.Time)
		if err != nil {
			return nil, fmt.Errorf("corrupt appointment record %q: %w", d.ID, err)
		}
		slots = append(slots, models.Slot{Date: date, Time: tod})
	}
	return slots, nil
}
