// File: database/repository/appointment/appointment_mongo.go
package appointmentRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"apptchat/models"
)

const opTimeout = 5 * time.Second

// store-assigned ids never leave the adapter
var noID = bson.M{"_id": 0}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a MongoDB AppointmentRepository over coll.
func NewMongoAppointmentRepo(coll *mongo.Collection) AppointmentRepository {
	return &mongoAppointmentRepo{coll: coll}
}

// Collection resolves the appointments collection for the given client.
func Collection(client *mongo.Client, dbName, collName string) *mongo.Collection {
	return client.Database(dbName).Collection(collName)
}

func (r *mongoAppointmentRepo) FindSlot(ctx context.Context, date, at string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	filter := bson.M{"date": date, "time": at}
	var appt models.Appointment
	err := r.coll.FindOne(ctx, filter, options.FindOne().SetProjection(noID)).Decode(&appt)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find slot %s %s: %w", date, at, err)
	}
	return &appt, nil
}

func (r *mongoAppointmentRepo) Insert(ctx context.Context, appt models.Appointment) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, appt); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrSlotTaken
		}
		return fmt.Errorf("insert appointment: %w", err)
	}
	return nil
}

func (r *mongoAppointmentRepo) DeleteExact(ctx context.Context, name, date, at string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	filter := bson.M{"name": name, "date": date, "time": at}
	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("delete appointment: %w", err)
	}
	return res.DeletedCount, nil
}

func (r *mongoAppointmentRepo) ListAll(ctx context.Context) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	opts := options.Find().
		SetProjection(noID).
		SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer cursor.Close(ctx)

	appts := []models.Appointment{}
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("decode appointments: %w", err)
	}
	return appts, nil
}
