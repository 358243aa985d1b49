package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Aaron23010705/vehicle-service-api/internal/models"
)

type ReservationMongoRepository struct {
	coll *mongo.Collection
}

func NewReservationMongoRepository(db *mongo.Database) *ReservationMongoRepository {
	return &ReservationMongoRepository{coll: db.Collection("reservations")}
}

// expandClient joins the referenced client document into each reservation.
// preserveNullAndEmptyArrays keeps reservations whose client is gone; those
// come back with no client field at all.
func expandClient() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         "clients",
			"localField":   "clientId",
			"foreignField": "_id",
			"as":           "client",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$client",
			"preserveNullAndEmptyArrays": true,
		}}},
	}
}

func (r *ReservationMongoRepository) List(ctx context.Context) ([]models.Reservation, error) {
	cursor, err := r.coll.Aggregate(ctx, expandClient())
	if err != nil {
		return nil, err
	}

	reservations := []models.Reservation{}
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

func (r *ReservationMongoRepository) GetByID(
	ctx context.Context,
	id primitive.ObjectID,
) (*models.Reservation, error) {

	pipeline := append(mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": id}}},
	}, expandClient()...)

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	var results []models.Reservation
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return &results[0], nil
}

func (r *ReservationMongoRepository) Exists(
	ctx context.Context,
	id primitive.ObjectID,
) (bool, error) {

	count, err := r.coll.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ReservationMongoRepository) Insert(
	ctx context.Context,
	rv *models.Reservation,
) error {

	now := time.Now().UTC()
	rv.CreatedAt = now
	rv.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, rv)
	if err != nil {
		return err
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		rv.ID = oid
	}
	return nil
}

func (r *ReservationMongoRepository) Update(
	ctx context.Context,
	id primitive.ObjectID,
	rv *models.Reservation,
) (*models.Reservation, error) {

	update := bson.M{"$set": bson.M{
		"clientId":  rv.ClientID,
		"vehicle":   rv.Vehicle,
		"service":   rv.Service,
		"status":    rv.Status,
		"updatedAt": time.Now().UTC(),
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, nil
	}

	return r.GetByID(ctx, id)
}

func (r *ReservationMongoRepository) Delete(
	ctx context.Context,
	id primitive.ObjectID,
) error {

	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
