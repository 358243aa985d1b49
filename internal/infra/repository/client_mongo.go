package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Aaron23010705/vehicle-service-api/internal/models"
)

type ClientMongoRepository struct {
	coll *mongo.Collection
}

func NewClientMongoRepository(db *mongo.Database) *ClientMongoRepository {
	return &ClientMongoRepository{coll: db.Collection("clients")}
}

func (r *ClientMongoRepository) List(ctx context.Context) ([]models.Client, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	clients := []models.Client{}
	if err := cursor.All(ctx, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *ClientMongoRepository) GetByID(
	ctx context.Context,
	id primitive.ObjectID,
) (*models.Client, error) {

	var cl models.Client
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&cl)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cl, nil
}

func (r *ClientMongoRepository) FindByEmail(
	ctx context.Context,
	email string,
) (*models.Client, error) {

	var cl models.Client
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&cl)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cl, nil
}

func (r *ClientMongoRepository) EmailInUseByOther(
	ctx context.Context,
	email string,
	id primitive.ObjectID,
) (bool, error) {

	count, err := r.coll.CountDocuments(ctx, bson.M{
		"email": email,
		"_id":   bson.M{"$ne": id},
	})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ClientMongoRepository) Insert(
	ctx context.Context,
	cl *models.Client,
) error {

	now := time.Now().UTC()
	cl.CreatedAt = now
	cl.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, cl)
	if err != nil {
		return err
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		cl.ID = oid
	}
	return nil
}

func (r *ClientMongoRepository) Update(
	ctx context.Context,
	id primitive.ObjectID,
	cl *models.Client,
) (*models.Client, error) {

	update := bson.M{"$set": bson.M{
		"name":      cl.Name,
		"email":     cl.Email,
		"password":  cl.Password,
		"phone":     cl.Phone,
		"age":       cl.Age,
		"updatedAt": time.Now().UTC(),
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Client
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).
		Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *ClientMongoRepository) Delete(
	ctx context.Context,
	id primitive.ObjectID,
) error {

	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
