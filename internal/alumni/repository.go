package alumni

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AlumniRepository handles DB operations for alumni records.
type AlumniRepository struct {
	collection *mongo.Collection
}

func NewAlumniRepository(db *mongo.Database) *AlumniRepository {
	return &AlumniRepository{collection: db.Collection("alumni")}
}

func (r *AlumniRepository) Create(ctx context.Context, a *Alumni) error {
	_, err := r.collection.InsertOne(ctx, a)
	return err
}

func (r *AlumniRepository) FindAll(ctx context.Context) ([]*Alumni, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	alumni := []*Alumni{}
	if err := cursor.All(ctx, &alumni); err != nil {
		return nil, err
	}
	return alumni, nil
}

func (r *AlumniRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*Alumni, error) {
	var a Alumni
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *AlumniRepository) FindByEmail(ctx context.Context, email string) (*Alumni, error) {
	var a Alumni
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&a)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *AlumniRepository) FindByBatch(ctx context.Context, batch int) ([]*Alumni, error) {
	opts := options.Find().SetSort(bson.M{"name": 1})
	cursor, err := r.collection.Find(ctx, bson.M{"batch": batch}, opts)
	if err != nil {
		return nil, err
	}
	alumni := []*Alumni{}
	if err := cursor.All(ctx, &alumni); err != nil {
		return nil, err
	}
	return alumni, nil
}

// Update applies a partial $set and returns the updated document.
func (r *AlumniRepository) Update(ctx context.Context, id primitive.ObjectID, patch bson.M) (*Alumni, error) {
	patch["updated_at"] = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var a Alumni
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": patch}, opts).Decode(&a)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *AlumniRepository) Delete(ctx context.Context, id primitive.ObjectID) (*Alumni, error) {
	var a Alumni
	err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&a)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}
