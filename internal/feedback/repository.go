package feedback

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FeedbackRepository handles DB operations for feedback entries.
type FeedbackRepository struct {
	collection *mongo.Collection
}

func NewFeedbackRepository(db *mongo.Database) *FeedbackRepository {
	return &FeedbackRepository{collection: db.Collection("feedback")}
}

func (r *FeedbackRepository) Create(ctx context.Context, f *Feedback) error {
	_, err := r.collection.InsertOne(ctx, f)
	return err
}

// FindAll returns feedback newest first, optionally restricted to approved
// entries.
func (r *FeedbackRepository) FindAll(ctx context.Context, approvedOnly bool) ([]*Feedback, error) {
	filter := bson.M{}
	if approvedOnly {
		filter["is_approved"] = true
	}
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	feedback := []*Feedback{}
	if err := cursor.All(ctx, &feedback); err != nil {
		return nil, err
	}
	return feedback, nil
}

func (r *FeedbackRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*Feedback, error) {
	var f Feedback
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&f)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &f, nil
}

func (r *FeedbackRepository) Approve(ctx context.Context, id primitive.ObjectID) (*Feedback, error) {
	update := bson.M{"$set": bson.M{"is_approved": true}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var f Feedback
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&f)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &f, nil
}

func (r *FeedbackRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
