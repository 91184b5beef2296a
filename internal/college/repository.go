package college

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CollegeInfoRepository handles DB operations for the singleton record.
type CollegeInfoRepository struct {
	collection *mongo.Collection
}

func NewCollegeInfoRepository(db *mongo.Database) *CollegeInfoRepository {
	return &CollegeInfoRepository{collection: db.Collection("college_info")}
}

func (r *CollegeInfoRepository) Find(ctx context.Context) (*CollegeInfo, error) {
	var info CollegeInfo
	err := r.collection.FindOne(ctx, bson.M{"singleton_key": singletonKey}).Decode(&info)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &info, nil
}

// Upsert writes the singleton in one atomic operation keyed on the fixed
// singleton key; the unique index makes a second document impossible even
// under concurrent writes.
func (r *CollegeInfoRepository) Upsert(ctx context.Context, info *CollegeInfo) (*CollegeInfo, error) {
	info.SingletonKey = singletonKey
	filter := bson.M{"singleton_key": singletonKey}
	update := bson.M{"$set": bson.M{
		"singleton_key":      info.SingletonKey,
		"name":               info.Name,
		"address":            info.Address,
		"phone":              info.Phone,
		"email":              info.Email,
		"website":            info.Website,
		"description":        info.Description,
		"founded_year":       info.FoundedYear,
		"total_alumni":       info.TotalAlumni,
		"total_funds_raised": info.TotalFundsRaised,
		"logo":               info.Logo,
		"social_links":       info.SocialLinks,
		"updated_at":         info.UpdatedAt,
	}}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var result CollegeInfo
	if err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&result); err != nil {
		return nil, err
	}
	return &result, nil
}
