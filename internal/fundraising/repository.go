package fundraising

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FundraisingRepository handles DB operations for campaigns and donations.
type FundraisingRepository struct {
	campaignsCollection *mongo.Collection
	donationsCollection *mongo.Collection
}

func NewFundraisingRepository(db *mongo.Database) *FundraisingRepository {
	return &FundraisingRepository{
		campaignsCollection: db.Collection("campaigns"),
		donationsCollection: db.Collection("donations"),
	}
}

// Campaign operations

func (r *FundraisingRepository) CreateCampaign(ctx context.Context, c *Campaign) error {
	_, err := r.campaignsCollection.InsertOne(ctx, c)
	return err
}

func (r *FundraisingRepository) FindAllCampaigns(ctx context.Context) ([]*Campaign, error) {
	return r.findCampaigns(ctx, bson.M{})
}

func (r *FundraisingRepository) FindActiveCampaigns(ctx context.Context) ([]*Campaign, error) {
	return r.findCampaigns(ctx, bson.M{"is_active": true})
}

// FindExpiredActiveCampaigns returns active campaigns whose end date is in
// the past; the expiry sweeper deactivates them.
func (r *FundraisingRepository) FindExpiredActiveCampaigns(ctx context.Context, now time.Time) ([]*Campaign, error) {
	return r.findCampaigns(ctx, bson.M{"is_active": true, "end_date": bson.M{"$lt": now}})
}

func (r *FundraisingRepository) findCampaigns(ctx context.Context, filter bson.M) ([]*Campaign, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.campaignsCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	campaigns := []*Campaign{}
	if err := cursor.All(ctx, &campaigns); err != nil {
		return nil, err
	}
	return campaigns, nil
}

func (r *FundraisingRepository) FindCampaignByID(ctx context.Context, id primitive.ObjectID) (*Campaign, error) {
	var c Campaign
	err := r.campaignsCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// UpdateCampaign applies a partial $set and returns the updated document.
func (r *FundraisingRepository) UpdateCampaign(ctx context.Context, id primitive.ObjectID, patch bson.M) (*Campaign, error) {
	patch["updated_at"] = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var c Campaign
	err := r.campaignsCollection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": patch}, opts).Decode(&c)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// IncrementRaised atomically adds amount to the campaign's raised total and
// returns the updated document. A single $inc keeps two simultaneous
// donations from losing an update.
func (r *FundraisingRepository) IncrementRaised(ctx context.Context, id primitive.ObjectID, amount float64) (*Campaign, error) {
	update := bson.M{
		"$inc": bson.M{"raised": amount},
		"$set": bson.M{"updated_at": time.Now()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var c Campaign
	err := r.campaignsCollection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&c)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *FundraisingRepository) DeleteCampaign(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.campaignsCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// Donation operations

func (r *FundraisingRepository) InsertDonation(ctx context.Context, d *Donation) error {
	_, err := r.donationsCollection.InsertOne(ctx, d)
	return err
}

func (r *FundraisingRepository) FindDonationsByCampaign(ctx context.Context, campaignID primitive.ObjectID) ([]*Donation, error) {
	return r.findDonations(ctx, bson.M{"campaign_id": campaignID}, 0)
}

func (r *FundraisingRepository) FindDonationsByAlumni(ctx context.Context, alumniID primitive.ObjectID) ([]*Donation, error) {
	return r.findDonations(ctx, bson.M{"alumni_id": alumniID}, 0)
}

func (r *FundraisingRepository) FindAllDonations(ctx context.Context) ([]*Donation, error) {
	return r.findDonations(ctx, bson.M{}, 0)
}

func (r *FundraisingRepository) FindRecentDonations(ctx context.Context, limit int64) ([]*Donation, error) {
	return r.findDonations(ctx, bson.M{}, limit)
}

func (r *FundraisingRepository) findDonations(ctx context.Context, filter bson.M, limit int64) ([]*Donation, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}
	cursor, err := r.donationsCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	donations := []*Donation{}
	if err := cursor.All(ctx, &donations); err != nil {
		return nil, err
	}
	return donations, nil
}

// HasDonations reports whether any donation references the campaign.
func (r *FundraisingRepository) HasDonations(ctx context.Context, campaignID primitive.ObjectID) (bool, error) {
	opts := options.Count().SetLimit(1)
	count, err := r.donationsCollection.CountDocuments(ctx, bson.M{"campaign_id": campaignID}, opts)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
