package config

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

type MongoDBClient struct {
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDBClient(lc fx.Lifecycle, cfg *Config) (*MongoDBClient, *mongo.Database, error) {
	clientOptions := options.Client().ApplyURI(cfg.MongoURI)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	err = client.Ping(ctx, nil)
	if err != nil {
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}

	log.Println("Connected to MongoDB")

	db := client.Database(cfg.DatabaseName)
	ensureIndexes(db)

	lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			log.Println("MongoDB connection verified on startup")
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			log.Println("Closing MongoDB connection ...")
			return client.Disconnect(stopCtx)
		},
	})
	return &MongoDBClient{Client: client, Database: db}, db, nil
}

// ensureIndexes creates the indexes the business rules rely on: alumni and
// user emails are unique, and the college-info collection can hold at most
// one document.
func ensureIndexes(db *mongo.Database) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	uniqueEmail := mongo.IndexModel{
		Keys:    bson.M{"email": 1},
		Options: options.Index().SetUnique(true),
	}
	if _, err := db.Collection("alumni").Indexes().CreateOne(ctx, uniqueEmail); err != nil {
		log.Fatal("Failed to create unique index on alumni email:", err)
	}
	if _, err := db.Collection("users").Indexes().CreateOne(ctx, uniqueEmail); err != nil {
		log.Fatal("Failed to create unique index on user email:", err)
	}

	singleton := mongo.IndexModel{
		Keys:    bson.M{"singleton_key": 1},
		Options: options.Index().SetUnique(true),
	}
	if _, err := db.Collection("college_info").Indexes().CreateOne(ctx, singleton); err != nil {
		log.Fatal("Failed to create singleton index on college info:", err)
	}

	log.Println("MongoDB indexes ensured")
}

func (c *MongoDBClient) GetCollection(collectionName string) *mongo.Collection {
	return c.Database.Collection(collectionName)
}
