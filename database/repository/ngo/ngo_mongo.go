package ngoRepo

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"legalaid/database"
	"legalaid/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoNGORepo implements NGORepository using MongoDB.
type MongoNGORepo struct {
	coll *mongo.Collection
}

// NewMongoNGORepo creates a new NGORepository using MongoDB.
func NewMongoNGORepo() NGORepository {
	coll := database.DB().Collection("ngos")
	return &MongoNGORepo{coll: coll}
}

func (r *MongoNGORepo) findOne(filter bson.M) (*models.NGO, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var ngo models.NGO
	if err := r.coll.FindOne(ctx, filter).Decode(&ngo); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch ngo: %w", err)
	}
	return &ngo, nil
}

func (r *MongoNGORepo) GetByID(id string) (*models.NGO, error) {
	return r.findOne(bson.M{"id": id})
}

func (r *MongoNGORepo) GetByEmail(email string) (*models.NGO, error) {
	return r.findOne(bson.M{"email": email})
}

func (r *MongoNGORepo) GetByRegistrationNumber(registrationNumber string) (*models.NGO, error) {
	return r.findOne(bson.M{"registrationNumber": registrationNumber})
}

func (r *MongoNGORepo) FindByRegistrationNumberFold(registrationNumber string) ([]models.NGO, error) {
	pattern := "^" + regexp.QuoteMeta(registrationNumber) + "$"
	return r.findAll(bson.M{"registrationNumber": primitive.Regex{Pattern: pattern, Options: "i"}})
}

func (r *MongoNGORepo) GetAll() ([]models.NGO, error) {
	return r.findAll(bson.M{})
}

func (r *MongoNGORepo) GetPending() ([]models.NGO, error) {
	return r.findAll(bson.M{"approved": false})
}

func (r *MongoNGORepo) findAll(filter bson.M) ([]models.NGO, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve ngos: %w", err)
	}
	defer cursor.Close(ctx)
	var ngos []models.NGO
	for cursor.Next(ctx) {
		var n models.NGO
		if err := cursor.Decode(&n); err != nil {
			return nil, fmt.Errorf("failed to decode ngo: %w", err)
		}
		ngos = append(ngos, n)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return ngos, nil
}

func (r *MongoNGORepo) Create(ngo *models.NGO) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, ngo); err != nil {
		return fmt.Errorf("failed to create ngo: %w", err)
	}
	return nil
}

func (r *MongoNGORepo) Update(ngo *models.NGO) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	filter := bson.M{"id": ngo.ID}
	result, err := r.coll.ReplaceOne(ctx, filter, ngo)
	if err != nil {
		return fmt.Errorf("failed to update ngo with id %s: %w", ngo.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("ngo with id %s not found", ngo.ID)
	}
	return nil
}

func (r *MongoNGORepo) Delete(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete ngo with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("ngo with id %s not found", id)
	}
	return nil
}

func (r *MongoNGORepo) exists(filter bson.M) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	count, err := r.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check ngo existence: %w", err)
	}
	return count > 0, nil
}

func (r *MongoNGORepo) ExistsByEmail(email string) (bool, error) {
	return r.exists(bson.M{"email": email})
}

func (r *MongoNGORepo) ExistsByRegistrationNumber(registrationNumber string) (bool, error) {
	return r.exists(bson.M{"registrationNumber": registrationNumber})
}
