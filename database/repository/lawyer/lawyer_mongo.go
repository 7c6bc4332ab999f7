package lawyerRepo

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

// MongoLawyerRepo implements LawyerRepository using MongoDB.
type MongoLawyerRepo struct {
	coll *mongo.Collection
}

// NewMongoLawyerRepo creates a new LawyerRepository using MongoDB.
func NewMongoLawyerRepo() LawyerRepository {
	coll := database.DB().Collection("lawyers")
	return &MongoLawyerRepo{coll: coll}
}

func (r *MongoLawyerRepo) findOne(filter bson.M) (*models.Lawyer, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var lawyer models.Lawyer
	if err := r.coll.FindOne(ctx, filter).Decode(&lawyer); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch lawyer: %w", err)
	}
	return &lawyer, nil
}

func (r *MongoLawyerRepo) GetByID(id string) (*models.Lawyer, error) {
	return r.findOne(bson.M{"id": id})
}

func (r *MongoLawyerRepo) GetByEmail(email string) (*models.Lawyer, error) {
	return r.findOne(bson.M{"email": email})
}

func (r *MongoLawyerRepo) GetByBarCouncilID(barCouncilID string) (*models.Lawyer, error) {
	return r.findOne(bson.M{"barCouncilId": barCouncilID})
}

func (r *MongoLawyerRepo) FindByBarCouncilIDFold(barCouncilID string) ([]models.Lawyer, error) {
	pattern := "^" + regexp.QuoteMeta(barCouncilID) + "$"
	return r.findAll(bson.M{"barCouncilId": primitive.Regex{Pattern: pattern, Options: "i"}})
}

func (r *MongoLawyerRepo) GetAll() ([]models.Lawyer, error) {
	return r.findAll(bson.M{})
}

func (r *MongoLawyerRepo) GetPending() ([]models.Lawyer, error) {
	return r.findAll(bson.M{"approved": false})
}

func (r *MongoLawyerRepo) findAll(filter bson.M) ([]models.Lawyer, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve lawyers: %w", err)
	}
	defer cursor.Close(ctx)
	var lawyers []models.Lawyer
	for cursor.Next(ctx) {
		var l models.Lawyer
		if err := cursor.Decode(&l); err != nil {
			return nil, fmt.Errorf("failed to decode lawyer: %w", err)
		}
		lawyers = append(lawyers, l)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return lawyers, nil
}

func (r *MongoLawyerRepo) Create(lawyer *models.Lawyer) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, lawyer); err != nil {
		return fmt.Errorf("failed to create lawyer: %w", err)
	}
	return nil
}

func (r *MongoLawyerRepo) Update(lawyer *models.Lawyer) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	filter := bson.M{"id": lawyer.ID}
	result, err := r.coll.ReplaceOne(ctx, filter, lawyer)
	if err != nil {
		return fmt.Errorf("failed to update lawyer with id %s: %w", lawyer.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("lawyer with id %s not found", lawyer.ID)
	}
	return nil
}

func (r *MongoLawyerRepo) Delete(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete lawyer with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("lawyer with id %s not found", id)
	}
	return nil
}

func (r *MongoLawyerRepo) exists(filter bson.M) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	count, err := r.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check lawyer existence: %w", err)
	}
	return count > 0, nil
}

func (r *MongoLawyerRepo) ExistsByEmail(email string) (bool, error) {
	return r.exists(bson.M{"email": email})
}

func (r *MongoLawyerRepo) ExistsByBarCouncilID(barCouncilID string) (bool, error) {
	return r.exists(bson.M{"barCouncilId": barCouncilID})
}

func (r *MongoLawyerRepo) ExistsByAadhar(aadharNumber string) (bool, error) {
	return r.exists(bson.M{"aadharNumber": aadharNumber})
}
