package directoryRepo

import (
	"context"
	"fmt"
	"time"

	"legalaid/database"
	"legalaid/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDirectoryRepo implements DirectoryRepository using MongoDB. It also
// holds the lawyer and NGO collections so the paired provider+listing writes
// can run in one session.
type MongoDirectoryRepo struct {
	coll       *mongo.Collection
	lawyerColl *mongo.Collection
	ngoColl    *mongo.Collection
}

// NewMongoDirectoryRepo creates a new DirectoryRepository using MongoDB.
func NewMongoDirectoryRepo() DirectoryRepository {
	db := database.DB()
	return &MongoDirectoryRepo{
		coll:       db.Collection("directory_entries"),
		lawyerColl: db.Collection("lawyers"),
		ngoColl:    db.Collection("ngos"),
	}
}

func (r *MongoDirectoryRepo) GetByID(id string) (*models.DirectoryListing, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var entry models.DirectoryListing
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&entry); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch directory entry with id %s: %w", id, err)
	}
	return &entry, nil
}

func (r *MongoDirectoryRepo) FindByKindAndKey(kind, naturalKey string) (*models.DirectoryListing, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var entry models.DirectoryListing
	filter := bson.M{"kind": kind, "naturalKey": naturalKey}
	if err := r.coll.FindOne(ctx, filter).Decode(&entry); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve directory entry for %s/%s: %w", kind, naturalKey, err)
	}
	return &entry, nil
}

func (r *MongoDirectoryRepo) ExistsBySource(kind, naturalKey, source string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	filter := bson.M{"kind": kind, "naturalKey": naturalKey, "source": source}
	count, err := r.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check directory entry for %s/%s: %w", kind, naturalKey, err)
	}
	return count > 0, nil
}

func (r *MongoDirectoryRepo) ExistsAuthoritative(kind, naturalKey string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	filter := bson.M{
		"kind":       kind,
		"naturalKey": naturalKey,
		"source":     bson.M{"$in": models.AuthoritativeSources},
	}
	count, err := r.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check authoritative entry for %s/%s: %w", kind, naturalKey, err)
	}
	return count > 0, nil
}

func (r *MongoDirectoryRepo) Create(entry *models.DirectoryListing) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("failed to create directory entry: %w", err)
	}
	return nil
}

func (r *MongoDirectoryRepo) Update(entry *models.DirectoryListing) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	filter := bson.M{"id": entry.ID}
	result, err := r.coll.ReplaceOne(ctx, filter, entry)
	if err != nil {
		return fmt.Errorf("failed to update directory entry with id %s: %w", entry.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("directory entry with id %s not found", entry.ID)
	}
	return nil
}

func (r *MongoDirectoryRepo) DeleteByKindAndKey(kind, naturalKey string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	filter := bson.M{"kind": kind, "naturalKey": naturalKey}
	if _, err := r.coll.DeleteMany(ctx, filter); err != nil {
		return fmt.Errorf("failed to delete directory entry for %s/%s: %w", kind, naturalKey, err)
	}
	return nil
}

// Search builds the filter document from the supplied criteria. Only approved
// listings are ever eligible, regardless of filters.
func (r *MongoDirectoryRepo) Search(criteria DirectorySearchCriteria) ([]models.DirectoryListing, int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{"approved": true}
	if criteria.Kind != "" {
		filter["kind"] = criteria.Kind
	}
	if criteria.State != "" {
		filter["state"] = criteria.State
	}
	if criteria.District != "" {
		filter["district"] = criteria.District
	}
	if criteria.Specialization != "" {
		filter["specialization"] = criteria.Specialization
	}
	if criteria.MinExperience > 0 {
		filter["experienceYears"] = bson.M{"$gte": criteria.MinExperience}
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("directory search count failed: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(int64(criteria.Page * criteria.PageSize)).
		SetLimit(int64(criteria.PageSize))

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("directory search query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []models.DirectoryListing
	for cursor.Next(ctx) {
		var e models.DirectoryListing
		if err := cursor.Decode(&e); err != nil {
			return nil, 0, fmt.Errorf("failed to decode directory entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, fmt.Errorf("cursor error: %w", err)
	}
	return entries, total, nil
}

func (r *MongoDirectoryRepo) SaveWithLawyer(ctx context.Context, entry *models.DirectoryListing, lawyer *models.Lawyer) error {
	return r.saveWith(ctx, entry, r.lawyerColl, bson.M{"id": lawyer.ID}, lawyer)
}

func (r *MongoDirectoryRepo) SaveWithNGO(ctx context.Context, entry *models.DirectoryListing, ngo *models.NGO) error {
	return r.saveWith(ctx, entry, r.ngoColl, bson.M{"id": ngo.ID}, ngo)
}

// saveWith upserts the listing and the provider record inside one
// multi-document transaction.
func (r *MongoDirectoryRepo) saveWith(ctx context.Context, entry *models.DirectoryListing, providerColl *mongo.Collection, providerFilter bson.M, provider any) error {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		upsert := options.Replace().SetUpsert(true)
		if _, err := providerColl.ReplaceOne(sc, providerFilter, provider, upsert); err != nil {
			return fmt.Errorf("provider upsert failed: %w", err)
		}
		if _, err := r.coll.ReplaceOne(sc, bson.M{"id": entry.ID}, entry, upsert); err != nil {
			return fmt.Errorf("directory entry upsert failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return fmt.Errorf("directory sync transaction failed: %w", err)
	}
	return nil
}
