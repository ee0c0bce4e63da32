package mongo

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"job-board-backend/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const jobsCollection = "jobs"

// jobDocument is the stored shape of a domain.Job.
type jobDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Company     string             `bson:"company"`
	Location    string             `bson:"location"`
	Link        string             `bson:"link"`
	Description string             `bson:"description"`
	Type        string             `bson:"type"`
	Tags        []string           `bson:"tags"`
	CreatedAt   time.Time          `bson:"createdAt"`
}

type jobRepo struct {
	coll *mongo.Collection
}

func NewJobRepository(db *mongo.Database) domain.JobRepository {
	return &jobRepo{coll: db.Collection(jobsCollection)}
}

// EnsureIndexes creates the descending createdAt index used by listings.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(jobsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("createdAt_desc"),
	})
	if err != nil {
		return fmt.Errorf("create jobs index: %w", err)
	}
	return nil
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	doc := toDocument(job)
	doc.ID = primitive.NewObjectID()

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert job: %w", err)
	}
	job.ID = doc.ID.Hex()
	return nil
}

func (r *jobRepo) Fetch(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.coll.Find(ctx, buildFilter(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("find jobs: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []jobDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode jobs: %w", err)
	}

	jobs := make([]domain.Job, 0, len(docs))
	for _, doc := range docs {
		jobs = append(jobs, doc.toDomain())
	}
	return jobs, nil
}

// buildFilter turns a JobFilter into a query document. User input is quoted so
// it only ever matches literally.
func buildFilter(f domain.JobFilter) bson.M {
	query := bson.M{}
	if f.Type != "" {
		query["type"] = f.Type
	}
	if f.Location != "" {
		query["location"] = containsFold(f.Location)
	}
	if f.Tag != "" {
		// $regex on an array field matches when any element matches.
		query["tags"] = containsFold(f.Tag)
	}
	return query
}

func containsFold(s string) bson.M {
	return bson.M{"$regex": regexp.QuoteMeta(s), "$options": "i"}
}

func toDocument(job *domain.Job) jobDocument {
	tags := job.Tags
	if tags == nil {
		tags = []string{}
	}
	return jobDocument{
		Title:       job.Title,
		Company:     job.Company,
		Location:    job.Location,
		Link:        job.Link,
		Description: job.Description,
		Type:        string(job.Type),
		Tags:        tags,
		CreatedAt:   job.CreatedAt.UTC(),
	}
}

func (d jobDocument) toDomain() domain.Job {
	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}
	return domain.Job{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Company:     d.Company,
		Location:    d.Location,
		Link:        d.Link,
		Description: d.Description,
		Type:        domain.JobType(d.Type),
		Tags:        tags,
		CreatedAt:   d.CreatedAt,
	}
}
