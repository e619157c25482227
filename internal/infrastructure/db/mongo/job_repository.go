package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/govjobtrack/jobtrack/internal/core/domain"
	"github.com/govjobtrack/jobtrack/internal/core/ports"
)

const collectionJobs = "jobs"

type JobRepository struct {
	col *mongo.Collection
}

func NewJobRepository(db *mongo.Database) *JobRepository {
	return &JobRepository{col: db.Collection(collectionJobs)}
}

type jobDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Title           string             `bson:"title"`
	Department      string             `bson:"department"`
	Description     string             `bson:"description"`
	Qualification   string             `bson:"qualification"`
	ApplicationLink string             `bson:"application_link,omitempty"`
	LastDateToApply time.Time          `bson:"last_date_to_apply"`
	PostedDate      time.Time          `bson:"posted_date"`
	CreatedByID     string             `bson:"created_by_id"`
	CreatedByEmail  string             `bson:"created_by_email"`
}

func toJobDoc(job *domain.Job) jobDoc {
	return jobDoc{
		Title:           job.Title,
		Department:      job.Department,
		Description:     job.Description,
		Qualification:   job.Qualification,
		ApplicationLink: job.ApplicationLink,
		LastDateToApply: job.LastDateToApply,
		PostedDate:      job.PostedDate,
		CreatedByID:     job.CreatedByID,
		CreatedByEmail:  job.CreatedByEmail,
	}
}

func toJobDomain(doc jobDoc) *domain.Job {
	return &domain.Job{
		ID:              doc.ID.Hex(),
		Title:           doc.Title,
		Department:      doc.Department,
		Description:     doc.Description,
		Qualification:   doc.Qualification,
		ApplicationLink: doc.ApplicationLink,
		LastDateToApply: doc.LastDateToApply,
		PostedDate:      doc.PostedDate,
		CreatedByID:     doc.CreatedByID,
		CreatedByEmail:  doc.CreatedByEmail,
	}
}

func (r *JobRepository) Create(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := toJobDoc(job)
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert job: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return toJobDomain(doc), nil
}

func (r *JobRepository) FindByID(ctx context.Context, id string) (*domain.Job, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrJobNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc jobDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("find job: %w", err)
	}
	return toJobDomain(doc), nil
}

func (r *JobRepository) FindByIDs(ctx context.Context, ids []string) ([]*domain.Job, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			oids = append(oids, oid)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, fmt.Errorf("find jobs: %w", err)
	}
	defer cur.Close(ctx)

	var jobs []*domain.Job
	for cur.Next(ctx) {
		var doc jobDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode job: %w", err)
		}
		jobs = append(jobs, toJobDomain(doc))
	}
	return jobs, cur.Err()
}

// List returns one page of jobs, newest postings first, and the total count
// matching the filter.
func (r *JobRepository) List(ctx context.Context, filter ports.ListJobsFilter) ([]*domain.Job, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Department != "" {
		query["department"] = filter.Department
	}

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count jobs: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "posted_date", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list jobs: %w", err)
	}
	defer cur.Close(ctx)

	var jobs []*domain.Job
	for cur.Next(ctx) {
		var doc jobDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("decode job: %w", err)
		}
		jobs = append(jobs, toJobDomain(doc))
	}
	return jobs, total, cur.Err()
}

func (r *JobRepository) Update(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	oid, err := primitive.ObjectIDFromHex(job.ID)
	if err != nil {
		return nil, domain.ErrJobNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateByID(ctx, oid, bson.M{"$set": bson.M{
		"title":              job.Title,
		"department":         job.Department,
		"description":        job.Description,
		"qualification":      job.Qualification,
		"application_link":   job.ApplicationLink,
		"last_date_to_apply": job.LastDateToApply,
	}})
	if err != nil {
		return nil, fmt.Errorf("update job: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrJobNotFound
	}
	return job, nil
}

func (r *JobRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrJobNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrJobNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes used by the list queries.
func (r *JobRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "posted_date", Value: -1}}},
		{Keys: bson.D{{Key: "department", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
