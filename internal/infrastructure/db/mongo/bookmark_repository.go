package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/govjobtrack/jobtrack/internal/core/domain"
	"github.com/govjobtrack/jobtrack/internal/core/ports"
)

const collectionBookmarks = "bookmarks"

// BookmarkRepository persists bookmarks. The unique compound index on
// (user_id, job_id) is what makes Insert an atomic check-and-insert: the
// second of two racing inserts for the same pair fails with a duplicate-key
// error regardless of interleaving.
type BookmarkRepository struct {
	col *mongo.Collection
}

func NewBookmarkRepository(db *mongo.Database) *BookmarkRepository {
	return &BookmarkRepository{col: db.Collection(collectionBookmarks)}
}

type bookmarkDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	JobID     string             `bson:"job_id"`
	CreatedAt time.Time          `bson:"created_at"`
}

// Insert persists a new bookmark, stamping its creation time at write.
// A duplicate (user_id, job_id) pair surfaces as domain.ErrBookmarkExists.
func (r *BookmarkRepository) Insert(ctx context.Context, userID, jobID string) (*domain.Bookmark, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bookmarkDoc{
		UserID:    userID,
		JobID:     jobID,
		CreatedAt: time.Now().UTC(),
	}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrBookmarkExists
		}
		return nil, fmt.Errorf("insert bookmark: %w", err)
	}

	return &domain.Bookmark{
		ID:        res.InsertedID.(primitive.ObjectID).Hex(),
		UserID:    doc.UserID,
		JobID:     doc.JobID,
		CreatedAt: doc.CreatedAt,
	}, nil
}

// Delete removes the bookmark for (userID, jobID). Exactly one of two
// racing deletes wins; the other observes domain.ErrBookmarkNotFound.
func (r *BookmarkRepository) Delete(ctx context.Context, userID, jobID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"user_id": userID, "job_id": jobID})
	if err != nil {
		return fmt.Errorf("delete bookmark: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrBookmarkNotFound
	}
	return nil
}

// ListByUser returns one page of the user's bookmarks and the total count,
// ordered by creation time (ascending unless SortDesc).
func (r *BookmarkRepository) ListByUser(ctx context.Context, filter ports.ListBookmarksFilter) ([]*domain.Bookmark, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{"user_id": filter.UserID}

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count bookmarks: %w", err)
	}

	order := 1
	if filter.SortDesc {
		order = -1
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: order}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookmarks: %w", err)
	}
	defer cur.Close(ctx)

	var bookmarks []*domain.Bookmark
	for cur.Next(ctx) {
		var doc bookmarkDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("decode bookmark: %w", err)
		}
		bookmarks = append(bookmarks, &domain.Bookmark{
			ID:        doc.ID.Hex(),
			UserID:    doc.UserID,
			JobID:     doc.JobID,
			CreatedAt: doc.CreatedAt,
		})
	}
	return bookmarks, total, cur.Err()
}

// EnsureIndexes creates the unique compound index carrying the one-bookmark-
// per-(user, job) invariant, plus the index backing the list sort.
func (r *BookmarkRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "job_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
