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
)

const collectionUsers = "users"

// UserRepository persists user accounts. Role names are translated to and
// from catalog identifiers at the storage boundary, so the rest of the code
// only ever sees names.
type UserRepository struct {
	col     *mongo.Collection
	catalog *domain.RoleCatalog
}

func NewUserRepository(db *mongo.Database, catalog *domain.RoleCatalog) *UserRepository {
	return &UserRepository{col: db.Collection(collectionUsers), catalog: catalog}
}

type userDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	FirstName    string             `bson:"first_name"`
	LastName     string             `bson:"last_name"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password_hash"`
	RoleIDs      []string           `bson:"role_ids"`
	CreatedAt    time.Time          `bson:"created_at"`
}

func (r *UserRepository) toDoc(user *domain.User) userDoc {
	roleIDs := make([]string, 0, len(user.Roles))
	for _, name := range user.Roles {
		if id, ok := r.catalog.ID(name); ok {
			roleIDs = append(roleIDs, id)
		}
	}
	return userDoc{
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		RoleIDs:      roleIDs,
		CreatedAt:    user.CreatedAt,
	}
}

func (r *UserRepository) toDomain(doc userDoc) *domain.User {
	roles := make([]string, 0, len(doc.RoleIDs))
	for _, id := range doc.RoleIDs {
		if name, ok := r.catalog.Name(id); ok {
			roles = append(roles, name)
		}
	}
	return &domain.User{
		ID:           doc.ID.Hex(),
		FirstName:    doc.FirstName,
		LastName:     doc.LastName,
		Email:        doc.Email,
		PasswordHash: doc.PasswordHash,
		Roles:        roles,
		CreatedAt:    doc.CreatedAt,
	}
}

// Create inserts a new user. The unique email index rejects duplicates,
// which surface as domain.ErrUserExists.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := r.toDoc(user)
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return r.toDomain(doc), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc userDoc
	if err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return r.toDomain(doc), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc userDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return r.toDomain(doc), nil
}

// EnsureIndexes creates the unique index on email.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
