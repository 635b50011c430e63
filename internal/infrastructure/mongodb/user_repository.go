package mongodb

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/abdodolh14141/Website-Movies/internal/domain/entities"
	"github.com/abdodolh14141/Website-Movies/internal/domain/repositories"
)

type UserRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(database *mongo.Database) repositories.UserRepository {
	return &UserRepository{
		collection: database.Collection("users"),
	}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error) {
	userEntity := user.GetUser()

	_, err := r.collection.InsertOne(ctx, userEntity)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, duplicateKeyError(err)
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	// Read back the created user to ensure data integrity
	return r.FindByEmail(ctx, userEntity.Email)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	err := r.collection.FindOne(ctx, bson.M{"email": entities.NormalizeEmail(email)}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}

	return &user, nil
}

func (r *UserRepository) FindOrCreateByEmail(ctx context.Context, user *entities.ValidatedUser) (*entities.User, bool, error) {
	userEntity := user.GetUser()

	// Upsert keyed on the unique email index: under concurrent sign-ins for
	// the same email exactly one request inserts, the rest match the
	// existing document.
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"email": userEntity.Email},
		bson.M{"$setOnInsert": userEntity},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// Lost the race on the username index; the email record exists.
			found, ferr := r.FindByEmail(ctx, userEntity.Email)
			if ferr != nil {
				return nil, false, ferr
			}
			if found != nil {
				return found, false, nil
			}
			return nil, false, duplicateKeyError(err)
		}
		return nil, false, fmt.Errorf("upsert user: %w", err)
	}

	created := res.UpsertedCount == 1
	found, err := r.FindByEmail(ctx, userEntity.Email)
	if err != nil {
		return nil, false, err
	}
	if found == nil {
		return nil, false, repositories.ErrUserNotFound
	}
	return found, created, nil
}

func (r *UserRepository) SetPasswordAndAge(ctx context.Context, username, passwordHash string, age int) error {
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"username": username},
		bson.M{"$set": bson.M{"password": passwordHash, "age": age}},
	)
	if err != nil {
		return fmt.Errorf("update password and age: %w", err)
	}
	if res.MatchedCount == 0 {
		return repositories.ErrUserNotFound
	}
	return nil
}

// duplicateKeyError maps a unique-index violation to the sentinel for the
// index that rejected the write.
func duplicateKeyError(err error) error {
	if strings.Contains(err.Error(), "username_1") {
		return repositories.ErrDuplicateUsername
	}
	return repositories.ErrDuplicateEmail
}
