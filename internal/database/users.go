package database

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/chachabrian/profast-backend/internal/models"
)

const UserSearchLimit = 10

type UserRepository struct {
	coll Collection
}

func NewUserRepository(coll *mongo.Collection) *UserRepository {
	return &UserRepository{coll: NewCollection(coll)}
}

// Search does a case-insensitive substring match on email. The input is
// quoted, so regex metacharacters match literally.
func (r *UserRepository) Search(ctx context.Context, emailSubstring string) ([]models.User, error) {
	filter := bson.M{
		"email": bson.M{"$regex": regexp.QuoteMeta(emailSubstring), "$options": "i"},
	}
	opts := FindOptions{
		Limit: UserSearchLimit,
		Projection: bson.D{
			{Key: "email", Value: 1},
			{Key: "created_at", Value: 1},
			{Key: "role", Value: 1},
		},
	}

	users := []models.User{}
	if err := r.coll.FindMany(ctx, filter, opts, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.coll.FindOne(ctx, bson.M{"email": email}, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts the document; a second user with the same email fails with
// ErrDuplicate because of the unique index.
func (r *UserRepository) Create(ctx context.Context, user models.Document) (InsertResult, error) {
	return r.coll.InsertOne(ctx, user)
}

func (r *UserRepository) UpdateRole(ctx context.Context, id string, role models.Role) (UpdateResult, error) {
	oid, err := ParseID(id)
	if err != nil {
		return UpdateResult{}, err
	}
	return r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"role": role}})
}

func (r *UserRepository) SetRoleByEmail(ctx context.Context, email string, role models.Role) (UpdateResult, error) {
	return r.coll.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{"role": role}})
}
