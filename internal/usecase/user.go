package usecase

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/vasapolrittideah/e-comm-api/internal/model"
	"github.com/vasapolrittideah/e-comm-api/internal/repository"
)

// UserUsecase defines the interface for user profile use cases.
type UserUsecase interface {
	UpdateUser(ctx context.Context, id string, params repository.UpdateUserParams) (*model.User, error)
}

var ErrUserNotFound = errors.New("user not found")

type userUsecase struct {
	userRepo repository.UserRepository
}

func NewUserUsecase(userRepo repository.UserRepository) UserUsecase {
	return &userUsecase{userRepo: userRepo}
}

// UpdateUser mutates name and email only; the repository params type does
// not expose the password hash, so a profile update can never touch it.
func (u *userUsecase) UpdateUser(
	ctx context.Context,
	id string,
	params repository.UpdateUserParams,
) (*model.User, error) {
	if _, err := bson.ObjectIDFromHex(id); err != nil {
		return nil, ErrInvalidID
	}

	if params.Name == nil && params.Email == nil {
		return nil, ErrNoFieldsToUpdate
	}

	user, err := u.userRepo.UpdateUser(ctx, id, params)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrUserAlreadyExists
		}

		return nil, err
	}

	return user, nil
}
