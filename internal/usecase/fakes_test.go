package usecase

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/vasapolrittideah/e-comm-api/internal/model"
	"github.com/vasapolrittideah/e-comm-api/internal/repository"
)

// fakeUserRepo is an in-memory UserRepository that mimics the Mongo
// behaviors the usecases branch on: ErrNoDocuments on a miss and a
// duplicate-key write exception on a unique email collision.
type fakeUserRepo struct {
	users []*model.User
}

func duplicateKeyErr() error {
	return mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000}}}
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *model.User) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == user.Email {
			return nil, duplicateKeyErr()
		}
	}

	user.ID = bson.NewObjectID()
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	f.users = append(f.users, user)
	return user, nil
}

func (f *fakeUserRepo) GetUser(_ context.Context, id string) (*model.User, error) {
	for _, u := range f.users {
		if u.ID.Hex() == id {
			return u, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeUserRepo) UpdateUser(
	_ context.Context,
	id string,
	params repository.UpdateUserParams,
) (*model.User, error) {
	for _, u := range f.users {
		if u.ID.Hex() != id {
			continue
		}

		if params.Email != nil {
			for _, other := range f.users {
				if other.ID != u.ID && other.Email == *params.Email {
					return nil, duplicateKeyErr()
				}
			}
			u.Email = *params.Email
		}
		if params.Name != nil {
			u.Name = *params.Name
		}
		u.UpdatedAt = time.Now()

		return u, nil
	}

	return nil, mongo.ErrNoDocuments
}

// fakeProductRepo mirrors the Mongo product repository, including the
// substring search semantics where an empty keyword matches everything.
type fakeProductRepo struct {
	products []*model.Product
}

func (f *fakeProductRepo) CreateProduct(_ context.Context, product *model.Product) (*model.Product, error) {
	product.ID = bson.NewObjectID()
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	f.products = append(f.products, product)
	return product, nil
}

func (f *fakeProductRepo) GetProduct(_ context.Context, id string) (*model.Product, error) {
	for _, p := range f.products {
		if p.ID.Hex() == id {
			return p, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeProductRepo) ListProducts(_ context.Context) ([]*model.Product, error) {
	return f.products, nil
}

func (f *fakeProductRepo) UpdateProduct(
	_ context.Context,
	id string,
	params repository.UpdateProductParams,
) (*model.Product, error) {
	for _, p := range f.products {
		if p.ID.Hex() != id {
			continue
		}

		if params.Name != nil {
			p.Name = *params.Name
		}
		if params.Price != nil {
			p.Price = *params.Price
		}
		if params.Category != nil {
			p.Category = *params.Category
		}
		if params.Company != nil {
			p.Company = *params.Company
		}
		p.UpdatedAt = time.Now()

		return p, nil
	}

	return nil, mongo.ErrNoDocuments
}

func (f *fakeProductRepo) DeleteProduct(_ context.Context, id string) (int64, error) {
	for i, p := range f.products {
		if p.ID.Hex() == id {
			f.products = append(f.products[:i], f.products[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeProductRepo) SearchProducts(_ context.Context, keyword string) ([]*model.Product, error) {
	keyword = strings.ToLower(keyword)

	var matches []*model.Product
	for _, p := range f.products {
		if strings.Contains(strings.ToLower(p.Name), keyword) ||
			strings.Contains(strings.ToLower(p.Company), keyword) ||
			strings.Contains(strings.ToLower(p.Category), keyword) {
			matches = append(matches, p)
		}
	}

	return matches, nil
}
