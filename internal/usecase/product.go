package usecase

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/vasapolrittideah/e-comm-api/internal/model"
	"github.com/vasapolrittideah/e-comm-api/internal/repository"
)

// ProductUsecase defines the interface for product catalog use cases.
type ProductUsecase interface {
	AddProduct(ctx context.Context, params AddProductParams) (*model.Product, error)
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	ListProducts(ctx context.Context) ([]*model.Product, error)
	UpdateProduct(ctx context.Context, id string, params repository.UpdateProductParams) (*model.Product, error)
	DeleteProduct(ctx context.Context, id string) (int64, error)
	SearchProducts(ctx context.Context, keyword string) ([]*model.Product, error)
}

// AddProductParams defines the parameters for creating a product.
type AddProductParams struct {
	Name     string
	Price    float64
	Category string
	Company  string
	UserID   string
}

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrInvalidID        = errors.New("invalid id")
	ErrNoFieldsToUpdate = errors.New("no fields to update")
)

type productUsecase struct {
	productRepo repository.ProductRepository
}

func NewProductUsecase(productRepo repository.ProductRepository) ProductUsecase {
	return &productUsecase{productRepo: productRepo}
}

func (u *productUsecase) AddProduct(
	ctx context.Context,
	params AddProductParams,
) (*model.Product, error) {
	return u.productRepo.CreateProduct(ctx, &model.Product{
		Name:     params.Name,
		Price:    params.Price,
		Category: params.Category,
		Company:  params.Company,
		UserID:   params.UserID,
	})
}

func (u *productUsecase) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	if _, err := bson.ObjectIDFromHex(id); err != nil {
		return nil, ErrInvalidID
	}

	product, err := u.productRepo.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProductNotFound
		}

		return nil, err
	}

	return product, nil
}

func (u *productUsecase) ListProducts(ctx context.Context) ([]*model.Product, error) {
	return u.productRepo.ListProducts(ctx)
}

func (u *productUsecase) UpdateProduct(
	ctx context.Context,
	id string,
	params repository.UpdateProductParams,
) (*model.Product, error) {
	if _, err := bson.ObjectIDFromHex(id); err != nil {
		return nil, ErrInvalidID
	}

	if params.Name == nil && params.Price == nil && params.Category == nil && params.Company == nil {
		return nil, ErrNoFieldsToUpdate
	}

	product, err := u.productRepo.UpdateProduct(ctx, id, params)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProductNotFound
		}

		return nil, err
	}

	return product, nil
}

func (u *productUsecase) DeleteProduct(ctx context.Context, id string) (int64, error) {
	if _, err := bson.ObjectIDFromHex(id); err != nil {
		return 0, ErrInvalidID
	}

	count, err := u.productRepo.DeleteProduct(ctx, id)
	if err != nil {
		return 0, err
	}

	if count == 0 {
		return 0, ErrProductNotFound
	}

	return count, nil
}

func (u *productUsecase) SearchProducts(
	ctx context.Context,
	keyword string,
) ([]*model.Product, error) {
	return u.productRepo.SearchProducts(ctx, keyword)
}
