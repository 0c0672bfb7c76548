package repository

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/vasapolrittideah/e-comm-api/internal/model"
)

// ProductRepository defines the interface for product-related database operations.
type ProductRepository interface {
	CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error)
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	ListProducts(ctx context.Context) ([]*model.Product, error)
	UpdateProduct(ctx context.Context, id string, params UpdateProductParams) (*model.Product, error)
	DeleteProduct(ctx context.Context, id string) (int64, error)
	SearchProducts(ctx context.Context, keyword string) ([]*model.Product, error)
}

// UpdateProductParams defines the optional parameters for updating a product.
// Only the fields that are not nil will be updated.
type UpdateProductParams struct {
	Name     *string
	Price    *float64
	Category *string
	Company  *string
}

const productCollection = "products"

type productMongoRepository struct {
	db *mongo.Database
}

func NewProductMongoRepository(db *mongo.Database) ProductRepository {
	return &productMongoRepository{db: db}
}

func (r *productMongoRepository) CreateProduct(
	ctx context.Context,
	product *model.Product,
) (*model.Product, error) {
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	result, err := r.db.Collection(productCollection).InsertOne(ctx, product)
	if err != nil {
		return nil, err
	}

	if objectID, ok := result.InsertedID.(bson.ObjectID); ok {
		product.ID = objectID
	} else {
		return nil, errors.New("failed to convert inserted ID to ObjectID")
	}

	return product, nil
}

func (r *productMongoRepository) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	result := r.db.Collection(productCollection).FindOne(ctx, bson.M{"_id": objectID})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var product model.Product
	if err := result.Decode(&product); err != nil {
		return nil, err
	}

	return &product, nil
}

func (r *productMongoRepository) ListProducts(ctx context.Context) ([]*model.Product, error) {
	cursor, err := r.db.Collection(productCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []*model.Product
	for cursor.Next(ctx) {
		var product model.Product
		if err := cursor.Decode(&product); err != nil {
			return nil, err
		}
		products = append(products, &product)
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productMongoRepository) UpdateProduct(
	ctx context.Context,
	id string,
	params UpdateProductParams,
) (*model.Product, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	// Build update query
	updateMap := bson.M{}
	if params.Name != nil {
		updateMap["name"] = *params.Name
	}
	if params.Price != nil {
		updateMap["price"] = *params.Price
	}
	if params.Category != nil {
		updateMap["category"] = *params.Category
	}
	if params.Company != nil {
		updateMap["company"] = *params.Company
	}

	if len(updateMap) == 0 {
		return nil, errors.New("no product fields to update")
	}

	updateMap["updated_at"] = time.Now()

	result := r.db.Collection(productCollection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": updateMap},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	if result.Err() != nil {
		return nil, result.Err()
	}

	var product model.Product
	if err := result.Decode(&product); err != nil {
		return nil, err
	}

	return &product, nil
}

func (r *productMongoRepository) DeleteProduct(ctx context.Context, id string) (int64, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return 0, err
	}

	result, err := r.db.Collection(productCollection).DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return 0, err
	}

	return result.DeletedCount, nil
}

// SearchProducts matches the keyword as a case-insensitive substring across
// name, company and category. An empty keyword compiles to an empty regex
// and matches every document; the legacy API depends on that.
func (r *productMongoRepository) SearchProducts(
	ctx context.Context,
	keyword string,
) ([]*model.Product, error) {
	pattern := bson.Regex{Pattern: regexp.QuoteMeta(keyword), Options: "i"}

	filter := bson.M{"$or": []bson.M{
		{"name": pattern},
		{"company": pattern},
		{"category": pattern},
	}}

	cursor, err := r.db.Collection(productCollection).Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []*model.Product
	for cursor.Next(ctx) {
		var product model.Product
		if err := cursor.Decode(&product); err != nil {
			return nil, err
		}
		products = append(products, &product)
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
