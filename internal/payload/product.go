package payload

type CreateProductRequest struct {
	Name     string  `json:"name"     validate:"required"`
	Price    float64 `json:"price"    validate:"required,gt=0"`
	Category string  `json:"category" validate:"required"`
	Company  string  `json:"company"  validate:"required"`
}

// UpdateProductRequest carries a partial update; only the fields present in
// the request body are applied.
type UpdateProductRequest struct {
	Name     *string  `json:"name"     validate:"omitempty,min=1"`
	Price    *float64 `json:"price"    validate:"omitempty,gt=0"`
	Category *string  `json:"category" validate:"omitempty,min=1"`
	Company  *string  `json:"company"  validate:"omitempty,min=1"`
}

type DeleteProductResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}
