package payload

// UpdateUserRequest carries a profile update. Name and email are the only
// mutable fields.
type UpdateUserRequest struct {
	Name  *string `json:"name"  validate:"omitempty,min=1"`
	Email *string `json:"email" validate:"omitempty,email"`
}
