package model

// Category represents a product category.
type Category struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// CategoryRequest represents the payload for adding a category.
type CategoryRequest struct {
	Name string `json:"name"`
}

// CreatedResponse is returned after a successful insert.
type CreatedResponse struct {
	ID int64 `json:"id"`
}
