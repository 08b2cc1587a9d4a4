package model

// Product represents a stocked product row.
type Product struct {
	ID            int64   `json:"id" db:"id"`
	Name          string  `json:"name" db:"name"`
	Description   *string `json:"description,omitempty" db:"description"`
	UnitPrice     float64 `json:"unitPrice" db:"unit_price"`
	StockQuantity int     `json:"stockQuantity" db:"stock_quantity"`
	CategoryID    *int64  `json:"categoryId,omitempty" db:"category_id"`
}

// ProductListing is a product joined with its category name.
// CategoryName is nil when the product has no category or it was deleted.
type ProductListing struct {
	ID            int64   `json:"id" db:"id"`
	Name          string  `json:"name" db:"name"`
	Description   *string `json:"description" db:"description"`
	UnitPrice     float64 `json:"unitPrice" db:"unit_price"`
	StockQuantity int     `json:"stockQuantity" db:"stock_quantity"`
	CategoryName  *string `json:"categoryName" db:"category_name"`
}

// ProductRequest represents the payload for adding a product.
type ProductRequest struct {
	Name          string  `json:"name"`
	Description   *string `json:"description,omitempty"`
	UnitPrice     float64 `json:"unitPrice"`
	StockQuantity int     `json:"stockQuantity"`
	CategoryID    *int64  `json:"categoryId,omitempty"`
}
