package handler

// productRequest is the typed write schema for product create and update.
// A tenant id supplied here would be meaningless: ownership always comes
// from the verified token claims, so the field simply does not exist.
// Quantity and Price are pointers so that an explicit zero passes
// validation while a missing field does not.
type productRequest struct {
	Name     string   `json:"name"      validate:"required"`
	Category string   `json:"category"  validate:"required"`
	Quantity *int     `json:"quantity"  validate:"required,gte=0"`
	Price    *float64 `json:"price"     validate:"required,gte=0"`
	ImageURL string   `json:"image_url"`
}

type deleteProductResponse struct {
	Message string `json:"message"`
}
