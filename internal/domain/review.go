package domain

import "time"

type Review struct {
	ID         string    `json:"id"`
	TenantID   string    `json:"tenant_id"`
	ProductID  string    `json:"product_id"`
	CustomerID int       `json:"customer_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}

type CreateReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"max=2000"`
}

type ReviewSummary struct {
	ProductID     string  `json:"product_id"`
	Count         int     `json:"count"`
	AverageRating float64 `json:"average_rating"`
}

type ProductReviews struct {
	Summary *ReviewSummary `json:"summary"`
	Reviews []*Review      `json:"reviews"`
}
