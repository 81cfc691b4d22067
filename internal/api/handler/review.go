package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/storefront-api/internal/domain"
	"github.com/vfg2006/storefront-api/internal/usecases/reviewing"
	"github.com/vfg2006/storefront-api/pkg/apiErrors"
	"github.com/vfg2006/storefront-api/pkg/middleware"
)

func CreateReview(service reviewing.Reviewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateReviewRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		review, err := service.CreateReview(r.Context(), middleware.ClaimsFromContext(r.Context()), pathParam(r, "slug"), pathParam(r, "product_id"), req)
		if err != nil {
			handleReviewError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, review)
	}
}

// ListReviews retorna as avaliações mais recentes com a média do produto
func ListReviews(service reviewing.Reviewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reviews, err := service.ListReviews(r.Context(), pathParam(r, "slug"), pathParam(r, "product_id"), queryInt(r, "limit"))
		if err != nil {
			handleReviewError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, reviews)
	}
}

func handleReviewError(w http.ResponseWriter, err error) {
	var reviewErr *reviewing.ReviewError
	if errors.As(err, &reviewErr) {
		details := withDetail(nil, "product_id", reviewErr.ProductID)
		writeServiceError(w, "reviewing", reviewErr.Code, err, withDetail(details, "details", reviewErr.Details))
		return
	}

	writeServiceError(w, "reviewing", apiErrors.ErrInternalServer, err, nil)
}
