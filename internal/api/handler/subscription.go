package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/storefront-api/internal/domain"
	"github.com/vfg2006/storefront-api/internal/usecases/subscribing"
	"github.com/vfg2006/storefront-api/pkg/apiErrors"
	"github.com/vfg2006/storefront-api/pkg/middleware"
)

func ListPlans(service subscribing.Subscriber) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		plans, err := service.ListPlans(r.Context())
		if err != nil {
			handleSubscriptionError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, plans)
	}
}

// Subscribe ativa o plano da loja após a confirmação do pagamento
func Subscribe(service subscribing.Subscriber) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.SubscribeRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		subscription, err := service.Subscribe(r.Context(), middleware.ClaimsFromContext(r.Context()), pathParam(r, "slug"), req)
		if err != nil {
			handleSubscriptionError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, subscription)
	}
}

func handleSubscriptionError(w http.ResponseWriter, err error) {
	var subErr *subscribing.SubscriptionError
	if errors.As(err, &subErr) {
		details := withDetail(nil, "slug", subErr.Slug)
		writeServiceError(w, "subscribing", subErr.Code, err, withDetail(details, "details", subErr.Details))
		return
	}

	writeServiceError(w, "subscribing", apiErrors.ErrInternalServer, err, nil)
}
