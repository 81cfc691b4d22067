package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/storefront-api/internal/domain"
	"github.com/vfg2006/storefront-api/internal/usecases/checkout"
	"github.com/vfg2006/storefront-api/pkg/apiErrors"
	"github.com/vfg2006/storefront-api/pkg/middleware"
)

// PlaceOrder cria um pedido pendente para o cliente logado
func PlaceOrder(service checkout.Checkouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CheckoutRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		req.TenantSlug = pathParam(r, "slug")
		req.CustomerID = middleware.ClaimsFromContext(r.Context()).UserID

		order, err := service.PlaceOrder(r.Context(), req)
		if err != nil {
			handleCheckoutError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, order)
	}
}

func GetOrder(service checkout.Checkouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		order, err := service.GetOrder(r.Context(), pathParam(r, "slug"), pathParam(r, "order_id"), middleware.ClaimsFromContext(r.Context()))
		if err != nil {
			handleCheckoutError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, order)
	}
}

func ListMyOrders(service checkout.Checkouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orders, err := service.ListCustomerOrders(r.Context(), middleware.ClaimsFromContext(r.Context()).UserID)
		if err != nil {
			handleCheckoutError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, orders)
	}
}

func handleCheckoutError(w http.ResponseWriter, err error) {
	var checkoutErr *checkout.CheckoutError
	if errors.As(err, &checkoutErr) {
		details := withDetail(nil, "product_id", checkoutErr.ProductID)
		writeServiceError(w, "checkout", checkoutErr.Code, err, withDetail(details, "details", checkoutErr.Details))
		return
	}

	writeServiceError(w, "checkout", apiErrors.ErrInternalServer, err, nil)
}
