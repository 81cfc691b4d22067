package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/storefront-api/internal/domain"
	"github.com/vfg2006/storefront-api/internal/usecases/storefront"
	"github.com/vfg2006/storefront-api/pkg/apiErrors"
	"github.com/vfg2006/storefront-api/pkg/middleware"
)

// CreateTenant cria uma loja para o vendedor logado
func CreateTenant(service storefront.Storefronter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateTenantRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		tenant, err := service.CreateTenant(r.Context(), middleware.ClaimsFromContext(r.Context()), req)
		if err != nil {
			handleStorefrontError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, tenant)
	}
}

// GetPublicTenant retorna a vitrine pública da loja
func GetPublicTenant(service storefront.Storefronter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenant, err := service.GetPublicTenant(r.Context(), pathParam(r, "slug"))
		if err != nil {
			handleStorefrontError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, tenant)
	}
}

func GetManagedTenant(service storefront.Storefronter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenant, err := service.GetManagedTenant(r.Context(), middleware.ClaimsFromContext(r.Context()), pathParam(r, "slug"))
		if err != nil {
			handleStorefrontError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, tenant)
	}
}

func ListMyTenants(service storefront.Storefronter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenants, err := service.ListMyTenants(r.Context(), middleware.ClaimsFromContext(r.Context()))
		if err != nil {
			handleStorefrontError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, tenants)
	}
}

// SubmitBankDetails envia a conta bancária da loja para verificação
func SubmitBankDetails(service storefront.Storefronter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.BankDetailsRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		result, err := service.SubmitBankDetails(r.Context(), middleware.ClaimsFromContext(r.Context()), pathParam(r, "slug"), req)
		if err != nil {
			handleStorefrontError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func handleStorefrontError(w http.ResponseWriter, err error) {
	var storeErr *storefront.StorefrontError
	if errors.As(err, &storeErr) {
		details := withDetail(nil, "slug", storeErr.Slug)
		writeServiceError(w, "storefront", storeErr.Code, err, withDetail(details, "details", storeErr.Details))
		return
	}

	writeServiceError(w, "storefront", apiErrors.ErrInternalServer, err, nil)
}
