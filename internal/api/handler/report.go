package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/storefront-api/internal/usecases/reporting"
	"github.com/vfg2006/storefront-api/pkg/apiErrors"
	"github.com/vfg2006/storefront-api/pkg/middleware"
)

// GetMonthlySummary retorna os totais de vendas do mês (?month=MM&year=YYYY)
func GetMonthlySummary(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		month, year := r.URL.Query().Get("month"), r.URL.Query().Get("year")

		summary, err := service.GetMonthlySummary(r.Context(), middleware.ClaimsFromContext(r.Context()), pathParam(r, "slug"), month, year)
		if err != nil {
			handleReportError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, summary)
	}
}

func GetReportPeriods(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		periods, err := service.GetAvailablePeriods(r.Context(), middleware.ClaimsFromContext(r.Context()), pathParam(r, "slug"))
		if err != nil {
			handleReportError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, periods)
	}
}

func ListCategorySales(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		month, year := r.URL.Query().Get("month"), r.URL.Query().Get("year")

		sales, err := service.ListCategorySales(r.Context(), middleware.ClaimsFromContext(r.Context()), pathParam(r, "slug"), month, year)
		if err != nil {
			handleReportError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, sales)
	}
}

func ListTopProducts(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		month, year := r.URL.Query().Get("month"), r.URL.Query().Get("year")

		products, err := service.ListTopProducts(r.Context(), middleware.ClaimsFromContext(r.Context()), pathParam(r, "slug"), month, year, queryInt(r, "limit"))
		if err != nil {
			handleReportError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, products)
	}
}

func handleReportError(w http.ResponseWriter, err error) {
	var reportErr *reporting.ReportError
	if errors.As(err, &reportErr) {
		details := withDetail(nil, "slug", reportErr.Slug)
		writeServiceError(w, "reporting", reportErr.Code, err, withDetail(details, "details", reportErr.Details))
		return
	}

	writeServiceError(w, "reporting", apiErrors.ErrInternalServer, err, nil)
}
