package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/storefront-api/internal/domain"
	"github.com/vfg2006/storefront-api/internal/usecases/catalog"
	"github.com/vfg2006/storefront-api/pkg/apiErrors"
	"github.com/vfg2006/storefront-api/pkg/middleware"
)

func CreateCategory(service catalog.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateCategoryRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		category, err := service.CreateCategory(r.Context(), middleware.ClaimsFromContext(r.Context()), pathParam(r, "slug"), req)
		if err != nil {
			handleCatalogError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, category)
	}
}

func ListCategories(service catalog.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := service.ListCategories(r.Context(), pathParam(r, "slug"))
		if err != nil {
			handleCatalogError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, categories)
	}
}

func CreateProduct(service catalog.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateProductRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		product, err := service.CreateProduct(r.Context(), middleware.ClaimsFromContext(r.Context()), pathParam(r, "slug"), req)
		if err != nil {
			handleCatalogError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, product)
	}
}

// ListProducts lista o catálogo público com filtros de categoria, preço, busca e estoque
func ListProducts(service catalog.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query, err := parseProductQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		products, err := service.ListProducts(r.Context(), pathParam(r, "slug"), query)
		if err != nil {
			handleCatalogError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, products)
	}
}

func GetProduct(service catalog.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		product, err := service.GetProduct(r.Context(), pathParam(r, "slug"), pathParam(r, "product_id"))
		if err != nil {
			handleCatalogError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, product)
	}
}

func parseProductQuery(r *http.Request) (catalog.ProductQuery, error) {
	values := r.URL.Query()

	query := catalog.ProductQuery{
		Search:   values.Get("q"),
		InStock:  values.Get("in_stock") == "true",
		Page:     queryInt(r, "page"),
		PageSize: queryInt(r, "page_size"),
	}

	if categoryID := values.Get("category_id"); categoryID != "" {
		query.CategoryID = &categoryID
	}

	for name, target := range map[string]**decimal.Decimal{
		"min_price": &query.MinPrice,
		"max_price": &query.MaxPrice,
	} {
		raw := values.Get(name)
		if raw == "" {
			continue
		}
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return query, errors.New("parâmetro " + name + " inválido")
		}
		*target = &price
	}

	switch sort := domain.ProductSort(values.Get("sort")); sort {
	case "", domain.SortNewest, domain.SortPriceAsc, domain.SortPriceDesc, domain.SortName:
		query.Sort = sort
	default:
		return query, errors.New("ordenação inválida")
	}

	return query, nil
}

func handleCatalogError(w http.ResponseWriter, err error) {
	var catErr *catalog.CatalogError
	if errors.As(err, &catErr) {
		writeServiceError(w, "catalog", catErr.Code, err, withDetail(nil, "details", catErr.Details))
		return
	}

	writeServiceError(w, "catalog", apiErrors.ErrInternalServer, err, nil)
}
