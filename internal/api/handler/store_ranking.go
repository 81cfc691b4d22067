package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/storefront-api/internal/usecases/ranking"
	"github.com/vfg2006/storefront-api/pkg/apiErrors"
)

// GetStoreRanking retorna o ranking das lojas por vendas líquidas no mês. Sem mês e ano, usa o mês corrente.
func GetStoreRanking(service ranking.RankingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		result, err := service.GetStoreRanking(r.Context(), query.Get("month"), query.Get("year"), queryInt(r, "limit"))
		if err != nil {
			var rankingErr *ranking.RankingError
			if errors.As(err, &rankingErr) {
				writeServiceError(w, "ranking", rankingErr.Code, err, nil)
				return
			}
			writeServiceError(w, "ranking", apiErrors.ErrInternalServer, err, nil)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}
