package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/storefront-api/internal/domain"
	"github.com/vfg2006/storefront-api/internal/usecases/settling"
	"github.com/vfg2006/storefront-api/pkg/apiErrors"
	"github.com/vfg2006/storefront-api/pkg/log"
)

// VerifyPayment recebe a confirmação de pagamento do gateway. A assinatura autentica a chamada;
// um pedido já liquidado responde 200 com already_settled para que o gateway não reenvie.
func VerifyPayment(service settling.Settler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.SettlementRequest
		if !decodeRequest(w, r, &req) {
			return
		}
		req.TenantSlug = pathParam(r, "slug")

		result, err := service.Settle(r.Context(), req)
		if err != nil {
			handleSettlementError(w, err)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"tenant":   req.TenantSlug,
			"order_id": result.OrderID,
		}).Infof("Pagamento confirmado (already_settled=%t)", result.AlreadySettled)

		writeJSON(w, http.StatusOK, result)
	}
}

func handleSettlementError(w http.ResponseWriter, err error) {
	var settleErr *settling.SettlementError
	if errors.As(err, &settleErr) {
		if settleErr.Code == apiErrors.ErrPaymentInvalidSignature {
			logrus.WithField("order_id", settleErr.OrderID).Warn("settlement: assinatura de pagamento rejeitada")
		}
		details := withDetail(nil, "order_id", settleErr.OrderID)
		writeServiceError(w, "settlement", settleErr.Code, err, withDetail(details, "details", settleErr.Details))
		return
	}

	writeServiceError(w, "settlement", apiErrors.ErrInternalServer, err, nil)
}
