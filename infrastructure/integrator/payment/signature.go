// Package payment valida as confirmações enviadas pelo gateway de pagamento.
package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
)

var (
	ErrSecretNotConfigured = errors.New("payment: segredo do gateway não configurado")
	ErrInvalidSignature    = errors.New("payment: assinatura inválida")
)

// Sign calcula o HMAC-SHA256 em hexadecimal de "{orderID}|{paymentID}"
func Sign(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature compara a assinatura recebida com a esperada em tempo constante.
// Segredo ausente é erro de configuração, não de autorização.
func VerifySignature(orderID, paymentID, signature, secret string) error {
	if secret == "" {
		return ErrSecretNotConfigured
	}

	if orderID == "" || paymentID == "" || signature == "" {
		return ErrInvalidSignature
	}

	expected := Sign(orderID, paymentID, secret)
	if !hmac.Equal([]byte(expected), []byte(strings.ToLower(signature))) {
		return ErrInvalidSignature
	}

	return nil
}
