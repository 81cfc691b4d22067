package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const receiptCharacters = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const receiptPrefix = "ORD-"

// GenerateReceiptNumber gera o número do recibo exibido ao cliente (ex.: ORD-7KQ2M9XA4P).
// Caracteres ambíguos (0/O, 1/I) ficam de fora.
func GenerateReceiptNumber() (string, error) {
	id, err := gonanoid.Generate(receiptCharacters, 10)
	if err != nil {
		return "", err
	}
	return receiptPrefix + id, nil
}
