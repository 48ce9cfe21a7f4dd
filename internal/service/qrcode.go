package service

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// QRGenerator produces the payment QR image for an order.
type QRGenerator interface {
	Generate(orderID int) ([]byte, error)
}

type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(orderID int) ([]byte, error) {
	payload := fmt.Sprintf("%s/pay/%d", g.BaseURL, orderID)
	return qrcode.Encode(payload, qrcode.Medium, 256)
}

var _ QRGenerator = DefaultQRGenerator{}
