package menu

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// DefaultQRGenerator encodes the table-bound menu link a customer scans
// to start ordering.
type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(restaurantID, tableID int) ([]byte, error) {
	qrData := fmt.Sprintf("%s/menu?restaurant=%d&table=%d", g.BaseURL, restaurantID, tableID)
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}
