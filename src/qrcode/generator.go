package qrcode

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// DefaultSize is the badge edge length in pixels.
const DefaultSize = 256

// BadgePNG renders the check-in badge of a scholar: a QR code holding the
// scholar id that desk checkers scan instead of typing it.
func BadgePNG(scholarID string, size int) ([]byte, error) {
	if scholarID == "" {
		return nil, fmt.Errorf("empty scholar id")
	}
	if size <= 0 {
		size = DefaultSize
	}
	return qrcode.Encode(scholarID, qrcode.Medium, size)
}
