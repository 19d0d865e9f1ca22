package qr

import qrcode "github.com/skip2/go-qrcode"

// EncodePNG renders a payload as a QR code PNG of the given pixel size.
func EncodePNG(payload string, size int) ([]byte, error) {
	return qrcode.Encode(payload, qrcode.Medium, size)
}
