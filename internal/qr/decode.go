package qr

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/makiuchi-d/gozxing"
	zxqrcode "github.com/makiuchi-d/gozxing/qrcode"

	"smartcart/internal/apperr"
)

// Decode extracts at most one QR payload from raw image bytes. An image with
// no readable code is not an error; found is simply false.
func Decode(data []byte) (payload string, found bool, err error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", false, apperr.Wrap(apperr.Validation, "could not decode image", err)
	}

	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", false, apperr.Wrap(apperr.Validation, "could not prepare image for scanning", err)
	}

	result, err := zxqrcode.NewQRCodeReader().Decode(bmp, nil)
	if err != nil {
		return "", false, nil
	}

	return result.GetText(), true, nil
}
