package utils

import (
	"bytes"
	"educareer/config"
	"fmt"

	"github.com/fogleman/gg"
)

const (
	certWidth  = 1200
	certHeight = 850
)

// CertificateData carries the fields printed on the certificate artwork
type CertificateData struct {
	Name         string
	Course       string
	Date         string
	SerialNumber string
}

// RenderCertificatePNG draws the certificate of completion and returns it as
// PNG bytes. A TTF configured via CERTIFICATE_FONT is used when available;
// otherwise rendering falls back to the built-in face.
func RenderCertificatePNG(data CertificateData) ([]byte, error) {
	dc := gg.NewContext(certWidth, certHeight)

	// Background and double border
	dc.SetHexColor("#FFFFFF")
	dc.Clear()
	dc.SetHexColor("#1B2A4A")
	dc.SetLineWidth(6)
	dc.DrawRectangle(40, 40, certWidth-80, certHeight-80)
	dc.Stroke()
	dc.SetLineWidth(2)
	dc.DrawRectangle(56, 56, certWidth-112, certHeight-112)
	dc.Stroke()

	setFace := func(size float64) {
		fontPath := ""
		if config.AppConfig != nil {
			fontPath = config.AppConfig.CertificateFont
		}
		if fontPath != "" {
			if err := dc.LoadFontFace(fontPath, size); err == nil {
				return
			}
		}
		// Built-in face ignores size; still legible for development
	}

	centerX := float64(certWidth) / 2

	setFace(28)
	dc.SetHexColor("#4A90D9")
	dc.DrawStringAnchored("EDUCAREER", centerX, 140, 0.5, 0.5)

	setFace(64)
	dc.SetHexColor("#1B2A4A")
	dc.DrawStringAnchored("Certificate of Completion", centerX, 230, 0.5, 0.5)

	setFace(24)
	dc.DrawStringAnchored("This is to certify that", centerX, 330, 0.5, 0.5)

	setFace(48)
	dc.DrawStringAnchored(data.Name, centerX, 410, 0.5, 0.5)
	nameWidth, _ := dc.MeasureString(data.Name)
	dc.SetLineWidth(2)
	dc.DrawLine(centerX-nameWidth/2, 435, centerX+nameWidth/2, 435)
	dc.Stroke()

	setFace(24)
	dc.DrawStringAnchored("has successfully completed the course", centerX, 500, 0.5, 0.5)

	setFace(36)
	dc.DrawStringAnchored(data.Course, centerX, 570, 0.5, 0.5)

	setFace(22)
	dc.DrawStringAnchored("Date: "+data.Date, centerX, 660, 0.5, 0.5)

	setFace(16)
	dc.SetHexColor("#666666")
	dc.DrawStringAnchored(fmt.Sprintf("Serial: %s", data.SerialNumber), centerX, certHeight-90, 0.5, 0.5)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode certificate: %w", err)
	}
	return buf.Bytes(), nil
}
