package handlers

import (
	"bytes"
	"io"
	"net/http"

	qrcode "github.com/yeqown/go-qrcode/v2"
	"github.com/yeqown/go-qrcode/writer/standard"
)

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// LandingQRCode renders the landing URL as a PNG for print and offline
// placements. Query parameters are carried into the encoded URL, so
// /qr?sub1=flyer42 produces a code whose scans arrive tagged with
// sub1=flyer42 and flow through capture like any other visit.
func (h *Handler) LandingQRCode(w http.ResponseWriter, r *http.Request) {
	target := "https://" + r.Host + "/"
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}

	qrc, err := qrcode.New(target)
	if err != nil {
		http.Error(w, "failed to generate qr code", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	writer := standard.NewWithWriter(nopCloser{&buf},
		standard.WithBuiltinImageEncoder(standard.PNG_FORMAT),
		standard.WithQRWidth(10),
	)
	if err := qrc.Save(writer); err != nil {
		http.Error(w, "failed to render qr code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(buf.Bytes())
}
