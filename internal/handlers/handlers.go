package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dsouza95/clickgate/internal/config"
	"github.com/dsouza95/clickgate/internal/geo"
	"github.com/dsouza95/clickgate/internal/models"
	"github.com/dsouza95/clickgate/internal/web"
)

// ClickStore is the persistence surface the capture flow needs.
type ClickStore interface {
	InsertClick(ctx context.Context, c *models.Click) error
}

type Handler struct {
	Cfg *config.Config
	// Store is nil when DATABASE_URL is absent or the database was
	// unreachable at startup; the capture endpoints report that per request.
	Store     ClickStore
	Geo       *geo.Reader
	Templates *web.TemplateRegistry
}

// BotDeepLink builds the Telegram link that hands clickID to the bot's
// /start handler. An empty clickID yields the bare chat link.
func BotDeepLink(username, clickID string) string {
	if clickID == "" {
		return "https://t.me/" + username
	}
	return "https://t.me/" + username + "?start=" + clickID
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
