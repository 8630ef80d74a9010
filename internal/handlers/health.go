package handlers

import "net/http"

type healthResponse struct {
	Status      string `json:"status"`
	BotUsername string `json:"bot_username"`
	Database    string `json:"database"`
}

// Health always answers 200. It reports configuration presence, not live
// connectivity; a down database must not make the deploy look dead.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	database := "not configured"
	if h.Cfg.DatabaseURL != "" {
		database = "connected"
	}
	writeJSON(w, http.StatusOK, healthResponse{
		Status:      "ok",
		BotUsername: h.Cfg.BotUsername,
		Database:    database,
	})
}
