package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dsouza95/clickgate/internal/clickid"
	"github.com/dsouza95/clickgate/internal/clientip"
	"github.com/dsouza95/clickgate/internal/models"
)

type saveClickRequest struct {
	Fbclid       string     `json:"fbclid"`
	Fbb          string     `json:"fbb"`
	Sub1         string     `json:"sub1"`
	Sub2         string     `json:"sub2"`
	Sub3         string     `json:"sub3"`
	Sub4         string     `json:"sub4"`
	Sub5         string     `json:"sub5"`
	UserAgent    string     `json:"useragent"`
	IP           string     `json:"ip"`
	ScreenWidth  flexString `json:"screen_width"`
	ScreenHeight flexString `json:"screen_height"`
	Language     string     `json:"language"`
	Timezone     string     `json:"timezone"`
}

type saveClickResponse struct {
	Success     bool   `json:"success"`
	ClickID     string `json:"click_id,omitempty"`
	BotUsername string `json:"bot_username,omitempty"`
	Error       string `json:"error,omitempty"`
}

// flexString accepts both JSON strings and numbers. The pre-lander script
// sends screen dimensions as numbers (window.screen.width), while replayed
// or hand-built payloads send strings.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

// SaveClick receives the enrichment payload from the pre-lander script,
// persists the visit, and returns the pieces of the deep link.
func (h *Handler) SaveClick(w http.ResponseWriter, r *http.Request) {
	if h.Cfg.BotUsername == "" {
		writeJSON(w, http.StatusInternalServerError, saveClickResponse{Error: "BOT_USERNAME not configured"})
		return
	}
	if h.Store == nil {
		writeJSON(w, http.StatusInternalServerError, saveClickResponse{Error: "DATABASE_URL not configured"})
		return
	}

	var req saveClickRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, saveClickResponse{Error: "invalid JSON"})
		return
	}

	id, err := clickid.Generate()
	if err != nil {
		slog.Error("click id generation failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, saveClickResponse{Error: "failed to generate click id"})
		return
	}

	// Client-reported values win; headers fill the gaps.
	ua := req.UserAgent
	if ua == "" {
		ua = r.UserAgent()
	}
	ip := req.IP
	if ip == "" {
		ip = clientip.FromRequest(r)
	}

	click := &models.Click{
		ClickID:      id,
		Fbclid:       req.Fbclid,
		Fbb:          req.Fbb,
		Sub1:         req.Sub1,
		Sub2:         req.Sub2,
		Sub3:         req.Sub3,
		Sub4:         req.Sub4,
		Sub5:         req.Sub5,
		UserAgent:    ua,
		IP:           ip,
		ScreenWidth:  string(req.ScreenWidth),
		ScreenHeight: string(req.ScreenHeight),
		Language:     req.Language,
		Timezone:     req.Timezone,
	}
	click.Normalize()

	if err := h.Store.InsertClick(r.Context(), click); err != nil {
		slog.Error("click insert failed", "click_id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, saveClickResponse{Error: "failed to save click"})
		return
	}

	slog.Info("click captured",
		"click_id", id,
		"ip", ip,
		"country", h.Geo.Country(ip),
		"fbclid", click.Fbclid,
	)
	writeJSON(w, http.StatusOK, saveClickResponse{
		Success:     true,
		ClickID:     id,
		BotUsername: h.Cfg.BotUsername,
	})
}
