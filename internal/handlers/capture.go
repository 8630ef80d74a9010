package handlers

import (
	"log/slog"
	"net/http"

	"github.com/dsouza95/clickgate/internal/botcheck"
	"github.com/dsouza95/clickgate/internal/clickid"
	"github.com/dsouza95/clickgate/internal/clientip"
	"github.com/dsouza95/clickgate/internal/models"
	"github.com/dsouza95/clickgate/internal/web"
)

// Capture is the direct-redirect variant of GET /: persist the visit straight
// from the query string and 302 to the bot deep link. Used when the
// pre-lander is disabled.
func (h *Handler) Capture(w http.ResponseWriter, r *http.Request) {
	if h.Cfg.BotUsername == "" {
		http.Error(w, "BOT_USERNAME not configured", http.StatusInternalServerError)
		return
	}
	if h.Store == nil {
		http.Error(w, "DATABASE_URL not configured", http.StatusInternalServerError)
		return
	}

	ua := r.UserAgent()
	if botcheck.IsBot(ua) {
		// Link validators and preview fetchers must not mint click rows.
		http.Redirect(w, r, BotDeepLink(h.Cfg.BotUsername, ""), http.StatusFound)
		return
	}

	id, err := clickid.Generate()
	if err != nil {
		slog.Error("click id generation failed", "error", err)
		http.Redirect(w, r, BotDeepLink(h.Cfg.BotUsername, ""), http.StatusFound)
		return
	}

	q := r.URL.Query()
	click := &models.Click{
		ClickID:   id,
		Fbclid:    q.Get("fbclid"),
		Fbb:       q.Get("fbb"),
		Sub1:      q.Get("sub1"),
		Sub2:      q.Get("sub2"),
		Sub3:      q.Get("sub3"),
		Sub4:      q.Get("sub4"),
		Sub5:      q.Get("sub5"),
		UserAgent: ua,
		IP:        clientip.FromRequest(r),
	}
	click.Normalize()

	if err := h.Store.InsertClick(r.Context(), click); err != nil {
		// The visitor still reaches the bot; only the correlation is lost.
		slog.Error("click insert failed", "click_id", id, "error", err)
		http.Redirect(w, r, BotDeepLink(h.Cfg.BotUsername, ""), http.StatusFound)
		return
	}

	slog.Info("click captured",
		"click_id", id,
		"ip", click.IP,
		"country", h.Geo.Country(click.IP),
		"fbclid", click.Fbclid,
	)
	http.Redirect(w, r, BotDeepLink(h.Cfg.BotUsername, id), http.StatusFound)
}

// Prelander serves the enrichment page on GET /; its script collects browser
// metadata, posts to /save-click, and performs the redirect itself.
func (h *Handler) Prelander(w http.ResponseWriter, r *http.Request) {
	h.Templates.RenderPrelander(w, web.PrelanderData{FallbackBot: h.Cfg.FallbackBot})
}
