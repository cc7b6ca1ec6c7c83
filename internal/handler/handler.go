package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"crazy-coffee/internal/middleware"
	"crazy-coffee/internal/model"
	"crazy-coffee/internal/session"
	"crazy-coffee/internal/view"

	"github.com/rs/zerolog"
)

var errNoClient = errors.New("request carries no client id")

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, code, message string, logger zerolog.Logger) {
	event := logger.Warn()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.Str("error", code).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: code, Message: message})
}

// pages holds what every HTML handler needs: templates and the per-client
// session stores.
type pages struct {
	renderer *view.Renderer
	sessions *session.Manager
	logger   zerolog.Logger
}

// store returns the session store of the requesting browser.
func (p *pages) store(r *http.Request) (*session.Store, error) {
	id, ok := middleware.ClientIDFromContext(r.Context())
	if !ok {
		return nil, errNoClient
	}
	return p.sessions.For(id), nil
}

// layout builds the page chrome. It consumes the pending notice, so it
// must be called once per rendered page. A corrupt session flag is
// dropped and the visitor treated as anonymous.
func (p *pages) layout(ctx context.Context, store *session.Store, title, page string) view.Layout {
	user, err := store.Read(ctx)
	if err != nil {
		p.logger.Warn().Err(err).Msg("discarding unreadable session")
		if errors.Is(err, model.ErrCorruptSession) {
			if err := store.Clear(ctx); err != nil {
				p.logger.Error().Err(err).Msg("failed to clear corrupt session")
			}
		}
		user = nil
	}

	notice, err := store.PopFlash(ctx)
	if err != nil {
		p.logger.Warn().Err(err).Msg("failed to read notice")
	}

	return view.NewLayout(title, page, user, notice)
}

// render writes page with status.
func (p *pages) render(w http.ResponseWriter, status int, page string, data view.LayoutProvider) {
	p.renderer.RenderHTTP(w, status, page, data)
}

func (p *pages) internalError(w http.ResponseWriter, err error) {
	p.logger.Error().Err(err).Msg("request failed")
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
