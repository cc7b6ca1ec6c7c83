package handler

import (
	"errors"
	"net/http"

	"crazy-coffee/internal/middleware"
	"crazy-coffee/internal/model"
	"crazy-coffee/internal/navigation"
	"crazy-coffee/internal/service"
	"crazy-coffee/internal/session"
	"crazy-coffee/internal/view"

	"github.com/rs/zerolog"
)

// AuthHandler serves the login and registration forms.
type AuthHandler struct {
	pages
	service service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(renderer *view.Renderer, sessions *session.Manager, svc service.AuthService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		pages: pages{
			renderer: renderer,
			sessions: sessions,
			logger:   logger.With().Str("handler", "auth").Logger(),
		},
		service: svc,
	}
}

// LoginPage handles GET /login.
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	store, err := h.store(r)
	if err != nil {
		h.internalError(w, err)
		return
	}

	if ok, _ := store.IsAuthenticated(r.Context()); ok {
		navigation.GoHome(w, r)
		return
	}

	h.render(w, http.StatusOK, view.PageLogin, &view.LoginPage{
		Layout: h.layout(r.Context(), store, "Iniciar sesión", view.PageLogin),
	})
}

// Login handles POST /login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	store, err := h.store(r)
	if err != nil {
		h.internalError(w, err)
		return
	}

	if err := r.ParseForm(); err != nil {
		h.logger.Warn().Err(err).Msg("unreadable login form")
	}
	form := model.LoginForm{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}

	result, err := h.service.Login(r.Context(), store, form)
	if err != nil {
		status, message := formFailure(err)
		page := &view.LoginPage{
			Layout:   h.layout(r.Context(), store, "Iniciar sesión", view.PageLogin),
			Username: form.Username,
			Error:    message,
		}
		if errors.Is(err, model.ErrInvalidCredentials) {
			page.Notice = message
		}
		h.render(w, status, view.PageLogin, page)
		return
	}

	navigation.NavigateTo(w, r, result.Redirect)
}

// RegisterPage handles GET /register.
func (h *AuthHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	store, err := h.store(r)
	if err != nil {
		h.internalError(w, err)
		return
	}

	if ok, _ := store.IsAuthenticated(r.Context()); ok {
		navigation.GoHome(w, r)
		return
	}

	h.render(w, http.StatusOK, view.PageRegister, &view.RegisterPage{
		Layout: h.layout(r.Context(), store, "Registro", view.PageRegister),
	})
}

// Register handles POST /register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	store, err := h.store(r)
	if err != nil {
		h.internalError(w, err)
		return
	}

	if err := r.ParseForm(); err != nil {
		h.logger.Warn().Err(err).Msg("unreadable registration form")
	}
	form := model.RegisterForm{
		GivenName:  r.PostFormValue("nombre"),
		FamilyName: r.PostFormValue("apellido"),
		Email:      r.PostFormValue("email"),
		Username:   r.PostFormValue("username"),
		Password:   r.PostFormValue("password"),
	}

	result, err := h.service.Register(r.Context(), form)
	if err != nil {
		status, message := formFailure(err)
		h.render(w, status, view.PageRegister, &view.RegisterPage{
			Layout:   h.layout(r.Context(), store, "Registro", view.PageRegister),
			Nombre:   form.GivenName,
			Apellido: form.FamilyName,
			Email:    form.Email,
			Username: form.Username,
			Error:    message,
		})
		return
	}

	// A client without a stored cookie would never read the notice back.
	if result.Notice != "" && middleware.IsReturningClient(r.Context()) {
		if err := store.SetFlash(r.Context(), result.Notice); err != nil {
			h.logger.Warn().Err(err).Msg("failed to queue registration notice")
		}
	}

	navigation.NavigateTo(w, r, result.Redirect)
}

// Logout handles POST /logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	store, err := h.store(r)
	if err != nil {
		h.internalError(w, err)
		return
	}

	result, err := h.service.Logout(r.Context(), store)
	if err != nil {
		h.internalError(w, err)
		return
	}

	navigation.NavigateTo(w, r, result.Redirect)
}

// LogoutLink handles GET /logout. Following a link never logs out; the
// browser is sent back where it came from.
func (h *AuthHandler) LogoutLink(w http.ResponseWriter, r *http.Request) {
	navigation.GoBack(w, r)
}

// formFailure maps a form submission error to a status and the message
// shown above the form.
func formFailure(err error) (int, string) {
	switch {
	case errors.Is(err, model.ErrMissingField):
		return http.StatusUnprocessableEntity, model.ErrMissingField.Message
	case errors.Is(err, model.ErrInvalidCredentials):
		return http.StatusUnauthorized, model.ErrInvalidCredentials.Message
	default:
		return http.StatusInternalServerError, "No pudimos procesar la solicitud. Inténtalo más tarde."
	}
}
