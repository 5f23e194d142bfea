package identity

import (
	"encoding/json"
	"errors"
	"html/template"
	"mime"
	"net/http"
	"net/url"

	"github.com/bissquit/campus-registry/internal/pkg/ctxlog"
	"github.com/bissquit/campus-registry/internal/pkg/httputil"
	"github.com/go-chi/chi/v5"
)

// Pages contains the browser routes the sign-up flow navigates to.
type Pages struct {
	SignIn  string
	Error   string
	Landing string
}

// Handler handles HTTP requests for the identity module.
type Handler struct {
	service *Service
	pages   Pages
}

// NewHandler creates a new identity handler.
func NewHandler(service *Service, pages Pages) *Handler {
	return &Handler{
		service: service,
		pages:   pages,
	}
}

// RegisterRoutes registers identity API routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.Register)
	})
}

// RegisterPageRoutes registers browser-facing pages.
func (h *Handler) RegisterPageRoutes(r chi.Router) {
	r.Get(h.pages.Error, h.ErrorPage)
}

var errorMappings = []httputil.ErrorMapping{
	{Error: ErrAccountExists, Status: http.StatusConflict},
	{Error: ErrPersistence, Status: http.StatusServiceUnavailable},
	{Error: ErrRegistrationFailed, Status: http.StatusInternalServerError},
}

// Register handles POST /auth/register.
//
// JSON bodies get a JSON response. Form submissions are redirected to the
// landing page on success. A rejected form is answered with the error page
// listing each field message; other failures redirect to the error page.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	if isFormSubmission(r) {
		h.registerForm(w, r)
		return
	}

	var creds Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			verr := typeMismatch(typeErr.Field)
			recordRegistration(verr)
			httputil.ValidationError(w, verr.Error(), verr.Messages)
			return
		}
		httputil.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	identity, err := h.service.Authorize(r.Context(), creds)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			httputil.ValidationError(w, verr.Error(), verr.Messages)
			return
		}
		httputil.HandleError(r.Context(), w, err, errorMappings)
		return
	}

	httputil.Success(w, http.StatusCreated, identity)
}

// maxFormMemory bounds the multipart body held in memory; the rest spills to disk.
const maxFormMemory = 1 << 20

func (h *Handler) registerForm(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		ctxlog.FromContext(r.Context()).Warn("failed to parse sign-up form", "error", err)
		h.renderErrorPage(w, r, http.StatusBadRequest, errorPageMessages[OutcomeValidation], nil)
		return
	}

	creds := Credentials{
		FirstName: r.PostForm.Get("first_name"),
		LastName:  r.PostForm.Get("last_name"),
		Email:     r.PostForm.Get("email"),
		Password:  r.PostForm.Get("password"),
		Role:      r.PostForm.Get("role"),
	}

	if _, err := h.service.Authorize(r.Context(), creds); err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			h.renderErrorPage(w, r, http.StatusBadRequest, errorPageMessages[OutcomeValidation], verr.Messages)
			return
		}
		httputil.Redirect(w, r, h.errorURL(Outcome(err)))
		return
	}

	httputil.Redirect(w, r, h.pages.Landing)
}

func (h *Handler) errorURL(code string) string {
	return h.pages.Error + "?" + url.Values{"error": {code}}.Encode()
}

func formMediaType(r *http.Request) string {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return ""
	}
	return mediaType
}

func isFormSubmission(r *http.Request) bool {
	switch formMediaType(r) {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		return true
	default:
		return false
	}
}

func parseForm(r *http.Request) error {
	if formMediaType(r) == "multipart/form-data" {
		return r.ParseMultipartForm(maxFormMemory)
	}
	return r.ParseForm()
}

// errorPageMessages maps error codes to the text shown on the error page.
// Unknown codes fall back to the generic failure message.
var errorPageMessages = map[string]string{
	OutcomeValidation:    "Some of the details you entered are invalid. Please check the form and try again.",
	OutcomeAccountExists: "An account with this email already exists. Please sign in instead.",
	OutcomePersistence:   "We could not save your account right now. Please try again.",
	OutcomeFailed:        "Sign-up failed. Please try again.",
}

var errorPage = template.Must(template.New("error").Parse(`<!DOCTYPE html>
<html>
<head><title>Sign-up error</title></head>
<body>
  <h1>Something went wrong</h1>
  <p>{{.Message}}</p>
  {{- if .Details}}
  <ul>
    {{- range .Details}}
    <li>{{.}}</li>
    {{- end}}
  </ul>
  {{- end}}
  <p><a href="{{.SignIn}}">Back to sign in</a></p>
</body>
</html>
`))

// ErrorPage handles GET on the configured error route.
func (h *Handler) ErrorPage(w http.ResponseWriter, r *http.Request) {
	msg, ok := errorPageMessages[r.URL.Query().Get("error")]
	if !ok {
		msg = errorPageMessages[OutcomeFailed]
	}

	h.renderErrorPage(w, r, http.StatusOK, msg, nil)
}

func (h *Handler) renderErrorPage(w http.ResponseWriter, r *http.Request, status int, msg string, details []string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := errorPage.Execute(w, struct {
		Message string
		Details []string
		SignIn  string
	}{Message: msg, Details: details, SignIn: h.pages.SignIn}); err != nil {
		ctxlog.FromContext(r.Context()).Error("failed to render error page", "error", err)
	}
}
