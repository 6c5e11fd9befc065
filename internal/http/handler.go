package http

import (
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/twitsprout/tools"
	httputils "github.com/twitsprout/tools/http"
	"github.com/twitsprout/tools/requestid"

	"school-gallery/internal/session"
	gl "school-gallery/pkg/gallery"
)

// sessionCookie carries the browsing-session token. It correlates like
// records to a browser instance; it is not an auth credential.
const sessionCookie = "gallery_session"

const maxUploadBytes = 32 << 20

type Handler struct {
	Version  string
	AppName  string
	router   *mux.Router
	Logger   tools.Logger
	Sessions *session.Registry
}

// session resolves the request's browsing session, starting a fresh one
// (and setting the cookie) when none exists or the old one expired.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) *session.Session {
	var id string
	if c, err := r.Cookie(sessionCookie); err == nil {
		id = c.Value
	}
	s := h.Sessions.GetOrCreate(id)
	if s.ID != id {
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookie,
			Value:    s.ID,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return s
}

// respondError maps an engine error onto the wire per the error
// taxonomy: validation 400, not-found 404, conflict 409, transport 502.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, op string, err error) {
	v := r.URL.Query()
	reqID := requestid.Get(r.Context())

	code := http.StatusInternalServerError
	switch {
	case gl.IsValidation(err):
		code = http.StatusBadRequest
	case gl.IsNotFound(err):
		code = http.StatusNotFound
	case gl.IsConflict(err):
		code = http.StatusConflict
	case gl.IsTransport(err):
		code = http.StatusBadGateway
	}

	h.Logger.Error("["+op+"] request failed",
		"request_id", reqID,
		"status", code,
		"details", err.Error(),
	)
	_ = httputils.WriteJSONError(w, v, err.Error(), code)
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, data interface{}, code int) {
	_ = httputils.WriteJSONData(w, r.URL.Query(), data, code)
}

// formFile reads an optional multipart file field, returning nil when
// the field wasn't submitted.
func formFile(r *http.Request, field string) (*gl.FileUpload, error) {
	f, fh, err := r.FormFile(field)
	if err == http.ErrMissingFile {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	content, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return &gl.FileUpload{Name: fh.Filename, Content: content}, nil
}
