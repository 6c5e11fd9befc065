package http

import (
	"net/http"

	"github.com/gorilla/mux"
	httputils "github.com/twitsprout/tools/http"

	"school-gallery/internal/engage"
	"school-gallery/internal/navigator"
	gl "school-gallery/pkg/gallery"
)

type albumViewRes struct {
	Album      gl.Album                `json:"album"`
	Images     []gl.Image              `json:"images"`
	Engagement map[string]engage.State `json:"engagement"`
}

type imageViewRes struct {
	Image      gl.Image      `json:"image"`
	Engagement *engage.State `json:"engagement,omitempty"`
}

type likeRes struct {
	engage.State
	AlreadyLiked bool `json:"already_liked"`
}

// ListAlbums refreshes and returns the publicly listed albums.
func (h *Handler) ListAlbums(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)

	albums, err := s.Public.LoadAlbums(r.Context())
	if err != nil {
		h.respondError(w, r, "ListAlbums", err)
		return
	}
	h.respond(w, r, albums, http.StatusOK)
}

// OpenAlbum opens an album on the session's navigator, loads its public
// images and seeds per-image engagement state.
func (h *Handler) OpenAlbum(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	albumID := mux.Vars(r)["id"]

	images, err := s.Public.OpenAlbum(r.Context(), albumID)
	if err != nil {
		h.respondError(w, r, "OpenAlbum", err)
		return
	}
	album, _ := s.Public.Album(albumID)
	h.respond(w, r, albumViewRes{
		Album:      album,
		Images:     images,
		Engagement: engagementMap(s.Public.Engagement, images),
	}, http.StatusOK)
}

// CloseAlbum returns the session to the album-list view.
func (h *Handler) CloseAlbum(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	s.Public.CloseAlbum()
	h.respond(w, r, s.Public.View().String(), http.StatusOK)
}

// OpenImage enters the lightbox on one image of the open album.
func (h *Handler) OpenImage(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	imageID := mux.Vars(r)["id"]

	img, err := s.Public.OpenImage(imageID)
	if err != nil {
		h.respondError(w, r, "OpenImage", err)
		return
	}
	h.respond(w, r, imageRes(s.Public.Engagement, img), http.StatusOK)
}

// CloseImage exits the lightbox.
func (h *Handler) CloseImage(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	s.Public.CloseImage()
	h.respond(w, r, s.Public.View().String(), http.StatusOK)
}

// NavigateImage moves the lightbox to the next or previous image, with
// wraparound at both ends of the list.
func (h *Handler) NavigateImage(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)

	dir := navigator.Direction(r.URL.Query().Get("direction"))
	if dir != navigator.Next && dir != navigator.Prev {
		h.respondError(w, r, "NavigateImage", &gl.ValidationError{
			Field:  "direction",
			Reason: "must be 'next' or 'prev'",
		})
		return
	}
	img, err := s.Public.Navigate(dir)
	if err != nil {
		h.respondError(w, r, "NavigateImage", err)
		return
	}
	h.respond(w, r, imageRes(s.Public.Engagement, img), http.StatusOK)
}

// LikeImage records the session's like. An already-liked image is not a
// failure: the existing state is returned with already_liked set.
func (h *Handler) LikeImage(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	imageID := mux.Vars(r)["id"]

	st, err := s.Public.Like(r.Context(), imageID)
	if err == gl.ErrAlreadyLiked {
		h.respond(w, r, likeRes{State: st, AlreadyLiked: true}, http.StatusOK)
		return
	}
	if err != nil {
		h.respondError(w, r, "LikeImage", err)
		return
	}
	h.respond(w, r, likeRes{State: st}, http.StatusOK)
}

// ImageEngagement returns the tracked like/comment state for an image.
func (h *Handler) ImageEngagement(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	imageID := mux.Vars(r)["id"]

	st, ok := s.Public.Engagement(imageID)
	if !ok {
		h.respondError(w, r, "ImageEngagement", gl.ErrNotFound)
		return
	}
	h.respond(w, r, st, http.StatusOK)
}

// CommentImage appends a comment once the store confirms it. On failure
// nothing is stored, so the client keeps the typed text and may
// resubmit.
func (h *Handler) CommentImage(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	imageID := mux.Vars(r)["id"]

	var req struct {
		Text string `json:"text"`
	}
	if err := httputils.ReadJSON(r.Body, &req); err != nil {
		h.respondError(w, r, "CommentImage", &gl.ValidationError{Field: "body", Reason: err.Error()})
		return
	}
	cmt, err := s.Public.Comment(r.Context(), imageID, req.Text)
	if err != nil {
		h.respondError(w, r, "CommentImage", err)
		return
	}
	h.respond(w, r, cmt, http.StatusCreated)
}

func imageRes(state func(string) (engage.State, bool), img gl.Image) imageViewRes {
	res := imageViewRes{Image: img}
	if st, ok := state(img.ID); ok {
		res.Engagement = &st
	}
	return res
}

func engagementMap(state func(string) (engage.State, bool), images []gl.Image) map[string]engage.State {
	m := make(map[string]engage.State, len(images))
	for _, img := range images {
		if st, ok := state(img.ID); ok {
			m[img.ID] = st
		}
	}
	return m
}
