package http

import (
	"net/http"

	"github.com/gorilla/mux"

	gl "school-gallery/pkg/gallery"
)

// AdminListAlbums refreshes and returns all albums, hidden ones
// included.
func (h *Handler) AdminListAlbums(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)

	albums, err := s.Admin.LoadAlbums(r.Context())
	if err != nil {
		h.respondError(w, r, "AdminListAlbums", err)
		return
	}
	h.respond(w, r, albums, http.StatusOK)
}

// AdminOpenAlbum opens an album for management and loads all of its
// images.
func (h *Handler) AdminOpenAlbum(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	albumID := mux.Vars(r)["id"]

	images, err := s.Admin.OpenAlbum(r.Context(), albumID)
	if err != nil {
		h.respondError(w, r, "AdminOpenAlbum", err)
		return
	}
	album, _ := s.Admin.Album(albumID)
	h.respond(w, r, albumViewRes{Album: album, Images: images}, http.StatusOK)
}

// AdminCreateAlbum creates a new album from a multipart form (title,
// description, optional cover_image file).
func (h *Handler) AdminCreateAlbum(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		h.respondError(w, r, "AdminCreateAlbum", &gl.ValidationError{Field: "form", Reason: err.Error()})
		return
	}
	cover, err := formFile(r, "cover_image")
	if err != nil {
		h.respondError(w, r, "AdminCreateAlbum", &gl.ValidationError{Field: "cover_image", Reason: err.Error()})
		return
	}
	req := gl.CreateAlbumRequest{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		CoverFile:   cover,
	}
	album, err := s.Admin.CreateAlbum(r.Context(), req)
	if err != nil {
		h.respondError(w, r, "AdminCreateAlbum", err)
		return
	}
	h.respond(w, r, album, http.StatusCreated)
}

// AdminUpdateAlbum edits an album's metadata, optionally replacing the
// cover file.
func (h *Handler) AdminUpdateAlbum(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	albumID := mux.Vars(r)["id"]

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		h.respondError(w, r, "AdminUpdateAlbum", &gl.ValidationError{Field: "form", Reason: err.Error()})
		return
	}
	cover, err := formFile(r, "cover_image")
	if err != nil {
		h.respondError(w, r, "AdminUpdateAlbum", &gl.ValidationError{Field: "cover_image", Reason: err.Error()})
		return
	}
	req := gl.UpdateAlbumRequest{
		AlbumID:     albumID,
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		CoverFile:   cover,
	}
	album, err := s.Admin.EditAlbum(r.Context(), req)
	if err != nil {
		h.respondError(w, r, "AdminUpdateAlbum", err)
		return
	}
	h.respond(w, r, album, http.StatusOK)
}

// AdminDeleteAlbum removes an album and everything it contains. The
// confirmation step happens client-side before this request is made.
func (h *Handler) AdminDeleteAlbum(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	albumID := mux.Vars(r)["id"]

	if err := s.Admin.DeleteAlbum(r.Context(), albumID); err != nil {
		h.respondError(w, r, "AdminDeleteAlbum", err)
		return
	}
	h.respond(w, r, "deleted", http.StatusOK)
}

// AdminToggleAlbumVisibility flips whether the album is publicly
// listed.
func (h *Handler) AdminToggleAlbumVisibility(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	albumID := mux.Vars(r)["id"]

	visible, err := s.Admin.ToggleAlbumVisibility(r.Context(), albumID)
	if err != nil {
		h.respondError(w, r, "AdminToggleAlbumVisibility", err)
		return
	}
	h.respond(w, r, map[string]bool{"visible": visible}, http.StatusOK)
}

// AdminSetAlbumCover points the album's cover at one of its images.
func (h *Handler) AdminSetAlbumCover(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	vars := mux.Vars(r)

	if err := s.Admin.SetCoverImage(r.Context(), vars["id"], vars["imageId"]); err != nil {
		h.respondError(w, r, "AdminSetAlbumCover", err)
		return
	}
	album, _ := s.Admin.Album(vars["id"])
	h.respond(w, r, album, http.StatusOK)
}

// AdminUploadImage stores a new image in the album from a multipart
// form (image file, optional title/category).
func (h *Handler) AdminUploadImage(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	albumID := mux.Vars(r)["id"]

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		h.respondError(w, r, "AdminUploadImage", &gl.ValidationError{Field: "form", Reason: err.Error()})
		return
	}
	file, err := formFile(r, "image")
	if err != nil {
		h.respondError(w, r, "AdminUploadImage", &gl.ValidationError{Field: "image", Reason: err.Error()})
		return
	}
	req := gl.UploadImageRequest{
		AlbumID:  albumID,
		Title:    r.FormValue("title"),
		Category: r.FormValue("category"),
		File:     file,
	}
	img, err := s.Admin.UploadImage(r.Context(), req)
	if err != nil {
		h.respondError(w, r, "AdminUploadImage", err)
		return
	}
	h.respond(w, r, img, http.StatusCreated)
}

// AdminUpdateImage edits an image's title/category and optionally
// replaces its file.
func (h *Handler) AdminUpdateImage(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	imageID := mux.Vars(r)["id"]

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		h.respondError(w, r, "AdminUpdateImage", &gl.ValidationError{Field: "form", Reason: err.Error()})
		return
	}
	file, err := formFile(r, "file")
	if err != nil {
		h.respondError(w, r, "AdminUpdateImage", &gl.ValidationError{Field: "file", Reason: err.Error()})
		return
	}
	req := gl.UpdateImageRequest{
		ImageID:  imageID,
		Title:    r.FormValue("title"),
		Category: r.FormValue("category"),
		File:     file,
	}
	img, err := s.Admin.EditImage(r.Context(), req)
	if err != nil {
		h.respondError(w, r, "AdminUpdateImage", err)
		return
	}
	h.respond(w, r, img, http.StatusOK)
}

// AdminDeleteImage removes an image from its album.
func (h *Handler) AdminDeleteImage(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	imageID := mux.Vars(r)["id"]

	if err := s.Admin.DeleteImage(r.Context(), imageID); err != nil {
		h.respondError(w, r, "AdminDeleteImage", err)
		return
	}
	h.respond(w, r, "deleted", http.StatusOK)
}

// AdminToggleImageVisibility flips whether the image is publicly
// visible.
func (h *Handler) AdminToggleImageVisibility(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	imageID := mux.Vars(r)["id"]

	visible, err := s.Admin.ToggleImageVisibility(r.Context(), imageID)
	if err != nil {
		h.respondError(w, r, "AdminToggleImageVisibility", err)
		return
	}
	h.respond(w, r, map[string]bool{"visible": visible}, http.StatusOK)
}

// AdminSearchImages filters the open album's cached images by title or
// category substring, locally.
func (h *Handler) AdminSearchImages(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)

	images := s.Admin.SearchImages(r.URL.Query().Get("q"))
	h.respond(w, r, images, http.StatusOK)
}
