package http

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	httputils "github.com/twitsprout/tools/http"
)

// Handler mounts all the handlers at the appropriate routes and adds any required middleware.
func (h *Handler) Handler() http.Handler {
	r := mux.NewRouter()

	r.Use(httputils.TimeoutMiddleware(1 * time.Minute))
	r.Use(httputils.RequestIDMiddleware)
	r.Use(httputils.RealIPMiddleware)
	r.Use(httputils.LimitReaderMiddleware(maxUploadBytes))
	r.Use(httputils.LoggingMiddleware(h.Logger))
	r.Use(httputils.RecoverMiddleware(h.Logger, httputils.InternalServerErrorHandler(h.Logger)))
	r.Use(httputils.MaxConnectionsMiddleware(5000, httputils.ServiceUnavailableHandler(h.Logger)))
	r.Use(httputils.ConcurrentLimitMiddleware(250, httputils.ServiceUnavailableHandler(h.Logger)))

	r.MethodNotAllowedHandler = httputils.MethodNotAllowedHandler(h.Logger)
	r.NotFoundHandler = httputils.NotFoundHandler(h.Logger)

	versionHandler := httputils.VersionHandler(h.AppName, h.Version, h.Logger)
	r.Methods("GET").Path("/").Name("root").Handler(versionHandler)
	r.Methods("GET").Path("/version").Name("version").Handler(versionHandler)

	// Public surface: browse, like, comment.
	v1 := r.PathPrefix("/v1").Subrouter()
	v1.Methods("GET").Path("/albums").Name("list_albums").HandlerFunc(h.ListAlbums)
	v1.Methods("POST").Path("/album/{id}/open").Name("open_album").HandlerFunc(h.OpenAlbum)
	v1.Methods("POST").Path("/album/close").Name("close_album").HandlerFunc(h.CloseAlbum)
	v1.Methods("POST").Path("/image/{id}/open").Name("open_image").HandlerFunc(h.OpenImage)
	v1.Methods("POST").Path("/image/close").Name("close_image").HandlerFunc(h.CloseImage)
	v1.Methods("POST").Path("/image/navigate").Name("navigate_image").HandlerFunc(h.NavigateImage)
	v1.Methods("POST").Path("/image/{id}/like").Name("like_image").HandlerFunc(h.LikeImage)
	v1.Methods("GET").Path("/image/{id}/engagement").Name("image_engagement").HandlerFunc(h.ImageEngagement)
	v1.Methods("POST").Path("/image/{id}/comment").Name("comment_image").HandlerFunc(h.CommentImage)

	// Admin surface: full CRUD, visibility, cover selection. An
	// authenticated administrative context is assumed to be enforced
	// upstream of this service.
	admin := v1.PathPrefix("/admin").Subrouter()
	admin.Methods("GET").Path("/albums").Name("admin_list_albums").HandlerFunc(h.AdminListAlbums)
	admin.Methods("POST").Path("/album").Name("admin_create_album").HandlerFunc(h.AdminCreateAlbum)
	admin.Methods("POST").Path("/album/{id}").Name("admin_update_album").HandlerFunc(h.AdminUpdateAlbum)
	admin.Methods("DELETE").Path("/album/{id}").Name("admin_delete_album").HandlerFunc(h.AdminDeleteAlbum)
	admin.Methods("POST").Path("/album/{id}/open").Name("admin_open_album").HandlerFunc(h.AdminOpenAlbum)
	admin.Methods("POST").Path("/album/{id}/visibility").Name("admin_toggle_album_visibility").HandlerFunc(h.AdminToggleAlbumVisibility)
	admin.Methods("POST").Path("/album/{id}/cover/{imageId}").Name("admin_set_album_cover").HandlerFunc(h.AdminSetAlbumCover)
	admin.Methods("POST").Path("/album/{id}/image").Name("admin_upload_image").HandlerFunc(h.AdminUploadImage)
	admin.Methods("POST").Path("/image/{id}").Name("admin_update_image").HandlerFunc(h.AdminUpdateImage)
	admin.Methods("DELETE").Path("/image/{id}").Name("admin_delete_image").HandlerFunc(h.AdminDeleteImage)
	admin.Methods("POST").Path("/image/{id}/visibility").Name("admin_toggle_image_visibility").HandlerFunc(h.AdminToggleImageVisibility)
	admin.Methods("GET").Path("/images").Name("admin_search_images").HandlerFunc(h.AdminSearchImages)

	h.router = r
	return r
}
