package internal

import (
	"context"

	gl "school-gallery/pkg/gallery"
)

// GalleryService is the contract exposed by the remote gallery store.
// It is the authoritative source of truth; every mutation in this
// engine goes through it and local state is only updated from its
// responses.
type GalleryService interface {
	ListAlbums(ctx context.Context, visibleOnly bool) ([]gl.Album, error)
	ListImages(ctx context.Context, albumID string, visibleOnly bool) ([]gl.Image, error)

	CreateAlbum(ctx context.Context, req gl.CreateAlbumRequest) (gl.Album, error)
	UpdateAlbum(ctx context.Context, req gl.UpdateAlbumRequest) (gl.Album, error)
	DeleteAlbum(ctx context.Context, albumID string) error

	UploadImage(ctx context.Context, req gl.UploadImageRequest) (gl.Image, error)
	UpdateImage(ctx context.Context, req gl.UpdateImageRequest) (gl.Image, error)
	DeleteImage(ctx context.Context, imageID string) error

	ToggleAlbumVisibility(ctx context.Context, albumID string, visible bool) error
	ToggleImageVisibility(ctx context.Context, imageID string, visible bool) error
	SetAlbumCover(ctx context.Context, albumID, imageID string) error

	CheckLike(ctx context.Context, imageID, sessionID string) (bool, error)
	Like(ctx context.Context, imageID, sessionID string) (gl.LikeStatus, error)
	ListComments(ctx context.Context, imageID string) ([]gl.Comment, error)
	SubmitComment(ctx context.Context, imageID, sessionID, text string) error
}
