package mock

import (
	"context"

	gl "school-gallery/pkg/gallery"
)

// GalleryService mocks the remote gallery store with injectable
// functions per endpoint.
type GalleryService struct {
	ListAlbumsFn            func(ctx context.Context, visibleOnly bool) ([]gl.Album, error)
	ListImagesFn            func(ctx context.Context, albumID string, visibleOnly bool) ([]gl.Image, error)
	CreateAlbumFn           func(ctx context.Context, req gl.CreateAlbumRequest) (gl.Album, error)
	UpdateAlbumFn           func(ctx context.Context, req gl.UpdateAlbumRequest) (gl.Album, error)
	DeleteAlbumFn           func(ctx context.Context, albumID string) error
	UploadImageFn           func(ctx context.Context, req gl.UploadImageRequest) (gl.Image, error)
	UpdateImageFn           func(ctx context.Context, req gl.UpdateImageRequest) (gl.Image, error)
	DeleteImageFn           func(ctx context.Context, imageID string) error
	ToggleAlbumVisibilityFn func(ctx context.Context, albumID string, visible bool) error
	ToggleImageVisibilityFn func(ctx context.Context, imageID string, visible bool) error
	SetAlbumCoverFn         func(ctx context.Context, albumID, imageID string) error
	CheckLikeFn             func(ctx context.Context, imageID, sessionID string) (bool, error)
	LikeFn                  func(ctx context.Context, imageID, sessionID string) (gl.LikeStatus, error)
	ListCommentsFn          func(ctx context.Context, imageID string) ([]gl.Comment, error)
	SubmitCommentFn         func(ctx context.Context, imageID, sessionID, text string) error
}

// ListAlbums proxies to the injected ListAlbumsFn.
func (s *GalleryService) ListAlbums(ctx context.Context, visibleOnly bool) ([]gl.Album, error) {
	return s.ListAlbumsFn(ctx, visibleOnly)
}

// ListImages proxies to the injected ListImagesFn.
func (s *GalleryService) ListImages(ctx context.Context, albumID string, visibleOnly bool) ([]gl.Image, error) {
	return s.ListImagesFn(ctx, albumID, visibleOnly)
}

// CreateAlbum proxies to the injected CreateAlbumFn.
func (s *GalleryService) CreateAlbum(ctx context.Context, req gl.CreateAlbumRequest) (gl.Album, error) {
	return s.CreateAlbumFn(ctx, req)
}

// UpdateAlbum proxies to the injected UpdateAlbumFn.
func (s *GalleryService) UpdateAlbum(ctx context.Context, req gl.UpdateAlbumRequest) (gl.Album, error) {
	return s.UpdateAlbumFn(ctx, req)
}

// DeleteAlbum proxies to the injected DeleteAlbumFn.
func (s *GalleryService) DeleteAlbum(ctx context.Context, albumID string) error {
	return s.DeleteAlbumFn(ctx, albumID)
}

// UploadImage proxies to the injected UploadImageFn.
func (s *GalleryService) UploadImage(ctx context.Context, req gl.UploadImageRequest) (gl.Image, error) {
	return s.UploadImageFn(ctx, req)
}

// UpdateImage proxies to the injected UpdateImageFn.
func (s *GalleryService) UpdateImage(ctx context.Context, req gl.UpdateImageRequest) (gl.Image, error) {
	return s.UpdateImageFn(ctx, req)
}

// DeleteImage proxies to the injected DeleteImageFn.
func (s *GalleryService) DeleteImage(ctx context.Context, imageID string) error {
	return s.DeleteImageFn(ctx, imageID)
}

// ToggleAlbumVisibility proxies to the injected ToggleAlbumVisibilityFn.
func (s *GalleryService) ToggleAlbumVisibility(ctx context.Context, albumID string, visible bool) error {
	return s.ToggleAlbumVisibilityFn(ctx, albumID, visible)
}

// ToggleImageVisibility proxies to the injected ToggleImageVisibilityFn.
func (s *GalleryService) ToggleImageVisibility(ctx context.Context, imageID string, visible bool) error {
	return s.ToggleImageVisibilityFn(ctx, imageID, visible)
}

// SetAlbumCover proxies to the injected SetAlbumCoverFn.
func (s *GalleryService) SetAlbumCover(ctx context.Context, albumID, imageID string) error {
	return s.SetAlbumCoverFn(ctx, albumID, imageID)
}

// CheckLike proxies to the injected CheckLikeFn.
func (s *GalleryService) CheckLike(ctx context.Context, imageID, sessionID string) (bool, error) {
	return s.CheckLikeFn(ctx, imageID, sessionID)
}

// Like proxies to the injected LikeFn.
func (s *GalleryService) Like(ctx context.Context, imageID, sessionID string) (gl.LikeStatus, error) {
	return s.LikeFn(ctx, imageID, sessionID)
}

// ListComments proxies to the injected ListCommentsFn.
func (s *GalleryService) ListComments(ctx context.Context, imageID string) ([]gl.Comment, error) {
	return s.ListCommentsFn(ctx, imageID)
}

// SubmitComment proxies to the injected SubmitCommentFn.
func (s *GalleryService) SubmitComment(ctx context.Context, imageID, sessionID, text string) error {
	return s.SubmitCommentFn(ctx, imageID, sessionID, text)
}
