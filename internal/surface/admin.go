package surface

import (
	"context"
	"strings"

	gl "school-gallery/pkg/gallery"
)

// Admin is the back-office surface: full album/image CRUD, visibility
// toggles and cover selection over the same engine state the public
// surface renders from. Admins see hidden entities and skip engagement
// seeding; the dashboard only shows denormalized like counts.
type Admin struct {
	*engine
}

// LoadAlbums refreshes the album collection including admin-only
// (hidden) albums.
func (a *Admin) LoadAlbums(ctx context.Context) ([]gl.Album, error) {
	return a.coord.LoadAlbums(ctx, false)
}

// OpenAlbum opens an album and loads all of its images, hidden ones
// included.
func (a *Admin) OpenAlbum(ctx context.Context, albumID string) ([]gl.Image, error) {
	return a.openAlbum(ctx, albumID, false)
}

func (a *Admin) CreateAlbum(ctx context.Context, req gl.CreateAlbumRequest) (gl.Album, error) {
	return a.coord.CreateAlbum(ctx, req)
}

func (a *Admin) EditAlbum(ctx context.Context, req gl.UpdateAlbumRequest) (gl.Album, error) {
	return a.coord.EditAlbum(ctx, req)
}

func (a *Admin) DeleteAlbum(ctx context.Context, albumID string) error {
	return a.coord.DeleteAlbum(ctx, albumID)
}

func (a *Admin) UploadImage(ctx context.Context, req gl.UploadImageRequest) (gl.Image, error) {
	return a.coord.UploadImage(ctx, req)
}

func (a *Admin) EditImage(ctx context.Context, req gl.UpdateImageRequest) (gl.Image, error) {
	return a.coord.EditImage(ctx, req)
}

func (a *Admin) DeleteImage(ctx context.Context, imageID string) error {
	return a.coord.DeleteImage(ctx, imageID)
}

func (a *Admin) ToggleAlbumVisibility(ctx context.Context, albumID string) (bool, error) {
	return a.coord.ToggleAlbumVisibility(ctx, albumID)
}

func (a *Admin) ToggleImageVisibility(ctx context.Context, imageID string) (bool, error) {
	return a.coord.ToggleImageVisibility(ctx, imageID)
}

func (a *Admin) SetCoverImage(ctx context.Context, albumID, imageID string) error {
	return a.coord.SetCoverImage(ctx, albumID, imageID)
}

// SearchImages filters the open album's cached images by a
// case-insensitive substring match on title or category. Purely local,
// no network call.
func (a *Admin) SearchImages(term string) []gl.Image {
	images := a.cache.Images()
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return images
	}
	matched := make([]gl.Image, 0, len(images))
	for _, img := range images {
		if strings.Contains(strings.ToLower(img.Title), term) ||
			strings.Contains(strings.ToLower(img.Category), term) {
			matched = append(matched, img)
		}
	}
	return matched
}
