package coordinator

import (
	"context"
	"strings"

	"gopkg.in/guregu/null.v3"

	gl "school-gallery/pkg/gallery"
)

const (
	opCreateAlbum           = "create_album"
	opUpdateAlbum           = "update_album"
	opDeleteAlbum           = "delete_album"
	opToggleAlbumVisibility = "toggle_album_visibility"
	opSetAlbumCover         = "set_album_cover"
)

// CreateAlbum creates a new album and inserts the store's row into the
// cache. New albums start with a zero image count and, unless a cover
// file was provided, no cover reference.
func (c *Coordinator) CreateAlbum(ctx context.Context, req gl.CreateAlbumRequest) (gl.Album, error) {
	req.Title = strings.TrimSpace(req.Title)
	if err := gl.Validate(req); err != nil {
		return gl.Album{}, err
	}
	if err := c.begin(opCreateAlbum, ""); err != nil {
		return gl.Album{}, err
	}
	defer c.end(opCreateAlbum, "")

	a, err := c.svc.CreateAlbum(ctx, req)
	if err != nil {
		return gl.Album{}, err
	}
	c.cache.AppendAlbum(a)
	return a, nil
}

// EditAlbum updates an existing album's metadata and patches the cached
// entry from the store's response. The denormalized image count and the
// visibility flag are untouched by an edit.
func (c *Coordinator) EditAlbum(ctx context.Context, req gl.UpdateAlbumRequest) (gl.Album, error) {
	req.Title = strings.TrimSpace(req.Title)
	if err := gl.Validate(req); err != nil {
		return gl.Album{}, err
	}
	if _, ok := c.cache.Album(req.AlbumID); !ok {
		return gl.Album{}, gl.ErrNotFound
	}
	if err := c.begin(opUpdateAlbum, req.AlbumID); err != nil {
		return gl.Album{}, err
	}
	defer c.end(opUpdateAlbum, req.AlbumID)

	updated, err := c.svc.UpdateAlbum(ctx, req)
	if err != nil {
		return gl.Album{}, err
	}
	patch := gl.AlbumPatch{
		Title:       null.StringFrom(updated.Title),
		Description: null.StringFrom(updated.Description),
	}
	if updated.CoverImage.Valid {
		patch.CoverImage = updated.CoverImage
	}
	if updated.CoverImageID.Valid {
		patch.CoverImageID = updated.CoverImageID
	}
	c.cache.ApplyAlbumPatch(req.AlbumID, patch)

	a, ok := c.cache.Album(req.AlbumID)
	if !ok {
		return updated, nil
	}
	return a, nil
}

// DeleteAlbum removes an album and evicts it, with all of its images,
// from the cache. On failure nothing is evicted.
func (c *Coordinator) DeleteAlbum(ctx context.Context, albumID string) error {
	if _, ok := c.cache.Album(albumID); !ok {
		return gl.ErrNotFound
	}
	if err := c.begin(opDeleteAlbum, albumID); err != nil {
		return err
	}
	defer c.end(opDeleteAlbum, albumID)

	if err := c.svc.DeleteAlbum(ctx, albumID); err != nil {
		return err
	}
	wasOpen := c.nav.IsCurrentAlbum(albumID)
	c.cache.RemoveAlbum(albumID)
	if wasOpen {
		c.nav.CloseAlbum()
		c.tracker.Reset()
	}
	return nil
}

// ToggleAlbumVisibility flips the album's visibility flag, returning
// the new value. A failed attempt leaves the flag unchanged.
func (c *Coordinator) ToggleAlbumVisibility(ctx context.Context, albumID string) (bool, error) {
	a, ok := c.cache.Album(albumID)
	if !ok {
		return false, gl.ErrNotFound
	}
	target := !a.Visible

	if err := c.begin(opToggleAlbumVisibility, albumID); err != nil {
		return a.Visible, err
	}
	defer c.end(opToggleAlbumVisibility, albumID)

	if err := c.svc.ToggleAlbumVisibility(ctx, albumID, target); err != nil {
		return a.Visible, err
	}
	c.cache.ApplyAlbumPatch(albumID, gl.AlbumPatch{Visible: &target})
	return target, nil
}

// SetCoverImage points the album's cover at one of its own images.
func (c *Coordinator) SetCoverImage(ctx context.Context, albumID, imageID string) error {
	if _, ok := c.cache.Album(albumID); !ok {
		return gl.ErrNotFound
	}
	img, ok := c.cache.Image(imageID)
	if !ok || img.AlbumID != albumID {
		return gl.ErrNotFound
	}
	if err := c.begin(opSetAlbumCover, albumID); err != nil {
		return err
	}
	defer c.end(opSetAlbumCover, albumID)

	if err := c.svc.SetAlbumCover(ctx, albumID, imageID); err != nil {
		return err
	}
	c.cache.ApplyAlbumPatch(albumID, gl.AlbumPatch{
		CoverImage:   null.StringFrom(img.FilePath),
		CoverImageID: null.StringFrom(imageID),
	})
	return nil
}
