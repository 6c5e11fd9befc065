package remote

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"

	gl "school-gallery/pkg/gallery"
)

// ListAlbums fetches the full album collection. With visibleOnly set,
// only publicly listed albums are returned (the anonymous read path).
func (c *Client) ListAlbums(ctx context.Context, visibleOnly bool) ([]gl.Album, error) {
	q := url.Values{}
	if visibleOnly {
		q.Set("public", "1")
	}
	var res struct {
		Data []wireAlbum `json:"data"`
	}
	if err := c.getJSON(ctx, "list albums", epAlbums, q, &res); err != nil {
		return nil, err
	}
	albums := make([]gl.Album, 0, len(res.Data))
	for _, w := range res.Data {
		albums = append(albums, w.toAlbum())
	}
	return albums, nil
}

// CreateAlbum creates a new album. The store assigns the id and the
// stored cover path; fields the response omits are carried over from
// the request.
func (c *Client) CreateAlbum(ctx context.Context, req gl.CreateAlbumRequest) (gl.Album, error) {
	fields := map[string]string{"title": req.Title}
	if req.Description != "" {
		fields["description"] = req.Description
	}
	files := map[string]*gl.FileUpload{"cover_image": req.CoverFile}

	var res struct {
		Data wireAlbum `json:"data"`
	}
	if err := c.postMultipart(ctx, "create album", epCreateAlbum, fields, files, &res); err != nil {
		return gl.Album{}, err
	}

	a := res.Data.toAlbum()
	if a.ID == "" {
		return gl.Album{}, &gl.TransportError{Op: "create album", Err: errors.New("response missing album id")}
	}
	if a.Title == "" {
		a.Title = req.Title
	}
	if a.Description == "" {
		a.Description = req.Description
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	a.ImageCount = 0
	return a, nil
}

// UpdateAlbum edits an album's title, description and optionally its
// cover file, returning the updated row.
func (c *Client) UpdateAlbum(ctx context.Context, req gl.UpdateAlbumRequest) (gl.Album, error) {
	fields := map[string]string{
		"album_id":    req.AlbumID,
		"title":       req.Title,
		"description": req.Description,
	}
	files := map[string]*gl.FileUpload{"cover_image": req.CoverFile}

	var res struct {
		Data wireAlbum `json:"data"`
	}
	if err := c.postMultipart(ctx, "update album", epUpdateAlbum, fields, files, &res); err != nil {
		return gl.Album{}, err
	}
	a := res.Data.toAlbum()
	if a.ID == "" {
		a.ID = req.AlbumID
	}
	return a, nil
}

// DeleteAlbum removes an album; the store cascades to its images.
func (c *Client) DeleteAlbum(ctx context.Context, albumID string) error {
	body := map[string]string{"id": albumID}
	return c.sendJSON(ctx, "delete album", http.MethodDelete, epDeleteAlbum, body, nil)
}

// ToggleAlbumVisibility sets an album's visibility flag. The store
// expects 0/1 rather than a JSON boolean.
func (c *Client) ToggleAlbumVisibility(ctx context.Context, albumID string, visible bool) error {
	body := map[string]interface{}{
		"album_id": albumID,
		"visible":  boolToInt(visible),
	}
	return c.sendJSON(ctx, "toggle album visibility", http.MethodPost, epToggleAlbumVisibility, body, nil)
}

// SetAlbumCover points an album's cover at one of its images.
func (c *Client) SetAlbumCover(ctx context.Context, albumID, imageID string) error {
	body := map[string]string{
		"album_id":       albumID,
		"cover_image_id": imageID,
	}
	return c.sendJSON(ctx, "set album cover", http.MethodPut, epUpdateAlbumCover, body, nil)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
