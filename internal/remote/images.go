package remote

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"

	gl "school-gallery/pkg/gallery"
)

// ListImages fetches the images belonging to one album.
func (c *Client) ListImages(ctx context.Context, albumID string, visibleOnly bool) ([]gl.Image, error) {
	q := url.Values{}
	q.Set("album_id", albumID)
	if visibleOnly {
		q.Set("public", "1")
	}
	var res struct {
		Data []wireImage `json:"data"`
	}
	if err := c.getJSON(ctx, "list images", epImages, q, &res); err != nil {
		return nil, err
	}
	images := make([]gl.Image, 0, len(res.Data))
	for _, w := range res.Data {
		images = append(images, w.toImage())
	}
	return images, nil
}

// UploadImage stores a new image in the target album and returns the
// created row.
func (c *Client) UploadImage(ctx context.Context, req gl.UploadImageRequest) (gl.Image, error) {
	fields := map[string]string{
		"album_id": req.AlbumID,
		"title":    req.Title,
		"category": req.Category,
	}
	files := map[string]*gl.FileUpload{"image": req.File}

	var res struct {
		Data wireImage `json:"data"`
	}
	if err := c.postMultipart(ctx, "upload image", epUploadImage, fields, files, &res); err != nil {
		return gl.Image{}, err
	}

	img := res.Data.toImage()
	if img.ID == "" {
		return gl.Image{}, &gl.TransportError{Op: "upload image", Err: errors.New("response missing image id")}
	}
	if img.AlbumID == "" {
		img.AlbumID = req.AlbumID
	}
	if img.Title == "" {
		img.Title = req.Title
	}
	if img.Category == "" {
		img.Category = req.Category
	}
	if img.CreatedAt.IsZero() {
		img.CreatedAt = time.Now()
	}
	return img, nil
}

// UpdateImage edits an image's title/category and optionally replaces
// its stored file; the previous file is superseded server-side.
func (c *Client) UpdateImage(ctx context.Context, req gl.UpdateImageRequest) (gl.Image, error) {
	fields := map[string]string{
		"image_id": req.ImageID,
		"title":    req.Title,
		"category": req.Category,
	}
	files := map[string]*gl.FileUpload{"file": req.File}

	var res struct {
		Data wireImage `json:"data"`
	}
	if err := c.postMultipart(ctx, "update image", epUpdateImage, fields, files, &res); err != nil {
		return gl.Image{}, err
	}
	img := res.Data.toImage()
	if img.ID == "" {
		img.ID = req.ImageID
	}
	return img, nil
}

// DeleteImage removes an image from its album.
func (c *Client) DeleteImage(ctx context.Context, imageID string) error {
	body := map[string]string{"image_id": imageID}
	return c.sendJSON(ctx, "delete image", http.MethodDelete, epDeleteImage, body, nil)
}

// ToggleImageVisibility sets an image's visibility flag.
func (c *Client) ToggleImageVisibility(ctx context.Context, imageID string, visible bool) error {
	body := map[string]interface{}{
		"image_id": imageID,
		"visible":  boolToInt(visible),
	}
	return c.sendJSON(ctx, "toggle image visibility", http.MethodPost, epToggleImageVisibility, body, nil)
}
