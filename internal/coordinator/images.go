package coordinator

import (
	"context"
	"strings"

	"gopkg.in/guregu/null.v3"

	gl "school-gallery/pkg/gallery"
)

const (
	opUploadImage           = "upload_image"
	opUpdateImage           = "update_image"
	opDeleteImage           = "delete_image"
	opToggleImageVisibility = "toggle_image_visibility"
)

// UploadImage stores a new image in an existing album, appends the
// created row to the cache and bumps the album's image count. The title
// defaults to the file name and the category to "General".
func (c *Coordinator) UploadImage(ctx context.Context, req gl.UploadImageRequest) (gl.Image, error) {
	if req.File == nil || len(req.File.Content) == 0 {
		return gl.Image{}, gl.ErrMissingFile
	}
	if err := gl.Validate(req); err != nil {
		return gl.Image{}, err
	}
	if _, ok := c.cache.Album(req.AlbumID); !ok {
		return gl.Image{}, gl.ErrNotFound
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		req.Title = req.File.Name
	}
	if req.Category == "" {
		req.Category = gl.DefaultCategory
	}

	if err := c.begin(opUploadImage, req.AlbumID); err != nil {
		return gl.Image{}, err
	}
	defer c.end(opUploadImage, req.AlbumID)

	img, err := c.svc.UploadImage(ctx, req)
	if err != nil {
		return gl.Image{}, err
	}
	c.cache.AppendImage(img)
	c.tracker.Seed(img.ID, false, img.Likes, nil)
	return img, nil
}

// EditImage updates an image's title/category, optionally replacing the
// stored file, and patches the cached entry from the response.
func (c *Coordinator) EditImage(ctx context.Context, req gl.UpdateImageRequest) (gl.Image, error) {
	if err := gl.Validate(req); err != nil {
		return gl.Image{}, err
	}
	if _, ok := c.cache.Image(req.ImageID); !ok {
		return gl.Image{}, gl.ErrNotFound
	}
	if err := c.begin(opUpdateImage, req.ImageID); err != nil {
		return gl.Image{}, err
	}
	defer c.end(opUpdateImage, req.ImageID)

	updated, err := c.svc.UpdateImage(ctx, req)
	if err != nil {
		return gl.Image{}, err
	}
	patch := gl.ImagePatch{
		Title:    null.StringFrom(updated.Title),
		Category: null.StringFrom(updated.Category),
	}
	if updated.FilePath != "" {
		patch.FilePath = null.StringFrom(updated.FilePath)
	}
	c.cache.ApplyImagePatch(req.ImageID, patch)

	img, ok := c.cache.Image(req.ImageID)
	if !ok {
		return updated, nil
	}
	return img, nil
}

// DeleteImage removes an image, decrements the owning album's image
// count and clears the album's cover if it referenced this image.
func (c *Coordinator) DeleteImage(ctx context.Context, imageID string) error {
	if _, ok := c.cache.Image(imageID); !ok {
		return gl.ErrNotFound
	}
	if err := c.begin(opDeleteImage, imageID); err != nil {
		return err
	}
	defer c.end(opDeleteImage, imageID)

	if err := c.svc.DeleteImage(ctx, imageID); err != nil {
		return err
	}
	wasOpen := c.nav.IsCurrentImage(imageID)
	c.cache.RemoveImage(imageID)
	if wasOpen {
		c.nav.CloseImage()
	}
	return nil
}

// ToggleImageVisibility flips the image's visibility flag, returning
// the new value.
func (c *Coordinator) ToggleImageVisibility(ctx context.Context, imageID string) (bool, error) {
	img, ok := c.cache.Image(imageID)
	if !ok {
		return false, gl.ErrNotFound
	}
	target := !img.Visible

	if err := c.begin(opToggleImageVisibility, imageID); err != nil {
		return img.Visible, err
	}
	defer c.end(opToggleImageVisibility, imageID)

	if err := c.svc.ToggleImageVisibility(ctx, imageID, target); err != nil {
		return img.Visible, err
	}
	c.cache.ApplyImagePatch(imageID, gl.ImagePatch{Visible: &target})
	return target, nil
}
