package gallery

import (
	"time"

	"gopkg.in/guregu/null.v3"
)

// Album is a named collection of images with its own metadata and
// visibility flag. CoverImage/CoverImageID are absent until a cover
// has been uploaded or selected.
type Album struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	CoverImage   null.String `json:"cover_image"`
	CoverImageID null.String `json:"cover_image_id"`
	ImageCount   int         `json:"image_count"`
	Author       string      `json:"author"`
	Visible      bool        `json:"visible"`
	CreatedAt    time.Time   `json:"created_at"`
}

// FileUpload is a file reference handed to the remote store as a
// multipart part. Name is the client-side file name.
type FileUpload struct {
	Name    string
	Content []byte
}

type CreateAlbumRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	CoverFile   *FileUpload
}

type UpdateAlbumRequest struct {
	AlbumID     string `json:"album_id" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	CoverFile   *FileUpload
}

// AlbumPatch is a partial album update merged into a cached entity
// after a confirmed mutation. Unset fields are left untouched.
type AlbumPatch struct {
	Title        null.String
	Description  null.String
	CoverImage   null.String
	CoverImageID null.String
	ImageCount   *int
	Visible      *bool
}
