package gallery

import (
	"time"

	"gopkg.in/guregu/null.v3"
)

// Image is a single media item belonging to exactly one album. AlbumID
// is immutable once assigned by the remote store.
type Image struct {
	ID        string    `json:"id"`
	AlbumID   string    `json:"album_id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	FilePath  string    `json:"file_path"`
	Likes     int       `json:"likes"`
	Visible   bool      `json:"visible"`
	CreatedAt time.Time `json:"created_at"`
}

// DefaultCategory is assigned to uploads that don't specify one.
const DefaultCategory = "General"

type UploadImageRequest struct {
	AlbumID  string `json:"album_id" validate:"required"`
	Title    string `json:"title"`
	Category string `json:"category"`
	File     *FileUpload
}

type UpdateImageRequest struct {
	ImageID  string `json:"image_id" validate:"required"`
	Title    string `json:"title"`
	Category string `json:"category"`
	File     *FileUpload
}

// ImagePatch is a partial image update merged into a cached entity
// after a confirmed mutation.
type ImagePatch struct {
	Title    null.String
	Category null.String
	FilePath null.String
	Likes    *int
	Visible  *bool
}
