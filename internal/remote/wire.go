package remote

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/guregu/null.v3"

	gl "school-gallery/pkg/gallery"
)

// The store serializes ids as numbers or strings, booleans as 0/1 or
// "0"/"1", and timestamps in either RFC 3339 or MySQL datetime form.
// The flex types below absorb those variations so the wire structs can
// be converted into clean domain values.

type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if string(b) == "null" {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexID(n.String())
	return nil
}

type flexInt int

func (f *flexInt) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(bytes.TrimSpace(b)), `"`)
	if s == "null" || s == "" {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return errors.Wrapf(err, "parse integer %q", s)
	}
	*f = flexInt(n)
	return nil
}

type flexBool bool

func (f *flexBool) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(bytes.TrimSpace(b)), `"`)
	switch s {
	case "1", "true":
		*f = true
	case "0", "false", "null", "":
		*f = false
	default:
		return errors.Errorf("parse boolean %q", s)
	}
	return nil
}

type flexTime time.Time

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func (f *flexTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(bytes.TrimSpace(b)), `"`)
	if s == "null" || s == "" {
		*f = flexTime(time.Time{})
		return nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			*f = flexTime(t)
			return nil
		}
	}
	return errors.Errorf("parse timestamp %q", s)
}

type wireAlbum struct {
	ID           flexID    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	CoverImage   string    `json:"cover_image"`
	CoverImageID flexID    `json:"cover_image_id"`
	ImageCount   flexInt   `json:"image_count"`
	Author       string    `json:"author"`
	Visible      *flexBool `json:"visible"`
	CreatedAt    flexTime  `json:"created_at"`
}

func (w wireAlbum) toAlbum() gl.Album {
	a := gl.Album{
		ID:          string(w.ID),
		Title:       w.Title,
		Description: w.Description,
		ImageCount:  int(w.ImageCount),
		Author:      w.Author,
		// Entities served without a visibility column are public.
		Visible:   true,
		CreatedAt: time.Time(w.CreatedAt),
	}
	if w.Visible != nil {
		a.Visible = bool(*w.Visible)
	}
	if w.CoverImage != "" {
		a.CoverImage = null.StringFrom(w.CoverImage)
	}
	if w.CoverImageID != "" {
		a.CoverImageID = null.StringFrom(string(w.CoverImageID))
	}
	return a
}

type wireImage struct {
	ID        flexID    `json:"id"`
	AlbumID   flexID    `json:"album_id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	FilePath  string    `json:"file_path"`
	Likes     flexInt   `json:"likes"`
	Visible   *flexBool `json:"visible"`
	CreatedAt flexTime  `json:"created_at"`
}

func (w wireImage) toImage() gl.Image {
	img := gl.Image{
		ID:        string(w.ID),
		AlbumID:   string(w.AlbumID),
		Title:     w.Title,
		Category:  w.Category,
		FilePath:  w.FilePath,
		Likes:     int(w.Likes),
		Visible:   true,
		CreatedAt: time.Time(w.CreatedAt),
	}
	if w.Visible != nil {
		img.Visible = bool(*w.Visible)
	}
	return img
}

type wireComment struct {
	ID          flexID   `json:"id"`
	ImageID     flexID   `json:"image_id"`
	Author      string   `json:"author"`
	Text        string   `json:"text"`
	CommentText string   `json:"comment_text"`
	CommentedAt flexTime `json:"commented_at"`
}

func (w wireComment) toComment() gl.Comment {
	text := w.Text
	if text == "" {
		text = w.CommentText
	}
	author := w.Author
	if author == "" {
		author = gl.AnonymousAuthor
	}
	return gl.Comment{
		ID:          string(w.ID),
		ImageID:     string(w.ImageID),
		Author:      author,
		Text:        text,
		CommentedAt: time.Time(w.CommentedAt),
	}
}
