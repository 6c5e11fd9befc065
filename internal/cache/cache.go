package cache

import (
	"sync"

	"gopkg.in/guregu/null.v3"

	gl "school-gallery/pkg/gallery"
)

// Cache holds the album collection for the active view and, when an
// album is open, that album's image list. It is the single source the
// presentation surfaces render from; it is only written from confirmed
// remote responses.
type Cache struct {
	mu sync.RWMutex

	albums []gl.Album

	// imagesAlbumID scopes the image list to the album it was loaded
	// for. A patch or append for any other album's image is ignored.
	imagesAlbumID string
	images        []gl.Image
}

func New() *Cache {
	return &Cache{}
}

// SetAlbums replaces the full album collection.
func (c *Cache) SetAlbums(albums []gl.Album) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.albums = append([]gl.Album(nil), albums...)
}

// Albums returns a copy of the cached album collection.
func (c *Cache) Albums() []gl.Album {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]gl.Album(nil), c.albums...)
}

// Album looks up a cached album by id.
func (c *Cache) Album(id string) (gl.Album, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, a := range c.albums {
		if a.ID == id {
			return a, true
		}
	}
	return gl.Album{}, false
}

// SetImages replaces the image list, scoping it to albumID.
func (c *Cache) SetImages(albumID string, images []gl.Image) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.imagesAlbumID = albumID
	c.images = append([]gl.Image(nil), images...)
}

// ClearImages drops the image list, e.g. when the album is closed.
func (c *Cache) ClearImages() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.imagesAlbumID = ""
	c.images = nil
}

// ImagesAlbumID returns the id of the album the image list belongs to,
// or "" when no album is loaded.
func (c *Cache) ImagesAlbumID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.imagesAlbumID
}

// Images returns a copy of the cached image list.
func (c *Cache) Images() []gl.Image {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]gl.Image(nil), c.images...)
}

// Image looks up a cached image by id.
func (c *Cache) Image(id string) (gl.Image, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, img := range c.images {
		if img.ID == id {
			return img, true
		}
	}
	return gl.Image{}, false
}

// AppendAlbum adds a newly created album to the collection.
func (c *Cache) AppendAlbum(a gl.Album) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.albums = append(c.albums, a)
}

// ApplyAlbumPatch merges a partial update into a cached album. No-op
// when the album is no longer cached (the view may have navigated
// away).
func (c *Cache) ApplyAlbumPatch(id string, p gl.AlbumPatch) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.albums {
		if c.albums[i].ID != id {
			continue
		}
		a := &c.albums[i]
		if p.Title.Valid {
			a.Title = p.Title.String
		}
		if p.Description.Valid {
			a.Description = p.Description.String
		}
		if p.CoverImage.Valid {
			a.CoverImage = p.CoverImage
		}
		if p.CoverImageID.Valid {
			a.CoverImageID = p.CoverImageID
		}
		if p.ImageCount != nil {
			a.ImageCount = *p.ImageCount
		}
		if p.Visible != nil {
			a.Visible = *p.Visible
		}
		return
	}
}

// RemoveAlbum evicts an album. When its images are the loaded list they
// are dropped with it.
func (c *Cache) RemoveAlbum(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.albums {
		if c.albums[i].ID == id {
			c.albums = append(c.albums[:i], c.albums[i+1:]...)
			break
		}
	}
	if c.imagesAlbumID == id {
		c.imagesAlbumID = ""
		c.images = nil
	}
}

// AppendImage adds a newly uploaded image and increments the owning
// album's image count. The image list only grows when it is currently
// scoped to the owning album.
func (c *Cache) AppendImage(img gl.Image) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.imagesAlbumID == img.AlbumID {
		c.images = append(c.images, img)
	}
	for i := range c.albums {
		if c.albums[i].ID == img.AlbumID {
			c.albums[i].ImageCount++
			return
		}
	}
}

// ApplyImagePatch merges a partial update into a cached image. No-op
// when the image is no longer cached.
func (c *Cache) ApplyImagePatch(id string, p gl.ImagePatch) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.images {
		if c.images[i].ID != id {
			continue
		}
		img := &c.images[i]
		if p.Title.Valid {
			img.Title = p.Title.String
		}
		if p.Category.Valid {
			img.Category = p.Category.String
		}
		if p.FilePath.Valid {
			img.FilePath = p.FilePath.String
		}
		if p.Likes != nil {
			img.Likes = *p.Likes
		}
		if p.Visible != nil {
			img.Visible = *p.Visible
		}
		return
	}
}

// RemoveImage evicts an image, decrements the owning album's image
// count and clears the album's cover reference if it pointed at this
// image.
func (c *Cache) RemoveImage(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	albumID := ""
	for i := range c.images {
		if c.images[i].ID == id {
			albumID = c.images[i].AlbumID
			c.images = append(c.images[:i], c.images[i+1:]...)
			break
		}
	}
	if albumID == "" {
		return
	}
	for i := range c.albums {
		if c.albums[i].ID != albumID {
			continue
		}
		a := &c.albums[i]
		if a.ImageCount > 0 {
			a.ImageCount--
		}
		if a.CoverImageID.Valid && a.CoverImageID.String == id {
			a.CoverImage = null.String{}
			a.CoverImageID = null.String{}
		}
		return
	}
}
