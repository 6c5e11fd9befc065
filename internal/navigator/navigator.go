package navigator

import (
	"sync"

	gl "school-gallery/pkg/gallery"
)

// View is the presentation state the navigator is in.
type View int

const (
	// ViewAlbumList is the initial state: the album grid, no album open.
	ViewAlbumList View = iota
	// ViewGallery is the image grid of one open album.
	ViewGallery
	// ViewLightbox is the full-screen single-image state.
	ViewLightbox
)

func (v View) String() string {
	switch v {
	case ViewAlbumList:
		return "albums"
	case ViewGallery:
		return "gallery"
	case ViewLightbox:
		return "lightbox"
	}
	return "unknown"
}

// Direction of sequential lightbox navigation.
type Direction string

const (
	Next Direction = "next"
	Prev Direction = "prev"
)

// Navigator tracks which album is open, which image (if any) is in the
// lightbox, and drives sequential navigation between images. The state
// machine is cyclic and user-driven:
//
//	AlbumList -> Gallery -> Lightbox -> Gallery -> AlbumList
type Navigator struct {
	mu      sync.RWMutex
	view    View
	albumID string
	imageID string
}

func New() *Navigator {
	return &Navigator{view: ViewAlbumList}
}

// View returns the current presentation state.
func (n *Navigator) View() View {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.view
}

// AlbumID returns the open album's id, or "" in the album-list view.
func (n *Navigator) AlbumID() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.albumID
}

// ImageID returns the lightbox image's id, or "" outside the lightbox.
func (n *Navigator) ImageID() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.imageID
}

// IsCurrentAlbum reports whether id is the open album. Late-arriving
// responses for any other album must be discarded by the caller.
func (n *Navigator) IsCurrentAlbum(id string) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.view != ViewAlbumList && n.albumID == id
}

// IsCurrentImage reports whether id is the lightbox image.
func (n *Navigator) IsCurrentImage(id string) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.view == ViewLightbox && n.imageID == id
}

// OpenAlbum transitions to the gallery view for the given album.
func (n *Navigator) OpenAlbum(albumID string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.view = ViewGallery
	n.albumID = albumID
	n.imageID = ""
}

// CloseAlbum returns to the album-list view.
func (n *Navigator) CloseAlbum() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.view = ViewAlbumList
	n.albumID = ""
	n.imageID = ""
}

// OpenImage enters the lightbox. It requires an open album.
func (n *Navigator) OpenImage(imageID string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.view == ViewAlbumList {
		return gl.ErrNoOpenAlbum
	}
	n.view = ViewLightbox
	n.imageID = imageID
	return nil
}

// CloseImage exits the lightbox back to the gallery view.
func (n *Navigator) CloseImage() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.view != ViewLightbox {
		return
	}
	n.view = ViewGallery
	n.imageID = ""
}

// Navigate moves the lightbox to the next or previous image in the
// given list, wrapping around at both ends: advancing past the last
// image returns to the first, retreating before the first returns to
// the last. With fewer than two images it is a no-op that returns the
// current image.
func (n *Navigator) Navigate(dir Direction, images []gl.Image) (gl.Image, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.view != ViewLightbox {
		return gl.Image{}, gl.ErrNoOpenImage
	}

	current := -1
	for i := range images {
		if images[i].ID == n.imageID {
			current = i
			break
		}
	}
	if current < 0 {
		return gl.Image{}, gl.ErrNotFound
	}
	if len(images) < 2 {
		return images[current], nil
	}

	var next int
	if dir == Prev {
		if current == 0 {
			next = len(images) - 1
		} else {
			next = current - 1
		}
	} else {
		if current == len(images)-1 {
			next = 0
		} else {
			next = current + 1
		}
	}
	n.imageID = images[next].ID
	return images[next], nil
}
