package surface

import (
	"context"

	"github.com/twitsprout/tools"

	"school-gallery/internal"
	"school-gallery/internal/cache"
	"school-gallery/internal/coordinator"
	"school-gallery/internal/engage"
	"school-gallery/internal/navigator"
	gl "school-gallery/pkg/gallery"
)

// engine is the core state shared by both presentation surfaces of one
// browsing session: one entity cache, one engagement tracker, one
// navigator and one mutation coordinator. The public and admin facades
// expose capability-restricted slices of it instead of duplicating
// entity logic per surface.
type engine struct {
	cache   *cache.Cache
	tracker *engage.Tracker
	nav     *navigator.Navigator
	coord   *coordinator.Coordinator
}

// New builds the two facades over one shared engine for a session.
func New(svc internal.GalleryService, sessionID string, logger tools.Logger) (*Public, *Admin) {
	c := cache.New()
	t := engage.New()
	n := navigator.New()
	e := &engine{
		cache:   c,
		tracker: t,
		nav:     n,
		coord:   coordinator.New(svc, c, t, n, sessionID, logger),
	}
	return &Public{engine: e}, &Admin{engine: e}
}

// View returns the navigator's current presentation state.
func (e *engine) View() navigator.View {
	return e.nav.View()
}

// Albums returns the cached album collection without a network call.
func (e *engine) Albums() []gl.Album {
	return e.cache.Albums()
}

// Album looks up one cached album.
func (e *engine) Album(id string) (gl.Album, bool) {
	return e.cache.Album(id)
}

// Images returns the cached image list of the open album.
func (e *engine) Images() []gl.Image {
	return e.cache.Images()
}

func (e *engine) openAlbum(ctx context.Context, albumID string, visibleOnly bool) ([]gl.Image, error) {
	if _, ok := e.cache.Album(albumID); !ok {
		return nil, gl.ErrNotFound
	}
	e.nav.OpenAlbum(albumID)
	return e.coord.LoadImages(ctx, albumID, visibleOnly)
}

// CloseAlbum returns to the album-list view, dropping the image list
// and engagement state for memory hygiene; both are re-fetched on the
// next album open.
func (e *engine) CloseAlbum() {
	e.nav.CloseAlbum()
	e.cache.ClearImages()
	e.tracker.Reset()
}

// OpenImage enters the lightbox on a cached image of the open album.
func (e *engine) OpenImage(imageID string) (gl.Image, error) {
	img, ok := e.cache.Image(imageID)
	if !ok {
		return gl.Image{}, gl.ErrNotFound
	}
	if err := e.nav.OpenImage(imageID); err != nil {
		return gl.Image{}, err
	}
	return img, nil
}

// CloseImage exits the lightbox.
func (e *engine) CloseImage() {
	e.nav.CloseImage()
}

// Navigate moves the lightbox sequentially through the open album's
// image list, wrapping around at both ends.
func (e *engine) Navigate(dir navigator.Direction) (gl.Image, error) {
	return e.nav.Navigate(dir, e.cache.Images())
}
