package coordinator

import (
	"context"
	"sync"

	"github.com/twitsprout/tools"

	"school-gallery/internal"
	"school-gallery/internal/cache"
	"school-gallery/internal/engage"
	"school-gallery/internal/navigator"
	gl "school-gallery/pkg/gallery"
)

// Coordinator is the only component that calls mutating endpoints of
// the remote store. Every mutation follows the same pattern: attempt
// the remote call, patch local state from the authoritative response on
// success, leave local state untouched on failure. Local state is never
// partially applied and nothing is assumed to have succeeded before the
// store confirms it.
type Coordinator struct {
	svc     internal.GalleryService
	cache   *cache.Cache
	tracker *engage.Tracker
	nav     *navigator.Navigator
	logger  tools.Logger

	// session correlates this browsing session's like records; it is
	// injected once and read-only thereafter.
	session string

	mu       sync.Mutex
	inflight map[string]struct{}
}

func New(svc internal.GalleryService, c *cache.Cache, t *engage.Tracker, n *navigator.Navigator, sessionID string, logger tools.Logger) *Coordinator {
	return &Coordinator{
		svc:      svc,
		cache:    c,
		tracker:  t,
		nav:      n,
		logger:   logger,
		session:  sessionID,
		inflight: make(map[string]struct{}),
	}
}

// begin guards against a double-submit of the same (operation, entity)
// pair: while a request for the pair is outstanding, repeats are
// rejected with ErrRequestInFlight instead of producing a duplicate
// network call. The store's idempotency is a backstop, not a substitute
// for this guard.
func (c *Coordinator) begin(op, id string) error {
	key := op + ":" + id
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.inflight[key]; ok {
		return gl.ErrRequestInFlight
	}
	c.inflight[key] = struct{}{}
	return nil
}

func (c *Coordinator) end(op, id string) {
	key := op + ":" + id
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.inflight, key)
}

// LoadAlbums replaces the cached album collection from the store. On
// failure the prior collection stays in place: stale-but-available
// beats empty-and-broken.
func (c *Coordinator) LoadAlbums(ctx context.Context, visibleOnly bool) ([]gl.Album, error) {
	albums, err := c.svc.ListAlbums(ctx, visibleOnly)
	if err != nil {
		return nil, err
	}
	c.cache.SetAlbums(albums)
	return c.cache.Albums(), nil
}

// LoadImages replaces the cached image list for albumID. A response
// arriving after the navigator moved off that album is discarded rather
// than applied to unrelated state.
func (c *Coordinator) LoadImages(ctx context.Context, albumID string, visibleOnly bool) ([]gl.Image, error) {
	images, err := c.svc.ListImages(ctx, albumID, visibleOnly)
	if err != nil {
		return nil, err
	}
	if !c.nav.IsCurrentAlbum(albumID) {
		c.logger.Debug("[LoadImages] discarding stale response",
			"album_id", albumID,
			"current_album", c.nav.AlbumID(),
		)
		return nil, nil
	}
	c.cache.SetImages(albumID, images)
	return c.cache.Images(), nil
}

// SeedEngagement initializes per-image like/comment state for every
// cached image of albumID that hasn't been seeded yet this album-open.
// Already-seeded images are skipped, so re-rendering never repeats the
// per-image calls.
func (c *Coordinator) SeedEngagement(ctx context.Context, albumID string) error {
	for _, img := range c.cache.Images() {
		if !c.nav.IsCurrentAlbum(albumID) {
			c.logger.Debug("[SeedEngagement] album no longer open, stopping",
				"album_id", albumID,
			)
			return nil
		}
		if c.tracker.Seeded(img.ID) {
			continue
		}
		liked, err := c.svc.CheckLike(ctx, img.ID, c.session)
		if err != nil {
			return err
		}
		comments, err := c.svc.ListComments(ctx, img.ID)
		if err != nil {
			return err
		}
		if !c.nav.IsCurrentAlbum(albumID) {
			return nil
		}
		c.tracker.Seed(img.ID, liked, img.Likes, comments)
	}
	return nil
}
