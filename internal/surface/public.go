package surface

import (
	"context"

	"school-gallery/internal/engage"
	gl "school-gallery/pkg/gallery"
)

// Public is the anonymous visitor's surface: browse publicly listed
// albums, view images, like and comment. No mutation of the collection
// itself is reachable from here.
type Public struct {
	*engine
}

// LoadAlbums refreshes the album collection, restricted to publicly
// listed albums.
func (p *Public) LoadAlbums(ctx context.Context) ([]gl.Album, error) {
	return p.coord.LoadAlbums(ctx, true)
}

// OpenAlbum opens an album, loads its publicly visible images and seeds
// per-image engagement state for the session.
func (p *Public) OpenAlbum(ctx context.Context, albumID string) ([]gl.Image, error) {
	images, err := p.openAlbum(ctx, albumID, true)
	if err != nil {
		return nil, err
	}
	if err := p.coord.SeedEngagement(ctx, albumID); err != nil {
		return images, err
	}
	return images, nil
}

// Like records this session's like on an image. Repeats surface the
// already-liked state as ErrAlreadyLiked, which is informational rather
// than a failure.
func (p *Public) Like(ctx context.Context, imageID string) (engage.State, error) {
	return p.coord.LikeImage(ctx, imageID)
}

// Comment appends a comment to an image once the store confirms it.
func (p *Public) Comment(ctx context.Context, imageID, text string) (gl.Comment, error) {
	return p.coord.SubmitComment(ctx, imageID, text)
}

// Engagement returns the tracked like/comment state for an image.
func (p *Public) Engagement(imageID string) (engage.State, bool) {
	return p.coord.Engagement(imageID)
}
