package coordinator

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"school-gallery/internal/engage"
	gl "school-gallery/pkg/gallery"
)

const (
	opLike    = "like"
	opComment = "comment"
)

// LikeImage records a like for this session on the given image. A
// repeat like is short-circuited locally without a network call and
// reported as ErrAlreadyLiked alongside the existing state, so callers
// can render the liked state without treating it as a failure. Likes
// are permanent: there is no retraction.
func (c *Coordinator) LikeImage(ctx context.Context, imageID string) (engage.State, error) {
	if st, ok := c.tracker.State(imageID); ok && st.Liked {
		return st, gl.ErrAlreadyLiked
	}
	if _, ok := c.cache.Image(imageID); !ok {
		return engage.State{}, gl.ErrNotFound
	}
	if err := c.begin(opLike, imageID); err != nil {
		return engage.State{}, err
	}
	defer c.end(opLike, imageID)

	status, err := c.svc.Like(ctx, imageID, c.session)
	if err != nil && !errors.Is(err, gl.ErrAlreadyLiked) {
		return engage.State{}, err
	}

	// Either way the store confirmed the (session, image) like exists;
	// record it with the authoritative count.
	st := c.tracker.RecordLike(imageID, status.Likes)
	likes := st.Likes
	c.cache.ApplyImagePatch(imageID, gl.ImagePatch{Likes: &likes})

	if errors.Is(err, gl.ErrAlreadyLiked) {
		return st, gl.ErrAlreadyLiked
	}
	return st, nil
}

// SubmitComment appends a comment to an image once the store confirms
// it. Whitespace-only text is rejected locally without a network call.
// On failure nothing is appended, so the caller can preserve the typed
// text for resubmission.
func (c *Coordinator) SubmitComment(ctx context.Context, imageID, text string) (gl.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return gl.Comment{}, gl.ErrEmptyComment
	}
	if _, ok := c.cache.Image(imageID); !ok {
		return gl.Comment{}, gl.ErrNotFound
	}
	if err := c.begin(opComment, imageID); err != nil {
		return gl.Comment{}, err
	}
	defer c.end(opComment, imageID)

	if err := c.svc.SubmitComment(ctx, imageID, c.session, text); err != nil {
		return gl.Comment{}, err
	}

	// The store confirms without echoing the row, so the displayed
	// comment gets a client-assigned id and timestamp.
	cmt := gl.Comment{
		ID:          uuid.NewString(),
		ImageID:     imageID,
		Author:      gl.AnonymousAuthor,
		Text:        text,
		CommentedAt: time.Now().UTC(),
	}
	c.tracker.AppendComment(imageID, cmt)
	return cmt, nil
}

// Engagement returns the tracked state for an image.
func (c *Coordinator) Engagement(imageID string) (engage.State, bool) {
	return c.tracker.State(imageID)
}
