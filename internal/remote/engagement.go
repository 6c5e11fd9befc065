package remote

import (
	"context"
	"net/http"

	"github.com/pkg/errors"

	gl "school-gallery/pkg/gallery"
)

// CheckLike reports whether the session has already liked the image.
func (c *Client) CheckLike(ctx context.Context, imageID, sessionID string) (bool, error) {
	body := map[string]string{
		"image_id":        imageID,
		"user_identifier": sessionID,
	}
	var res struct {
		Liked flexBool `json:"liked"`
	}
	if err := c.sendJSON(ctx, "check like", http.MethodPost, epCheckLike, body, &res); err != nil {
		return false, err
	}
	return bool(res.Liked), nil
}

// Like records a like for the (session, image) pair. The store answers
// success=false when the pair already exists; that state is reported as
// ErrAlreadyLiked together with the authoritative count, distinct from
// a transport failure.
func (c *Client) Like(ctx context.Context, imageID, sessionID string) (gl.LikeStatus, error) {
	body := map[string]string{
		"image_id":        imageID,
		"user_identifier": sessionID,
	}
	var res struct {
		Success bool    `json:"success"`
		Likes   flexInt `json:"likes"`
	}
	if err := c.sendJSON(ctx, "like", http.MethodPost, epLike, body, &res); err != nil {
		return gl.LikeStatus{}, err
	}
	status := gl.LikeStatus{Liked: true, Likes: int(res.Likes)}
	if !res.Success {
		return status, gl.ErrAlreadyLiked
	}
	return status, nil
}

// ListComments fetches the ordered comment list for an image.
func (c *Client) ListComments(ctx context.Context, imageID string) ([]gl.Comment, error) {
	body := map[string]string{"image_id": imageID}
	var res struct {
		Comments []wireComment `json:"comments"`
	}
	if err := c.sendJSON(ctx, "get comments", http.MethodPost, epGetComments, body, &res); err != nil {
		return nil, err
	}
	comments := make([]gl.Comment, 0, len(res.Comments))
	for _, w := range res.Comments {
		comments = append(comments, w.toComment())
	}
	return comments, nil
}

// SubmitComment appends a comment to an image.
func (c *Client) SubmitComment(ctx context.Context, imageID, sessionID, text string) error {
	body := map[string]string{
		"image_id":        imageID,
		"user_identifier": sessionID,
		"comment_text":    text,
	}
	var res struct {
		Success bool `json:"success"`
	}
	if err := c.sendJSON(ctx, "comment", http.MethodPost, epComment, body, &res); err != nil {
		return err
	}
	if !res.Success {
		return &gl.TransportError{Op: "comment", Err: errors.New("store did not confirm the comment")}
	}
	return nil
}
