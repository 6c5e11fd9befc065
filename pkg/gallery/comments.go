package gallery

import "time"

// Comment is append-only per image: the remote store exposes no edit
// or delete endpoint for comments, and neither does this engine.
type Comment struct {
	ID          string    `json:"id"`
	ImageID     string    `json:"image_id"`
	Author      string    `json:"author"`
	Text        string    `json:"text"`
	CommentedAt time.Time `json:"commented_at"`
}

// AnonymousAuthor is the author label given to comments submitted by
// anonymous sessions.
const AnonymousAuthor = "Anonymous"

// LikeStatus is the remote store's answer to a like request.
type LikeStatus struct {
	Liked bool `json:"liked"`
	Likes int  `json:"likes"`
}
