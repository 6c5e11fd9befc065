package engage

import (
	"sync"

	gl "school-gallery/pkg/gallery"
)

// State is the engagement state tracked for a single image: its like
// count, whether this session has liked it, and the ordered comment
// list.
type State struct {
	Liked    bool         `json:"liked"`
	Likes    int          `json:"likes"`
	Comments []gl.Comment `json:"comments"`
}

// Tracker holds per-image engagement state for one browsing session.
// State is seeded once per image per album open; repeated renders read
// from here instead of going back to the network.
type Tracker struct {
	mu    sync.RWMutex
	state map[string]*State
}

func New() *Tracker {
	return &Tracker{state: make(map[string]*State)}
}

// Seed initializes tracked state for an image. Seeding an image that is
// already tracked is a no-op, so re-rendering a view never repeats the
// per-image network calls.
func (t *Tracker) Seed(imageID string, liked bool, likes int, comments []gl.Comment) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.state[imageID]; ok {
		return
	}
	t.state[imageID] = &State{
		Liked:    liked,
		Likes:    likes,
		Comments: append([]gl.Comment(nil), comments...),
	}
}

// Seeded reports whether an image's state has been initialized.
func (t *Tracker) Seeded(imageID string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.state[imageID]
	return ok
}

// State returns a copy of the tracked state for an image.
func (t *Tracker) State(imageID string) (State, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	st, ok := t.state[imageID]
	if !ok {
		return State{}, false
	}
	return copyState(st), true
}

// RecordLike marks the image liked with the server-confirmed count.
// Calling it when the image is already liked returns the existing state
// unchanged, mirroring the store's at-most-one-like guarantee.
func (t *Tracker) RecordLike(imageID string, newCount int) State {
	t.mu.Lock()
	defer t.mu.Unlock()
	st, ok := t.state[imageID]
	if !ok {
		st = &State{}
		t.state[imageID] = st
	}
	if st.Liked {
		return copyState(st)
	}
	st.Liked = true
	st.Likes = newCount
	return copyState(st)
}

// AppendComment appends to the image's comment list. Insertion order is
// preserved; comments are never reordered or removed.
func (t *Tracker) AppendComment(imageID string, c gl.Comment) State {
	t.mu.Lock()
	defer t.mu.Unlock()
	st, ok := t.state[imageID]
	if !ok {
		st = &State{}
		t.state[imageID] = st
	}
	st.Comments = append(st.Comments, c)
	return copyState(st)
}

// Reset drops all tracked state, used when the open album changes and
// its images will be re-seeded.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = make(map[string]*State)
}

func copyState(st *State) State {
	return State{
		Liked:    st.Liked,
		Likes:    st.Likes,
		Comments: append([]gl.Comment(nil), st.Comments...),
	}
}
