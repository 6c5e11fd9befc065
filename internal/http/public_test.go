package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	httputils "github.com/twitsprout/tools/http"
	jsonutils "github.com/twitsprout/tools/json"
	tm "github.com/twitsprout/tools/mock"

	"school-gallery/internal"
	"school-gallery/internal/engage"
	"school-gallery/internal/mock"
	"school-gallery/internal/session"
	gl "school-gallery/pkg/gallery"
)

var errNoRoute = errors.New("no route to host")

func newTestHandler(svc internal.GalleryService) *Handler {
	h := &Handler{
		AppName:  "school-gallery",
		Version:  "test",
		Logger:   tm.NopLogger,
		Sessions: session.NewRegistry(svc, time.Hour, nil, tm.NopLogger),
	}
	h.Handler()
	return h
}

// doReq serves one request, carrying any cookies from a prior response
// so a multi-step flow stays on the same browsing session.
func doReq(h *Handler, method, target, body string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	wr := httptest.NewRecorder()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	h.router.ServeHTTP(wr, req)
	return wr
}

func browsableService() *mock.GalleryService {
	return &mock.GalleryService{
		ListAlbumsFn: func(ctx context.Context, visibleOnly bool) ([]gl.Album, error) {
			return []gl.Album{{ID: "a1", Title: "Sports Day", ImageCount: 2, Visible: true}}, nil
		},
		ListImagesFn: func(ctx context.Context, albumID string, visibleOnly bool) ([]gl.Image, error) {
			return []gl.Image{
				{ID: "img1", AlbumID: albumID, Title: "Relay", Likes: 3, Visible: true},
				{ID: "img2", AlbumID: albumID, Title: "High Jump", Visible: true},
			}, nil
		},
		CheckLikeFn: func(ctx context.Context, imageID, sessionID string) (bool, error) {
			return false, nil
		},
		ListCommentsFn: func(ctx context.Context, imageID string) ([]gl.Comment, error) {
			return nil, nil
		},
	}
}

func TestListAlbumsHandler(t *testing.T) {
	table := []struct {
		label        string
		listAlbumsFn func(ctx context.Context, visibleOnly bool) ([]gl.Album, error)
		expCode      int
		expErr       string
	}{
		{
			label: "should return the publicly listed albums",
			listAlbumsFn: func(ctx context.Context, visibleOnly bool) ([]gl.Album, error) {
				if !visibleOnly {
					t.Error("public surface must request visible albums only")
				}
				return []gl.Album{{ID: "a1", Title: "Sports Day", Visible: true}}, nil
			},
			expCode: http.StatusOK,
		},
		{
			label: "should answer 502 when the store is unreachable",
			listAlbumsFn: func(ctx context.Context, visibleOnly bool) ([]gl.Album, error) {
				return nil, &gl.TransportError{Op: "list albums", Err: errNoRoute}
			},
			expCode: http.StatusBadGateway,
			expErr:  "gallery service list albums: no route to host",
		},
	}
	for i := 0; i < len(table); i++ {
		ts := table[i]
		t.Run(ts.label, func(t *testing.T) {
			h := newTestHandler(&mock.GalleryService{ListAlbumsFn: ts.listAlbumsFn})

			wr := doReq(h, "GET", "/v1/albums", "", nil)
			if wr.Code != ts.expCode {
				t.Fatalf("unexpected response code: %s", cmp.Diff(ts.expCode, wr.Code))
			}
			if ts.expErr != "" {
				var res httputils.JSONErrRes
				if err := jsonutils.Decode(wr.Body, &res); err != nil {
					t.Fatalf("unexpected error decoding response body: %s", err.Error())
				}
				if res.Error.Message != ts.expErr {
					t.Fatalf("unexpected error message: %s", cmp.Diff(ts.expErr, res.Error.Message))
				}
				return
			}
			var res struct {
				Data []gl.Album `json:"data"`
			}
			if err := jsonutils.Decode(wr.Body, &res); err != nil {
				t.Fatalf("unexpected error decoding response body: %s", err.Error())
			}
			if len(res.Data) != 1 || res.Data[0].ID != "a1" {
				t.Fatalf("unexpected albums: %+v", res.Data)
			}
			// A fresh request gets a session cookie.
			if len(wr.Result().Cookies()) == 0 {
				t.Fatal("expected a session cookie to be set")
			}
		})
	}
}

func TestOpenAlbumHandler(t *testing.T) {
	h := newTestHandler(browsableService())

	wr := doReq(h, "GET", "/v1/albums", "", nil)
	if wr.Code != http.StatusOK {
		t.Fatalf("unexpected response code listing albums: %d", wr.Code)
	}
	cookies := wr.Result().Cookies()

	// Opening an album that isn't in the cached collection is a 404.
	wr = doReq(h, "POST", "/v1/album/nope/open", "", cookies)
	if wr.Code != http.StatusNotFound {
		t.Fatalf("unexpected response code for unknown album: %d", wr.Code)
	}

	wr = doReq(h, "POST", "/v1/album/a1/open", "", cookies)
	if wr.Code != http.StatusOK {
		t.Fatalf("unexpected response code opening album: %d", wr.Code)
	}
	var res struct {
		Data albumViewRes `json:"data"`
	}
	if err := jsonutils.Decode(wr.Body, &res); err != nil {
		t.Fatalf("unexpected error decoding response body: %s", err.Error())
	}
	if res.Data.Album.ID != "a1" || len(res.Data.Images) != 2 {
		t.Fatalf("unexpected album view: %+v", res.Data)
	}
	// Seeded engagement for every image in the album.
	if len(res.Data.Engagement) != 2 {
		t.Fatalf("unexpected engagement map: %+v", res.Data.Engagement)
	}
	if st := res.Data.Engagement["img1"]; st.Liked || st.Likes != 3 {
		t.Fatalf("unexpected img1 engagement: %+v", st)
	}
}

func TestLikeImageHandler(t *testing.T) {
	likeCalls := 0
	svc := browsableService()
	svc.LikeFn = func(ctx context.Context, imageID, sessionID string) (gl.LikeStatus, error) {
		likeCalls++
		if sessionID == "" {
			t.Error("session identifier missing from like call")
		}
		return gl.LikeStatus{Liked: true, Likes: 4}, nil
	}
	h := newTestHandler(svc)

	wr := doReq(h, "GET", "/v1/albums", "", nil)
	cookies := wr.Result().Cookies()
	doReq(h, "POST", "/v1/album/a1/open", "", cookies)

	wr = doReq(h, "POST", "/v1/image/img1/like", "", cookies)
	if wr.Code != http.StatusOK {
		t.Fatalf("unexpected response code: %d", wr.Code)
	}
	var res struct {
		Data likeRes `json:"data"`
	}
	if err := jsonutils.Decode(wr.Body, &res); err != nil {
		t.Fatalf("unexpected error decoding response body: %s", err.Error())
	}
	if !res.Data.Liked || res.Data.Likes != 4 || res.Data.AlreadyLiked {
		t.Fatalf("unexpected like response: %+v", res.Data)
	}

	// A repeat like on the same session is not a failure: 200 with
	// already_liked, answered without another store call.
	wr = doReq(h, "POST", "/v1/image/img1/like", "", cookies)
	if wr.Code != http.StatusOK {
		t.Fatalf("unexpected response code for repeat like: %d", wr.Code)
	}
	if err := jsonutils.Decode(wr.Body, &res); err != nil {
		t.Fatalf("unexpected error decoding response body: %s", err.Error())
	}
	if !res.Data.AlreadyLiked || res.Data.Likes != 4 {
		t.Fatalf("unexpected repeat like response: %+v", res.Data)
	}
	if likeCalls != 1 {
		t.Fatalf("expected one store call, got %d", likeCalls)
	}
}

func TestNavigateImageHandler(t *testing.T) {
	h := newTestHandler(browsableService())

	wr := doReq(h, "GET", "/v1/albums", "", nil)
	cookies := wr.Result().Cookies()
	doReq(h, "POST", "/v1/album/a1/open", "", cookies)
	doReq(h, "POST", "/v1/image/img1/open", "", cookies)

	wr = doReq(h, "POST", "/v1/image/navigate?direction=sideways", "", cookies)
	if wr.Code != http.StatusBadRequest {
		t.Fatalf("unexpected response code for bad direction: %d", wr.Code)
	}

	wr = doReq(h, "POST", "/v1/image/navigate?direction=next", "", cookies)
	if wr.Code != http.StatusOK {
		t.Fatalf("unexpected response code: %d", wr.Code)
	}
	var res struct {
		Data imageViewRes `json:"data"`
	}
	if err := jsonutils.Decode(wr.Body, &res); err != nil {
		t.Fatalf("unexpected error decoding response body: %s", err.Error())
	}
	if res.Data.Image.ID != "img2" {
		t.Fatalf("expected img2 after next, got %q", res.Data.Image.ID)
	}

	// prev wraps from the first image to the last.
	doReq(h, "POST", "/v1/image/navigate?direction=prev", "", cookies)
	wr = doReq(h, "POST", "/v1/image/navigate?direction=prev", "", cookies)
	if err := jsonutils.Decode(wr.Body, &res); err != nil {
		t.Fatalf("unexpected error decoding response body: %s", err.Error())
	}
	if res.Data.Image.ID != "img2" {
		t.Fatalf("expected wraparound to img2, got %q", res.Data.Image.ID)
	}
}

func TestCommentImageHandler(t *testing.T) {
	table := []struct {
		label           string
		body            string
		submitCommentFn func(ctx context.Context, imageID, sessionID, text string) error
		expCode         int
	}{
		{
			label:   "should fail if there's an error decoding json",
			body:    `{badjson`,
			expCode: http.StatusBadRequest,
		},
		{
			label:   "should reject whitespace-only text locally",
			body:    `{"text":"   "}`,
			expCode: http.StatusBadRequest,
			submitCommentFn: func(ctx context.Context, imageID, sessionID, text string) error {
				t.Error("whitespace comment reached the store")
				return nil
			},
		},
		{
			label:   "should answer 502 when the store does not confirm",
			body:    `{"text":"nice"}`,
			expCode: http.StatusBadGateway,
			submitCommentFn: func(ctx context.Context, imageID, sessionID, text string) error {
				return &gl.TransportError{Op: "comment", Err: errNoRoute}
			},
		},
		{
			label:   "should append a confirmed comment",
			body:    `{"text":"  what a finish  "}`,
			expCode: http.StatusCreated,
			submitCommentFn: func(ctx context.Context, imageID, sessionID, text string) error {
				if text != "what a finish" {
					t.Errorf("text not trimmed before dispatch: %q", text)
				}
				return nil
			},
		},
	}
	for i := 0; i < len(table); i++ {
		ts := table[i]
		t.Run(ts.label, func(t *testing.T) {
			svc := browsableService()
			svc.SubmitCommentFn = ts.submitCommentFn
			h := newTestHandler(svc)

			wr := doReq(h, "GET", "/v1/albums", "", nil)
			cookies := wr.Result().Cookies()
			doReq(h, "POST", "/v1/album/a1/open", "", cookies)

			wr = doReq(h, "POST", "/v1/image/img1/comment", ts.body, cookies)
			if wr.Code != ts.expCode {
				t.Fatalf("unexpected response code: %s", cmp.Diff(ts.expCode, wr.Code))
			}
			if ts.expCode != http.StatusCreated {
				return
			}
			var res struct {
				Data gl.Comment `json:"data"`
			}
			if err := jsonutils.Decode(wr.Body, &res); err != nil {
				t.Fatalf("unexpected error decoding response body: %s", err.Error())
			}
			if res.Data.Text != "what a finish" || res.Data.Author != gl.AnonymousAuthor {
				t.Fatalf("unexpected comment: %+v", res.Data)
			}

			// The confirmed comment is readable back off the tracker.
			wr = doReq(h, "GET", "/v1/image/img1/engagement", "", cookies)
			var eng struct {
				Data engage.State `json:"data"`
			}
			if err := jsonutils.Decode(wr.Body, &eng); err != nil {
				t.Fatalf("unexpected error decoding response body: %s", err.Error())
			}
			if len(eng.Data.Comments) != 1 {
				t.Fatalf("unexpected engagement state: %+v", eng.Data)
			}
		})
	}
}
