package http

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	jsonutils "github.com/twitsprout/tools/json"

	"school-gallery/internal/mock"
	gl "school-gallery/pkg/gallery"
)

// doForm serves one multipart form request on the given session.
func doForm(t *testing.T, h *Handler, method, target string, fields map[string]string, fileField, fileName string, content []byte, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("unexpected error writing form field: %v", err)
		}
	}
	if fileField != "" {
		fw, err := mw.CreateFormFile(fileField, fileName)
		if err != nil {
			t.Fatalf("unexpected error writing form file: %v", err)
		}
		if _, err := fw.Write(content); err != nil {
			t.Fatalf("unexpected error writing file content: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("unexpected error closing form writer: %v", err)
	}

	wr := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	for _, c := range cookies {
		req.AddCookie(c)
	}
	h.router.ServeHTTP(wr, req)
	return wr
}

func TestAdminListAlbumsHandler(t *testing.T) {
	h := newTestHandler(&mock.GalleryService{
		ListAlbumsFn: func(ctx context.Context, visibleOnly bool) ([]gl.Album, error) {
			if visibleOnly {
				t.Error("admin surface must include hidden albums")
			}
			return []gl.Album{
				{ID: "a1", Title: "Sports Day", Visible: true},
				{ID: "a2", Title: "Drafts", Visible: false},
			}, nil
		},
	})

	wr := doReq(h, "GET", "/v1/admin/albums", "", nil)
	if wr.Code != http.StatusOK {
		t.Fatalf("unexpected response code: %d", wr.Code)
	}
	var res struct {
		Data []gl.Album `json:"data"`
	}
	if err := jsonutils.Decode(wr.Body, &res); err != nil {
		t.Fatalf("unexpected error decoding response body: %s", err.Error())
	}
	if len(res.Data) != 2 {
		t.Fatalf("unexpected albums: %+v", res.Data)
	}
}

func TestAdminCreateAlbumHandler(t *testing.T) {
	table := []struct {
		label         string
		fields        map[string]string
		createAlbumFn func(ctx context.Context, req gl.CreateAlbumRequest) (gl.Album, error)
		expCode       int
	}{
		{
			label:   "should fail if the title is missing",
			fields:  map[string]string{"description": "no title"},
			expCode: http.StatusBadRequest,
			createAlbumFn: func(ctx context.Context, req gl.CreateAlbumRequest) (gl.Album, error) {
				t.Error("invalid request reached the store")
				return gl.Album{}, nil
			},
		},
		{
			label:   "should answer 502 when the store is unreachable",
			fields:  map[string]string{"title": "Sports Day 2024"},
			expCode: http.StatusBadGateway,
			createAlbumFn: func(ctx context.Context, req gl.CreateAlbumRequest) (gl.Album, error) {
				return gl.Album{}, &gl.TransportError{Op: "create album", Err: errNoRoute}
			},
		},
		{
			label:   "should create the album",
			fields:  map[string]string{"title": "Sports Day 2024", "description": "Annual meet"},
			expCode: http.StatusCreated,
			createAlbumFn: func(ctx context.Context, req gl.CreateAlbumRequest) (gl.Album, error) {
				if req.Title != "Sports Day 2024" || req.Description != "Annual meet" {
					t.Errorf("unexpected request: %+v", req)
				}
				return gl.Album{ID: "a9", Title: req.Title, Description: req.Description, Visible: true}, nil
			},
		},
	}
	for i := 0; i < len(table); i++ {
		ts := table[i]
		t.Run(ts.label, func(t *testing.T) {
			h := newTestHandler(&mock.GalleryService{CreateAlbumFn: ts.createAlbumFn})

			wr := doForm(t, h, "POST", "/v1/admin/album", ts.fields, "", "", nil, nil)
			if wr.Code != ts.expCode {
				t.Fatalf("unexpected response code: %s", cmp.Diff(ts.expCode, wr.Code))
			}
			if ts.expCode != http.StatusCreated {
				return
			}
			var res struct {
				Data gl.Album `json:"data"`
			}
			if err := jsonutils.Decode(wr.Body, &res); err != nil {
				t.Fatalf("unexpected error decoding response body: %s", err.Error())
			}
			if res.Data.ID != "a9" || res.Data.ImageCount != 0 {
				t.Fatalf("unexpected album: %+v", res.Data)
			}
		})
	}
}

func TestAdminUploadImageHandler(t *testing.T) {
	var got gl.UploadImageRequest
	svc := browsableService()
	svc.UploadImageFn = func(ctx context.Context, req gl.UploadImageRequest) (gl.Image, error) {
		got = req
		return gl.Image{ID: "img9", AlbumID: req.AlbumID, Title: req.Title, Category: req.Category, Visible: true}, nil
	}
	h := newTestHandler(svc)

	wr := doReq(h, "GET", "/v1/admin/albums", "", nil)
	cookies := wr.Result().Cookies()
	doReq(h, "POST", "/v1/admin/album/a1/open", "", cookies)

	// Upload without a file is rejected before the store is called.
	wr = doForm(t, h, "POST", "/v1/admin/album/a1/image", nil, "", "", nil, cookies)
	if wr.Code != http.StatusBadRequest {
		t.Fatalf("unexpected response code without a file: %d", wr.Code)
	}

	wr = doForm(t, h, "POST", "/v1/admin/album/a1/image", nil, "image", "podium.jpg", []byte("jpeg-bytes"), cookies)
	if wr.Code != http.StatusCreated {
		t.Fatalf("unexpected response code: %d", wr.Code)
	}
	// Omitted fields fall back to the file name and default category.
	if got.Title != "podium.jpg" || got.Category != gl.DefaultCategory {
		t.Fatalf("defaults not applied: %+v", got)
	}
	if got.File == nil || string(got.File.Content) != "jpeg-bytes" {
		t.Fatalf("file content not forwarded: %+v", got.File)
	}
}

func TestAdminToggleAlbumVisibilityHandler(t *testing.T) {
	svc := browsableService()
	svc.ToggleAlbumVisibilityFn = func(ctx context.Context, albumID string, visible bool) error {
		return nil
	}
	h := newTestHandler(svc)

	wr := doReq(h, "GET", "/v1/admin/albums", "", nil)
	cookies := wr.Result().Cookies()

	wr = doReq(h, "POST", "/v1/admin/album/a1/visibility", "", cookies)
	if wr.Code != http.StatusOK {
		t.Fatalf("unexpected response code: %d", wr.Code)
	}
	var res struct {
		Data map[string]bool `json:"data"`
	}
	if err := jsonutils.Decode(wr.Body, &res); err != nil {
		t.Fatalf("unexpected error decoding response body: %s", err.Error())
	}
	if res.Data["visible"] {
		t.Fatalf("expected the album to toggle hidden: %+v", res.Data)
	}
}

func TestAdminDeleteAlbumHandler(t *testing.T) {
	svc := browsableService()
	svc.DeleteAlbumFn = func(ctx context.Context, albumID string) error { return nil }
	h := newTestHandler(svc)

	wr := doReq(h, "GET", "/v1/admin/albums", "", nil)
	cookies := wr.Result().Cookies()

	wr = doReq(h, "DELETE", "/v1/admin/album/nope", "", cookies)
	if wr.Code != http.StatusNotFound {
		t.Fatalf("unexpected response code for unknown album: %d", wr.Code)
	}

	wr = doReq(h, "DELETE", "/v1/admin/album/a1", "", cookies)
	if wr.Code != http.StatusOK {
		t.Fatalf("unexpected response code: %d", wr.Code)
	}
}

func TestAdminSearchImagesHandler(t *testing.T) {
	h := newTestHandler(browsableService())

	wr := doReq(h, "GET", "/v1/admin/albums", "", nil)
	cookies := wr.Result().Cookies()
	doReq(h, "POST", "/v1/admin/album/a1/open", "", cookies)

	wr = doReq(h, "GET", "/v1/admin/images?q=relay", "", cookies)
	if wr.Code != http.StatusOK {
		t.Fatalf("unexpected response code: %d", wr.Code)
	}
	var res struct {
		Data []gl.Image `json:"data"`
	}
	if err := jsonutils.Decode(wr.Body, &res); err != nil {
		t.Fatalf("unexpected error decoding response body: %s", err.Error())
	}
	if len(res.Data) != 1 || res.Data[0].ID != "img1" {
		t.Fatalf("unexpected search result: %+v", res.Data)
	}
}
