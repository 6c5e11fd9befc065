package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/twitsprout/tools"
	httputils "github.com/twitsprout/tools/http"
	jsonutils "github.com/twitsprout/tools/json"

	gl "school-gallery/pkg/gallery"
)

// Endpoint names of the remote gallery store.
const (
	epAlbums                = "albums.php"
	epImages                = "images.php"
	epCreateAlbum           = "create-album.php"
	epUpdateAlbum           = "update-album.php"
	epDeleteAlbum           = "delete-album.php"
	epUploadImage           = "upload-image.php"
	epUpdateImage           = "update-image.php"
	epDeleteImage           = "delete-images.php"
	epToggleAlbumVisibility = "toggle-album-visibility.php"
	epToggleImageVisibility = "toggle-image-visibility.php"
	epUpdateAlbumCover      = "update-album-cover.php"
	epCheckLike             = "check-like.php"
	epLike                  = "like.php"
	epGetComments           = "get-comments.php"
	epComment               = "comment.php"
)

// Config holds the connection settings for the remote gallery store.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client talks to the remote gallery store over HTTP. It implements
// the GalleryService contract; all payload coercion from the store's
// loosely-typed JSON happens here so the rest of the engine only sees
// well-formed domain values.
type Client struct {
	baseURL string
	http    *http.Client
	logger  tools.Logger
}

// New creates a new Client for the gallery store at c.BaseURL.
func New(c Config, logger tools.Logger) (*Client, error) {
	if c.BaseURL == "" {
		return nil, errors.New("remote: base URL must be provided")
	}
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(c.BaseURL, "/") + "/",
		http:    httputils.NewClient(httputils.WithTimeout(timeout)),
		logger:  logger,
	}, nil
}

func (c *Client) endpoint(name string, q url.Values) string {
	u := c.baseURL + name
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	return u
}

func (c *Client) getJSON(ctx context.Context, op, ep string, q url.Values, out interface{}) error {
	req, err := http.NewRequest(http.MethodGet, c.endpoint(ep, q), nil)
	if err != nil {
		return errors.Wrapf(err, "build %s request", op)
	}
	return c.do(ctx, op, req, out)
}

func (c *Client) sendJSON(ctx context.Context, op, method, ep string, body, out interface{}) error {
	var buf bytes.Buffer
	if err := jsonutils.Encode(&buf, body, ""); err != nil {
		return errors.Wrapf(err, "encode %s request", op)
	}
	req, err := http.NewRequest(method, c.endpoint(ep, nil), &buf)
	if err != nil {
		return errors.Wrapf(err, "build %s request", op)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(ctx, op, req, out)
}

func (c *Client) postMultipart(ctx context.Context, op, ep string, fields map[string]string, files map[string]*gl.FileUpload, out interface{}) error {
	body, contentType, err := encodeMultipart(fields, files)
	if err != nil {
		return errors.Wrapf(err, "encode %s form", op)
	}
	req, err := http.NewRequest(http.MethodPost, c.endpoint(ep, nil), body)
	if err != nil {
		return errors.Wrapf(err, "build %s request", op)
	}
	req.Header.Set("Content-Type", contentType)
	return c.do(ctx, op, req, out)
}

// do executes the request and decodes the response body into out (when
// non-nil). Failures are classified per the engine's error taxonomy: a
// 404 means the target vanished server-side, anything else that keeps
// the store from confirming the operation is a transport error.
func (c *Client) do(ctx context.Context, op string, req *http.Request, out interface{}) error {
	resp, err := c.http.Do(req.WithContext(ctx))
	if err != nil {
		return &gl.TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		_, _ = io.Copy(io.Discard, resp.Body)
		return gl.ErrNotFound
	}
	if resp.StatusCode >= 300 {
		return &gl.TransportError{
			Op:  op,
			Err: errors.Errorf("status %d: %s", resp.StatusCode, readErrorMessage(resp.Body)),
		}
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := jsonutils.Decode(resp.Body, out); err != nil {
		// Malformed payloads are rejected at the boundary rather than
		// propagated inward.
		return &gl.TransportError{Op: op, Err: err}
	}
	return nil
}

// readErrorMessage extracts the store's error text. The store answers
// failures with either {"error":"..."} or {"error":{"message":"..."}}.
func readErrorMessage(r io.Reader) string {
	var env struct {
		Error   json.RawMessage `json:"error"`
		Message string          `json:"message"`
	}
	if err := jsonutils.Decode(r, &env); err != nil {
		return "unreadable error body"
	}
	if len(env.Error) > 0 {
		var s string
		if err := json.Unmarshal(env.Error, &s); err == nil {
			return s
		}
		var obj struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(env.Error, &obj); err == nil && obj.Message != "" {
			return obj.Message
		}
		return string(env.Error)
	}
	if env.Message != "" {
		return env.Message
	}
	return "no error message provided"
}
