package remote

import (
	"bytes"
	"io"
	"mime/multipart"

	"github.com/pkg/errors"

	gl "school-gallery/pkg/gallery"
)

// encodeMultipart builds a multipart/form-data body from plain fields
// and file parts, the encoding the store expects for album and image
// writes.
func encodeMultipart(fields map[string]string, files map[string]*gl.FileUpload) (io.Reader, string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	for name, value := range fields {
		if err := mw.WriteField(name, value); err != nil {
			return nil, "", errors.Wrapf(err, "write field %q", name)
		}
	}
	for name, file := range files {
		if file == nil {
			continue
		}
		fw, err := mw.CreateFormFile(name, file.Name)
		if err != nil {
			return nil, "", errors.Wrapf(err, "create file part %q", name)
		}
		if _, err := fw.Write(file.Content); err != nil {
			return nil, "", errors.Wrapf(err, "write file part %q", name)
		}
	}
	if err := mw.Close(); err != nil {
		return nil, "", errors.Wrap(err, "close multipart writer")
	}
	return &buf, mw.FormDataContentType(), nil
}
