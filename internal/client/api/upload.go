package api

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/edushare/internal/client/models"
)

// CreateResource posts the upload form as multipart/form-data. The "file"
// part is only added when req.FilePath is set; the file is streamed, not
// loaded into memory.
func (c *HTTPClient) CreateResource(ctx context.Context, req models.UploadRequest) (*models.Resource, error) {
	var file *os.File
	if req.FilePath != "" {
		f, err := os.Open(req.FilePath)
		if err != nil {
			return nil, fmt.Errorf("open upload file: %w", err)
		}
		defer f.Close()
		file = f
	}

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		pw.CloseWithError(writeUploadForm(mw, req, file))
	}()
	defer pr.Close()

	var r models.Resource
	if err := c.do(ctx, http.MethodPost, "/resources/", pr, mw.FormDataContentType(), &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func writeUploadForm(mw *multipart.Writer, req models.UploadRequest, file *os.File) error {
	for _, f := range req.FormFields() {
		if err := mw.WriteField(f.Name, f.Value); err != nil {
			return err
		}
	}

	if file != nil {
		part, err := mw.CreateFormFile("file", filepath.Base(file.Name()))
		if err != nil {
			return err
		}
		if _, err := io.Copy(part, file); err != nil {
			return fmt.Errorf("copy upload file: %w", err)
		}
	}

	return mw.Close()
}
