// Package drive talks to the external blob store that keeps the picture
// files. The store exposes a small HTTP API keyed by file ID.
package drive

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path"
	"time"

	"github.com/google/uuid"

	"photocontest-api/internal/config"
	"photocontest-api/internal/service"
)

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(conf *config.DriveConfig) *Client {
	return &Client{
		baseURL: conf.BaseURL,
		apiKey:  conf.APIKey,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Store uploads the file under a fresh UUID and returns the handle the
// caller needs to serve and later delete it.
func (c *Client) Store(ctx context.Context, data []byte, filename, contentType string) (service.StoredFile, error) {
	fileID := uuid.NewString() + path.Ext(filename)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", fileID)
	if err != nil {
		return service.StoredFile{}, fmt.Errorf("multipart.CreateFormFile -> %w", err)
	}
	if _, err = part.Write(data); err != nil {
		return service.StoredFile{}, fmt.Errorf("writing file part -> %w", err)
	}
	if err = writer.Close(); err != nil {
		return service.StoredFile{}, fmt.Errorf("closing multipart writer -> %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/files/"+fileID, &body)
	if err != nil {
		return service.StoredFile{}, fmt.Errorf("http.NewRequestWithContext -> %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("X-Original-Content-Type", contentType)

	resp, err := c.http.Do(req)
	if err != nil {
		return service.StoredFile{}, fmt.Errorf("c.http.Do -> %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return service.StoredFile{}, fmt.Errorf("blob store returned %d: %s", resp.StatusCode, msg)
	}

	return service.StoredFile{
		ID:  fileID,
		URL: c.baseURL + "/files/" + fileID,
	}, nil
}

func (c *Client) Delete(ctx context.Context, fileID string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/files/"+fileID, nil)
	if err != nil {
		return fmt.Errorf("http.NewRequestWithContext -> %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("c.http.Do -> %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusNotFound {
		return fmt.Errorf("blob store returned %d", resp.StatusCode)
	}

	return nil
}
