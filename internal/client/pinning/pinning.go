// Package pinning uploads campaign images to an IPFS pinning service and
// returns gateway URLs suitable for the campaign's image field.
package pinning

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// MaxFileSize is the upload cap enforced before any bytes leave the client.
const MaxFileSize = 5 * 1024 * 1024

var (
	ErrFileTooLarge = errors.New("image exceeds the 5 MiB upload limit")
	ErrNoToken      = errors.New("pinning token is not configured")
)

// Client talks to a Pinata-compatible pinning API.
type Client struct {
	pinURL     string
	gatewayURL string
	token      string
	httpClient *http.Client
}

// New builds a client. pinURL is the pinFileToIPFS endpoint, gatewayURL the
// public gateway prefix the returned links use, token the API JWT.
func New(pinURL, gatewayURL, token string) *Client {
	return &Client{
		pinURL:     pinURL,
		gatewayURL: gatewayURL,
		token:      token,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

type pinResponse struct {
	IpfsHash string `json:"IpfsHash"`
}

// PinFile uploads the file at path and returns its gateway URL.
func (c *Client) PinFile(ctx context.Context, path string) (string, error) {
	if c.token == "" {
		return "", ErrNoToken
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("stat image: %w", err)
	}
	if info.Size() > MaxFileSize {
		return "", ErrFileTooLarge
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, f); err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.pinURL, &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("pin upload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("pin upload failed: %s: %s", resp.Status, msg)
	}

	var pinned pinResponse
	if err := json.NewDecoder(resp.Body).Decode(&pinned); err != nil {
		return "", fmt.Errorf("decode pin response: %w", err)
	}
	if pinned.IpfsHash == "" {
		return "", errors.New("pin response missing hash")
	}
	return c.gatewayURL + pinned.IpfsHash, nil
}
