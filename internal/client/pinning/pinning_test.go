package pinning

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempImage(t *testing.T, size int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "image.png")
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0o600))
	return path
}

func TestPinFile(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")

		require.NoError(t, r.ParseMultipartForm(MaxFileSize))
		_, header, err := r.FormFile("file")
		require.NoError(t, err)
		assert.Equal(t, "image.png", header.Filename)

		w.Write([]byte(`{"IpfsHash":"QmTestHash"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "https://gateway.pinata.cloud/ipfs/", "jwt-token")
	url, err := c.PinFile(context.Background(), writeTempImage(t, 1024))
	require.NoError(t, err)

	assert.Equal(t, "https://gateway.pinata.cloud/ipfs/QmTestHash", url)
	assert.Equal(t, "Bearer jwt-token", gotAuth)
}

func TestPinFile_TooLarge(t *testing.T) {
	c := New("http://unused", "g/", "jwt")
	_, err := c.PinFile(context.Background(), writeTempImage(t, MaxFileSize+1))
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestPinFile_NoToken(t *testing.T) {
	c := New("http://unused", "g/", "")
	_, err := c.PinFile(context.Background(), "whatever.png")
	assert.ErrorIs(t, err, ErrNoToken)
}

func TestPinFile_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := New(srv.URL, "g/", "bad-jwt")
	_, err := c.PinFile(context.Background(), writeTempImage(t, 10))
	assert.ErrorContains(t, err, "401")
}

func TestPinFile_MissingHash(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "g/", "jwt")
	_, err := c.PinFile(context.Background(), writeTempImage(t, 10))
	assert.ErrorContains(t, err, "missing hash")
}
