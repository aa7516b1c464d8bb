// Package source resolves queue items to local audio files, downloading
// remote ones into a scratch directory.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"

	"github.com/nguyentantai21042004/voice-notes/internal/errs"
)

// IsURL reports whether item is an http(s) URL.
func IsURL(item string) bool {
	return strings.HasPrefix(item, "http://") || strings.HasPrefix(item, "https://")
}

// WipeDownloads removes leftovers of earlier runs from the download dir.
func WipeDownloads(dir string) error {
	if dir == "" {
		return nil
	}
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("wipe download dir: %w", err)
	}
	return nil
}

func (r *implResolver) Resolve(ctx context.Context, item string) (*Resolved, error) {
	item = strings.TrimSpace(item)
	if item == "" {
		return nil, fmt.Errorf("%w: empty item", errs.ErrResource)
	}

	if !IsURL(item) {
		info, err := os.Stat(item)
		if err != nil {
			return nil, fmt.Errorf("%w: file not found: %s: %w", errs.ErrResource, item, err)
		}
		if info.IsDir() {
			return nil, fmt.Errorf("%w: %s is a directory", errs.ErrResource, item)
		}
		return &Resolved{Item: item, Path: item}, nil
	}

	dest, err := r.download(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("%w: download %s: %w", errs.ErrResource, item, err)
	}

	return &Resolved{
		Item:       item,
		Path:       dest,
		Downloaded: true,
		cleanup: func() {
			if err := os.Remove(dest); err != nil && !errors.Is(err, os.ErrNotExist) {
				r.logger.Warn(context.Background(), "Failed to remove downloaded file %s: %v", dest, err)
				return
			}
			r.logger.Debug(context.Background(), "Cleaned up temporary file: %s", dest)
		},
	}, nil
}

// FileNameFor picks the local name for a downloaded URL: the last path
// segment when it carries an extension, a generated name otherwise.
func FileNameFor(rawURL string) string {
	name := ""
	if u, err := url.Parse(rawURL); err == nil {
		name = path.Base(u.Path)
	}
	if name == "" || name == "." || name == ".." || name == "/" || !strings.Contains(strings.Trim(name, "."), ".") {
		return fmt.Sprintf("downloaded_audio_%s.mp3", uuid.NewString())
	}
	return name
}

func (r *implResolver) download(ctx context.Context, rawURL string) (string, error) {
	if err := os.MkdirAll(r.dir, 0755); err != nil {
		return "", fmt.Errorf("create download dir: %w", err)
	}
	dest := filepath.Join(r.dir, FileNameFor(rawURL))

	r.logger.Info(ctx, "Downloading: %s", rawURL)

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = r.maxElapsed

	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return backoff.Permanent(err)
		}

		resp, err := r.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
			return fmt.Errorf("server returned %s", resp.Status)
		}
		if resp.StatusCode >= 300 {
			return backoff.Permanent(fmt.Errorf("server returned %s", resp.Status))
		}

		return writeFile(dest, resp.Body)
	}

	if err := backoff.Retry(op, backoff.WithContext(bo, ctx)); err != nil {
		os.Remove(dest)
		return "", err
	}

	r.logger.Info(ctx, "Downloaded to: %s", dest)
	return dest, nil
}

func writeFile(dest string, body io.Reader) error {
	f, err := os.Create(dest)
	if err != nil {
		return backoff.Permanent(fmt.Errorf("create %s: %w", dest, err))
	}
	if _, err := io.Copy(f, body); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", dest, err)
	}
	return f.Close()
}
