// Package registry downloads FHIR core packages from a package registry so
// the conversion tables can be audited against the definitions of the
// source release.
package registry

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/buger/jsonparser"

	"github.com/gofhir/converter/pkg/logger"
)

const (
	// DefaultURL is the public FHIR package registry.
	DefaultURL = "https://packages.fhir.org"

	// DefaultTimeout bounds each registry request.
	DefaultTimeout = 60 * time.Second

	// maxFileSize bounds each extracted file.
	maxFileSize = 200 << 20
)

// ErrNotFound is returned when the registry does not know a package or
// version.
var ErrNotFound = errors.New("package not found")

// Client fetches packages and keeps them in a local cache directory laid out
// like the FHIR package cache (~/.fhir/packages/<name>#<version>).
type Client struct {
	http     *http.Client
	url      string
	cacheDir string
	log      *logger.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithURL sets the registry base URL.
func WithURL(url string) Option {
	return func(c *Client) { c.url = strings.TrimRight(url, "/") }
}

// WithCacheDir sets the cache directory.
func WithCacheDir(dir string) Option {
	return func(c *Client) { c.cacheDir = dir }
}

// WithHTTPClient sets the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger sets the logger.
func WithLogger(l *logger.Logger) Option {
	return func(c *Client) { c.log = l }
}

// NewClient creates a client for DefaultURL caching under ~/.fhir/packages.
func NewClient(opts ...Option) *Client {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	c := &Client{
		http:     &http.Client{Timeout: DefaultTimeout},
		url:      DefaultURL,
		cacheDir: filepath.Join(home, ".fhir", "packages"),
		log:      logger.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CacheDir returns the cache directory.
func (c *Client) CacheDir() string {
	return c.cacheDir
}

// Path returns where name#version is cached, whether or not it is present.
func (c *Client) Path(name, version string) string {
	return filepath.Join(c.cacheDir, strings.ReplaceAll(name, "/", "-")+"#"+version)
}

// Cached reports whether name#version is already in the cache.
func (c *Client) Cached(name, version string) bool {
	dir := c.Path(name, version)
	for _, manifest := range []string{
		filepath.Join(dir, "package", "package.json"),
		filepath.Join(dir, "package.json"),
	} {
		if _, err := os.Stat(manifest); err == nil {
			return true
		}
	}
	return false
}

// Fetch makes name#version available locally and returns its directory.
// Cached packages are not downloaded again.
func (c *Client) Fetch(ctx context.Context, name, version string) (string, error) {
	dir := c.Path(name, version)
	if c.Cached(name, version) {
		c.log.Debug("%s#%s found in %s", name, version, dir)
		return dir, nil
	}

	tarball, err := c.tarballURL(ctx, name, version)
	if err != nil {
		return "", err
	}

	c.log.Info("downloading %s#%s", name, version)
	body, err := c.get(ctx, tarball)
	if err != nil {
		return "", fmt.Errorf("download %s#%s: %w", name, version, err)
	}
	defer body.Close()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	if err := extract(body, dir); err != nil {
		_ = os.RemoveAll(dir)
		return "", fmt.Errorf("extract %s#%s: %w", name, version, err)
	}
	return dir, nil
}

// tarballURL reads the download location from the registry's package
// document, falling back to <url>/<name>/<version>.
func (c *Client) tarballURL(ctx context.Context, name, version string) (string, error) {
	body, err := c.get(ctx, c.url+"/"+name)
	if err != nil {
		return "", fmt.Errorf("look up %s: %w", name, err)
	}
	defer body.Close()

	doc, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}

	if _, _, _, err := jsonparser.Get(doc, "versions", version); err != nil {
		return "", fmt.Errorf("%w: %s#%s", ErrNotFound, name, version)
	}
	if url, err := jsonparser.GetString(doc, "versions", version, "dist", "tarball"); err == nil && url != "" {
		return url, nil
	}
	if url, err := jsonparser.GetString(doc, "versions", version, "url"); err == nil && url != "" {
		return url, nil
	}
	return c.url + "/" + name + "/" + version, nil
}

func (c *Client) get(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	switch resp.StatusCode {
	case http.StatusOK:
		return resp.Body, nil
	case http.StatusNotFound:
		resp.Body.Close()
		return nil, ErrNotFound
	default:
		resp.Body.Close()
		return nil, fmt.Errorf("GET %s: status %d", url, resp.StatusCode)
	}
}

// extract unpacks a gzipped tarball into dir, refusing entries that would
// land outside it.
func extract(r io.Reader, dir string) error {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return err
	}
	defer gz.Close()

	root := filepath.Clean(dir) + string(os.PathSeparator)
	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		target := filepath.Join(dir, hdr.Name) //nolint:gosec // checked against root below
		if !strings.HasPrefix(target, root) {
			return fmt.Errorf("entry %q escapes the package directory", hdr.Name)
		}

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0o755); err != nil {
				return err
			}
		case tar.TypeReg:
			if err := writeFile(target, tr); err != nil {
				return err
			}
		}
	}
}

func writeFile(path string, r io.Reader) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, io.LimitReader(r, maxFileSize)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
