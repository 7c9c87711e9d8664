// Package imagecdn resolves hosted image asset references to delivery URLs.
package imagecdn

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"skullfire.dev/internal/models"
)

const (
	DefaultBaseURL = "https://cdn.sanity.io"
	DefaultDataset = "production"
	DefaultWidth   = 800
	DefaultHeight  = 450
)

var (
	ErrAssetRefRequired = errors.New("asset ref is required")
	ErrAssetRefInvalid  = errors.New("asset ref is invalid")
	ErrNotConfigured    = errors.New("image cdn project id is not configured")
)

// CDN builds image URLs for one project/dataset pair
type CDN struct {
	baseURL   string
	projectID string
	dataset   string
	width     int
	height    int
}

// Option customizes a CDN
type Option func(*CDN)

// WithSize sets the delivery width and height; zero leaves a dimension out
func WithSize(width, height int) Option {
	return func(c *CDN) {
		c.width = width
		c.height = height
	}
}

// New creates a CDN resolver. Empty baseURL and dataset use the defaults.
func New(baseURL, projectID, dataset string, opts ...Option) *CDN {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if dataset == "" {
		dataset = DefaultDataset
	}
	c := &CDN{
		baseURL:   strings.TrimRight(baseURL, "/"),
		projectID: strings.TrimSpace(projectID),
		dataset:   dataset,
		width:     DefaultWidth,
		height:    DefaultHeight,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// asset is a parsed "image-<id>-<W>x<H>-<ext>" reference
type asset struct {
	id     string
	width  int
	height int
	ext    string
}

func parseRef(ref string) (asset, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return asset{}, ErrAssetRefRequired
	}

	rest, ok := strings.CutPrefix(ref, "image-")
	if !ok {
		return asset{}, fmt.Errorf("%w: %q", ErrAssetRefInvalid, ref)
	}
	parts := strings.Split(rest, "-")
	if len(parts) < 3 {
		return asset{}, fmt.Errorf("%w: %q", ErrAssetRefInvalid, ref)
	}

	ext := parts[len(parts)-1]
	dims := parts[len(parts)-2]
	id := strings.Join(parts[:len(parts)-2], "-")

	w, h, ok := strings.Cut(dims, "x")
	if !ok || id == "" || ext == "" {
		return asset{}, fmt.Errorf("%w: %q", ErrAssetRefInvalid, ref)
	}
	width, err := strconv.Atoi(w)
	if err != nil || width <= 0 {
		return asset{}, fmt.Errorf("%w: %q", ErrAssetRefInvalid, ref)
	}
	height, err := strconv.Atoi(h)
	if err != nil || height <= 0 {
		return asset{}, fmt.Errorf("%w: %q", ErrAssetRefInvalid, ref)
	}

	return asset{id: id, width: width, height: height, ext: ext}, nil
}

// ResolveURL returns the delivery URL for ref
func (c *CDN) ResolveURL(ref models.AssetRef) (string, error) {
	if c.projectID == "" {
		return "", ErrNotConfigured
	}
	a, err := parseRef(ref.Ref)
	if err != nil {
		return "", err
	}

	file := fmt.Sprintf("%s-%dx%d.%s", a.id, a.width, a.height, a.ext)
	u := fmt.Sprintf("%s/images/%s/%s/%s", c.baseURL, url.PathEscape(c.projectID), url.PathEscape(c.dataset), file)

	query := url.Values{}
	if c.width > 0 {
		query.Set("w", strconv.Itoa(c.width))
	}
	if c.height > 0 {
		query.Set("h", strconv.Itoa(c.height))
	}
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u, nil
}
