package sanity

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/vabank-dev/vabank/internal/core/domain"
	"github.com/vabank-dev/vabank/internal/core/ports/driven"
)

// Ensure ImageResolver implements the interface.
var _ driven.ImageResolver = (*ImageResolver)(nil)

// CDNBase is the image CDN host.
const CDNBase = "https://cdn.sanity.io/images"

// ImageResolver builds image CDN URLs from asset references of the form
// image-<id>-<width>x<height>-<format>.
type ImageResolver struct {
	projectID string
	dataset   string
}

// NewImageResolver creates a resolver for a project and dataset.
func NewImageResolver(projectID, dataset string) *ImageResolver {
	return &ImageResolver{projectID: projectID, dataset: dataset}
}

// URL returns the CDN URL. Width, height and format are passed as the
// w, h and fm transformation parameters when set.
func (r *ImageResolver) URL(ref domain.ImageRef, opts domain.ImageOptions) (string, error) {
	if r.projectID == "" {
		return "", ErrNotConfigured
	}

	id, dims, ext, err := parseAssetRef(ref.AssetRef)
	if err != nil {
		return "", err
	}

	u := fmt.Sprintf("%s/%s/%s/%s-%s.%s", CDNBase, r.projectID, r.dataset, id, dims, ext)

	q := url.Values{}
	if opts.Width > 0 {
		q.Set("w", strconv.Itoa(opts.Width))
	}
	if opts.Height > 0 {
		q.Set("h", strconv.Itoa(opts.Height))
	}
	if opts.Format != "" {
		q.Set("fm", opts.Format)
	}
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	return u, nil
}

func parseAssetRef(ref string) (id, dims, ext string, err error) {
	rest, ok := strings.CutPrefix(ref, "image-")
	if !ok {
		return "", "", "", fmt.Errorf("%w: not an image asset %q", domain.ErrInvalidInput, ref)
	}

	parts := strings.Split(rest, "-")
	if len(parts) < 3 {
		return "", "", "", fmt.Errorf("%w: malformed image asset %q", domain.ErrInvalidInput, ref)
	}

	ext = parts[len(parts)-1]
	dims = parts[len(parts)-2]
	id = strings.Join(parts[:len(parts)-2], "-")

	w, h, found := strings.Cut(dims, "x")
	if !found || id == "" || ext == "" || !isDigits(w) || !isDigits(h) {
		return "", "", "", fmt.Errorf("%w: malformed image asset %q", domain.ErrInvalidInput, ref)
	}
	return id, dims, ext, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
