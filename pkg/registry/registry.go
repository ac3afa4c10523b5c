// Package registry checks generated image names against the
// BioContainers registry on quay.io.
package registry

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mulled-tools/mulled/pkg/errdefs"
	"github.com/mulled-tools/mulled/pkg/util/xhttp"
	"github.com/mulled-tools/mulled/pkg/xlog"
)

const (
	// DefaultHost is the registry host serving BioContainers images.
	DefaultHost = "quay.io"
	// DefaultNamespace is the organization the mulled images live in.
	DefaultNamespace = "biocontainers"
)

// NewClient returns a registry client for the given address. The
// address may carry a scheme; a bare host defaults to https. An empty
// address selects the default quay.io host.
func NewClient(addr string) (*Client, error) {
	if addr == "" {
		addr = DefaultHost
	}
	host, scheme, err := xhttp.ParseHostScheme(addr)
	if err != nil {
		return nil, errdefs.NewE(errdefs.ErrInvalidParameter, err)
	}
	if scheme == "" {
		scheme = "https"
	}
	return &Client{
		Host:      host,
		Scheme:    scheme,
		Namespace: DefaultNamespace,
		Client:    &http.Client{},
	}, nil
}

// Client performs unauthenticated, read-only existence lookups against
// the registry's web-facing image pages.
type Client struct {
	// Host is the registry host, e.g. "quay.io".
	Host string
	// Scheme is "https" unless the address said otherwise.
	Scheme string
	// Namespace is the registry organization, e.g. "biocontainers".
	Namespace string
	// Client is the underlying http client. Redirects are followed.
	Client xhttp.Client
}

// ImageURL returns the web-facing page of an image name:tag.
func (c *Client) ImageURL(image string) string {
	return fmt.Sprintf("%s://%s/%s/%s/", c.Scheme, c.Host, c.Namespace, image)
}

// ImageExists checks whether the given image name:tag already exists on
// the registry.
//
// A 200-class response means the image exists. Any other status code is
// a confirmed "not found" with a nil error. A transport failure returns
// false together with an error wrapping errdefs.ErrUnavailable, so
// callers can tell "confirmed absent" from "unknown".
func (c *Client) ImageExists(ctx context.Context, image string) (bool, error) {
	url := c.ImageURL(image)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return false, errdefs.NewE(errdefs.ErrInvalidParameter, err)
	}
	resp, err := c.httpClient().Do(req) //nolint:bodyclose // closed by xhttp.CloseAndSkipError
	if err != nil {
		return false, errdefs.NewE(errdefs.ErrUnavailable, xhttp.MakeRequestError(req, err))
	}
	defer xhttp.CloseAndSkipError(resp.Body)

	xlog.C(ctx).Debugf("got response code %d for URL %s", resp.StatusCode, url)
	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return true, nil
	}
	return false, nil
}

func (c *Client) httpClient() xhttp.Client {
	if c.Client != nil {
		return c.Client
	}
	return http.DefaultClient
}
