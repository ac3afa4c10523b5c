// Package xhttp provides net/http helper types shared by the registry
// client.
package xhttp

import (
	"fmt"
	"io"
	"net/http"
	stdurl "net/url"
	"strings"

	"github.com/mulled-tools/mulled/pkg/xlog"
)

// Client is the interface of a http client.
type Client interface {
	Do(*http.Request) (*http.Response, error)
}

// ParseHostScheme parses any address string and returns host, scheme
// and error. If addr is a host/domain style string, the returned scheme
// will be "".
func ParseHostScheme(addr string) (string, string, error) {
	if strings.Contains(addr, "://") {
		url, err := stdurl.Parse(addr)
		if err != nil {
			return "", "", err
		}
		return url.Host, url.Scheme, nil
	}

	url, err := stdurl.Parse("https://" + addr)
	if err != nil {
		return "", "", err
	}
	return url.Host, "", nil
}

// MakeRequestError creates an error wrapping request informations.
func MakeRequestError(req *http.Request, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s %s: %w", req.Method, req.URL.Redacted(), err)
}

// CloseAndSkipError closes the closer and discards the close error.
// Intended for response bodies in defer statements.
func CloseAndSkipError(closer io.Closer) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		xlog.Debugf("failed to close: %v", err)
	}
}
