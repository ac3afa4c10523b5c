package xhttp

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"os"
	"time"

	"github.com/mulled-tools/mulled/pkg/xlog"
)

// Inspired by: github.com/motemen/go-loghttp

var _ http.RoundTripper = (*DumpTransport)(nil)

// NewDumpTransport returns a new [DumpTransport] with the given inner
// transport.
func NewDumpTransport(inner http.RoundTripper) *DumpTransport {
	return &DumpTransport{
		Out:   os.Stderr,
		inner: inner,
	}
}

// DumpTransport is an implementation of [http.RoundTripper] that dumps
// requests and responses, used by the --debug flag.
type DumpTransport struct {
	Out io.Writer

	inner http.RoundTripper
}

// RoundTrip implements http.RoundTripper.
func (m *DumpTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	buf := &bytes.Buffer{}
	defer func() {
		if _, err := io.Copy(m.writer(), buf); err != nil {
			xlog.FromContext(req.Context()).Warnf("failed to dump request/response: %v", err)
		}
	}()

	m.dumpRequest(req, buf)

	start := time.Now()
	resp, err := m.transport().RoundTrip(req)
	if err != nil {
		return resp, err
	}
	m.dumpResponse(resp, time.Since(start), buf)
	return resp, err
}

func (m *DumpTransport) writer() io.Writer {
	if m.Out != nil {
		return m.Out
	}
	return os.Stderr
}

func (m *DumpTransport) transport() http.RoundTripper {
	if m.inner != nil {
		return m.inner
	}
	return http.DefaultTransport
}

func (m *DumpTransport) dumpRequest(req *http.Request, w io.Writer) {
	_, _ = fmt.Fprintf(w, "--> %s %s\n", req.Method, req.URL)

	b, err := httputil.DumpRequestOut(req, false)
	b = bytes.TrimSuffix(b, []byte("\r\n\r\n"))
	if err != nil {
		_, _ = fmt.Fprintf(w, "failed to dump request: %v\n", err)
	} else {
		_, _ = fmt.Fprintf(w, "%s\n\n", string(b))
	}
}

func (m *DumpTransport) dumpResponse(resp *http.Response, elapsed time.Duration, w io.Writer) {
	req := resp.Request
	_, _ = fmt.Fprintf(w, "<-- %s %s %d %s (%s)\n",
		req.Method, req.URL, resp.StatusCode, http.StatusText(resp.StatusCode), elapsed)

	b, err := httputil.DumpResponse(resp, false)
	b = bytes.TrimSuffix(b, []byte("\r\n\r\n"))
	if err != nil {
		_, _ = fmt.Fprintf(w, "failed to dump response: %v\n", err)
	} else {
		_, _ = fmt.Fprintf(w, "%s\n\n", string(b))
	}
}
