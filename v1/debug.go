package lemmy

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"regexp"

	"github.com/bww/go-util/v1/text"
)

type Debug struct {
	Debug     bool
	Verbose   bool
	FilterURL *regexp.Regexp
}

func (d Debug) Matches(req *http.Request) bool {
	if f := d.FilterURL; f != nil {
		if !f.MatchString(req.URL.Path) {
			return false
		}
	}
	return true
}

func (d Debug) WithEnv() (Debug, error) {
	e := d
	e.Debug = d.Debug || os.Getenv("DEBUG_LEMMY_CLIENT") != ""
	e.Verbose = e.Debug || d.Verbose || os.Getenv("VERBOSE_LEMMY_CLIENT") != ""

	if v := os.Getenv("DEBUG_LEMMY_CLIENT_FILTER"); v != "" {
		m, err := regexp.Compile(v)
		if err != nil {
			return e, err
		}
		e.FilterURL = m
	}

	return e, nil
}

// Tokens must not end up in logs, even under debug
var sensitiveHeaders = map[string]struct{}{
	http.CanonicalHeaderKey("Authorization"): {},
}

func defaultAllowHeader(n string) bool {
	_, ok := sensitiveHeaders[n]
	return !ok // if it's not sensitive, it is allowed
}

func sanitizeHeaders(hdr http.Header, allowed func(string) bool) http.Header {
	res := make(http.Header)
	for k, v := range hdr {
		n := http.CanonicalHeaderKey(k)
		if allowed(n) {
			for _, e := range v {
				res.Add(n, e)
			}
		} else {
			for _, e := range v {
				hash := sha256.Sum256([]byte(e))
				res.Add(n, fmt.Sprintf("<lemmy: redacted %d bytes; SHA256=%s>", len(e), hex.EncodeToString(hash[:])))
			}
		}
	}
	return res
}

func (c *Client) isVerbose(req *http.Request) bool {
	if !c.debug.Verbose {
		return false
	}
	return c.debug.Matches(req)
}

func (c *Client) isDebug(req *http.Request) bool {
	if !c.debug.Debug {
		return false
	}
	return c.debug.Matches(req)
}

func (c *Client) dumpReq(w io.Writer, req *http.Request) error {
	b := &bytes.Buffer{}
	sanitizeHeaders(req.Header, defaultAllowHeader).Write(b)
	fmt.Fprintln(w, text.Indent(b.String(), "   - "))
	if c.isVerbose(req) && req.Body != nil {
		defer req.Body.Close()
		d, err := io.ReadAll(req.Body)
		if err != nil {
			return err
		}
		req.Body = io.NopCloser(bytes.NewBuffer(d))
		if len(d) > 0 {
			fmt.Fprintln(w, text.Indent(string(d), "   > "))
		}
	}
	return nil
}

func (c *Client) dumpRsp(w io.Writer, req *http.Request, rsp *http.Response) error {
	b := &bytes.Buffer{}
	sanitizeHeaders(rsp.Header, defaultAllowHeader).Write(b)
	fmt.Fprintln(w, text.Indent(b.String(), "   - "))
	if c.isVerbose(req) {
		d, err := io.ReadAll(rsp.Body)
		if err != nil {
			return err
		}
		if len(d) > 0 {
			ent := Entity{
				ContentType: rsp.Header.Get("Content-Type"),
				Data:        d,
			}
			fmt.Fprintln(w, text.Indent(ent.String(), "   < "))
		}
		rsp.Body = io.NopCloser(bytes.NewBuffer(d))
	}
	return nil
}
