package httpx

import (
	"bytes"
	"compress/flate"
	"compress/gzip"
	"compress/zlib"
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
	"github.com/valyala/fasthttp"
)

// DecodeResponse returns the body of resp with its Content-Encoding removed.
// The returned slice never aliases the response buffer.
func DecodeResponse(resp *fasthttp.Response) ([]byte, error) {
	body := append([]byte(nil), resp.Body()...)
	return Decode(string(resp.Header.Peek(fasthttp.HeaderContentEncoding)), body)
}

// Decode undoes a Content-Encoding value such as "gzip, br". Encodings are
// removed in reverse order of application. Supported: br, gzip, zstd and
// deflate (zlib-wrapped or raw).
func Decode(contentEncoding string, body []byte) ([]byte, error) {
	if contentEncoding == "" {
		return body, nil
	}
	encodings := strings.Split(contentEncoding, ",")
	for i := len(encodings) - 1; i >= 0; i-- {
		enc := strings.TrimSpace(strings.ToLower(encodings[i]))
		var err error
		switch enc {
		case "br":
			body, err = io.ReadAll(brotli.NewReader(bytes.NewReader(body)))
		case "gzip":
			body, err = readAndClose(gzip.NewReader(bytes.NewReader(body)))
		case "zstd":
			body, err = decodeZstd(body)
		case "deflate":
			body, err = decodeDeflate(body)
		case "", "identity", "compress":
		default:
			return nil, fmt.Errorf("unsupported content-encoding: %q", enc)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s body: %w", enc, err)
		}
	}
	return body, nil
}

func readAndClose(r io.ReadCloser, err error) ([]byte, error) {
	if err != nil {
		return nil, err
	}
	out, err := io.ReadAll(r)
	if cerr := r.Close(); err == nil {
		err = cerr
	}
	return out, err
}

func decodeZstd(body []byte) ([]byte, error) {
	dec, err := zstd.NewReader(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	return io.ReadAll(dec)
}

func decodeDeflate(body []byte) ([]byte, error) {
	if out, err := readAndClose(zlib.NewReader(bytes.NewReader(body))); err == nil {
		return out, nil
	}
	return readAndClose(flate.NewReader(bytes.NewReader(body)), nil)
}
