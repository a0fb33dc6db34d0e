package httpx

import (
	"bytes"
	"compress/flate"
	"compress/gzip"
	"compress/zlib"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

func gzipCompress(data []byte) []byte {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, _ = gz.Write(data)
	_ = gz.Close()
	return buf.Bytes()
}

func brCompress(data []byte) []byte {
	var buf bytes.Buffer
	br := brotli.NewWriter(&buf)
	_, _ = br.Write(data)
	_ = br.Close()
	return buf.Bytes()
}

func zstdCompress(data []byte) []byte {
	var buf bytes.Buffer
	zw, _ := zstd.NewWriter(&buf)
	_, _ = zw.Write(data)
	_ = zw.Close()
	return buf.Bytes()
}

func zlibCompress(data []byte) []byte {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	_, _ = zw.Write(data)
	_ = zw.Close()
	return buf.Bytes()
}

func rawDeflateCompress(data []byte) []byte {
	var buf bytes.Buffer
	fw, _ := flate.NewWriter(&buf, flate.DefaultCompression)
	_, _ = fw.Write(data)
	_ = fw.Close()
	return buf.Bytes()
}

func TestDecode(t *testing.T) {
	plain := []byte(`[[0.1, 0.2], [0.3, 0.4]]`)

	tests := []struct {
		name     string
		encoding string
		body     []byte
	}{
		{name: "none", encoding: "", body: plain},
		{name: "identity", encoding: "identity, compress", body: plain},
		{name: "gzip", encoding: "gzip", body: gzipCompress(plain)},
		{name: "brotli", encoding: "br", body: brCompress(plain)},
		{name: "zstd", encoding: "zstd", body: zstdCompress(plain)},
		{name: "deflate zlib", encoding: "deflate", body: zlibCompress(plain)},
		{name: "deflate raw", encoding: "deflate", body: rawDeflateCompress(plain)},
		{name: "chained", encoding: "gzip, br", body: brCompress(gzipCompress(plain))},
		{name: "case and spaces", encoding: "  GZip ", body: gzipCompress(plain)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded, err := Decode(tt.encoding, tt.body)
			require.NoError(t, err)
			assert.Equal(t, plain, decoded)
		})
	}
}

func TestDecode_UnknownEncoding(t *testing.T) {
	_, err := Decode("foo", []byte("abc"))
	assert.ErrorContains(t, err, "unsupported content-encoding")
}

func TestDecode_CorruptBody(t *testing.T) {
	_, err := Decode("gzip", []byte("not gzip"))
	assert.ErrorContains(t, err, "failed to decode gzip body")
}

func TestDecodeResponse(t *testing.T) {
	plain := []byte("payload")
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)
	resp.Header.Set("Content-Encoding", "gzip")
	resp.SetBody(gzipCompress(plain))

	decoded, err := DecodeResponse(resp)
	require.NoError(t, err)
	assert.Equal(t, plain, decoded)
}
