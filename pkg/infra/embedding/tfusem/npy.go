package tfusem

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/NeuralTrust/TrustIntent/pkg/domain/embedding"
)

var npyMagic = []byte("\x93NUMPY")

var errNPY = errors.New("invalid npy payload")

type npyHeader struct {
	order  binary.ByteOrder
	width  int
	rows   int
	cols   int
	offset int
}

func isNPY(data []byte) bool {
	return bytes.HasPrefix(data, npyMagic)
}

// decodeNPY reads a little- or big-endian float32/float64 array in C order.
// A 2-D array yields one vector per row; a 1-D array is a single vector.
func decodeNPY(data []byte) ([]embedding.Vector, error) {
	h, err := parseNPYHeader(data)
	if err != nil {
		return nil, err
	}

	payload := data[h.offset:]
	vectors := make([]embedding.Vector, h.rows)
	pos := 0
	for r := 0; r < h.rows; r++ {
		v := make(embedding.Vector, h.cols)
		for c := 0; c < h.cols; c++ {
			chunk := payload[pos : pos+h.width]
			if h.width == 4 {
				v[c] = float64(math.Float32frombits(h.order.Uint32(chunk)))
			} else {
				v[c] = math.Float64frombits(h.order.Uint64(chunk))
			}
			if math.IsNaN(v[c]) || math.IsInf(v[c], 0) {
				return nil, fmt.Errorf("%w: non-finite value at row %d col %d", errNPY, r, c)
			}
			pos += h.width
		}
		vectors[r] = v
	}
	return vectors, nil
}

func parseNPYHeader(data []byte) (npyHeader, error) {
	if !isNPY(data) || len(data) < len(npyMagic)+2 {
		return npyHeader{}, fmt.Errorf("%w: bad magic", errNPY)
	}
	major := data[len(npyMagic)]
	pos := len(npyMagic) + 2

	var headerLen int
	switch major {
	case 1:
		if len(data) < pos+2 {
			return npyHeader{}, fmt.Errorf("%w: truncated header length", errNPY)
		}
		headerLen = int(binary.LittleEndian.Uint16(data[pos:]))
		pos += 2
	case 2, 3:
		if len(data) < pos+4 {
			return npyHeader{}, fmt.Errorf("%w: truncated header length", errNPY)
		}
		headerLen = int(binary.LittleEndian.Uint32(data[pos:]))
		pos += 4
	default:
		return npyHeader{}, fmt.Errorf("%w: unsupported version %d", errNPY, major)
	}
	if len(data) < pos+headerLen {
		return npyHeader{}, fmt.Errorf("%w: truncated header", errNPY)
	}
	dict := string(data[pos : pos+headerLen])

	h := npyHeader{offset: pos + headerLen}

	descr, err := headerField(dict, "descr")
	if err != nil {
		return npyHeader{}, err
	}
	descr = strings.Trim(descr, `'"`)
	if len(descr) != 3 || descr[1] != 'f' {
		return npyHeader{}, fmt.Errorf("%w: unsupported dtype %q", errNPY, descr)
	}
	switch descr[0] {
	case '<', '|', '=':
		h.order = binary.LittleEndian
	case '>':
		h.order = binary.BigEndian
	default:
		return npyHeader{}, fmt.Errorf("%w: unsupported byte order in %q", errNPY, descr)
	}
	switch descr[2] {
	case '4':
		h.width = 4
	case '8':
		h.width = 8
	default:
		return npyHeader{}, fmt.Errorf("%w: unsupported dtype %q", errNPY, descr)
	}

	fortran, err := headerField(dict, "fortran_order")
	if err != nil {
		return npyHeader{}, err
	}
	if fortran != "False" {
		return npyHeader{}, fmt.Errorf("%w: fortran order not supported", errNPY)
	}

	shape, err := headerField(dict, "shape")
	if err != nil {
		return npyHeader{}, err
	}
	dims, err := parseShape(shape)
	if err != nil {
		return npyHeader{}, err
	}
	switch len(dims) {
	case 1:
		h.rows, h.cols = 1, dims[0]
	case 2:
		h.rows, h.cols = dims[0], dims[1]
	default:
		return npyHeader{}, fmt.Errorf("%w: expected 1 or 2 dimensions, got %d", errNPY, len(dims))
	}
	if err := checkShapeFits(h, len(data)-h.offset); err != nil {
		return npyHeader{}, err
	}
	return h, nil
}

// checkShapeFits rejects shapes whose element count cannot be backed by the
// payload, without computing rows*cols*width directly.
func checkShapeFits(h npyHeader, payloadLen int) error {
	if h.cols == 0 {
		if h.rows > 0 {
			return fmt.Errorf("%w: shape (%d, 0) has empty rows", errNPY, h.rows)
		}
		return nil
	}
	maxElems := payloadLen / h.width
	if h.cols > maxElems || h.rows > maxElems/h.cols {
		return fmt.Errorf("%w: shape (%d, %d) does not fit %d data bytes", errNPY, h.rows, h.cols, payloadLen)
	}
	return nil
}

// headerField extracts the raw value of key from the Python dict literal
// stored in an npy header.
func headerField(dict, key string) (string, error) {
	marker := "'" + key + "':"
	i := strings.Index(dict, marker)
	if i < 0 {
		return "", fmt.Errorf("%w: header missing %q", errNPY, key)
	}
	rest := strings.TrimSpace(dict[i+len(marker):])
	if strings.HasPrefix(rest, "(") {
		end := strings.Index(rest, ")")
		if end < 0 {
			return "", fmt.Errorf("%w: unterminated %q", errNPY, key)
		}
		return rest[:end+1], nil
	}
	end := strings.IndexAny(rest, ",}")
	if end < 0 {
		return "", fmt.Errorf("%w: unterminated %q", errNPY, key)
	}
	return strings.TrimSpace(rest[:end]), nil
}

func parseShape(shape string) ([]int, error) {
	inner := strings.TrimSuffix(strings.TrimPrefix(shape, "("), ")")
	var dims []int
	for _, part := range strings.Split(inner, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: bad shape %q", errNPY, shape)
		}
		dims = append(dims, n)
	}
	return dims, nil
}
