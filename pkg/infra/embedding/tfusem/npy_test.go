package tfusem

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/NeuralTrust/TrustIntent/pkg/domain/embedding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// encodeNPY writes rows as a version 1.0 .npy file with the given dtype.
func encodeNPY(t *testing.T, descr string, rows [][]float64) []byte {
	t.Helper()
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	header := fmt.Sprintf("{'descr': '%s', 'fortran_order': False, 'shape': (%d, %d), }", descr, len(rows), cols)
	// Pad so that magic + version + length + header is a multiple of 64.
	total := len(npyMagic) + 2 + 2 + len(header) + 1
	if rem := total % 64; rem != 0 {
		header += strings.Repeat(" ", 64-rem)
	}
	header += "\n"

	var buf bytes.Buffer
	buf.Write(npyMagic)
	buf.Write([]byte{1, 0})
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint16(len(header))))
	buf.WriteString(header)

	var order binary.ByteOrder = binary.LittleEndian
	if descr[0] == '>' {
		order = binary.BigEndian
	}
	for _, row := range rows {
		for _, v := range row {
			if descr[2] == '4' {
				require.NoError(t, binary.Write(&buf, order, float32(v)))
			} else {
				require.NoError(t, binary.Write(&buf, order, v))
			}
		}
	}
	return buf.Bytes()
}

func TestDecodeNPY(t *testing.T) {
	rows := [][]float64{{1, 0, -0.5}, {0.25, 0.75, 2}}

	for _, descr := range []string{"<f4", "<f8", ">f4", ">f8"} {
		t.Run(descr, func(t *testing.T) {
			vectors, err := decodeNPY(encodeNPY(t, descr, rows))
			require.NoError(t, err)
			require.Len(t, vectors, 2)
			assert.Equal(t, embedding.Vector{1, 0, -0.5}, vectors[0])
			assert.Equal(t, embedding.Vector{0.25, 0.75, 2}, vectors[1])
		})
	}
}

func TestDecodeNPY_Float32Precision(t *testing.T) {
	vectors, err := decodeNPY(encodeNPY(t, "<f4", [][]float64{{0.1}}))
	require.NoError(t, err)
	assert.Equal(t, float64(float32(0.1)), vectors[0][0])
	assert.InDelta(t, 0.1, vectors[0][0], 1e-7)
}

func TestDecodeNPY_OneDimensional(t *testing.T) {
	header := "{'descr': '<f8', 'fortran_order': False, 'shape': (2,), }\n"
	var buf bytes.Buffer
	buf.Write(npyMagic)
	buf.Write([]byte{1, 0})
	_ = binary.Write(&buf, binary.LittleEndian, uint16(len(header)))
	buf.WriteString(header)
	_ = binary.Write(&buf, binary.LittleEndian, []float64{3, 4})

	vectors, err := decodeNPY(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, []embedding.Vector{{3, 4}}, vectors)
}

func TestDecodeNPY_EmptyMatrix(t *testing.T) {
	vectors, err := decodeNPY(encodeNPY(t, "<f4", nil))
	require.NoError(t, err)
	assert.Empty(t, vectors)
}

func TestDecodeNPY_Errors(t *testing.T) {
	valid := encodeNPY(t, "<f4", [][]float64{{1, 2}})

	tests := []struct {
		name string
		data []byte
		want string
	}{
		{name: "not npy", data: []byte(`[[1,2]]`), want: "bad magic"},
		{name: "truncated data", data: valid[:len(valid)-2], want: "does not fit"},
		{name: "unsupported version", data: append(append([]byte{}, npyMagic...), 9, 0, 0, 0), want: "unsupported version"},
		{name: "integer dtype", data: bytes.Replace(valid, []byte("<f4"), []byte("<i4"), 1), want: "unsupported dtype"},
		{name: "fortran order", data: bytes.Replace(valid, []byte("False"), []byte("True "), 1), want: "fortran order"},
		{name: "huge row count with empty rows", data: npyWithShape("(1000000000000000, 0)", nil), want: "empty rows"},
		{name: "shape overflowing int", data: npyWithShape("(4611686018427387904, 4)", make([]byte, 16)), want: "does not fit"},
		{name: "shape larger than payload", data: npyWithShape("(3, 2)", make([]byte, 8)), want: "does not fit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeNPY(tt.data)
			require.Error(t, err)
			assert.ErrorIs(t, err, errNPY)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestDecodeNPY_RejectsNonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := decodeNPY(encodeNPY(t, "<f8", [][]float64{{0.5, v}}))
		require.Error(t, err)
		assert.ErrorIs(t, err, errNPY)
		assert.Contains(t, err.Error(), "non-finite")
	}
}

// npyWithShape writes a version 1.0 header declaring shape, followed by payload.
func npyWithShape(shape string, payload []byte) []byte {
	header := fmt.Sprintf("{'descr': '<f4', 'fortran_order': False, 'shape': %s, }\n", shape)
	var buf bytes.Buffer
	buf.Write(npyMagic)
	buf.Write([]byte{1, 0})
	_ = binary.Write(&buf, binary.LittleEndian, uint16(len(header)))
	buf.WriteString(header)
	buf.Write(payload)
	return buf.Bytes()
}
