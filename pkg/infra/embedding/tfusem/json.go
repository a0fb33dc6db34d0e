package tfusem

import (
	"errors"
	"fmt"
	"math"

	"github.com/NeuralTrust/TrustIntent/pkg/domain/embedding"
	"github.com/valyala/fastjson"
)

var errJSON = errors.New("invalid json embeddings payload")

// decodeJSON accepts either a bare matrix [[...], ...] or an object with an
// "embeddings" matrix.
func decodeJSON(data []byte) ([]embedding.Vector, error) {
	var p fastjson.Parser
	root, err := p.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errJSON, err)
	}
	if root.Type() == fastjson.TypeObject {
		root = root.Get("embeddings")
		if root == nil {
			return nil, fmt.Errorf("%w: missing \"embeddings\"", errJSON)
		}
	}
	rows, err := root.Array()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errJSON, err)
	}

	vectors := make([]embedding.Vector, len(rows))
	for i, row := range rows {
		values, err := row.Array()
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", errJSON, i, err)
		}
		v := make(embedding.Vector, len(values))
		for j, value := range values {
			f, err := value.Float64()
			if err != nil {
				return nil, fmt.Errorf("%w: row %d col %d: %v", errJSON, i, j, err)
			}
			if math.IsNaN(f) || math.IsInf(f, 0) {
				return nil, fmt.Errorf("%w: non-finite value at row %d col %d", errJSON, i, j)
			}
			v[j] = f
		}
		vectors[i] = v
	}
	return vectors, nil
}
