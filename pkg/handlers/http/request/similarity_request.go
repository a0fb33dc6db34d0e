package request

import (
	"fmt"
)

type SimilarityRequest struct {
	A         string   `json:"a"`
	B         string   `json:"b"`
	Threshold *float64 `json:"threshold,omitempty"`
}

func (r *SimilarityRequest) Validate() error {
	if r.A == "" || r.B == "" {
		return fmt.Errorf("%w: both a and b are required", ErrInvalidRequest)
	}
	return nil
}
