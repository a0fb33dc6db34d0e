package embedding

import "math"

// Vector is a fixed-width embedding of one text.
type Vector []float64

// Dim returns the number of components of the vector.
func (v Vector) Dim() int {
	return len(v)
}

// Equal reports whether both vectors hold exactly the same components.
func (v Vector) Equal(other Vector) bool {
	if len(v) != len(other) {
		return false
	}
	for i := range v {
		if v[i] != other[i] {
			return false
		}
	}
	return true
}

// Finite reports whether no component is NaN or infinite.
func (v Vector) Finite() bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

type Credentials struct {
	ApiKey    string `json:"api_key,omitempty"`
	AccessKey string `json:"access_key,omitempty"`
	SecretKey string `json:"secret_key,omitempty"`
}

// Config carries everything a provider needs to reach the remote capability.
// It is always passed in by the caller; providers never read the environment.
type Config struct {
	Provider    string      `json:"provider"`
	Endpoint    string      `json:"endpoint,omitempty"`
	Model       string      `json:"model,omitempty"`
	Region      string      `json:"region,omitempty"`
	Format      string      `json:"format,omitempty"`
	Credentials Credentials `json:"credentials"`
}
