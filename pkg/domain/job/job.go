package job

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/NeuralTrust/TrustIntent/pkg/domain/similarity"
	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"
)

type Compare string

const (
	CompareLabeled   Compare = "labeled"
	CompareUnlabeled Compare = "unlabeled"
)

func (c Compare) Valid() bool {
	return c == CompareLabeled || c == CompareUnlabeled
}

type Status string

const (
	StatusQueued  Status = "queued"
	StatusRunning Status = "running"
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

func (s Status) Done() bool {
	return s == StatusSuccess || s == StatusFailed
}

// Parameters select what a job computes. Compare is validated by the worker,
// not at enqueue time, so an unsupported mode ends as a failed result.
type Parameters struct {
	Compare   Compare `json:"compare" mapstructure:"compare"`
	Threshold float64 `json:"threshold" mapstructure:"threshold"`
}

// DecodeParameters builds Parameters from loosely typed input such as query
// values or a decoded JSON object. A missing threshold falls back to the
// default.
func DecodeParameters(raw map[string]interface{}) (Parameters, error) {
	params := Parameters{Threshold: similarity.DefaultThreshold}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &params,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return Parameters{}, err
	}
	if err := decoder.Decode(raw); err != nil {
		return Parameters{}, fmt.Errorf("invalid job parameters: %w", err)
	}
	if err := similarity.ValidateThreshold(params.Threshold); err != nil {
		return Parameters{}, err
	}
	return params, nil
}

func (p Parameters) Map() map[string]interface{} {
	return map[string]interface{}{
		"compare":   string(p.Compare),
		"threshold": p.Threshold,
	}
}

type Job struct {
	ID         uuid.UUID       `json:"id"`
	Parameters Parameters      `json:"parameters"`
	Payload    json.RawMessage `json:"payload"`
	Status     Status          `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func New(params Parameters, payload []byte) *Job {
	now := time.Now().UTC()
	return &Job{
		ID:         uuid.New(),
		Parameters: params,
		Payload:    payload,
		Status:     StatusQueued,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Result is the structured outcome of one job. Output is only set on success
// and Error only on failure.
type Result struct {
	JobID      uuid.UUID              `json:"job_id"`
	Status     Status                 `json:"status"`
	Params     map[string]interface{} `json:"params,omitempty"`
	Output     json.RawMessage        `json:"output,omitempty"`
	Error      string                 `json:"error,omitempty"`
	FinishedAt time.Time              `json:"finished_at"`
}

func NewFailedResult(jobID uuid.UUID, err error) *Result {
	return &Result{
		JobID:      jobID,
		Status:     StatusFailed,
		Error:      err.Error(),
		FinishedAt: time.Now().UTC(),
	}
}
