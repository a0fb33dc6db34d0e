package common

const (
	TraceIDHeader = "X-Trace-Id"

	ModeAPI    = "api"
	ModeWorker = "worker"
)
