package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/NeuralTrust/TrustIntent/pkg/app/pairs"
	"github.com/NeuralTrust/TrustIntent/pkg/domain/job"
	"github.com/NeuralTrust/TrustIntent/pkg/domain/similarity"
	"github.com/NeuralTrust/TrustIntent/pkg/handlers/http/request"
	"github.com/NeuralTrust/TrustIntent/pkg/infra/httpx"
	"github.com/NeuralTrust/TrustIntent/pkg/version"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

const usage = `usage: intentctl [global flags] <command> [flags] [args]

commands:
  score FILE        score labeled utterances of an input document
  unlabeled FILE    score unlabeled utterances of an input document
  similarity A B    compare two strings
  enqueue FILE      queue a scoring job
  status JOB_ID     show job status
  result JOB_ID     show job result
  version           print version

global flags:
`

type globalOptions struct {
	apiURL     string
	local      bool
	configPath string
	timeout    time.Duration
}

func main() {
	_ = godotenv.Load()
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	var opts globalOptions
	global := pflag.NewFlagSet("intentctl", pflag.ContinueOnError)
	global.SetInterspersed(false)
	global.StringVar(&opts.apiURL, "api", envOr("INTENT_API_URL", "http://localhost:8080"), "intent API base URL")
	global.BoolVar(&opts.local, "local", false, "run scoring in-process instead of calling the API")
	global.StringVar(&opts.configPath, "config", os.Getenv("CONFIG_PATH"), "config directory used with --local")
	global.DurationVar(&opts.timeout, "timeout", 10*time.Minute, "overall command timeout")
	global.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		global.PrintDefaults()
	}
	if err := global.Parse(args); err != nil {
		return err
	}
	rest := global.Args()
	if len(rest) == 0 {
		global.Usage()
		return errors.New("missing command")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, opts.timeout)
	defer cancel()

	cmd, cmdArgs := rest[0], rest[1:]
	if cmd == "version" {
		_, err := fmt.Fprintln(out, version.GetInfo())
		return err
	}

	b, err := newBackend(ctx, opts)
	if err != nil {
		return err
	}

	var result []byte
	switch cmd {
	case "score":
		result, err = runScore(ctx, b, cmdArgs)
	case "unlabeled":
		result, err = runUnlabeled(ctx, b, cmdArgs)
	case "similarity":
		result, err = runSimilarity(ctx, b, cmdArgs)
	case "enqueue":
		result, err = runEnqueue(ctx, b, cmdArgs)
	case "status", "result":
		result, err = runJobLookup(ctx, b, cmd, cmdArgs)
	default:
		global.Usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
	if err != nil {
		return err
	}
	return writeJSON(out, result)
}

// backend is what every command needs: either the remote API or the
// in-process pipeline.
type backend interface {
	Score(ctx context.Context, document []byte, threshold float64, algorithm, format string) ([]byte, error)
	ScoreUnlabeled(ctx context.Context, document []byte, threshold float64, pairing string) ([]byte, error)
	Similarity(ctx context.Context, a, b string, threshold float64) ([]byte, error)
	Enqueue(ctx context.Context, document []byte, compare string, threshold float64) ([]byte, error)
	Status(ctx context.Context, jobID string) ([]byte, error)
	Result(ctx context.Context, jobID string) ([]byte, error)
}

func newBackend(ctx context.Context, opts globalOptions) (backend, error) {
	if opts.local {
		return newLocalBackend(ctx, opts.configPath)
	}
	return newAPIClient(opts.apiURL, httpx.NewClient(
		httpx.WithTimeout(opts.timeout),
		httpx.WithUserAgent("intentctl/"+version.Version),
	)), nil
}

func runScore(ctx context.Context, b backend, args []string) ([]byte, error) {
	fs := pflag.NewFlagSet("score", pflag.ContinueOnError)
	threshold := fs.Float64("threshold", similarity.DefaultThreshold, "minimum score")
	algorithm := fs.String("algorithm", request.AlgorithmIDPaired, "id_paired or index_matched")
	format := fs.String("format", request.FormatRecords, "records or legacy")
	document, err := parseDocumentArgs(fs, args)
	if err != nil {
		return nil, err
	}
	return b.Score(ctx, document, *threshold, *algorithm, *format)
}

func runUnlabeled(ctx context.Context, b backend, args []string) ([]byte, error) {
	fs := pflag.NewFlagSet("unlabeled", pflag.ContinueOnError)
	threshold := fs.Float64("threshold", similarity.DefaultThreshold, "minimum score")
	pairing := fs.String("pairing", string(pairs.ModeCombinations), "combinations or permutations")
	document, err := parseDocumentArgs(fs, args)
	if err != nil {
		return nil, err
	}
	return b.ScoreUnlabeled(ctx, document, *threshold, *pairing)
}

func runSimilarity(ctx context.Context, b backend, args []string) ([]byte, error) {
	fs := pflag.NewFlagSet("similarity", pflag.ContinueOnError)
	threshold := fs.Float64("threshold", similarity.DefaultThreshold, "minimum score")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 2 {
		return nil, errors.New("similarity expects exactly two strings")
	}
	return b.Similarity(ctx, fs.Arg(0), fs.Arg(1), *threshold)
}

func runEnqueue(ctx context.Context, b backend, args []string) ([]byte, error) {
	fs := pflag.NewFlagSet("enqueue", pflag.ContinueOnError)
	compare := fs.String("compare", string(job.CompareLabeled), "labeled or unlabeled")
	threshold := fs.Float64("threshold", similarity.DefaultThreshold, "minimum score")
	document, err := parseDocumentArgs(fs, args)
	if err != nil {
		return nil, err
	}
	return b.Enqueue(ctx, document, *compare, *threshold)
}

func runJobLookup(ctx context.Context, b backend, cmd string, args []string) ([]byte, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("%s expects a job ID", cmd)
	}
	if cmd == "status" {
		return b.Status(ctx, args[0])
	}
	return b.Result(ctx, args[0])
}

func parseDocumentArgs(fs *pflag.FlagSet, args []string) ([]byte, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 1 {
		return nil, fmt.Errorf("%s expects one input document path (use - for stdin)", fs.Name())
	}
	if fs.Arg(0) == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(fs.Arg(0))
}

func writeJSON(out io.Writer, data []byte) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		_, err = out.Write(data)
		return err
	}
	buf.WriteByte('\n')
	_, err := buf.WriteTo(out)
	return err
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
