package dataset

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/valyala/fastjson"
)

const (
	inputsKey     = "inputs"
	inputKey      = "input"
	classifierKey = "classifier"
	labelKey      = "label"
)

// Parse decodes an input document of the form
//
//	{"inputs": {"<id>": {"input": "...", "classifier": {"label": "..." | null}}}}
//
// Utterances keep the key order of the "inputs" object.
func Parse(data []byte) (*Dataset, error) {
	var p fastjson.Parser
	root, err := p.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInputShape, err)
	}

	inputs := root.Get(inputsKey)
	if inputs == nil {
		return nil, fmt.Errorf("%w: missing %q", ErrInputShape, inputsKey)
	}
	obj, err := inputs.Object()
	if err != nil {
		return nil, fmt.Errorf("%w: %q must be an object", ErrInputShape, inputsKey)
	}

	var (
		utterances []Utterance
		parseErr   error
	)
	obj.Visit(func(key []byte, v *fastjson.Value) {
		if parseErr != nil {
			return
		}
		u, err := parseUtterance(string(key), v)
		if err != nil {
			parseErr = err
			return
		}
		utterances = append(utterances, u)
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return New(utterances)
}

// Load reads and parses an input document from disk.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read input document: %w", err)
	}
	return Parse(data)
}

func parseUtterance(id string, v *fastjson.Value) (Utterance, error) {
	if v.Type() != fastjson.TypeObject {
		return Utterance{}, fmt.Errorf("%w: input %q must be an object", ErrInputShape, id)
	}

	input := v.Get(inputKey)
	if input == nil {
		return Utterance{}, fmt.Errorf("%w: input %q has no %q", ErrInputShape, id, inputKey)
	}
	text, err := input.StringBytes()
	if err != nil {
		return Utterance{}, fmt.Errorf("%w: input %q: %q must be a string", ErrInputShape, id, inputKey)
	}

	classifier := v.Get(classifierKey)
	if classifier == nil || classifier.Type() != fastjson.TypeObject {
		return Utterance{}, fmt.Errorf("%w: input %q has no %q object", ErrInputShape, id, classifierKey)
	}
	label := classifier.Get(labelKey)
	if label == nil {
		return Utterance{}, fmt.Errorf("%w: input %q has no %s.%s", ErrInputShape, id, classifierKey, labelKey)
	}

	u := Utterance{ID: id, Text: string(text)}
	switch label.Type() {
	case fastjson.TypeNull:
	case fastjson.TypeString:
		u.Label = string(label.GetStringBytes())
	default:
		return Utterance{}, fmt.Errorf("%w: input %q: label must be a string or null", ErrInputShape, id)
	}
	return u, nil
}
