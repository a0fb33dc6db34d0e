package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDocument = `{
  "name": "pocbot",
  "inputs": {
    "9": {"input": "order pizza", "classifier": {"label": "order"}},
    "2": {"input": "hello there", "classifier": {"label": null}},
    "5": {"input": "cancel order", "classifier": {"label": "cancel"}},
    "1": {"input": "order food", "classifier": {"label": "order"}},
    "7": {"input": "bye", "classifier": {"label": ""}}
  }
}`

func TestParse_PreservesDocumentOrder(t *testing.T) {
	ds, err := Parse([]byte(sampleDocument))
	require.NoError(t, err)

	var ids []string
	for _, u := range ds.Utterances() {
		ids = append(ids, u.ID)
	}
	assert.Equal(t, []string{"9", "2", "5", "1", "7"}, ids)
	assert.Equal(t, 5, ds.Len())
	assert.Equal(t, 3, ds.LabeledCount())
}

func TestParse_Labels(t *testing.T) {
	ds, err := Parse([]byte(sampleDocument))
	require.NoError(t, err)

	assert.Equal(t, "order", ds.Label("9"))
	assert.Equal(t, "cancel", ds.Label("5"))
	assert.Equal(t, "", ds.Label("2"))
	assert.Equal(t, "", ds.Label("7"))
	assert.Equal(t, "", ds.Label("missing"))
	assert.Equal(t, "order food", ds.Text("1"))

	u, ok := ds.Get("2")
	require.True(t, ok)
	assert.False(t, u.HasLabel())
}

func TestParse_InputShapeErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "invalid json", doc: `{"inputs": `},
		{name: "missing inputs", doc: `{"name": "bot"}`},
		{name: "inputs not an object", doc: `{"inputs": []}`},
		{name: "entry not an object", doc: `{"inputs": {"1": "text"}}`},
		{name: "missing input", doc: `{"inputs": {"1": {"classifier": {"label": "a"}}}}`},
		{name: "input not a string", doc: `{"inputs": {"1": {"input": 3, "classifier": {"label": "a"}}}}`},
		{name: "missing classifier", doc: `{"inputs": {"1": {"input": "x"}}}`},
		{name: "missing label", doc: `{"inputs": {"1": {"input": "x", "classifier": {}}}}`},
		{name: "label not a string", doc: `{"inputs": {"1": {"input": "x", "classifier": {"label": 1}}}}`},
		{name: "duplicate id", doc: `{"inputs": {"1": {"input": "x", "classifier": {"label": null}}, "1": {"input": "y", "classifier": {"label": null}}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := Parse([]byte(tt.doc))
			assert.Nil(t, ds)
			assert.ErrorIs(t, err, ErrInputShape)
		})
	}
}

func TestParse_EmptyInputs(t *testing.T) {
	ds, err := Parse([]byte(`{"inputs": {}}`))
	require.NoError(t, err)
	assert.Equal(t, 0, ds.Len())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bot.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleDocument), 0600))

	ds, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, ds.Len())

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestNew_RejectsEmptyID(t *testing.T) {
	_, err := New([]Utterance{{ID: "", Text: "x"}})
	assert.ErrorIs(t, err, ErrInputShape)
}
