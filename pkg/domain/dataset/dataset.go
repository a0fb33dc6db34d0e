package dataset

import (
	"fmt"
)

// Utterance is one text sample of a dataset. An empty Label means unlabeled.
type Utterance struct {
	ID    string `json:"id"`
	Text  string `json:"input"`
	Label string `json:"label,omitempty"`
}

func (u Utterance) HasLabel() bool {
	return u.Label != ""
}

// Dataset is an ordered, read-only collection of utterances addressable by ID.
type Dataset struct {
	utterances []Utterance
	index      map[string]int
}

// New builds a Dataset keeping the given order. IDs must be unique.
func New(utterances []Utterance) (*Dataset, error) {
	ds := &Dataset{
		utterances: make([]Utterance, 0, len(utterances)),
		index:      make(map[string]int, len(utterances)),
	}
	for _, u := range utterances {
		if u.ID == "" {
			return nil, fmt.Errorf("%w: utterance with empty id", ErrInputShape)
		}
		if _, ok := ds.index[u.ID]; ok {
			return nil, fmt.Errorf("%w: duplicate input id %q", ErrInputShape, u.ID)
		}
		ds.index[u.ID] = len(ds.utterances)
		ds.utterances = append(ds.utterances, u)
	}
	return ds, nil
}

func (d *Dataset) Len() int {
	return len(d.utterances)
}

// Utterances returns a copy of the utterances in document order.
func (d *Dataset) Utterances() []Utterance {
	out := make([]Utterance, len(d.utterances))
	copy(out, d.utterances)
	return out
}

func (d *Dataset) Get(id string) (Utterance, bool) {
	i, ok := d.index[id]
	if !ok {
		return Utterance{}, false
	}
	return d.utterances[i], true
}

// Label returns the label of the utterance with the given id, empty when the
// utterance is unlabeled or unknown.
func (d *Dataset) Label(id string) string {
	u, _ := d.Get(id)
	return u.Label
}

func (d *Dataset) Text(id string) string {
	u, _ := d.Get(id)
	return u.Text
}

func (d *Dataset) LabeledCount() int {
	n := 0
	for _, u := range d.utterances {
		if u.HasLabel() {
			n++
		}
	}
	return n
}
