package indexer

import (
	"github.com/NeuralTrust/TrustIntent/pkg/domain/dataset"
)

// Item is an (id, text) tuple extracted from a dataset.
type Item struct {
	ID   string
	Text string
}

// Groups maps label -> items. Labels iterate in first-seen order and a label
// is only present once it holds at least one item.
type Groups struct {
	labels []string
	items  map[string][]Item
}

func (g *Groups) add(label string, item Item) {
	if g.items == nil {
		g.items = make(map[string][]Item)
	}
	if _, ok := g.items[label]; !ok {
		g.labels = append(g.labels, label)
	}
	g.items[label] = append(g.items[label], item)
}

func (g *Groups) Labels() []string {
	out := make([]string, len(g.labels))
	copy(out, g.labels)
	return out
}

func (g *Groups) Items(label string) []Item {
	return g.items[label]
}

// Len returns the total number of items across all labels.
func (g *Groups) Len() int {
	n := 0
	for _, items := range g.items {
		n += len(items)
	}
	return n
}

// LabeledGroups groups every utterance carrying a non-empty label.
func LabeledGroups(ds *dataset.Dataset) *Groups {
	g := &Groups{items: make(map[string][]Item)}
	for _, u := range ds.Utterances() {
		if !u.HasLabel() {
			continue
		}
		g.add(u.Label, Item{ID: u.ID, Text: u.Text})
	}
	return g
}

// UnlabeledItems returns every utterance without a label, in document order.
func UnlabeledItems(ds *dataset.Dataset) []Item {
	var items []Item
	for _, u := range ds.Utterances() {
		if u.HasLabel() {
			continue
		}
		items = append(items, Item{ID: u.ID, Text: u.Text})
	}
	return items
}

// Flatten returns all grouped items, label by label.
func Flatten(g *Groups) []Item {
	out := make([]Item, 0, g.Len())
	for _, label := range g.labels {
		out = append(out, g.items[label]...)
	}
	return out
}

// FlattenIDs and FlattenTexts walk the groups in the same order, so
// FlattenIDs(g)[i] identifies the utterance whose text is FlattenTexts(g)[i].
func FlattenIDs(g *Groups) []string {
	items := Flatten(g)
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	return ids
}

func FlattenTexts(g *Groups) []string {
	return Texts(Flatten(g))
}

func Texts(items []Item) []string {
	texts := make([]string, len(items))
	for i, item := range items {
		texts[i] = item.Text
	}
	return texts
}
