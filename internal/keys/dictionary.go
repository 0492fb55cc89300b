// Package keys renames document keys between project names and DHPD wire
// names. Dictionaries are static and loaded once from dictionaries.yaml.
package keys

import (
	"errors"
	"fmt"
)

// Direction selects which side of a dictionary a key is looked up on.
type Direction int

const (
	// ToWire renames project keys to wire keys.
	ToWire Direction = iota
	// ToModel renames wire keys back to project keys.
	ToModel
)

func (d Direction) String() string {
	if d == ToModel {
		return "to-model"
	}
	return "to-wire"
}

// Pair is one project/wire key correspondence.
type Pair struct {
	From string // Project key
	To   string // Wire key
}

// Dictionary is an ordered list of key pairs. Several project keys may
// share one wire key; renaming towards the model then picks the first.
type Dictionary struct {
	name    string
	pairs   []Pair
	forward map[string]string
	reverse map[string]string
}

var (
	ErrEmptyKey     = errors.New("empty key")
	ErrDuplicateKey = errors.New("duplicate source key")
)

// NewDictionary builds a dictionary from pairs in declaration order.
func NewDictionary(name string, pairs ...Pair) (*Dictionary, error) {
	d := &Dictionary{
		name:    name,
		pairs:   make([]Pair, 0, len(pairs)),
		forward: make(map[string]string, len(pairs)),
		reverse: make(map[string]string, len(pairs)),
	}
	for _, p := range pairs {
		if p.From == "" || p.To == "" {
			return nil, fmt.Errorf("dictionary %s: %w", name, ErrEmptyKey)
		}
		if _, dup := d.forward[p.From]; dup {
			return nil, fmt.Errorf("dictionary %s key %s: %w", name, p.From, ErrDuplicateKey)
		}
		d.forward[p.From] = p.To
		if _, seen := d.reverse[p.To]; !seen {
			d.reverse[p.To] = p.From
		}
		d.pairs = append(d.pairs, p)
	}
	return d, nil
}

// Name returns the dictionary's name in dictionaries.yaml.
func (d *Dictionary) Name() string { return d.name }

// Lookup returns the renamed key.
func (d *Dictionary) Lookup(key string, dir Direction) (string, bool) {
	var to string
	var ok bool
	if dir == ToModel {
		to, ok = d.reverse[key]
	} else {
		to, ok = d.forward[key]
	}
	return to, ok
}

// Pairs returns a copy of the pairs in declaration order.
func (d *Dictionary) Pairs() []Pair {
	out := make([]Pair, len(d.pairs))
	copy(out, d.pairs)
	return out
}

// Sources returns the project keys in declaration order.
func (d *Dictionary) Sources() []string {
	out := make([]string, len(d.pairs))
	for i, p := range d.pairs {
		out[i] = p.From
	}
	return out
}

// Targets returns the distinct wire keys in declaration order.
func (d *Dictionary) Targets() []string {
	out := make([]string, 0, len(d.pairs))
	seen := make(map[string]bool, len(d.pairs))
	for _, p := range d.pairs {
		if !seen[p.To] {
			seen[p.To] = true
			out = append(out, p.To)
		}
	}
	return out
}

// Keys returns the keys of one side: Targets for ToWire, Sources for ToModel.
func (d *Dictionary) Keys(dir Direction) []string {
	if dir == ToModel {
		return d.Sources()
	}
	return d.Targets()
}
