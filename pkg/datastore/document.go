package datastore

import (
	"encoding/json"
	"sort"

	"github.com/arthur-debert/agentkit/pkg/types"
)

const (
	keyDisabled = "disabled"
	keyTargets  = "targets"
)

// Document is the decoded Config Store
type Document struct {
	// Disabled maps a category name to the disabled item names in it
	Disabled map[string][]string
	// Targets lists installed editor target ids
	Targets []string

	// extra holds top-level keys this version does not interpret
	extra map[string]json.RawMessage
	// extraDisabled holds entries under "disabled" that are not name lists
	extraDisabled map[string]json.RawMessage
}

// NewDocument returns the empty document: nothing disabled, nothing installed
func NewDocument() *Document {
	return &Document{
		Disabled: map[string][]string{},
		Targets:  []string{},

		extra:         map[string]json.RawMessage{},
		extraDisabled: map[string]json.RawMessage{},
	}
}

// Decode parses data into a document. Only invalid JSON as a whole is an
// error. A "disabled" entry that is not a list of names is kept verbatim and
// written back by Encode; other known fields of the wrong shape are dropped.
func Decode(data []byte) (*Document, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	doc := NewDocument()
	for key, value := range raw {
		switch key {
		case keyDisabled:
			doc.decodeDisabled(value)
		case keyTargets:
			var targets []string
			if err := json.Unmarshal(value, &targets); err == nil {
				doc.Targets = normalize(targets)
			}
		default:
			doc.extra[key] = value
		}
	}
	return doc, nil
}

func (d *Document) decodeDisabled(value json.RawMessage) {
	var entries map[string]json.RawMessage
	if err := json.Unmarshal(value, &entries); err != nil {
		return
	}
	for category, raw := range entries {
		var names []string
		if err := json.Unmarshal(raw, &names); err != nil {
			d.extraDisabled[category] = raw
			continue
		}
		d.Disabled[category] = normalize(names)
	}
}

// Encode renders the document as indented JSON with a trailing newline.
// Keys are sorted so equal documents encode identically.
func (d *Document) Encode() ([]byte, error) {
	out := make(map[string]interface{}, len(d.extra)+2)
	for key, value := range d.extra {
		out[key] = value
	}

	disabled := make(map[string]interface{}, len(d.Disabled)+len(d.extraDisabled))
	for category, raw := range d.extraDisabled {
		disabled[category] = raw
	}
	for category, names := range d.Disabled {
		if len(names) > 0 {
			disabled[category] = normalize(names)
		}
	}
	out[keyDisabled] = disabled
	out[keyTargets] = normalize(d.Targets)

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// IsDisabled reports whether name is in the category's disabled set
func (d *Document) IsDisabled(category types.Category, name string) bool {
	return contains(d.Disabled[string(category)], name)
}

// Disable adds name to the category's disabled set. It reports whether the
// document changed.
func (d *Document) Disable(category types.Category, name string) bool {
	key := string(category)
	if contains(d.Disabled[key], name) {
		return false
	}
	d.Disabled[key] = normalize(append(d.Disabled[key], name))
	return true
}

// Enable removes name from the category's disabled set. It reports whether
// the document changed.
func (d *Document) Enable(category types.Category, name string) bool {
	key := string(category)
	if !contains(d.Disabled[key], name) {
		return false
	}
	d.Disabled[key] = remove(d.Disabled[key], name)
	if len(d.Disabled[key]) == 0 {
		delete(d.Disabled, key)
	}
	return true
}

// AddTarget records a target as installed. It reports whether the document changed.
func (d *Document) AddTarget(id string) bool {
	if contains(d.Targets, id) {
		return false
	}
	d.Targets = normalize(append(d.Targets, id))
	return true
}

// RemoveTarget forgets a target. It reports whether the document changed.
func (d *Document) RemoveTarget(id string) bool {
	if !contains(d.Targets, id) {
		return false
	}
	d.Targets = remove(d.Targets, id)
	return true
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func remove(list []string, s string) []string {
	out := make([]string, 0, len(list))
	for _, v := range list {
		if v != s {
			out = append(out, v)
		}
	}
	return out
}

// normalize returns a sorted copy of list without duplicates or empty names
func normalize(list []string) []string {
	seen := map[string]bool{}
	out := make([]string, 0, len(list))
	for _, v := range list {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
