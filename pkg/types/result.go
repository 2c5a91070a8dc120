package types

import (
	"fmt"
	"sort"
	"strings"
)

// SyncStatus is the outcome of one filesystem sync primitive
type SyncStatus string

const (
	StatusCreated SyncStatus = "created"
	StatusUpdated SyncStatus = "updated"
	StatusExists  SyncStatus = "exists"
	StatusSkipped SyncStatus = "skipped"
	StatusRemoved SyncStatus = "removed"
	StatusError   SyncStatus = "error"
)

// statusOrder fixes the order statuses are reported in
var statusOrder = []SyncStatus{
	StatusCreated, StatusUpdated, StatusExists, StatusSkipped, StatusRemoved, StatusError,
}

// Result is the discriminated outcome of one primitive on one path
type Result struct {
	Status   SyncStatus `json:"status"`
	Path     string     `json:"path"`
	Target   string     `json:"target,omitempty"`
	Message  string     `json:"message,omitempty"`
	Category Category   `json:"category,omitempty"`
	Name     string     `json:"name,omitempty"`
}

// ErrorResult builds an error result carrying err's message
func ErrorResult(path string, err error) Result {
	return Result{Status: StatusError, Path: path, Message: err.Error()}
}

// Changed reports whether the result modified the filesystem
func (r Result) Changed() bool {
	return r.Status == StatusCreated || r.Status == StatusUpdated || r.Status == StatusRemoved
}

// Tally is a multiset count of result statuses
type Tally map[SyncStatus]int

// NewTally counts results by status
func NewTally(results []Result) Tally {
	t := Tally{}
	for _, r := range results {
		t[r.Status]++
	}
	return t
}

// Add merges another tally into t
func (t Tally) Add(other Tally) {
	for status, n := range other {
		t[status] += n
	}
}

// Count returns the number of results with the given status
func (t Tally) Count(status SyncStatus) int {
	return t[status]
}

// Total returns the number of results counted
func (t Tally) Total() int {
	total := 0
	for _, n := range t {
		total += n
	}
	return total
}

// String renders non-zero counts, e.g. "3 created, 1 exists"
func (t Tally) String() string {
	var parts []string
	for _, status := range statusOrder {
		if n := t[status]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, status))
		}
	}
	if len(parts) == 0 {
		return "nothing to do"
	}
	return strings.Join(parts, ", ")
}

// Statuses returns the statuses present in t in report order
func (t Tally) Statuses() []SyncStatus {
	var out []SyncStatus
	for _, status := range statusOrder {
		if t[status] > 0 {
			out = append(out, status)
		}
	}
	return out
}

// SortResults orders results by path for stable output
func SortResults(results []Result) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Path < results[j].Path
	})
}
