// Package registry holds the authoritative in-memory customer store. It
// applies typed add/delete actions, computing score, tier, and key facts at
// insert time, and supports the permissive fuzzy-name delete the command
// surface exposes.
package registry

import (
	"fmt"
	"strings"
	"sync"

	"github.com/abhisek/leadvane/internal/keyfact"
	"github.com/abhisek/leadvane/internal/scoring"
)

// Record is one customer entry, keyed by email in the registry.
type Record struct {
	Name     string       `json:"name"`
	Email    string       `json:"email"`
	RawInput string       `json:"raw_input"`
	KeyInfo  string       `json:"key_info"`
	Score    int          `json:"score"`
	Category scoring.Tier `json:"category"`
}

// Status classifies the outcome of a registry operation.
type Status string

const (
	StatusAdded    Status = "added"
	StatusExists   Status = "exists"
	StatusDeleted  Status = "deleted"
	StatusNotFound Status = "not_found"
	StatusUpdated  Status = "updated"
	StatusInvalid  Status = "invalid"
)

// Outcome is the determinate result of a registry operation. Duplicate adds
// and missing deletes are normal outcomes, never errors.
type Outcome struct {
	Status  Status
	Message string
	Record  *Record
}

// Registry maps email to customer record. Mutations are serialized behind a
// RWMutex so the fuzzy-delete scan always sees a stable snapshot, and
// iteration follows insertion order for deterministic display.
type Registry struct {
	mu      sync.RWMutex
	records map[string]*Record
	order   []string
}

// New creates an empty registry. One registry lives per process; it is
// constructed at startup and injected into everything that mutates it.
func New() *Registry {
	return &Registry{records: make(map[string]*Record)}
}

// Add normalizes the name, scores and annotates the utterance, and inserts
// a new record. Adding an email that already exists leaves the stored
// record untouched.
func (r *Registry) Add(name, email, rawInput string) Outcome {
	display := Normalize(name)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[email]; ok {
		return Outcome{
			Status:  StatusExists,
			Message: fmt.Sprintf("Customer %s already exists.", display),
		}
	}

	score := scoring.Score(rawInput)
	rec := &Record{
		Name:     display,
		Email:    email,
		RawInput: rawInput,
		KeyInfo:  keyfact.Extract(rawInput),
		Score:    score,
		Category: scoring.Classify(score),
	}
	r.records[email] = rec
	r.order = append(r.order, email)

	return Outcome{
		Status:  StatusAdded,
		Message: fmt.Sprintf("Customer %s added successfully (score %d, %s).", display, rec.Score, rec.Category),
		Record:  rec,
	}
}

// Delete removes the first record, in insertion order, whose stored name
// contains the given name as a case-insensitive substring. Deliberately
// permissive: with several similarly named customers the earliest insertion
// wins.
func (r *Registry) Delete(name string) Outcome {
	needle := strings.ToLower(Normalize(name))

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, email := range r.order {
		rec := r.records[email]
		if strings.Contains(strings.ToLower(rec.Name), needle) {
			delete(r.records, email)
			r.order = append(r.order[:i], r.order[i+1:]...)
			return Outcome{
				Status:  StatusDeleted,
				Message: fmt.Sprintf("Customer '%s' deleted successfully.", rec.Name),
				Record:  rec,
			}
		}
	}

	return Outcome{
		Status:  StatusNotFound,
		Message: fmt.Sprintf("No customer found matching '%s'.", name),
	}
}

// Patch holds optional field overrides for EditInPlace. Nil fields are left
// unchanged.
type Patch struct {
	Name     *string
	Email    *string
	Score    *int
	Category *scoring.Tier
	KeyInfo  *string
}

// EditInPlace overwrites record fields directly, bypassing the scorer and
// extractor. This is the manual override path: score and category may
// diverge here, and 96-100 is reachable only this way. Validation happens
// before any field is touched, so an invalid patch leaves the record as it
// was.
func (r *Registry) EditInPlace(email string, patch Patch) Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[email]
	if !ok {
		return Outcome{
			Status:  StatusNotFound,
			Message: fmt.Sprintf("No customer found with email '%s'.", email),
		}
	}

	if patch.Score != nil && (*patch.Score < 0 || *patch.Score > 100) {
		return Outcome{
			Status:  StatusInvalid,
			Message: fmt.Sprintf("Score must be between 0 and 100, got %d.", *patch.Score),
		}
	}
	if patch.Category != nil && !patch.Category.Valid() {
		return Outcome{
			Status:  StatusInvalid,
			Message: fmt.Sprintf("Unknown category '%s'.", *patch.Category),
		}
	}
	if patch.Email != nil && *patch.Email != email {
		if _, taken := r.records[*patch.Email]; taken {
			return Outcome{
				Status:  StatusInvalid,
				Message: fmt.Sprintf("Email '%s' is already in use.", *patch.Email),
			}
		}
	}

	if patch.Name != nil {
		rec.Name = *patch.Name
	}
	if patch.Score != nil {
		rec.Score = *patch.Score
	}
	if patch.Category != nil {
		rec.Category = *patch.Category
	}
	if patch.KeyInfo != nil {
		rec.KeyInfo = *patch.KeyInfo
	}
	if patch.Email != nil && *patch.Email != email {
		delete(r.records, email)
		r.records[*patch.Email] = rec
		rec.Email = *patch.Email
		for i, e := range r.order {
			if e == email {
				r.order[i] = *patch.Email
				break
			}
		}
	}

	return Outcome{
		Status:  StatusUpdated,
		Message: fmt.Sprintf("Customer %s updated.", rec.Name),
		Record:  rec,
	}
}

// DeleteByKey removes the record with the exact email. No-op when absent.
func (r *Registry) DeleteByKey(email string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[email]; !ok {
		return
	}
	delete(r.records, email)
	for i, e := range r.order {
		if e == email {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Get returns a copy of the record for an email.
func (r *Registry) Get(email string) (Record, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.records[email]
	if !ok {
		return Record{}, false
	}
	return *rec, true
}

// Records returns a snapshot of all records in insertion order.
func (r *Registry) Records() []Record {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Record, 0, len(r.order))
	for _, email := range r.order {
		out = append(out, *r.records[email])
	}
	return out
}

// Len returns the number of stored customers.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}

// HotLeadCount reports how many customers sit in the Gold or Platinum tier.
func (r *Registry) HotLeadCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, rec := range r.records {
		if rec.Category == scoring.TierGold || rec.Category == scoring.TierPlatinum {
			n++
		}
	}
	return n
}
