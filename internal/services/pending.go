package services

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultPendingTTL bounds how long a staged value waits for its
// confirmation before it silently lapses.
const DefaultPendingTTL = 10 * time.Minute

type pendingAnalysis struct {
	sourceText string
	estimate   NutritionEstimate
	expiresAt  time.Time
}

type pendingImport struct {
	table     *MetricTable
	mapping   ColumnMapping
	expiresAt time.Time
}

// PendingStore stages values that wait for an explicit user decision: an
// analyzed meal before it becomes a row, a parsed upload before it is
// committed. Entries live in memory only, keyed by opaque tokens, and are
// pruned lazily whenever the store is touched. Nothing here survives a
// restart and nothing is written until the user confirms.
type PendingStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	analyses map[string]pendingAnalysis
	imports  map[string]pendingImport
}

func NewPendingStore(ttl time.Duration) *PendingStore {
	if ttl <= 0 {
		ttl = DefaultPendingTTL
	}
	return &PendingStore{
		ttl:      ttl,
		analyses: make(map[string]pendingAnalysis),
		imports:  make(map[string]pendingImport),
	}
}

// StageAnalysis parks an estimate with the text that produced it and returns
// the token the confirmation must present.
func (store *PendingStore) StageAnalysis(sourceText string, estimate NutritionEstimate, now time.Time) string {
	token := uuid.NewString()
	store.mu.Lock()
	defer store.mu.Unlock()
	store.pruneLocked(now)
	store.analyses[token] = pendingAnalysis{
		sourceText: sourceText,
		estimate:   estimate,
		expiresAt:  now.Add(store.ttl),
	}
	return token
}

// TakeAnalysis consumes a staged estimate. A token that was never issued,
// was already consumed, or has expired comes back not-ok.
func (store *PendingStore) TakeAnalysis(token string, now time.Time) (NutritionEstimate, string, bool) {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.pruneLocked(now)
	entry, ok := store.analyses[token]
	if !ok {
		return NutritionEstimate{}, "", false
	}
	delete(store.analyses, token)
	return entry.estimate, entry.sourceText, true
}

// DropAnalysis discards a staged estimate without storing anything.
func (store *PendingStore) DropAnalysis(token string, now time.Time) bool {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.pruneLocked(now)
	_, ok := store.analyses[token]
	delete(store.analyses, token)
	return ok
}

// StageImport parks a parsed upload behind a token until commit or cancel.
func (store *PendingStore) StageImport(table *MetricTable, mapping ColumnMapping, now time.Time) string {
	token := uuid.NewString()
	store.mu.Lock()
	defer store.mu.Unlock()
	store.pruneLocked(now)
	store.imports[token] = pendingImport{
		table:     table,
		mapping:   mapping,
		expiresAt: now.Add(store.ttl),
	}
	return token
}

// TakeImport consumes a staged upload for committing.
func (store *PendingStore) TakeImport(token string, now time.Time) (*MetricTable, ColumnMapping, bool) {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.pruneLocked(now)
	entry, ok := store.imports[token]
	if !ok {
		return nil, nil, false
	}
	delete(store.imports, token)
	return entry.table, entry.mapping, true
}

// DropImport discards a staged upload.
func (store *PendingStore) DropImport(token string, now time.Time) bool {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.pruneLocked(now)
	_, ok := store.imports[token]
	delete(store.imports, token)
	return ok
}

func (store *PendingStore) pruneLocked(now time.Time) {
	for token, entry := range store.analyses {
		if entry.expiresAt.Before(now) {
			delete(store.analyses, token)
		}
	}
	for token, entry := range store.imports {
		if entry.expiresAt.Before(now) {
			delete(store.imports, token)
		}
	}
}
