package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryCalculationRepository is an in-memory CalculationRepository. History
// lives only as long as the process, which is all this service promises.
type MemoryCalculationRepository struct {
	mu      sync.RWMutex
	records map[string]CalculationRecord
	order   []string
}

// NewMemoryCalculationRepository creates an empty in-memory repository.
func NewMemoryCalculationRepository() *MemoryCalculationRepository {
	return &MemoryCalculationRepository{
		records: make(map[string]CalculationRecord),
	}
}

// Save stores the record under a fresh id and returns it.
func (r *MemoryCalculationRepository) Save(record CalculationRecord) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record.ID = uuid.NewString()
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	r.records[record.ID] = record
	r.order = append(r.order, record.ID)
	return record.ID, nil
}

// List returns all stored records in insertion order.
func (r *MemoryCalculationRepository) List() ([]CalculationRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]CalculationRecord, 0, len(r.order))
	for _, id := range r.order {
		if record, ok := r.records[id]; ok {
			out = append(out, record)
		}
	}
	return out, nil
}

// Get returns the record with the given id.
func (r *MemoryCalculationRepository) Get(id string) (CalculationRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[id]
	if !ok {
		return CalculationRecord{}, ErrNotFound
	}
	return record, nil
}

// Delete removes the record with the given id.
func (r *MemoryCalculationRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[id]; !ok {
		return ErrNotFound
	}
	delete(r.records, id)
	for i, stored := range r.order {
		if stored == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
