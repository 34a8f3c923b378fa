package repository

import (
	"context"
	"sync"

	"amortizer/domain"
)

// LoanRepositoryMemory is an in-memory implementation of LoanRepository.
type LoanRepositoryMemory struct {
	mu   sync.RWMutex
	data []domain.Calculation
}

// NewLoanRepositoryMemory creates a new in-memory loan repository.
func NewLoanRepositoryMemory() *LoanRepositoryMemory {
	return &LoanRepositoryMemory{
		data: []domain.Calculation{},
	}
}

// Save stores the calculation in memory.
func (r *LoanRepositoryMemory) Save(_ context.Context, calc domain.Calculation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = append(r.data, calc)
	return nil
}

// Recent returns up to limit calculations, newest first. A non-positive limit returns all.
func (r *LoanRepositoryMemory) Recent(_ context.Context, limit int) ([]domain.Calculation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := len(r.data)
	if limit <= 0 || limit > n {
		limit = n
	}
	out := make([]domain.Calculation, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, r.data[i])
	}
	return out, nil
}
