package repository

import (
	"context"

	"amortizer/domain"
)

type LoanRepository interface {
	Save(ctx context.Context, calc domain.Calculation) error
	Recent(ctx context.Context, limit int) ([]domain.Calculation, error)
}
