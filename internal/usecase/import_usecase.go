package usecase

import (
	"context"
	"io"

	"leadhub/internal/domain/entity"
)

// ImportSummary counts the outcome of a bulk vendor import.
type ImportSummary struct {
	Rows     int `json:"rows"`
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
	Failed   int `json:"failed"`
}

// ImportUsecase defines bulk onboarding of vendors from a CSV export.
type ImportUsecase interface {
	// ImportVendors processes every data row in its own transaction.
	// Row failures are counted, never returned.
	ImportVendors(ctx context.Context, caller *entity.Caller, r io.Reader) (*ImportSummary, error)
}
