package in

import (
	"context"

	"github.com/agendazap/slot-suggester/internal/core/domain"
)

type SuggestionUseCase interface {
	// SuggestSlots computes the bounded, ordered list of legal future slots
	// for one request. The only error it can return is an unusable request
	// (unknown timezone); empty-result conditions are not errors.
	SuggestSlots(ctx context.Context, req *domain.SuggestionRequest) (*domain.SuggestionResult, error)
}
