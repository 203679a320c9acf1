package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/aaltjes/internal/core/ports/driving"
)

// RunReview shows result full screen and blocks until the operator
// decides. The returned review holds the decision and the edited document.
func RunReview(ctx context.Context, result *driving.ParseResult, opts ...tea.ProgramOption) (*Review, error) {
	review, err := NewReview(result)
	if err != nil {
		return nil, err
	}

	opts = append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, opts...)
	if _, err := tea.NewProgram(review, opts...).Run(); err != nil {
		return nil, fmt.Errorf("review: %w", err)
	}
	return review, nil
}
