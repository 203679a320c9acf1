package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/aaltjes/internal/adapters/driven/validation"
	"github.com/custodia-labs/aaltjes/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/aaltjes/internal/core/domain"
	"github.com/custodia-labs/aaltjes/internal/core/ports/driving"
)

func intPtr(v int) *int { return &v }

func newTestResult() *driving.ParseResult {
	return &driving.ParseResult{
		OriginalFilename: "2004537.pdf",
		Text:             "...",
		Document: domain.ParsedDocument{
			LabName: "HLB",
			Samples: []domain.Sample{{
				SampleNumber: "2004537",
				PDFFieldName: "H1",
				ReceivedDate: "24 maart 2020",
				ReportDate:   "27 maart 2020",
				Measurements: []domain.Measurement{
					{AnalyteKey: "Pratylenchus penetrans", Value: 40, Unit: domain.MeasurementUnit, Category: "Wortellesieaaltjes"},
					{AnalyteKey: "Meloidogyne hapla", Value: 1200, Unit: domain.MeasurementUnit},
				},
				CystResult: &domain.CystResult{CystCount: intPtr(62), LLECount: intPtr(2525), InfestationGrade: "zwaar besmet"},
			}},
			Warnings: []string{},
		},
	}
}

func newTestReview(t *testing.T) *Review {
	t.Helper()
	r, err := NewReview(newTestResult())
	require.NoError(t, err)
	return r
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press sends msg and feeds any resulting message back into the model.
func press(t *testing.T, r *Review, msg tea.Msg) tea.Cmd {
	t.Helper()
	_, cmd := r.Update(msg)
	if cmd == nil {
		return nil
	}
	follow := cmd()
	switch follow.(type) {
	case messages.Decided, messages.FieldNameEdited:
		_, cmd = r.Update(follow)
		return cmd
	}
	return cmd
}

func TestNewReview_Errors(t *testing.T) {
	_, err := NewReview(nil)
	assert.ErrorIs(t, err, ErrMissingResult)

	_, err = NewReview(&driving.ParseResult{})
	assert.ErrorIs(t, err, ErrNoSample)
}

func TestNewReview_Defaults(t *testing.T) {
	r := newTestReview(t)

	assert.Equal(t, messages.DecisionPending, r.Decision())
	assert.False(t, r.Editing())
	assert.Equal(t, 0, r.Offset())
	assert.Nil(t, r.Init())
}

func TestReview_ViewShowsExtraction(t *testing.T) {
	r := newTestReview(t)

	view := r.View()

	assert.Contains(t, view, "Review 2004537.pdf")
	assert.Contains(t, view, "2004537")
	assert.Contains(t, view, "H1")
	assert.Contains(t, view, "27 maart 2020")
	assert.Contains(t, view, "Metingen (2)")
	assert.Contains(t, view, "Pratylenchus penetrans")
	assert.Contains(t, view, "1200")
	assert.Contains(t, view, "Wortellesieaaltjes")
	assert.Contains(t, view, "zwaar besmet")
	assert.Contains(t, view, "2525")
	assert.Contains(t, view, "No warnings")
}

func TestReview_ViewShowsMissingValuesAndWarnings(t *testing.T) {
	result := &driving.ParseResult{Document: domain.ParsedDocument{
		Samples:  []domain.Sample{{}},
		Warnings: []string{"no sample number found", "no measurements found"},
	}}
	r, err := NewReview(result)
	require.NoError(t, err)

	view := r.View()

	assert.Contains(t, view, "Review report")
	assert.Contains(t, view, notFound)
	assert.Contains(t, view, "geen metingen gevonden")
	assert.Contains(t, view, "Waarschuwingen (2)")
	assert.Contains(t, view, "! no measurements found")
	assert.Contains(t, view, "2 warnings")
	assert.NotContains(t, view, "Aardappelcysteaaltjes")
}

func TestReview_Accept(t *testing.T) {
	r := newTestReview(t)

	cmd := press(t, r, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, messages.DecisionAccepted, r.Decision())
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestReview_Reject(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
	}{
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}},
		{"q", keyRunes("q")},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestReview(t)

			cmd := press(t, r, tt.msg)

			assert.Equal(t, messages.DecisionRejected, r.Decision())
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
		})
	}
}

func TestReview_EditFieldName(t *testing.T) {
	r := newTestReview(t)

	press(t, r, keyRunes("e"))
	require.True(t, r.Editing())

	// q and enter belong to the editor while editing
	for _, k := range []string{" ", "q"} {
		press(t, r, keyRunes(k))
	}
	press(t, r, tea.KeyMsg{Type: tea.KeyBackspace})
	press(t, r, tea.KeyMsg{Type: tea.KeyBackspace})
	press(t, r, keyRunes("-noord"))

	press(t, r, tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, r.Editing())
	assert.Equal(t, messages.DecisionPending, r.Decision())
	assert.Equal(t, "H1-noord", r.Document().Samples[0].PDFFieldName)
	assert.Contains(t, r.View(), `Field name set to "H1-noord"`)
}

func TestReview_EditTrimsName(t *testing.T) {
	r := newTestReview(t)

	press(t, r, keyRunes("e"))
	press(t, r, keyRunes("  "))
	press(t, r, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, "H1", r.Document().Samples[0].PDFFieldName)
}

func TestReview_EditCancel(t *testing.T) {
	r := newTestReview(t)

	press(t, r, keyRunes("e"))
	press(t, r, keyRunes("xyz"))
	press(t, r, tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, r.Editing())
	assert.Equal(t, messages.DecisionPending, r.Decision())
	assert.Equal(t, "H1", r.Document().Samples[0].PDFFieldName)

	// A second esc rejects
	press(t, r, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, messages.DecisionRejected, r.Decision())
}

func TestReview_EditDoesNotTouchCallerResult(t *testing.T) {
	result := newTestResult()
	r, err := NewReview(result)
	require.NoError(t, err)

	press(t, r, keyRunes("e"))
	press(t, r, keyRunes("2"))
	press(t, r, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, "H12", r.Document().Samples[0].PDFFieldName)
	assert.Equal(t, "H1", result.Document.Samples[0].PDFFieldName)
}

func TestReview_CtrlCWhileEditingRejects(t *testing.T) {
	r := newTestReview(t)

	press(t, r, keyRunes("e"))
	press(t, r, tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.Equal(t, messages.DecisionRejected, r.Decision())
}

func TestReview_Scroll(t *testing.T) {
	r := newTestReview(t)
	total := len(r.bodyLines())

	r.Update(tea.WindowSizeMsg{Width: 80, Height: chromeLines + 5})
	visible := r.visibleLines()
	require.Equal(t, 5, visible)

	press(t, r, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, r.Offset())

	press(t, r, tea.KeyMsg{Type: tea.KeyDown})
	press(t, r, keyRunes("j"))
	assert.Equal(t, 2, r.Offset())

	for i := 0; i < total; i++ {
		press(t, r, tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, total-visible, r.Offset())

	press(t, r, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, total-visible-1, r.Offset())
}

func TestReview_ResizeClampsOffset(t *testing.T) {
	r := newTestReview(t)
	r.Update(tea.WindowSizeMsg{Width: 80, Height: chromeLines + 3})
	for i := 0; i < 10; i++ {
		press(t, r, tea.KeyMsg{Type: tea.KeyDown})
	}
	require.Positive(t, r.Offset())

	r.Update(tea.WindowSizeMsg{Width: 80, Height: 200})

	assert.Equal(t, 0, r.Offset())
}

func TestReview_ViewWindowed(t *testing.T) {
	r := newTestReview(t)
	r.Update(tea.WindowSizeMsg{Width: 100, Height: chromeLines + 2})

	view := r.View()

	assert.Contains(t, view, "Monsternummer")
	assert.NotContains(t, view, "Pratylenchus penetrans")
}

func TestReview_DocumentWithoutWarningsValidates(t *testing.T) {
	validator, err := validation.New()
	require.NoError(t, err)

	tests := []struct {
		name     string
		warnings []string
	}{
		{"empty", []string{}},
		{"nil", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := newTestResult()
			result.Document.Warnings = tt.warnings

			r, err := NewReview(result)
			require.NoError(t, err)
			press(t, r, tea.KeyMsg{Type: tea.KeyEnter})

			doc := r.Document()
			assert.NotNil(t, doc.Warnings)
			assert.Empty(t, doc.Warnings)
			assert.NoError(t, validator.Validate(&doc))
		})
	}
}
