package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/aaltjes/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/aaltjes/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/aaltjes/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/aaltjes/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/aaltjes/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/aaltjes/internal/core/domain"
	"github.com/custodia-labs/aaltjes/internal/core/ports/driving"
)

const notFound = "niet gevonden"

// chromeLines is the number of lines around the scrollable body:
// title, two spacers and the status bar.
const chromeLines = 4

// Review presents one parsed report for the operator to accept or reject.
// It implements tea.Model for use with Bubbletea.
type Review struct {
	filename string
	doc      domain.ParsedDocument

	styles *styles.Styles
	keys   *keymap.KeyMap
	input  *input.FieldNameInput
	bar    *status.Bar

	editing  bool
	decision messages.Decision
	offset   int

	width  int
	height int
}

// Ensure Review implements tea.Model.
var _ tea.Model = (*Review)(nil)

// NewReview creates a review of result. The document is copied so edits
// never touch the caller's result.
func NewReview(result *driving.ParseResult) (*Review, error) {
	if result == nil {
		return nil, ErrMissingResult
	}
	if len(result.Document.Samples) == 0 {
		return nil, ErrNoSample
	}

	doc := result.Document
	doc.Samples = append([]domain.Sample(nil), result.Document.Samples...)
	// Warnings must stay a non-nil slice so it serialises as [].
	doc.Warnings = append(make([]string, 0, len(result.Document.Warnings)), result.Document.Warnings...)

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()
	bar := status.NewBar(s, km)
	bar.SetWarnings(len(doc.Warnings))

	return &Review{
		filename: result.OriginalFilename,
		doc:      doc,
		styles:   s,
		keys:     km,
		input:    input.NewFieldNameInput(s, doc.Samples[0].PDFFieldName),
		bar:      bar,
	}, nil
}

// Init implements tea.Model.
func (r *Review) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (r *Review) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width = msg.Width
		r.height = msg.Height
		r.bar.SetWidth(msg.Width)
		r.input.SetWidth(msg.Width)
		r.scroll(0)
		return r, nil

	case messages.FieldNameEdited:
		r.doc.Samples[0].PDFFieldName = msg.Name
		r.bar.SetMessage("Field name set to " + strconv.Quote(msg.Name))
		return r, nil

	case messages.Decided:
		r.decision = msg.Decision
		return r, tea.Quit

	case tea.KeyMsg:
		if r.editing {
			return r.updateEditing(msg)
		}
		return r.updateReviewing(msg)
	}

	return r, nil
}

func (r *Review) updateReviewing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, r.keys.Quit), key.Matches(msg, r.keys.Reject):
		return r, decide(messages.DecisionRejected)
	case key.Matches(msg, r.keys.Accept):
		return r, decide(messages.DecisionAccepted)
	case key.Matches(msg, r.keys.Edit):
		r.editing = true
		r.bar.SetState(status.StateEditing)
		r.bar.SetMessage("")
		r.input.SetValue(r.doc.Samples[0].PDFFieldName)
		return r, r.input.Focus()
	case key.Matches(msg, r.keys.Up):
		r.scroll(-1)
	case key.Matches(msg, r.keys.Down):
		r.scroll(1)
	}
	return r, nil
}

func (r *Review) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, r.keys.Quit):
		return r, decide(messages.DecisionRejected)
	case key.Matches(msg, r.keys.Confirm):
		r.stopEditing()
		name := strings.TrimSpace(r.input.Value())
		return r, func() tea.Msg { return messages.FieldNameEdited{Name: name} }
	case key.Matches(msg, r.keys.Cancel):
		r.stopEditing()
		r.input.SetValue(r.doc.Samples[0].PDFFieldName)
		return r, nil
	}

	var cmd tea.Cmd
	r.input, cmd = r.input.Update(msg)
	return r, cmd
}

func (r *Review) stopEditing() {
	r.editing = false
	r.input.Blur()
	r.bar.SetState(status.StateReviewing)
}

func decide(d messages.Decision) tea.Cmd {
	return func() tea.Msg { return messages.Decided{Decision: d} }
}

// scroll moves the body by delta lines within its bounds.
func (r *Review) scroll(delta int) {
	r.offset += delta
	maxOffset := len(r.bodyLines()) - r.visibleLines()
	if maxOffset < 0 {
		maxOffset = 0
	}
	if r.offset > maxOffset {
		r.offset = maxOffset
	}
	if r.offset < 0 {
		r.offset = 0
	}
}

// visibleLines returns how many body lines fit the terminal.
// Before the first window size message the whole body is shown.
func (r *Review) visibleLines() int {
	if r.height <= 0 {
		return len(r.bodyLines())
	}
	if n := r.height - chromeLines; n > 1 {
		return n
	}
	return 1
}

// View implements tea.Model.
func (r *Review) View() string {
	lines := r.bodyLines()
	end := r.offset + r.visibleLines()
	if end > len(lines) {
		end = len(lines)
	}

	var b strings.Builder
	b.WriteString(r.styles.Title.Render("Review " + r.title()))
	b.WriteString("\n\n")
	b.WriteString(strings.Join(lines[r.offset:end], "\n"))
	b.WriteString("\n\n")
	b.WriteString(r.bar.View())
	return b.String()
}

func (r *Review) title() string {
	if r.filename == "" {
		return "report"
	}
	return r.filename
}

// bodyLines renders the scrollable part of the review.
func (r *Review) bodyLines() []string {
	sample := r.doc.Samples[0]
	var rows []string

	rows = append(rows,
		r.row("Lab", r.doc.LabName),
		r.row("Monsternummer", sample.SampleNumber),
	)
	if r.editing {
		rows = append(rows, r.input.View())
	} else {
		rows = append(rows, r.row("Perceel", sample.PDFFieldName))
	}
	rows = append(rows,
		r.row("Ontvangen", sample.ReceivedDate),
		r.row("Rapportdatum", sample.ReportDate),
	)

	rows = append(rows, r.styles.Section.Render(fmt.Sprintf("Metingen (%d)", len(sample.Measurements))))
	if len(sample.Measurements) == 0 {
		rows = append(rows, r.styles.Missing.Render("geen metingen gevonden"))
	}
	for _, m := range sample.Measurements {
		line := fmt.Sprintf("%-34s %8s", m.AnalyteKey, strconv.FormatFloat(m.Value, 'f', -1, 64))
		if m.Category != "" {
			line += "  " + r.styles.Muted.Render(m.Category)
		}
		rows = append(rows, line)
	}

	if c := sample.CystResult; c != nil {
		rows = append(rows,
			r.styles.Section.Render("Aardappelcysteaaltjes"),
			r.row("Cysten", intString(c.CystCount)),
			r.row("Larven en eieren", intString(c.LLECount)),
			r.row("Besmetting", c.InfestationGrade),
		)
	}

	if len(r.doc.Warnings) > 0 {
		rows = append(rows, r.styles.Section.Render(fmt.Sprintf("Waarschuwingen (%d)", len(r.doc.Warnings))))
		for _, w := range r.doc.Warnings {
			rows = append(rows, r.styles.Warning.Render("! "+w))
		}
	}

	// Multi-line rows (section margins, the bordered editor) scroll per line.
	return strings.Split(strings.Join(rows, "\n"), "\n")
}

func (r *Review) row(label, value string) string {
	if value == "" {
		return r.styles.Label.Render(label) + r.styles.Missing.Render(notFound)
	}
	return r.styles.Label.Render(label) + r.styles.Value.Render(value)
}

func intString(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

// Decision returns the operator's verdict.
func (r *Review) Decision() messages.Decision {
	return r.decision
}

// Document returns the reviewed document including any edits.
func (r *Review) Document() domain.ParsedDocument {
	return r.doc
}

// Editing reports whether the field name editor is open.
func (r *Review) Editing() bool {
	return r.editing
}

// Offset returns the first visible body line.
func (r *Review) Offset() int {
	return r.offset
}
