// ABOUTME: Estimation input form as a bubbletea model
// ABOUTME: Collects document count, document size, and workload nature with huh

package form

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/katyalpiyush/workload-estimator-poc/internal/estimator"
	"github.com/katyalpiyush/workload-estimator-poc/internal/tui/styles"
)

// SubmittedMsg is sent when the user completes the form
type SubmittedMsg struct {
	DocumentCount string
	DocumentSize  string
	Workload      estimator.WorkloadNature
}

// CancelledMsg is sent when the user presses esc
type CancelledMsg struct{}

// Form wraps a huh form bound to the raw estimation input
type Form struct {
	form  *huh.Form
	width int

	// Field values (strings for huh)
	documentCount string
	documentSize  string
	workload      estimator.WorkloadNature

	// errs are controller validation messages shown under the fields
	errs []string

	// submitted latches once SubmittedMsg has been emitted
	submitted bool
}

// createTheme returns a huh theme matching the shared palette
func createTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Group.Title = lipgloss.NewStyle().
		Foreground(styles.Primary).
		Bold(true).
		MarginBottom(1)
	t.Group.Description = lipgloss.NewStyle().
		Foreground(styles.Muted).
		MarginBottom(1)

	t.Focused.Base = lipgloss.NewStyle().
		PaddingLeft(1).
		BorderStyle(lipgloss.ThickBorder()).
		BorderLeft(true).
		BorderForeground(styles.Primary)
	t.Focused.Title = lipgloss.NewStyle().
		Foreground(styles.Accent).
		Bold(true)
	t.Focused.Description = lipgloss.NewStyle().
		Foreground(styles.Muted)
	t.Focused.ErrorIndicator = lipgloss.NewStyle().
		Foreground(styles.Danger).
		SetString(" *")
	t.Focused.ErrorMessage = lipgloss.NewStyle().
		Foreground(styles.Danger)

	t.Focused.SelectSelector = lipgloss.NewStyle().
		Foreground(styles.Primary).
		SetString("> ")
	t.Focused.Option = lipgloss.NewStyle().
		Foreground(styles.Text)
	t.Focused.SelectedOption = lipgloss.NewStyle().
		Foreground(styles.Primary).
		Bold(true)

	t.Focused.TextInput.Cursor = lipgloss.NewStyle().
		Foreground(styles.Primary)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().
		Foreground(styles.Muted)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().
		Foreground(styles.Primary)
	t.Focused.TextInput.Text = lipgloss.NewStyle().
		Foreground(styles.Text)

	t.Blurred = t.Focused
	t.Blurred.Base = lipgloss.NewStyle().
		PaddingLeft(1).
		BorderStyle(lipgloss.HiddenBorder()).
		BorderLeft(true)
	t.Blurred.Title = lipgloss.NewStyle().
		Foreground(styles.Muted)
	t.Blurred.SelectSelector = lipgloss.NewStyle().
		Foreground(styles.Muted).
		SetString("  ")
	t.Blurred.Option = lipgloss.NewStyle().
		Foreground(styles.Muted)

	return t
}

// workloadOptions builds select options in presentation order
func workloadOptions() []huh.Option[estimator.WorkloadNature] {
	opts := make([]huh.Option[estimator.WorkloadNature], 0, len(estimator.WorkloadNatures))
	for _, w := range estimator.WorkloadNatures {
		opts = append(opts, huh.NewOption(w.Label()+": "+w.Description(), w))
	}
	return opts
}

// New creates a form prefilled with the given input
func New(input estimator.RawInput) *Form {
	f := &Form{
		documentCount: input.DocumentCount,
		documentSize:  input.DocumentSize,
		workload:      input.WorkloadNature,
	}
	if f.workload == "" {
		f.workload = estimator.WorkloadRead
	}
	f.form = f.build()
	return f
}

func (f *Form) build() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Number of documents").
				Description("Total documents in the dataset").
				Placeholder("e.g., 1000000").
				CharLimit(19).
				Value(&f.documentCount).
				Validate(estimator.CheckWholeNumber),
			huh.NewInput().
				Title("Average document size").
				Description("Average size of a document in bytes").
				Placeholder("e.g., 1024").
				CharLimit(19).
				Value(&f.documentSize).
				Validate(estimator.CheckWholeNumber),
			huh.NewSelect[estimator.WorkloadNature]().
				Title("Workload nature").
				Description("Use ↑/↓ to select, Enter to confirm").
				Options(workloadOptions()...).
				Value(&f.workload),
		).Title("Dataset").
			Description("Describe your data and how it is used"),
	).WithTheme(createTheme()).
		WithShowHelp(false)
}

// SetErrors sets the validation messages shown below the form
func (f *Form) SetErrors(msgs []string) {
	f.errs = msgs
}

// SetWidth sets the form width for proper rendering
func (f *Form) SetWidth(width int) {
	f.width = width
	f.form = f.form.WithWidth(width)
}

// Values returns the current field values as raw input
func (f *Form) Values() estimator.RawInput {
	return estimator.RawInput{
		DocumentCount:  f.documentCount,
		DocumentSize:   f.documentSize,
		WorkloadNature: f.workload,
	}
}

// Init implements tea.Model
func (f *Form) Init() tea.Cmd {
	return f.form.Init()
}

// Update implements tea.Model
func (f *Form) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		return f, func() tea.Msg { return CancelledMsg{} }
	}

	form, cmd := f.form.Update(msg)
	if hf, ok := form.(*huh.Form); ok {
		f.form = hf
	}

	if f.form.State == huh.StateCompleted {
		if f.submitted {
			return f, nil
		}
		f.submitted = true
		values := f.Values()
		submitted := SubmittedMsg{
			DocumentCount: values.DocumentCount,
			DocumentSize:  values.DocumentSize,
			Workload:      values.WorkloadNature,
		}
		return f, func() tea.Msg { return submitted }
	}

	return f, cmd
}

// Completed reports whether the user has finished the form
func (f *Form) Completed() bool {
	return f.form.State == huh.StateCompleted
}

// View implements tea.Model
func (f *Form) View() string {
	var sb strings.Builder
	sb.WriteString(f.form.View())

	for _, msg := range f.errs {
		sb.WriteString("\n")
		sb.WriteString(styles.FieldError.Render("✗ " + msg))
	}

	return sb.String()
}
