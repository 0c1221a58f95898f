// ABOUTME: Root bubbletea model for the TUI application
// ABOUTME: Routes keys between the input form and controller, renders the frame

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/katyalpiyush/workload-estimator-poc/internal/estimator"
	"github.com/katyalpiyush/workload-estimator-poc/internal/tui/form"
	"github.com/katyalpiyush/workload-estimator-poc/internal/tui/icons"
	"github.com/katyalpiyush/workload-estimator-poc/internal/tui/recommendation"
	"github.com/katyalpiyush/workload-estimator-poc/internal/tui/styles"
	"github.com/katyalpiyush/workload-estimator-poc/internal/tui/widgets"
)

// Mode is what currently receives key input
type Mode int

const (
	// ModeEditing routes keys to the form
	ModeEditing Mode = iota
	// ModeViewing routes keys to app shortcuts
	ModeViewing
)

// Layout constants
const (
	minTerminalWidth = 80 // Minimum width before using single-column layout
	panelPadding     = 4  // Total horizontal padding from panel borders (2 each side)
)

// busyNotice is shown when a submit is ignored because a request is in flight
const busyNotice = "An estimate is already in progress"

// estimateResolvedMsg is sent once the controller has applied an outcome
type estimateResolvedMsg struct{}

// App is the root model for the TUI
type App struct {
	ctrl    *estimator.Controller
	apiURL  string
	mode    Mode
	form    *form.Form
	spinner spinner.Model
	width   int
	height  int
	notice  string
}

// New creates a new TUI application around a controller
func New(ctrl *estimator.Controller, apiURL string) *App {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(styles.Primary)),
	)
	return &App{
		ctrl:    ctrl,
		apiURL:  apiURL,
		mode:    ModeEditing,
		form:    form.New(ctrl.Snapshot().Input),
		spinner: s,
	}
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return a.form.Init()
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.form.SetWidth(a.formWidth())
		if a.formActive() {
			return a.updateForm(msg)
		}
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "ctrl+r":
			return a, a.reset()
		}
		if a.mode == ModeEditing {
			return a.updateForm(msg)
		}
		return a.updateViewing(msg)

	case form.SubmittedMsg:
		return a.handleSubmitted(msg)

	case form.CancelledMsg:
		a.mode = ModeViewing
		return a, nil

	case estimateResolvedMsg:
		a.notice = ""
		return a, nil

	case spinner.TickMsg:
		if !a.ctrl.Snapshot().InFlight {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	default:
		// huh needs its internal messages while editing
		if a.formActive() {
			return a.updateForm(msg)
		}
	}

	return a, nil
}

// formActive reports whether the form still takes input
func (a *App) formActive() bool {
	return a.mode == ModeEditing && !a.form.Completed()
}

func (a *App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := a.form.Update(msg)
	a.form = model.(*form.Form)
	return a, cmd
}

func (a *App) updateViewing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "esc", "e":
		return a, a.edit()
	case "enter", "s":
		return a, a.submit()
	}
	return a, nil
}

// edit rebuilds the form from the controller's current input
func (a *App) edit() tea.Cmd {
	snap := a.ctrl.Snapshot()
	a.form = form.New(snap.Input)
	a.form.SetWidth(a.formWidth())
	if snap.State == estimator.StateInvalid {
		a.form.SetErrors(snap.Errors.Messages())
	}
	a.mode = ModeEditing
	return a.form.Init()
}

// reset clears the controller and starts a fresh form
func (a *App) reset() tea.Cmd {
	a.ctrl.Reset()
	a.notice = ""
	a.form = form.New(estimator.DefaultInput())
	a.form.SetWidth(a.formWidth())
	a.mode = ModeEditing
	return a.form.Init()
}

func (a *App) handleSubmitted(msg form.SubmittedMsg) (tea.Model, tea.Cmd) {
	for _, err := range []error{
		a.ctrl.SetDocumentCount(msg.DocumentCount),
		a.ctrl.SetDocumentSize(msg.DocumentSize),
		a.ctrl.SetWorkloadNature(msg.Workload),
	} {
		if err != nil {
			a.notice = err.Error()
			return a, a.edit()
		}
	}
	a.mode = ModeViewing
	return a, a.submit()
}

// submit asks the controller for an estimate and tracks its completion
func (a *App) submit() tea.Cmd {
	done, status := a.ctrl.Submit(context.Background())
	switch status {
	case estimator.SubmitIssued:
		a.notice = ""
		return tea.Batch(a.spinner.Tick, waitForEstimate(done))
	case estimator.SubmitInvalid:
		return a.edit()
	case estimator.SubmitBusy:
		a.notice = busyNotice
	}
	return nil
}

// waitForEstimate blocks until the controller closes done
func waitForEstimate(done <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-done
		return estimateResolvedMsg{}
	}
}

// View implements tea.Model
func (a *App) View() string {
	snap := a.ctrl.Snapshot()

	leftStyle, rightStyle := styles.ActivePanel, styles.Panel
	if a.mode == ModeViewing {
		leftStyle, rightStyle = styles.Panel, styles.ActivePanel
	}

	leftPane := leftStyle.Width(a.formWidth()).Render(a.viewInput(snap))
	rightPane := rightStyle.Width(a.recommendationWidth()).Render(a.viewRecommendation(snap))

	var content string
	if a.width > 0 && a.width < minTerminalWidth {
		content = lipgloss.JoinVertical(lipgloss.Left, leftPane, rightPane)
	} else {
		content = lipgloss.JoinHorizontal(lipgloss.Top, leftPane, rightPane)
	}

	return a.wrapWithFrame(content, snap)
}

// viewInput renders the left pane: the live form or a read-only summary
func (a *App) viewInput(snap estimator.Snapshot) string {
	var sb strings.Builder

	if a.mode == ModeEditing {
		sb.WriteString(a.form.View())
	} else {
		sb.WriteString(styles.Title.Render(icons.Settings.String() + " Dataset"))
		sb.WriteString("\n")
		sb.WriteString(inputLine("Number of documents", snap.Input.DocumentCount))
		sb.WriteString(inputLine("Average document size", snap.Input.DocumentSize))
		workload := lipgloss.NewStyle().Foreground(workloadAccent(snap.Input.WorkloadNature)).Bold(true)
		sb.WriteString("Workload nature: " + workload.Render(snap.Input.WorkloadNature.Label()) + "\n")
	}

	if snap.State == estimator.StateSucceeded {
		sb.WriteString("\n")
		sb.WriteString(styles.StatusOK.Render(icons.CheckOK.String() + " Recommendation ready"))
	}

	if snap.State == estimator.StateFailed && snap.LastError != nil {
		sb.WriteString("\n")
		sb.WriteString(styles.StatusCritical.Render(icons.Critical.String() + " " + snap.LastError.Error()))
	}
	if a.notice != "" {
		sb.WriteString("\n")
		sb.WriteString(styles.StatusWarning.Render(icons.Warning.String() + " " + a.notice))
	}

	return sb.String()
}

func inputLine(label, value string) string {
	if value == "" {
		value = "-"
	}
	return fmt.Sprintf("%s: %s\n", label, styles.ValueStyle.Render(value))
}

// workloadAccent picks the highlight color for a workload nature
func workloadAccent(w estimator.WorkloadNature) lipgloss.Color {
	switch w {
	case estimator.WorkloadWrite:
		return styles.WriteAccent
	case estimator.WorkloadReadWrite:
		return styles.ReadWriteAccent
	default:
		return styles.ReadAccent
	}
}

// viewRecommendation renders the right pane with the pending indicator
func (a *App) viewRecommendation(snap estimator.Snapshot) string {
	view := recommendation.New(snap.Result, a.recommendationWidth()-panelPadding).View()
	if snap.State == estimator.StatePending {
		return a.spinner.View() + " Estimating...\n\n" + view
	}
	return view
}

// formWidth calculates the width for the form pane
func (a *App) formWidth() int {
	if a.width < minTerminalWidth {
		return max(0, a.width-panelPadding)
	}
	return (a.width - panelPadding) * 3 / 10
}

// recommendationWidth calculates the width for the recommendation pane
func (a *App) recommendationWidth() int {
	if a.width < minTerminalWidth {
		return max(0, a.width-panelPadding)
	}
	return a.width - a.formWidth() - 2*panelPadding
}

// frameWidth is the header and footer width. One column short of the
// terminal avoids wrapping on some terminals.
func (a *App) frameWidth() int {
	return max(minTerminalWidth, a.width-1)
}

// renderHeader creates the header bar with app branding and state
func (a *App) renderHeader(snap estimator.Snapshot) string {
	width := a.frameWidth()

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	titleStyle := lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)

	leftText := fmt.Sprintf(" %s %s ", icons.App.String(), titleStyle.Render("Workload Estimator"))
	rightText := " " + widgets.StateBadge(snap.State) + " "

	fillWidth := max(0, width-4-lipgloss.Width(leftText)-lipgloss.Width(rightText)) // -4 for ╭─ and ─╮
	header := "╭─" + leftText + strings.Repeat("─", fillWidth) + rightText + "─╮"

	return borderStyle.Render(header)
}

// renderFooter creates the footer with keyboard shortcuts and backend address
func (a *App) renderFooter() string {
	width := a.frameWidth()

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	keyStyle := lipgloss.NewStyle().Foreground(styles.Primary)
	labelStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	statusStyle := lipgloss.NewStyle().Foreground(styles.Secondary)

	var shortcuts []string
	switch a.mode {
	case ModeEditing:
		shortcuts = []string{"Enter Next", "Esc Done", "^R Reset"}
	case ModeViewing:
		shortcuts = []string{"e Edit", "s Submit", "^R Reset", "q Quit"}
	}

	var styledShortcuts []string
	for _, s := range shortcuts {
		parts := strings.SplitN(s, " ", 2)
		styledShortcuts = append(styledShortcuts, keyStyle.Render(parts[0])+" "+labelStyle.Render(parts[1]))
	}

	leftText := " " + strings.Join(styledShortcuts, "  ")
	rightText := ""
	if a.apiURL != "" {
		rightText = statusStyle.Render(a.apiURL) + " "
	}

	fillWidth := max(0, width-4-lipgloss.Width(leftText)-lipgloss.Width(rightText)) // -4 for ╰─ and ─╯
	footer := "╰─" + leftText + strings.Repeat("─", fillWidth) + rightText + "─╯"

	return borderStyle.Render(footer)
}

// wrapWithFrame wraps content with header and footer
func (a *App) wrapWithFrame(content string, snap estimator.Snapshot) string {
	var sb strings.Builder

	sb.WriteString(a.renderHeader(snap))
	sb.WriteString("\n")
	sb.WriteString(content)
	sb.WriteString("\n")
	sb.WriteString(a.renderFooter())

	return sb.String()
}

// Run starts the TUI
func Run(ctrl *estimator.Controller, apiURL string) error {
	p := tea.NewProgram(
		New(ctrl, apiURL),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
