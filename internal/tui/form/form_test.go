// ABOUTME: Tests for the estimation input form
// ABOUTME: Validates prefill, option order, cancellation, and error display

package form

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/katyalpiyush/workload-estimator-poc/internal/estimator"
)

func TestFormDefaults(t *testing.T) {
	f := New(estimator.DefaultInput())

	got := f.Values()
	if got.DocumentCount != "" || got.DocumentSize != "" {
		t.Errorf("expected empty numeric fields, got %+v", got)
	}
	if got.WorkloadNature != estimator.WorkloadRead {
		t.Errorf("expected default workload read, got %q", got.WorkloadNature)
	}
}

func TestFormPrefill(t *testing.T) {
	f := New(estimator.RawInput{
		DocumentCount:  "1000",
		DocumentSize:   "512",
		WorkloadNature: estimator.WorkloadReadWrite,
	})

	got := f.Values()
	if got.DocumentCount != "1000" {
		t.Errorf("expected document count 1000, got %q", got.DocumentCount)
	}
	if got.DocumentSize != "512" {
		t.Errorf("expected document size 512, got %q", got.DocumentSize)
	}
	if got.WorkloadNature != estimator.WorkloadReadWrite {
		t.Errorf("expected workload readwrite, got %q", got.WorkloadNature)
	}
}

func TestFormEmptyWorkloadFallsBackToRead(t *testing.T) {
	f := New(estimator.RawInput{})
	if f.Values().WorkloadNature != estimator.WorkloadRead {
		t.Errorf("expected read, got %q", f.Values().WorkloadNature)
	}
}

func TestWorkloadOptionsOrder(t *testing.T) {
	opts := workloadOptions()
	if len(opts) != len(estimator.WorkloadNatures) {
		t.Fatalf("expected %d options, got %d", len(estimator.WorkloadNatures), len(opts))
	}
	for i, w := range estimator.WorkloadNatures {
		if opts[i].Value != w {
			t.Errorf("option %d: expected %q, got %q", i, w, opts[i].Value)
		}
		if !strings.HasPrefix(opts[i].Key, w.Label()) {
			t.Errorf("option %d: expected key to start with %q, got %q", i, w.Label(), opts[i].Key)
		}
	}
}

func TestEscCancels(t *testing.T) {
	f := New(estimator.DefaultInput())

	_, cmd := f.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected a command on esc")
	}
	if _, ok := cmd().(CancelledMsg); !ok {
		t.Errorf("expected CancelledMsg, got %T", cmd())
	}
}

func TestViewShowsErrors(t *testing.T) {
	f := New(estimator.DefaultInput())
	f.SetErrors([]string{estimator.DocumentCountRequiredMsg})

	view := f.View()
	if !strings.Contains(view, estimator.DocumentCountRequiredMsg) {
		t.Errorf("expected view to contain %q", estimator.DocumentCountRequiredMsg)
	}

	f.SetErrors(nil)
	if strings.Contains(f.View(), estimator.DocumentCountRequiredMsg) {
		t.Error("expected errors to clear")
	}
}

func TestNotCompletedInitially(t *testing.T) {
	f := New(estimator.DefaultInput())
	if f.Completed() {
		t.Error("new form should not be completed")
	}
}

func TestCompletedFormSubmitsOnce(t *testing.T) {
	f := New(estimator.RawInput{DocumentCount: "1000", DocumentSize: "512", WorkloadNature: estimator.WorkloadWrite})
	f.form.State = huh.StateCompleted

	_, cmd := f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected SubmittedMsg on completion")
	}
	got, ok := cmd().(SubmittedMsg)
	if !ok {
		t.Fatalf("expected SubmittedMsg, got %T", cmd())
	}
	want := SubmittedMsg{DocumentCount: "1000", DocumentSize: "512", Workload: estimator.WorkloadWrite}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
	if !f.Completed() {
		t.Error("expected form to report completion")
	}

	for _, msg := range []tea.Msg{tea.WindowSizeMsg{Width: 120, Height: 40}, tea.KeyMsg{Type: tea.KeyEnter}} {
		if _, cmd := f.Update(msg); cmd != nil {
			t.Errorf("expected no command after the first submit for %T, got %T", msg, cmd())
		}
	}
}
