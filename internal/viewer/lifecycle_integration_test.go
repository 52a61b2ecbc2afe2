package viewer

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"

	"github.com/npratt/dialogviz/internal/controller"
	"github.com/npratt/dialogviz/internal/testutil"
)

// TestViewerLifecycleSmoke verifies the full bubbletea program lifecycle:
// start, settle frames, handle keyboard input, and quit cleanly. It uses
// teatest to run the viewer headlessly without a real TTY.
func TestViewerLifecycleSmoke(t *testing.T) {
	ctrl := controller.New(800, 600, controller.WithSeed(1))
	ctrl.Apply(controller.SetData{Nodes: testutil.SmallTree()})

	tm := teatest.NewTestModel(
		t,
		newModel(ctrl),
		teatest.WithInitialTermSize(80, 24),
	)

	// Let the frame loop advance the simulation a few ticks.
	time.Sleep(200 * time.Millisecond)

	// Select a node, grab it, nudge it, release it.
	tm.Send(tea.KeyMsg{Type: tea.KeyTab})
	tm.Send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	tm.Send(tea.KeyMsg{Type: tea.KeyRight})
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})

	// Cycle the theme and shuffle; both rebuild the layout under the
	// running frame loop.
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})

	time.Sleep(100 * time.Millisecond)

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	fm := tm.FinalModel(t, teatest.WithFinalTimeout(5*time.Second))
	if fm == nil {
		t.Fatal("FinalModel returned nil")
	}
	final, ok := fm.(model)
	if !ok {
		t.Fatalf("FinalModel returned %T, want model", fm)
	}
	if final.ctrl.Generation() < 3 {
		t.Errorf("Generation = %d, want at least 3 (initial, theme, shuffle)", final.ctrl.Generation())
	}
}
