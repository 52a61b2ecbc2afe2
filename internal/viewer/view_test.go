package viewer

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/npratt/dialogviz/internal/controller"
	"github.com/npratt/dialogviz/internal/testutil"
)

func TestView_BeforeFirstResize(t *testing.T) {
	ctrl := controller.New(800, 600, controller.WithSeed(1))
	m := newModel(ctrl)
	if m.View() != "" {
		t.Error("view before the first WindowSizeMsg should be empty")
	}
}

func TestView_EmptyDataset(t *testing.T) {
	ctrl := controller.New(800, 600, controller.WithSeed(1))
	m := newModel(ctrl)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = updated.(model)

	out := m.View()
	if !strings.Contains(out, "No dialogue nodes to display") {
		t.Error("empty dataset should render the placeholder")
	}
}

func TestView_RendersNodesAndStatus(t *testing.T) {
	// A roomy terminal, so the settled pentagon of nodes cannot clip off
	// the grid.
	ctrl := controller.New(800, 600, controller.WithSeed(1))
	ctrl.Apply(controller.SetData{Nodes: testutil.SmallTree()})
	updated, _ := newModel(ctrl).Update(tea.WindowSizeMsg{Width: 160, Height: 50})
	m := updated.(model)
	m.ctrl.RunToIdle(2000)

	out := m.View()

	for _, id := range []string{"start", "well", "market", "baker", "end"} {
		if !strings.Contains(out, id) {
			t.Errorf("view missing node id %q", id)
		}
	}
	if !strings.Contains(out, "Guide") {
		t.Error("view missing a speaker name")
	}
	if !strings.Contains(out, "idle") {
		t.Error("status bar should report idle after convergence")
	}
	if !strings.Contains(out, "5 nodes, 6 edges") {
		t.Error("status bar should report counts")
	}
	if !strings.Contains(out, "repulsion 1500") {
		t.Error("status bar should report repulsion")
	}
	if !strings.Contains(out, m.ctrl.Theme().Name) {
		t.Error("status bar should report the theme")
	}
}

func TestView_StatusReportsSettling(t *testing.T) {
	m := newTestModel(t)

	out := m.View()
	if !strings.Contains(out, "settling") {
		t.Error("status bar should report settling while the layout is hot")
	}
}

func TestView_StatusReportsWarnings(t *testing.T) {
	ctrl := controller.New(800, 600, controller.WithSeed(1))
	ctrl.Apply(controller.SetData{Nodes: testutil.GhostTarget()})
	m := newModel(ctrl)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = updated.(model)

	if !strings.Contains(m.View(), "1 warning(s)") {
		t.Error("status bar should surface build diagnostics")
	}
}

func TestView_TruncatesNodeText(t *testing.T) {
	m := newTestModel(t)
	m.ctrl.RunToIdle(2000)

	// The baker line is longer than the display limit.
	out := m.View()
	if strings.Contains(out, "worth every one") {
		t.Error("long node text should be truncated")
	}
}

func TestView_HelpScreen(t *testing.T) {
	m := newTestModel(t)
	m = pressKey(t, m, "?")

	out := m.View()
	for _, want := range []string{"dialogviz keys", "cycle theme", "shuffle layout"} {
		if !strings.Contains(out, want) {
			t.Errorf("help missing %q", want)
		}
	}
}

func TestView_LineCount(t *testing.T) {
	m := newTestModel(t)

	lines := strings.Split(m.View(), "\n")
	if len(lines) != 24 {
		t.Errorf("view has %d lines, want 24 (grid plus status and hints)", len(lines))
	}
}
