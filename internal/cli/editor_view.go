package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jthomassen/roadline/internal/cli/formatter"
)

var (
	styleStatusBar = lipgloss.NewStyle().
			Foreground(formatter.ColorFg).
			Background(lipgloss.Color("#3c3836")).
			Padding(0, 1)
	styleSelected = lipgloss.NewStyle().
			Foreground(formatter.ColorHeader).
			Bold(true)
	styleHelpBar = lipgloss.NewStyle().Foreground(formatter.ColorDim)
)

func (m editorModel) View() string {
	if m.mode == modeForm && m.form != nil {
		return m.form.View()
	}

	var b strings.Builder
	b.WriteString(formatter.RenderTimeline(m.s.doc, m.s.layout, 0))
	b.WriteString("\n")
	b.WriteString(m.renderObjectList())
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(styleHelpBar.Render(
		"↑↓ select · ←→ shift week · K/J row · a add · t topic · d dup · x del · [/] stack · u undo · r redo · q quit"))
	return b.String()
}

func (m editorModel) renderObjectList() string {
	objects := m.s.doc.ObjectsInOrder()
	if len(objects) == 0 {
		return formatter.StyleDim.Render("no objects — press a to add one")
	}

	var b strings.Builder
	for i, obj := range objects {
		line := fmt.Sprintf("%s %-9s %s", obj.ID[:8], obj.Kind, obj.Text)
		if i == m.cursor {
			b.WriteString(styleSelected.Render("▸ " + line))
		} else {
			b.WriteString("  " + formatter.KindStyle(string(obj.Kind)).Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m editorModel) renderStatusBar() string {
	undo := "undo: —"
	if m.s.log.CanUndo() {
		undo = "undo: " + m.s.log.UndoLabel()
	}
	redo := "redo: —"
	if m.s.log.CanRedo() {
		redo = "redo: " + m.s.log.RedoLabel()
	}
	dirty := ""
	if m.dirty {
		dirty = " [modified]"
	}
	banner := fmt.Sprintf("%s · %d%s", m.s.doc.Classification, m.s.doc.Year, dirty)
	return styleStatusBar.Render(fmt.Sprintf("%s │ %s │ %s │ %s", banner, m.status, undo, redo))
}
