package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/jthomassen/roadline/internal/cli/formatter"
	"github.com/jthomassen/roadline/internal/domain"
)

func roadlineHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func validateWeek(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("week is required")
	}
	if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("week must be an integer")
	}
	return nil
}

func validateOptionalWeek(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return validateWeek(s)
}

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("required")
	}
	return nil
}

// rowOptions lists all topic and deliverable rows for a select field.
func rowOptions(doc *domain.Document) []huh.Option[string] {
	var opts []huh.Option[string]
	for _, topic := range doc.Topics() {
		opts = append(opts, huh.NewOption(topic.Name, topic.ID))
		for _, d := range topic.Deliverables {
			opts = append(opts, huh.NewOption("  "+topic.Name+"/"+d.Name, d.ID))
		}
	}
	return opts
}

// openAddObjectForm switches the editor into form mode collecting a new
// timeline object. Submission goes through the controller factories.
func (m *editorModel) openAddObjectForm() {
	if len(m.s.doc.Topics()) == 0 {
		m.status = "add a topic first"
		return
	}

	kind := string(domain.KindBox)
	rowID := ""
	text := ""
	start := "1"
	end := ""

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Kind").
				Options(
					huh.NewOption("Box", string(domain.KindBox)),
					huh.NewOption("Milestone", string(domain.KindMilestone)),
					huh.NewOption("Deadline", string(domain.KindDeadline)),
					huh.NewOption("Arrow", string(domain.KindArrow)),
				).
				Value(&kind),
			huh.NewSelect[string]().
				Title("Row").
				Options(rowOptions(m.s.doc)...).
				Value(&rowID),
			huh.NewInput().Title("Text").Value(&text),
			huh.NewInput().Title("Start Week").Placeholder("1").Value(&start).Validate(validateWeek),
			huh.NewInput().Title("End Week (blank = start)").Value(&end).Validate(validateOptionalWeek),
		),
	).WithTheme(roadlineHuhTheme()).WithShowHelp(false)

	m.form = form
	m.mode = modeForm
	m.formDone = func(m *editorModel) {
		startWeek, _ := strconv.Atoi(strings.TrimSpace(start))
		endWeek := startWeek
		if trimmed := strings.TrimSpace(end); trimmed != "" {
			endWeek, _ = strconv.Atoi(trimmed)
		}
		obj := m.s.ctrl.MakeDefaultObject(domain.Kind(kind), rowID, startWeek, endWeek, "")
		obj.Text = text
		m.s.ctrl.AddObject(obj, fmt.Sprintf("Add %s", kind))
		m.status = "added " + kind
		m.dirty = true
	}
}

// openAddTopicForm collects a topic name; color comes from the palette
// cycle.
func (m *editorModel) openAddTopicForm() {
	name := ""

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Topic Name").Value(&name).Validate(validateRequired),
		),
	).WithTheme(roadlineHuhTheme()).WithShowHelp(false)

	m.form = form
	m.mode = modeForm
	m.formDone = func(m *editorModel) {
		topic := m.s.ctrl.AddTopic(strings.TrimSpace(name), "")
		m.status = "added topic " + topic.Name
		m.dirty = true
	}
}
