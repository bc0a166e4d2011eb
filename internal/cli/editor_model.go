package cli

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/jthomassen/roadline/internal/controller"
	"github.com/jthomassen/roadline/internal/domain"
)

type editorMode int

const (
	modeBrowse editorMode = iota
	modeForm
)

// editorKeyMap defines browse-mode bindings.
type editorKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	ShiftLeft key.Binding
	ShiftRght key.Binding
	RowUp     key.Binding
	RowDown   key.Binding
	Undo      key.Binding
	Redo      key.Binding
	AddObject key.Binding
	AddTopic  key.Binding
	Duplicate key.Binding
	Delete    key.Binding
	Forward   key.Binding
	Backward  key.Binding
	Quit      key.Binding
}

func defaultEditorKeys() editorKeyMap {
	return editorKeyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev object")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next object")),
		ShiftLeft: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "shift -1 week")),
		ShiftRght: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "shift +1 week")),
		RowUp:     key.NewBinding(key.WithKeys("K", "shift+up"), key.WithHelp("K", "row up")),
		RowDown:   key.NewBinding(key.WithKeys("J", "shift+down"), key.WithHelp("J", "row down")),
		Undo:      key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo")),
		Redo:      key.NewBinding(key.WithKeys("r", "ctrl+r"), key.WithHelp("r", "redo")),
		AddObject: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add object")),
		AddTopic:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "add topic")),
		Duplicate: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "duplicate")),
		Delete:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
		Forward:   key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "bring forward")),
		Backward:  key.NewBinding(key.WithKeys("["), key.WithHelp("[", "send backward")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "save & quit")),
	}
}

// editorModel is the bubbletea Model for the interactive editor. Mutations
// go through the controller, so undo/redo and the transaction log cover
// every keystroke edit and submitted form.
type editorModel struct {
	s      *session
	keys   editorKeyMap
	mode   editorMode
	cursor int
	status string
	dirty  bool
	width  int
	height int

	form     *huh.Form
	formDone func(m *editorModel)
}

func newEditorModel(s *session) editorModel {
	return editorModel{
		s:      s,
		keys:   defaultEditorKeys(),
		status: "ready",
	}
}

func (m editorModel) Init() tea.Cmd { return nil }

// selectedObject returns the object under the cursor, or nil.
func (m *editorModel) selectedObject() *domain.CanvasObject {
	objects := m.s.doc.ObjectsInOrder()
	if m.cursor < 0 || m.cursor >= len(objects) {
		return nil
	}
	return objects[m.cursor]
}

func (m *editorModel) clampCursor() {
	n := m.s.doc.ObjectCount()
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.mode == modeForm {
			return m.updateForm(msg)
		}
		return m.updateBrowse(msg)
	}

	if m.mode == modeForm {
		return m.updateForm(msg)
	}
	return m, nil
}

func (m editorModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Esc is handled here, not by the form: huh never reaches
	// StateAborted under this wiring.
	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyEsc {
		m.mode = modeBrowse
		m.form = nil
		m.formDone = nil
		m.status = "cancelled"
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	switch m.form.State {
	case huh.StateCompleted:
		m.formDone(&m)
		m.mode = modeBrowse
		m.form = nil
		m.formDone = nil
	case huh.StateAborted:
		m.mode = modeBrowse
		m.form = nil
		m.formDone = nil
		m.status = "cancelled"
	}
	return m, cmd
}

func (m editorModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Up):
		m.cursor--
		m.clampCursor()

	case key.Matches(msg, keys.Down):
		m.cursor++
		m.clampCursor()

	case key.Matches(msg, keys.Undo):
		if m.s.log.CanUndo() {
			m.status = "undid " + m.s.log.UndoLabel()
			m.s.log.Undo()
			m.dirty = true
			m.clampCursor()
		} else {
			m.status = "nothing to undo"
		}

	case key.Matches(msg, keys.Redo):
		if m.s.log.CanRedo() {
			m.status = "redid " + m.s.log.RedoLabel()
			m.s.log.Redo()
			m.dirty = true
			m.clampCursor()
		} else {
			m.status = "nothing to redo"
		}

	case key.Matches(msg, keys.ShiftLeft):
		m.shiftSelected(-1)

	case key.Matches(msg, keys.ShiftRght):
		m.shiftSelected(1)

	case key.Matches(msg, keys.RowUp):
		m.moveSelectedRow(-1)

	case key.Matches(msg, keys.RowDown):
		m.moveSelectedRow(1)

	case key.Matches(msg, keys.Duplicate):
		if obj := m.selectedObject(); obj != nil {
			if dup := m.s.ctrl.DuplicateObject(obj.ID); dup != nil {
				m.status = "duplicated " + string(dup.Kind)
				m.dirty = true
			}
		}

	case key.Matches(msg, keys.Delete):
		if obj := m.selectedObject(); obj != nil {
			m.s.ctrl.RemoveObject(obj.ID)
			m.status = "removed " + string(obj.Kind)
			m.dirty = true
			m.clampCursor()
		}

	case key.Matches(msg, keys.Forward):
		m.reorderSelected(controller.ReorderForward)

	case key.Matches(msg, keys.Backward):
		m.reorderSelected(controller.ReorderBackward)

	case key.Matches(msg, keys.AddObject):
		m.openAddObjectForm()
		if m.form != nil {
			return m, m.form.Init()
		}

	case key.Matches(msg, keys.AddTopic):
		m.openAddTopicForm()
		return m, m.form.Init()
	}
	return m, nil
}

// shiftSelected moves the selected object sideways by one week, carrying
// arrow target and midpoint weeks along.
func (m *editorModel) shiftSelected(delta int) {
	obj := m.selectedObject()
	if obj == nil || obj.Kind == domain.KindTextbox || obj.Kind == domain.KindLink || obj.Kind == domain.KindConnector {
		return
	}
	m.s.ctrl.UpdateObject(obj.ID, "Move Object", func(o *domain.CanvasObject) {
		o.StartWeek += delta
		o.EndWeek += delta
		if o.TargetWeek != nil {
			o.TargetWeek = domain.IntPtr(*o.TargetWeek + delta)
		}
		if o.ArrowMidWeek != nil {
			o.ArrowMidWeek = domain.IntPtr(*o.ArrowMidWeek + delta)
		}
	})
	m.status = fmt.Sprintf("shifted %+d week", delta)
	m.dirty = true
}

func (m *editorModel) moveSelectedRow(direction int) {
	obj := m.selectedObject()
	if obj == nil || obj.RowID == domain.CanvasRowID {
		return
	}
	rowID, ok := m.s.layout.AdjacentRow(obj.RowID, direction)
	if !ok {
		m.status = "no adjacent row"
		return
	}
	m.s.ctrl.UpdateObject(obj.ID, "Move Object", func(o *domain.CanvasObject) {
		o.RowID = rowID
	})
	m.status = "moved row"
	m.dirty = true
}

func (m *editorModel) reorderSelected(action controller.ReorderAction) {
	obj := m.selectedObject()
	if obj == nil {
		return
	}
	m.s.ctrl.ReorderObjects([]string{obj.ID}, action)
	m.status = string(action)
	m.dirty = true
}
