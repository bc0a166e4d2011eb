package history

import "github.com/jthomassen/roadline/internal/domain"

// entry is one undo step: a single primitive command or a macro of several.
type entry struct {
	label    string
	commands []*Command
}

// Log is a linear undo/redo stack with a cursor. Pushing while the cursor
// is mid-history truncates the redo tail; the cursor only ever moves by
// whole entries, so macros undo and redo as one unit.
type Log struct {
	doc     *domain.Document
	entries []entry
	cursor  int

	macroDepth int
	macroLabel string
	macroCmds  []*Command
}

func NewLog(doc *domain.Document) *Log {
	return &Log{doc: doc}
}

// Push executes the command forward and records it. Inside an open macro
// the command joins the macro instead of forming its own entry.
func (l *Log) Push(cmd *Command) {
	cmd.Apply(l.doc, Forward)
	if l.macroDepth > 0 {
		l.macroCmds = append(l.macroCmds, cmd)
		return
	}
	l.entries = l.entries[:l.cursor]
	l.entries = append(l.entries, entry{label: cmd.Label, commands: []*Command{cmd}})
	l.cursor = len(l.entries)
}

// BeginMacro opens a group; nested calls are flattened into the outermost.
func (l *Log) BeginMacro(label string) {
	if l.macroDepth == 0 {
		l.macroLabel = label
		l.macroCmds = nil
	}
	l.macroDepth++
}

// EndMacro closes the group and commits it as one entry. A macro that
// pushed nothing is discarded so empty undo steps never appear.
func (l *Log) EndMacro() {
	if l.macroDepth == 0 {
		return
	}
	l.macroDepth--
	if l.macroDepth > 0 {
		return
	}
	if len(l.macroCmds) == 0 {
		return
	}
	l.entries = l.entries[:l.cursor]
	l.entries = append(l.entries, entry{label: l.macroLabel, commands: l.macroCmds})
	l.cursor = len(l.entries)
	l.macroCmds = nil
}

func (l *Log) CanUndo() bool { return l.cursor > 0 }

func (l *Log) CanRedo() bool { return l.cursor < len(l.entries) }

// UndoLabel names the entry Undo would revert, or "".
func (l *Log) UndoLabel() string {
	if !l.CanUndo() {
		return ""
	}
	return l.entries[l.cursor-1].label
}

// RedoLabel names the entry Redo would reapply, or "".
func (l *Log) RedoLabel() string {
	if !l.CanRedo() {
		return ""
	}
	return l.entries[l.cursor].label
}

// Undo reverts one entry, applying its commands backward in reverse push
// order. Reports false when there is nothing to undo.
func (l *Log) Undo() bool {
	if !l.CanUndo() {
		return false
	}
	l.cursor--
	cmds := l.entries[l.cursor].commands
	for i := len(cmds) - 1; i >= 0; i-- {
		cmds[i].Apply(l.doc, Backward)
	}
	return true
}

// Redo reapplies one entry in push order.
func (l *Log) Redo() bool {
	if !l.CanRedo() {
		return false
	}
	for _, cmd := range l.entries[l.cursor].commands {
		cmd.Apply(l.doc, Forward)
	}
	l.cursor++
	return true
}

// Len returns the number of committed undo entries.
func (l *Log) Len() int { return len(l.entries) }

// Clear drops all history, e.g. after loading a different document.
func (l *Log) Clear() {
	l.entries = nil
	l.cursor = 0
	l.macroDepth = 0
	l.macroCmds = nil
}
