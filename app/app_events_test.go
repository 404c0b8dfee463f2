package app

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/xhd2015/go-dom-tui/charm"
	"github.com/xhd2015/wthr/component"
)

type loggedSearch struct {
	msg  string
	args []any
}

type recordingLogger struct {
	entries []loggedSearch
}

func (r *recordingLogger) Info(ctx context.Context, msg string, args ...any) {
	r.entries = append(r.entries, loggedSearch{msg: msg, args: args})
}

func typed(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func pasted(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s), Paste: true}
}

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
)

// drive renders before every message, the way the bubbletea loop calls View between updates.
func drive(state *State, msgs ...tea.Msg) {
	a := charm.NewCharmApp(state, App)
	a.Render()
	for _, msg := range msgs {
		a.Update(msg)
		a.Render()
	}
}

func TestEvents(t *testing.T) {
	tests := []struct {
		name       string
		search     string
		msgs       []tea.Msg
		wantSearch string
		wantFocus  component.Focus
		wantLogged []string
	}{
		{
			name:       "typing",
			msgs:       []tea.Msg{typed("L"), typed("y"), typed("o"), typed("n")},
			wantSearch: "Lyon",
			wantFocus:  component.FocusInput,
		},
		{
			name:       "paste then type",
			msgs:       []tea.Msg{pasted("Paris"), typed("!")},
			wantSearch: "Paris!",
			wantFocus:  component.FocusInput,
		},
		{
			name:       "down then enter",
			search:     "Paris",
			msgs:       []tea.Msg{keyDown, keyEnter},
			wantSearch: "Paris",
			wantFocus:  component.FocusButton,
			wantLogged: []string{"Paris"},
		},
		{
			name:       "space on empty search",
			msgs:       []tea.Msg{keyDown, keySpace},
			wantSearch: "",
			wantFocus:  component.FocusButton,
			wantLogged: []string{""},
		},
		{
			name:       "tab moves focus both ways",
			search:     "Oslo",
			msgs:       []tea.Msg{keyTab, keyEnter, keyTab},
			wantSearch: "Oslo",
			wantFocus:  component.FocusInput,
			wantLogged: []string{"Oslo"},
		},
		{
			name:       "up returns to the field",
			search:     "Rome",
			msgs:       []tea.Msg{keyDown, keyUp, typed("s")},
			wantSearch: "Romes",
			wantFocus:  component.FocusInput,
		},
		{
			name:       "enter in the field does not search",
			search:     "Bern",
			msgs:       []tea.Msg{keyEnter},
			wantSearch: "Bern",
			wantFocus:  component.FocusInput,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := &recordingLogger{}
			state := &State{
				Search: tt.search,
				Cursor: len([]rune(tt.search)),
				Focus:  component.FocusInput,
				Logger: logger,
			}

			drive(state, tt.msgs...)

			if state.Search != tt.wantSearch {
				t.Errorf("Search = %q, want %q", state.Search, tt.wantSearch)
			}
			if state.Focus != tt.wantFocus {
				t.Errorf("Focus = %v, want %v", state.Focus, tt.wantFocus)
			}
			if len(logger.entries) != len(tt.wantLogged) {
				t.Fatalf("logged %d entries, want %d: %v", len(logger.entries), len(tt.wantLogged), logger.entries)
			}
			for i, want := range tt.wantLogged {
				entry := logger.entries[i]
				if entry.msg != component.SearchLogMessage {
					t.Errorf("entry %d msg = %q, want %q", i, entry.msg, component.SearchLogMessage)
				}
				if len(entry.args) != 2 || entry.args[0] != "city" || entry.args[1] != want {
					t.Errorf("entry %d args = %v, want [city %q]", i, entry.args, want)
				}
			}
		})
	}
}

func TestEvents_PasteKeepsCaretAtEnd(t *testing.T) {
	state := &State{Focus: component.FocusInput}

	drive(state, pasted("Paris"))

	if state.Search != "Paris" {
		t.Fatalf("Search = %q, want %q", state.Search, "Paris")
	}
	if state.Cursor != len("Paris") {
		t.Errorf("Cursor = %d, want %d", state.Cursor, len("Paris"))
	}
}

func TestState_SetCursorClamps(t *testing.T) {
	tests := []struct {
		search   string
		position int
		want     int
	}{
		{"Rome", -2, 0},
		{"Rome", 2, 2},
		{"Rome", 5, 5},
		{"Rome", 9, 5},
		{"Zürich", 10, 7},
	}
	for _, tt := range tests {
		state := &State{Search: tt.search}
		state.SetCursor(tt.position)
		if state.Cursor != tt.want {
			t.Errorf("SetCursor(%d) with %q: Cursor = %d, want %d", tt.position, tt.search, state.Cursor, tt.want)
		}
	}
}
