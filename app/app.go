package app

import (
	"time"

	"github.com/xhd2015/go-dom-tui/dom"
	"github.com/xhd2015/go-dom-tui/styles"
	"github.com/xhd2015/wthr/component"
)

const (
	CtrlCExitDelayMs = 1000

	Title = "Weather"
)

// State owns everything the search box displays.
type State struct {
	Search string
	Cursor int
	Focus  component.Focus

	Placeholder string
	InputWidth  int
	Logger      component.Logger

	Quit func()

	Refresh func()

	LastCtrlC time.Time
}

func (state *State) SetSearch(value string) {
	state.Search = value
}

// SetCursor keeps the caret within [0, len(Search)+1], measured in runes.
func (state *State) SetCursor(position int) {
	if position < 0 {
		position = 0
	}
	if limit := len([]rune(state.Search)) + 1; position > limit {
		position = limit
	}
	state.Cursor = position
}

func (state *State) SetFocus(focus component.Focus) {
	state.Focus = focus
}

func App(state *State, window *dom.Window) *dom.Node {
	return dom.Div(dom.DivProps{
		OnKeyDown: func(event *dom.DOMEvent) {
			keyEvent := event.KeydownEvent
			if keyEvent == nil {
				return
			}
			switch keyEvent.KeyType {
			case dom.KeyTypeCtrlC:
				if time.Since(state.LastCtrlC) < time.Millisecond*CtrlCExitDelayMs {
					if state.Quit != nil {
						state.Quit()
					}
					return
				}
				state.LastCtrlC = time.Now()

				if state.Refresh != nil {
					go func() {
						time.Sleep(time.Millisecond * CtrlCExitDelayMs)
						state.Refresh()
					}()
				}
			}
		},
	},
		dom.H1(dom.DivProps{}, dom.Text(Title, styles.Style{
			Bold:        true,
			BorderColor: "orange",
		})),
		SearchPage(state),
		func() *dom.Node {
			if time.Since(state.LastCtrlC) < time.Millisecond*CtrlCExitDelayMs {
				return dom.Text("press Ctrl-C again to exit", styles.Style{
					Bold:  true,
					Color: "1",
				})
			}
			return dom.Text("tab/up/down to move focus, enter to search, ctrl-c twice to exit")
		}(),
	)
}

// SearchPage mounts the search box bound to state.
func SearchPage(state *State) *dom.Node {
	return component.SearchBox(component.SearchBoxProps{
		Search:      state.Search,
		SetSearch:   state.SetSearch,
		Cursor:      state.Cursor,
		SetCursor:   state.SetCursor,
		Focus:       state.Focus,
		SetFocus:    state.SetFocus,
		Placeholder: state.Placeholder,
		Width:       state.InputWidth,
		Logger:      state.Logger,
	})
}
