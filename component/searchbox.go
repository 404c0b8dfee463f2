package component

import (
	"context"

	"github.com/xhd2015/go-dom-tui/colors"
	"github.com/xhd2015/go-dom-tui/dom"
	"github.com/xhd2015/go-dom-tui/styles"
	"github.com/xhd2015/wthr/log"
)

const (
	SearchButtonLabel = "Search Weather"
	SearchLogMessage  = "Search for city: "

	defaultInputWidth = 50
)

type Focus int

const (
	FocusNone Focus = iota
	FocusInput
	FocusButton
)

// Logger receives the diagnostic entry emitted when a search is triggered.
type Logger interface {
	Info(ctx context.Context, msg string, args ...any)
}

// SearchBoxProps carries everything SearchBox shows. The box keeps no state:
// each value comes with the setter its owner uses to change it.
type SearchBoxProps struct {
	Search    string
	SetSearch func(string)

	Cursor    int
	SetCursor func(int)

	Focus    Focus
	SetFocus func(Focus)

	Placeholder string
	Width       int
	Logger      Logger
}

func SearchBox(props SearchBoxProps) *dom.Node {
	width := props.Width
	if width <= 0 {
		width = defaultInputWidth
	}

	var buttonBorderColor string
	if props.Focus == FocusButton {
		buttonBorderColor = colors.GREEN_SUCCESS
	}

	return dom.Div(dom.DivProps{
		OnKeyDown: props.onKeyDown,
	},
		dom.Input(dom.InputProps{
			Placeholder:    props.Placeholder,
			Value:          props.Search,
			Focused:        props.Focus == FocusInput,
			CursorPosition: props.Cursor,
			Focusable:      dom.Focusable(true),
			Width:          width,
			OnFocus: func() {
				props.setFocus(FocusInput)
			},
			OnBlur: func() {
				props.blur(FocusInput)
			},
			OnChange:     props.onChange,
			OnCursorMove: props.onCursorMove,
		}),
		dom.TextWithProps(SearchButtonLabel, dom.TextNodeProps{
			Style: styles.Style{
				Bold:        props.Focus == FocusButton,
				BorderColor: buttonBorderColor,
			},
			Focused:   props.Focus == FocusButton,
			Focusable: true,
			OnFocus: func() {
				props.setFocus(FocusButton)
			},
			OnBlur: func() {
				props.blur(FocusButton)
			},
			OnKeyDown: func(event *dom.DOMEvent) {
				keyEvent := event.KeydownEvent
				if keyEvent == nil {
					return
				}
				switch keyEvent.KeyType {
				case dom.KeyTypeEnter, dom.KeyTypeSpace:
					props.onSearch(context.Background())
					event.StopPropagation()
				}
			},
		}),
	)
}

// onChange forwards the raw field text, untouched, once per change event.
func (p SearchBoxProps) onChange(value string) {
	p.SetSearch(value)
}

// onCursorMove runs after onChange within the same event, so p.Search may
// already be stale; the owner clamps against its current value.
func (p SearchBoxProps) onCursorMove(position int) {
	if p.SetCursor == nil {
		return
	}
	if position < 0 {
		position = 0
	}
	p.SetCursor(position)
}

func (p SearchBoxProps) onSearch(ctx context.Context) {
	logger := p.Logger
	if logger == nil {
		logger = log.Logger{}
	}
	logger.Info(ctx, SearchLogMessage, "city", p.Search)
}

func (p SearchBoxProps) onKeyDown(event *dom.DOMEvent) {
	keyEvent := event.KeydownEvent
	if keyEvent == nil {
		return
	}
	switch keyEvent.KeyType {
	case dom.KeyTypeDown:
		p.focusButton()
	case dom.KeyTypeUp:
		p.focusInput()
	case dom.KeyTypeTab:
		p.cycleFocus()
	}
}

func (p SearchBoxProps) cycleFocus() {
	if p.Focus == FocusInput {
		p.setFocus(FocusButton)
		return
	}
	p.setFocus(FocusInput)
}

func (p SearchBoxProps) focusButton() {
	if p.Focus == FocusInput {
		p.setFocus(FocusButton)
	}
}

func (p SearchBoxProps) focusInput() {
	if p.Focus == FocusButton {
		p.setFocus(FocusInput)
	}
}

func (p SearchBoxProps) setFocus(focus Focus) {
	if p.SetFocus == nil || p.Focus == focus {
		return
	}
	p.SetFocus(focus)
}

// blur only clears focus still held by the control losing it.
func (p SearchBoxProps) blur(from Focus) {
	if p.Focus != from {
		return
	}
	p.setFocus(FocusNone)
}
