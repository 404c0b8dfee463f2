package run

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/xhd2015/go-dom-tui/charm/renderer"
	"github.com/xhd2015/less-gen/flags"
	"github.com/xhd2015/wthr/app"
	"github.com/xhd2015/wthr/component"
	"github.com/xhd2015/wthr/log"
	"golang.org/x/term"
)

const renderHelp = `
render - print a single frame of the search box and exit

Options:
  --search <text>              text shown in the search field
  --focus <input|button>       control drawn as focused (default: none)
  --placeholder <text>         placeholder shown while the field is empty
  --width <n>                  width of the search field
  -h,--help                    show this help message

Examples:
  wthr render --search Paris
  wthr render --focus button
`

func handleRender(args []string) error {
	var search string
	var focus string
	var placeholder string
	var width int64

	args, err := flags.String("--search", &search).
		String("--focus", &focus).
		String("--placeholder", &placeholder).
		Int("--width", &width).
		Help("-h,--help", renderHelp).
		Parse(args)
	if err != nil {
		return err
	}

	if len(args) > 0 {
		return fmt.Errorf("unrecognized extra argument: %s", strings.Join(args, " "))
	}

	parsedFocus, err := parseFocus(focus)
	if err != nil {
		return err
	}

	uiConfig, err := ApplyConfigDefaults(placeholder, int(width))
	if err != nil {
		return err
	}

	state := &app.State{
		Search:      search,
		Cursor:      len([]rune(search)),
		Focus:       parsedFocus,
		Placeholder: uiConfig.Placeholder,
		InputWidth:  uiConfig.InputWidth,
		Logger:      log.Logger{},
	}

	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	return renderFrame(os.Stdout, isTTY, state)
}

func parseFocus(s string) (component.Focus, error) {
	switch s {
	case "", "none":
		return component.FocusNone, nil
	case "input":
		return component.FocusInput, nil
	case "button":
		return component.FocusButton, nil
	default:
		return component.FocusNone, fmt.Errorf("invalid --focus %q, expect input or button", s)
	}
}

// renderFrame writes the title and one rendering of the search page
func renderFrame(out io.Writer, isTTY bool, state *app.State) error {
	title := app.Title
	if isTTY {
		title = lipgloss.NewStyle().Bold(true).Render(title)
	}
	_, err := io.WriteString(out, title+"\n")
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, renderer.NewInteractiveCharmRenderer().Render(app.SearchPage(state))+"\n")
	return err
}

func RenderToString(state *app.State, simulateTTY bool) string {
	var b bytes.Buffer
	// bytes.Buffer writes do not fail
	_ = renderFrame(&b, simulateTTY, state)
	return b.String()
}
