package run

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xhd2015/less-gen/flags"
)

const configHelp = `
config - show or update saved settings

Options:
  --placeholder <text>         save the placeholder shown while the field is empty
  --width <n>                  save the width of the search field
  -h,--help                    show this help message

Without options the effective settings are printed as JSON.
`

func handleConfig(args []string) error {
	return runConfig(os.Stdout, args)
}

func runConfig(out io.Writer, args []string) error {
	var placeholder string
	var width int64

	args, err := flags.String("--placeholder", &placeholder).
		Int("--width", &width).
		Help("-h,--help", configHelp).
		Parse(args)
	if err != nil {
		return err
	}
	if len(args) > 0 {
		return fmt.Errorf("unrecognized extra argument: %s", strings.Join(args, " "))
	}
	if width < 0 {
		return fmt.Errorf("--width must be positive: %d", width)
	}

	_, err = UpdateSavedConfig(placeholder, int(width))
	if err != nil {
		return err
	}

	uiConfig, err := ApplyConfigDefaults("", 0)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(uiConfig, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}
