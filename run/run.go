package run

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/xhd2015/go-dom-tui/charm"
	domlog "github.com/xhd2015/go-dom-tui/log"
	"github.com/xhd2015/less-gen/flags"
	"github.com/xhd2015/wthr/app"
	"github.com/xhd2015/wthr/component"
	"github.com/xhd2015/wthr/data"
	"github.com/xhd2015/wthr/internal/config"
	"github.com/xhd2015/wthr/internal/process"
	"github.com/xhd2015/wthr/log"
	"github.com/xhd2015/wthr/models"
)

const help = `
wthr - type a city name and trigger a weather search

Usage: wthr [OPTIONS]
       wthr <cmd> [OPTIONS]

Available sub commands:
  render
  config

Options:
  --search <text>                  initial text of the search field
  --placeholder <text>             placeholder shown while the field is empty
  --width <n>                      width of the search field
  --debug-log <file>               enable renderer debug logging to specified file
  --show-path                      print the config directory and exit
  -h,--help                        show this help message

Environment:
  WTHR_CONFIG_DIR                  override the config directory
  A .env file in the working directory is loaded first.

Examples:
  wthr                             start with an empty search field
  wthr --search Paris              start with "Paris" typed in
  wthr render --search Paris       print a single frame and exit
`

func Main(args []string) error {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	if len(args) > 0 {
		arg0 := args[0]
		switch arg0 {
		case "render":
			return handleRender(args[1:])
		case "config":
			return handleConfig(args[1:])
		}
	}

	var search string
	var placeholder string
	var width int64
	var debugLogFile string
	var showPath bool

	args, err = flags.String("--search", &search).
		String("--placeholder", &placeholder).
		Int("--width", &width).
		String("--debug-log", &debugLogFile).
		Bool("--show-path", &showPath).
		Help("-h,--help", help).
		Parse(args)
	if err != nil {
		return err
	}

	if len(args) > 0 {
		return fmt.Errorf("unrecognized extra arguments: %s", strings.Join(args, " "))
	}

	uiConfig, err := ApplyConfigDefaults(placeholder, int(width))
	if err != nil {
		return err
	}

	confDir, err := config.GetConfigDir()
	if err != nil {
		return err
	}

	if showPath {
		fmt.Println(confDir)
		return nil
	}

	err = os.MkdirAll(confDir, 0755)
	if err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	err = log.Init(confDir)
	if err != nil {
		return err
	}

	release, err := acquireInstance()
	if err != nil {
		return err
	}
	defer release()

	if debugLogFile != "" {
		file, err := os.OpenFile(debugLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open debug log file: %w", err)
		}
		defer file.Close()
		domlog.SetLogger(domlog.NewFileLogger(file))
	}

	ctx := context.Background()
	logger := log.Logger{}
	logger.Info(ctx, "starting", "config", log.JSON(uiConfig))

	var p *tea.Program
	appState := app.State{
		Search:      search,
		Cursor:      len([]rune(search)),
		Focus:       component.FocusInput,
		Placeholder: uiConfig.Placeholder,
		InputWidth:  uiConfig.InputWidth,
		Logger:      logger,
		Refresh: func() {
			p.Send(cursor.Blink())
		},
	}

	model := &Model{
		app: charm.NewCharmApp(&appState, app.App),
	}

	appState.Quit = func() {
		model.quit = true
	}

	p = tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	if err != nil {
		logger.Error(ctx, "program exited", "err", err)
	}
	return err
}

// acquireInstance records this process as the running one; the returned func clears it
func acquireInstance() (func(), error) {
	conf, err := data.LoadConfig()
	if err != nil {
		return nil, err
	}

	if conf != nil && conf.RunningPID > 0 && conf.RunningPID != os.Getpid() {
		alive, _ := process.Alive(conf.RunningPID)
		if alive {
			return nil, fmt.Errorf("wthr is already running with PID %d", conf.RunningPID)
		}
	}
	if conf == nil {
		conf = &models.Config{}
	}
	conf.RunningPID = os.Getpid()
	err = data.SaveConfig(conf)
	if err != nil {
		return nil, err
	}

	return func() {
		latest, err := data.LoadConfig()
		if err != nil || latest == nil || latest.RunningPID != os.Getpid() {
			return
		}
		latest.RunningPID = 0
		if err := data.SaveConfig(latest); err != nil {
			log.Error(context.Background(), "failed to clear running pid", "err", err)
		}
	}, nil
}

type Model struct {
	quit bool
	app  *charm.CharmApp[app.State]
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.app.Update(msg)
	if m.quit {
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) View() string {
	return m.app.Render()
}
