package models

const (
	DefaultPlaceholder = "Enter city name"
	DefaultInputWidth  = 50
)

type Config struct {
	Placeholder string `json:"placeholder,omitempty"`
	InputWidth  int    `json:"input_width,omitempty"`
	RunningPID  int    `json:"running_pid,omitempty"`
}

// WithDefaults returns a copy with empty fields filled in.
func (c *Config) WithDefaults() Config {
	var conf Config
	if c != nil {
		conf = *c
	}
	if conf.Placeholder == "" {
		conf.Placeholder = DefaultPlaceholder
	}
	if conf.InputWidth <= 0 {
		conf.InputWidth = DefaultInputWidth
	}
	return conf
}
