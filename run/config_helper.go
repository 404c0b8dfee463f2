package run

import (
	"github.com/xhd2015/wthr/data"
	"github.com/xhd2015/wthr/models"
)

// UIConfig holds the values the search box is mounted with
type UIConfig struct {
	Placeholder string `json:"placeholder"`
	InputWidth  int    `json:"input_width"`
}

// ApplyConfigDefaults loads saved config and applies defaults to UI settings.
// Non-empty arguments win over saved values.
func ApplyConfigDefaults(placeholder string, inputWidth int) (UIConfig, error) {
	savedConfig, err := data.LoadConfig()
	if err != nil {
		return UIConfig{}, err
	}

	conf := savedConfig.WithDefaults()
	if placeholder != "" {
		conf.Placeholder = placeholder
	}
	if inputWidth > 0 {
		conf.InputWidth = inputWidth
	}

	return UIConfig{
		Placeholder: conf.Placeholder,
		InputWidth:  conf.InputWidth,
	}, nil
}

// UpdateSavedConfig writes non-empty values into the saved config, keeping other fields
func UpdateSavedConfig(placeholder string, inputWidth int) (*models.Config, error) {
	savedConfig, err := data.LoadConfig()
	if err != nil {
		return nil, err
	}
	if savedConfig == nil {
		savedConfig = &models.Config{}
	}
	if placeholder == "" && inputWidth <= 0 {
		return savedConfig, nil
	}
	if placeholder != "" {
		savedConfig.Placeholder = placeholder
	}
	if inputWidth > 0 {
		savedConfig.InputWidth = inputWidth
	}
	err = data.SaveConfig(savedConfig)
	if err != nil {
		return nil, err
	}
	return savedConfig, nil
}
