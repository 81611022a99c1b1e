package tui

import (
	"github.com/young1lin/gridsheet/internal/config"
)

// ConfigReloadedMsg is sent when the config file changes on disk
type ConfigReloadedMsg struct {
	Config *config.Config
}

// ConfigErrorMsg is sent when the config watcher fails or a reload does not parse
type ConfigErrorMsg struct {
	Err error
}
