package endoconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/endo/cmds"
	"github.com/reusee/endo/configs"
	"github.com/reusee/endo/logs"
)

//go:embed schema.cue
var Schema string

var configFileFlag = cmds.Collect[string]("-config", "load an extra cue config file, takes precedence over discovered ones")

// ConfigsLoader looks for endo.cue and .endo.cue in the working directory,
// the user config directory and /etc, in that order of precedence.
func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {

	paths := append([]string(nil), (*configFileFlag)...)
	defer func() {
		if len(paths) > 0 {
			logger.Info("config file",
				"paths", paths,
			)
		}
	}()

	filenames := []string{
		"endo.cue",
		".endo.cue",
	}

	var dirs []string
	if workingDir, err := os.Getwd(); err == nil {
		dirs = append(dirs, workingDir)
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, configDir)
	}
	dirs = append(dirs, "/etc")

	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}

	return configs.NewLoader(paths, Schema)
}
