package auhuiconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/auhui/configs"
	"github.com/reusee/auhui/logs"
	"github.com/reusee/auhui/modes"
)

//go:embed schema.cue
var schema string

var filenames = []string{
	"auhui.cue",
	".auhui.cue",
}

// SearchDirs lists the directories searched for config files, most specific first.
type SearchDirs []string

func (Module) SearchDirs(
	mode modes.Mode,
) SearchDirs {
	if mode == modes.ModeDevelopment {
		// tests never read the host's configs
		return nil
	}
	var dirs []string
	if dir, err := os.Getwd(); err == nil {
		dirs = append(dirs, dir)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	dirs = append(dirs, "/etc")
	return dirs
}

func (Module) ConfigsLoader(
	logger logs.Logger,
	dirs SearchDirs,
) configs.Loader {
	var paths []string
	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	if len(paths) > 0 {
		logger.Info("config file",
			"paths", paths,
		)
	}
	return configs.NewLoader(paths, schema)
}
