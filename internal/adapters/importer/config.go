package importer

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Dirs holds the markdown directories of a legacy config.toml. An empty
// entry skips that kind.
type Dirs struct {
	Habits     string `toml:"habits_dir"`
	Activities string `toml:"activities_dir"`
	Presets    string `toml:"presets_dir"`
	Media      string `toml:"media_dir"`
	Workouts   string `toml:"workout_dir"`
	Templates  string `toml:"template_dir"`
}

func LoadDirs(path string) (Dirs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Dirs{}, fmt.Errorf("read import config: %w", err)
	}

	var dirs Dirs
	if err := toml.Unmarshal(data, &dirs); err != nil {
		return Dirs{}, fmt.Errorf("parse import config %s: %w", path, err)
	}
	if dirs == (Dirs{}) {
		return Dirs{}, fmt.Errorf("import config %s names no directories", path)
	}
	return dirs, nil
}
