package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// WorkdirFileName is the name of the per-checkout configuration file,
// read from the top of the working tree.
const WorkdirFileName = ".git-stack.toml"

// workdirFile mirrors the TOML schema of [WorkdirFileName]. Field
// names are kebab-case in the file, matching the repo-local
// git-config key naming.
type workdirFile struct {
	ProtectedBranch []string `toml:"protected-branch"`
	PushRemote      string   `toml:"push-remote"`
	PullRemote      string   `toml:"pull-remote"`
	Capacity        int      `toml:"snapshot-capacity"`
}

// FromWorkdir reads [WorkdirFileName] from dir, if present. A missing
// file is not an error; it yields a zero Config.
func FromWorkdir(dir string) (Config, error) {
	path := filepath.Join(dir, WorkdirFileName)

	var f workdirFile
	_, err := toml.DecodeFile(path, &f)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, err
	}

	return Config{
		ProtectedBranches: f.ProtectedBranch,
		PushRemote:        f.PushRemote,
		PullRemote:        f.PullRemote,
		Capacity:          f.Capacity,
	}, nil
}
