// ABOUTME: Standard filesystem paths for pi-edit configuration
// ABOUTME: Resolves ~/.pi-edit/ for global and .pi-edit/ for project-local settings

package config

import (
	"os"
	"path/filepath"
)

const (
	globalDirName  = ".pi-edit"
	projectDirName = ".pi-edit"
	configFileName = "config.yaml"
)

// GlobalDir returns the user-global config directory (~/.pi-edit/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return filepath.Join(home, globalDirName)
}

// ProjectDir returns the project-local config directory (.pi-edit/ under projectRoot).
func ProjectDir(projectRoot string) string {
	return filepath.Join(projectRoot, projectDirName)
}

// GlobalConfigFile returns the path to the global config file.
func GlobalConfigFile() string {
	return filepath.Join(GlobalDir(), configFileName)
}

// ProjectConfigFile returns the path to the project-local config file.
func ProjectConfigFile(projectRoot string) string {
	return filepath.Join(ProjectDir(projectRoot), configFileName)
}
