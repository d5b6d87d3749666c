package util

import (
	"os"
	"path/filepath"
)

// ExecutableDir returns the absolute directory of the running binary.
// Default configuration and output files live next to the executable.
func ExecutableDir() (string, error) {
	exePath, err := os.Executable()
	if err != nil {
		return "", err
	}
	res, _ := filepath.EvalSymlinks(filepath.Dir(exePath))
	return res, nil
}
