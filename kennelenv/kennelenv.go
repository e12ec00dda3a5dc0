// Package kennelenv resolves the creature data directory, overridable via
// the KENNEL_CLUB_DATA_DIR environment variable (spec §6, grounded on
// original_source/src/env.rs).
package kennelenv

import "os"

const (
	dataDirEnvVar  = "KENNEL_CLUB_DATA_DIR"
	defaultDataDir = "./data"
)

// DataDir returns the configured creature data directory.
func DataDir() string {
	if dir := os.Getenv(dataDirEnvVar); dir != "" {
		return dir
	}
	return defaultDataDir
}
