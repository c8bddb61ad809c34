package migrations

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/synthapp/synth/config"
)

// BaselineVersion is the schema created by database.InitializeDatabase
const BaselineVersion = 1

// ParseVersion reads the schema version out of a release string such as
// "v3.1" or "3": only the major component counts.
func ParseVersion(release string) (int, error) {
	major, _, _ := strings.Cut(strings.TrimPrefix(strings.TrimSpace(release), "v"), ".")
	version, err := strconv.Atoi(major)
	if err != nil || version < BaselineVersion {
		return 0, fmt.Errorf("invalid version format: %s", release)
	}
	return version, nil
}

// SchemaVersion is the schema version this build expects
func SchemaVersion() (int, error) {
	return ParseVersion(config.VERSION)
}
