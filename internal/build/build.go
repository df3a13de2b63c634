// Package build holds build-time information.
package build

// Name is the human-readable name of the installer.
const Name = "LibreNMS Client Install Script"

// Version is the application version.
// It can be overwritten by linker flags.
var Version = "0.0.1"
