package domain

import "go.trai.ch/zerr"

// PackageManager is a host package manager the installer knows how to drive.
type PackageManager string

const (
	// PackageManagerApt is Debian's apt.
	PackageManagerApt PackageManager = "apt"
	// PackageManagerYum is Red Hat's yum.
	PackageManagerYum PackageManager = "yum"
)

// SupportedPackageManagers lists the accepted package managers in display order.
func SupportedPackageManagers() []PackageManager {
	return []PackageManager{PackageManagerApt, PackageManagerYum}
}

// ParsePackageManager validates s against the supported set and returns it unchanged.
func ParsePackageManager(s string) (PackageManager, error) {
	switch pm := PackageManager(s); pm {
	case PackageManagerApt, PackageManagerYum:
		return pm, nil
	default:
		err := Annotate(ErrUnsupportedPackageManager, "package_manager", s)
		return "", zerr.With(err, "supported", SupportedPackageManagers())
	}
}

// String implements fmt.Stringer.
func (p PackageManager) String() string { return string(p) }

// InstallCommand returns the non-interactive install command line for the given packages.
func (p PackageManager) InstallCommand(packages []string) []string {
	var cmd []string
	switch p {
	case PackageManagerApt:
		cmd = []string{"apt-get", "install", "-y"}
	case PackageManagerYum:
		cmd = []string{"yum", "install", "-y"}
	default:
		return nil
	}
	return append(cmd, packages...)
}
