package domain

import (
	"fmt"
	"strings"

	"go.trai.ch/zerr"
)

// DefaultOSDescription is used when a descriptor entry does not describe itself.
const DefaultOSDescription = "an operating system"

// OperatingSystem describes how a supported host distribution installs the agent.
type OperatingSystem struct {
	Name           string
	PackageManager PackageManager
	Description    string
	SnmpdPackages  []string
	XinetdPackages []string
}

// NewOperatingSystem builds an OperatingSystem from descriptor attributes.
// The name and package_manager attributes are required.
func NewOperatingSystem(attrs Attributes) (*OperatingSystem, error) {
	name, err := requireString(attrs, "name")
	if err != nil {
		return nil, err
	}

	rawPM, err := requireString(attrs, "package_manager")
	if err != nil {
		return nil, zerr.With(err, "entry", name)
	}
	pm, err := ParsePackageManager(rawPM)
	if err != nil {
		invalid := Annotate(ErrInvalidRecord, "entry", name)
		return nil, zerr.With(invalid, "package_manager", rawPM)
	}

	description, err := optionalString(attrs, "description", DefaultOSDescription)
	if err != nil {
		return nil, zerr.With(err, "entry", name)
	}
	snmpd, err := optionalList(attrs, "snmpd_pkgs")
	if err != nil {
		return nil, zerr.With(err, "entry", name)
	}
	xinetd, err := optionalList(attrs, "xinetd_pkgs")
	if err != nil {
		return nil, zerr.With(err, "entry", name)
	}

	return &OperatingSystem{
		Name:           name,
		PackageManager: pm,
		Description:    description,
		SnmpdPackages:  snmpd,
		XinetdPackages: xinetd,
	}, nil
}

// Kind implements Record.
func (o *OperatingSystem) Kind() RecordKind { return KindOperatingSystem }

// Fields implements Record.
func (o *OperatingSystem) Fields() []Field {
	return []Field{
		{Name: "name", Value: o.Name},
		{Name: "package_manager", Value: o.PackageManager.String()},
		{Name: "description", Value: o.Description},
		{Name: "snmpd_pkgs", Value: strings.Join(o.SnmpdPackages, " ")},
		{Name: "xinetd_pkgs", Value: strings.Join(o.XinetdPackages, " ")},
	}
}

// Summary implements Record.
func (o *OperatingSystem) Summary() []string {
	return []string{
		fmt.Sprintf("My OS is %q, and my package manager is %q", o.Name, o.PackageManager),
		fmt.Sprintf("My snmpd package is %q", strings.Join(o.SnmpdPackages, " ")),
		fmt.Sprintf("%q is %q", o.Name, o.Description),
	}
}
