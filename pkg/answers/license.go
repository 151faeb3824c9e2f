package answers

import (
	"errors"
	"fmt"
)

// License identifies one of the selectable project licenses. Values use the
// shields.io badge escaping, where a doubled hyphen renders as one.
type License string

const (
	LicenseMIT    License = "MIT"
	LicenseApache License = "Apache--2"
	LicenseGPL    License = "GPL--3"
	LicenseNone   License = "None"
)

// Licenses is the fixed choice list, in the order it is offered.
var Licenses = []License{LicenseMIT, LicenseApache, LicenseGPL, LicenseNone}

// ErrUnknownLicense is returned when a value is not one of Licenses.
var ErrUnknownLicense = errors.New("answers: unknown license")

// ParseLicense matches raw against the choice list exactly.
func ParseLicense(raw string) (License, error) {
	for _, license := range Licenses {
		if string(license) == raw {
			return license, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownLicense, raw)
}

// LicenseOptions returns the choice list as strings.
func LicenseOptions() []string {
	out := make([]string, len(Licenses))
	for i, license := range Licenses {
		out[i] = string(license)
	}
	return out
}
