package readme

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-readmegen/pkg/answers"
)

// NoLicenseText is the whole license section when no license was chosen.
const NoLicenseText = "No license selected at this time."

const (
	badgeURLFormat   = "https://img.shields.io/badge/license-%s-brightgreen.svg"
	licenseURLFormat = "https://opensource.org/licenses/%s"
)

// LicenseSlug is the lower-cased license identifier used in the license URL.
func LicenseSlug(license answers.License) string {
	return strings.ToLower(string(license))
}

// LicenseDisplayName is the license identifier with digits and hyphens
// removed, used in prose.
func LicenseDisplayName(license answers.License) string {
	return strings.Map(func(r rune) rune {
		if r == '-' || (r >= '0' && r <= '9') {
			return -1
		}
		return r
	}, string(license))
}

// LicenseURL links to the license text on opensource.org.
func LicenseURL(license answers.License) string {
	return fmt.Sprintf(licenseURLFormat, LicenseSlug(license))
}

// LicenseBadge is a Markdown image badge linking to LicenseURL.
func LicenseBadge(license answers.License) string {
	badge := fmt.Sprintf(badgeURLFormat, string(license))
	return fmt.Sprintf("[![badge](%s)](%s)", badge, LicenseURL(license))
}

// LicenseSection renders the body of the License section.
func LicenseSection(license answers.License) string {
	if license == answers.LicenseNone {
		return NoLicenseText
	}
	return LicenseBadge(license) + "\n\n" +
		fmt.Sprintf("This project is licensed under the %s license.", LicenseDisplayName(license))
}
