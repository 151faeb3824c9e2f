// Package readme renders an answers.Record into a Markdown README using the
// embedded templates/readme.tpl, and checks the rendered outline with
// goldmark.
//
// The License section is the only conditional part of the document: a record
// whose license is "None" gets NoLicenseText, any other license gets a badge
// linking to opensource.org followed by a one-line notice. The slug used in
// the link and the display name used in the notice are derived separately by
// LicenseSlug and LicenseDisplayName.
package readme
