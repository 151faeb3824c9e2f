// Package template defines the engine interface document renderers use and
// hosts the pongo2-backed implementation in the pongo subpackage.
package template
