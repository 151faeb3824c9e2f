// Package questions loads the ordered interview catalogue and the per-field
// validators. The bundled catalogue lives in catalogue/readme.yaml and is
// embedded into the binary.
package questions
