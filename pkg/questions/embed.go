package questions

import (
	"embed"
	"io/fs"
	"sync"
)

// DefaultFile names the bundled catalogue inside EmbeddedFS.
const DefaultFile = "readme.yaml"

//go:embed catalogue/*.yaml
var embeddedCatalogue embed.FS

var (
	defaultOnce      sync.Once
	defaultCatalogue *Catalogue
	defaultErr       error
)

// EmbeddedFS returns the bundled question catalogue files.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedCatalogue, "catalogue")
	if err != nil {
		// The embed directive guarantees the subpath exists.
		panic(err)
	}
	return sub
}

// Default loads the bundled README catalogue once and returns it.
func Default() (*Catalogue, error) {
	defaultOnce.Do(func() {
		defaultCatalogue, defaultErr = Load(EmbeddedFS(), DefaultFile)
	})
	return defaultCatalogue, defaultErr
}
