// Package assets embeds the language data and the built-in pattern table.
package assets

import (
	"embed"
	"io/fs"
)

// PatternsFile is the name of the built-in pattern table inside FS.
const PatternsFile = "patterns.yaml"

//go:embed data
var data embed.FS

// FS returns the embedded data directory: the WordNet noun subset
// (index.noun, noun.exc) and patterns.yaml.
func FS() fs.FS {
	sub, err := fs.Sub(data, "data")
	if err != nil {
		// The directory is compiled in; fs.Sub only fails on an invalid name.
		panic(err)
	}
	return sub
}
