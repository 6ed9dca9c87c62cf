package web

import (
	"embed"
	"io/fs"
)

//go:embed templates static
var assets embed.FS

// Templates liefert die HTML-Vorlagen mit "templates" als Wurzel.
func Templates() fs.FS {
	sub, err := fs.Sub(assets, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}

// Static liefert die statischen Dateien (CSS, JS) mit "static" als Wurzel.
func Static() fs.FS {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
