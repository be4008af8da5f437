// Package assets provides the embedded default footer of the friends page.
//
// The footer is appended after the rendered friend sections. Deployments can
// replace it with their own file via the --footer flag; the embedded copy
// keeps the binary usable without any files next to it.
package assets

import (
	"embed"
	"fmt"
	"os"
)

//go:embed footer.html
var files embed.FS

// DefaultFooter returns the embedded footer fragment.
func DefaultFooter() []byte {
	data, err := files.ReadFile("footer.html")
	if err != nil {
		// unreachable: footer.html is embedded
		panic(err)
	}
	return data
}

// Footer returns the contents of path, or the embedded default when path is
// empty.
func Footer(path string) ([]byte, error) {
	if path == "" {
		return DefaultFooter(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read footer: %w", err)
	}
	return data, nil
}
