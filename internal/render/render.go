// Package render turns the friend list into the HTML fragment embedded on
// the friends page.
//
// The fragment is built as an x/net/html node tree and serialized with
// html.Render, so names, URLs and descriptions are always escaped. Hidden
// endpoints are skipped.
package render

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	friends "github.com/Eofs791/tcdw-friends"
	"github.com/Eofs791/tcdw-friends/config"
)

// AvatarAlt is the alt text of every avatar image.
const AvatarAlt = "头像"

// Page renders every section followed by footer. Sections are separated by a
// blank line and the footer is appended verbatim after a newline.
func Page(sections []config.Section, footer []byte) ([]byte, error) {
	var buf bytes.Buffer
	for i, s := range sections {
		if i > 0 {
			buf.WriteString("\n\n")
		}
		if err := Section(&buf, s.Title, s.Endpoints); err != nil {
			return nil, fmt.Errorf("failed to render section %q: %w", s.Title, err)
		}
	}
	buf.WriteString("\n")
	buf.Write(footer)
	return buf.Bytes(), nil
}

// Section writes a titled grid of the visible endpoints to buf.
func Section(buf *bytes.Buffer, title string, endpoints []friends.Endpoint) error {
	h3 := element(atom.H3, attr("class", "friends-title"))
	h3.AppendChild(text(title))
	if err := html.Render(buf, h3); err != nil {
		return err
	}
	buf.WriteString("\n\n")

	ul := element(atom.Ul, attr("class", "friends-grid"))
	ul.AppendChild(text("\n"))
	for _, ep := range friends.VisibleEndpoints(endpoints) {
		ul.AppendChild(item(ep))
		ul.AppendChild(text("\n"))
	}
	return html.Render(buf, ul)
}

// item builds one <li> card for ep.
func item(ep friends.Endpoint) *html.Node {
	img := element(atom.Img,
		attr("loading", "lazy"),
		attr("src", ep.Avatar()),
		attr("alt", AvatarAlt),
	)
	avatar := element(atom.Div, attr("class", "friends-item__avatar"))
	avatar.AppendChild(img)

	name := element(atom.P, attr("class", "friends-item__name"))
	name.AppendChild(text(ep.Name()))

	desc := element(atom.Aside, attr("class", "friends-item__description"))
	if d := ep.Description(); d != "" {
		desc.AppendChild(text(d))
	}

	a := element(atom.A, attr("target", "_blank"), attr("href", ep.URL()))
	a.AppendChild(avatar)
	a.AppendChild(name)
	a.AppendChild(desc)

	li := element(atom.Li, attr("class", "friends-item"))
	li.AppendChild(a)
	return li
}

// WriteFile writes data to path, creating the parent directory if needed.
func WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
