// Package svg composes the contributor gallery document.
//
// The gallery is a plain grid: every avatar occupies one avatarSize x
// avatarSize cell, numPerRow cells per row, no gutter. Avatar bytes are
// inlined as base64 data uris, so the resulting document has no external
// references and survives avatar hosts removing images.
package svg

import (
	"bytes"
	"encoding/base64"
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"

	"github.com/m-zajac/contribgallery/internal/app"
)

const (
	// defaultMediaType is used when the avatar bytes don't sniff as any
	// known image format.
	defaultMediaType = "image/png"

	xmlnsSVG   = "http://www.w3.org/2000/svg"
	xmlnsXlink = "http://www.w3.org/1999/xlink"

	// galleryStyle gives the avatar links a pointer cursor.
	galleryStyle = ".contributor-gallery { cursor: pointer; }"
)

// Composer builds gallery documents.
// This struct is an adapter for app.GalleryComposer.
type Composer struct{}

var _ app.GalleryComposer = &Composer{}

// NewComposer creates new Composer instance.
func NewComposer() *Composer {
	return &Composer{}
}

// Compose lays contributors' avatars out on a grid and returns the
// serialized svg document.
//
// Contributors are placed in input order: contributor i lands in the cell
// at ((i mod numPerRow) * avatarSize, (i div numPerRow) * avatarSize).
// The canvas is always numPerRow*avatarSize wide; a partially filled last
// row leaves the trailing cells empty. Output is deterministic: identical
// inputs produce byte-identical documents.
func (c *Composer) Compose(
	contributors []app.Contributor,
	avatars []app.AvatarImage,
	avatarSize int,
	numPerRow int,
) ([]byte, error) {
	if avatarSize <= 0 {
		return nil, app.InvalidRequestError("avatar size must be greater than zero")
	}
	if numPerRow <= 0 {
		return nil, app.InvalidRequestError("number per row must be greater than zero")
	}
	if len(contributors) == 0 {
		return nil, app.EmptyInputError("no contributors to compose")
	}
	if len(avatars) != len(contributors) {
		return nil, app.InvalidRequestError(
			fmt.Sprintf("got %d avatars for %d contributors", len(avatars), len(contributors)),
		)
	}

	rows := (len(contributors) + numPerRow - 1) / numPerRow
	width := numPerRow * avatarSize
	height := rows * avatarSize

	var b bytes.Buffer
	fmt.Fprintf(
		&b,
		"<svg xmlns=%q xmlns:xlink=%q width=\"%d\" height=\"%d\">\n",
		xmlnsSVG, xmlnsXlink, width, height,
	)
	fmt.Fprintf(&b, "  <style>%s</style>\n", galleryStyle)

	for i, contributor := range contributors {
		x := (i % numPerRow) * avatarSize
		y := (i / numPerRow) * avatarSize

		fmt.Fprintf(
			&b,
			"  <a xlink:href=\"%s\" class=\"contributor-gallery\" target=\"_blank\" rel=\"nofollow\">\n",
			escapeAttr(contributor.ProfileURL),
		)
		fmt.Fprintf(
			&b,
			"    <image x=\"%d\" y=\"%d\" width=\"%d\" height=\"%d\" xlink:href=\"%s\"/>\n",
			x, y, avatarSize, avatarSize,
			dataURI(avatars[i].Data),
		)
		b.WriteString("  </a>\n")
	}

	b.WriteString("</svg>\n")

	return b.Bytes(), nil
}

// dataURI inlines image bytes as a base64 data uri with a sniffed media type.
func dataURI(data []byte) string {
	mediaType := http.DetectContentType(data)
	if !strings.HasPrefix(mediaType, "image/") {
		mediaType = defaultMediaType
	}

	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// escapeAttr escapes a string for use inside a double-quoted xml attribute.
func escapeAttr(s string) string {
	var b strings.Builder
	// EscapeText never fails on a strings.Builder.
	_ = xml.EscapeText(&b, []byte(s))

	return b.String()
}
