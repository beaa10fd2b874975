package app

// Contributor entity. Ordering of contributor slices follows the order
// returned by github (descending contribution count) and is preserved
// through the whole pipeline.
type Contributor struct {
	Login         string
	AvatarURL     string
	ProfileURL    string
	Contributions int
}

// AvatarImage holds raw avatar bytes as delivered by the avatar host,
// plus the pixel edge size that was requested for it.
// Bytes are passed through opaquely - no decoding, no resizing.
type AvatarImage struct {
	Data      []byte
	PixelSize int
}
