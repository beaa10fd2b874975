package github

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/m-zajac/contribgallery/internal/app"
)

// AvatarDownloader fetches raw avatar bytes from the avatar host.
// This struct is an adapter for app.AvatarDownloader.
type AvatarDownloader struct {
	doer HTTPDoer

	avatarResponseMaxSize int
}

var _ app.AvatarDownloader = &AvatarDownloader{}

// NewAvatarDownloader creates new AvatarDownloader instance.
func NewAvatarDownloader(doer HTTPDoer) *AvatarDownloader {
	return &AvatarDownloader{
		doer: doer,

		avatarResponseMaxSize: 1024 * 1024 * 10,
	}
}

// Download performs one GET of the contributor's avatar and returns the
// bytes verbatim. A size hint query param is added to the avatar url, so
// the host may serve an already-scaled image; the bytes are still embedded
// as delivered, without decoding or resizing.
func (d *AvatarDownloader) Download(ctx context.Context, contributor app.Contributor, pixelSize int) (app.AvatarImage, error) {
	if contributor.AvatarURL == "" {
		return app.AvatarImage{}, app.InvalidRequestError("contributor avatar url cannot be empty")
	}
	if pixelSize <= 0 {
		return app.AvatarImage{}, app.InvalidRequestError("pixel size must be greater than zero")
	}

	u, err := url.Parse(contributor.AvatarURL)
	if err != nil {
		return app.AvatarImage{}, fmt.Errorf("invalid avatar url: %w", err)
	}

	v := u.Query()
	v.Set("s", strconv.Itoa(pixelSize))
	u.RawQuery = v.Encode()

	httpReq, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return app.AvatarImage{}, fmt.Errorf("creating http request: %w", err)
	}

	resp, err := d.doer.Do(httpReq.WithContext(ctx))
	if err != nil {
		return app.AvatarImage{}, app.TransportError(fmt.Sprintf("doing http request: %v", err))
	}
	defer func() {
		_, _ = io.CopyN(io.Discard, resp.Body, 1024)
		resp.Body.Close()
	}()

	if resp.StatusCode/100 != 2 {
		return app.AvatarImage{}, app.TransportError(
			fmt.Sprintf("fetching avatar for %q: got invalid http status code: %d", contributor.Login, resp.StatusCode),
		)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, int64(d.avatarResponseMaxSize)))
	if err != nil {
		return app.AvatarImage{}, app.TransportError(fmt.Sprintf("reading http response body: %v", err))
	}

	return app.AvatarImage{
		Data:      data,
		PixelSize: pixelSize,
	}, nil
}
