package svg

import (
	"encoding/base64"
	"fmt"
	"strings"
	"testing"

	"github.com/m-zajac/contribgallery/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func makeContributors(n int) ([]app.Contributor, []app.AvatarImage) {
	contributors := make([]app.Contributor, 0, n)
	avatars := make([]app.AvatarImage, 0, n)
	for i := 0; i < n; i++ {
		contributors = append(contributors, app.Contributor{
			Login:      fmt.Sprintf("user%d", i),
			AvatarURL:  fmt.Sprintf("https://avatars.test/u/%d", i),
			ProfileURL: fmt.Sprintf("https://github.test/user%d", i),
		})
		avatars = append(avatars, app.AvatarImage{
			Data: append(append([]byte{}, pngHeader...), byte(i)),
		})
	}

	return contributors, avatars
}

func TestComposerLayout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		count        int
		avatarSize   int
		numPerRow    int
		wantCanvas   string
		wantCells    []string
		dontWantCell string
	}{
		{
			name:       "3 contributors in 2 columns",
			count:      3,
			avatarSize: 10,
			numPerRow:  2,
			wantCanvas: `width="20" height="20"`,
			wantCells: []string{
				`x="0" y="0" width="10" height="10"`,
				`x="10" y="0" width="10" height="10"`,
				`x="0" y="10" width="10" height="10"`,
			},
		},
		{
			name:       "single contributor, wide row",
			count:      1,
			avatarSize: 10,
			numPerRow:  10,
			wantCanvas: `width="100" height="10"`,
			wantCells: []string{
				`x="0" y="0" width="10" height="10"`,
			},
		},
		{
			name:       "exactly one full row",
			count:      10,
			avatarSize: 24,
			numPerRow:  10,
			wantCanvas: `width="240" height="24"`,
			wantCells: []string{
				`x="0" y="0" width="24" height="24"`,
				`x="216" y="0" width="24" height="24"`,
			},
			dontWantCell: `y="24"`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			contributors, avatars := makeContributors(tt.count)

			c := NewComposer()
			got, err := c.Compose(contributors, avatars, tt.avatarSize, tt.numPerRow)
			require.NoError(t, err)

			doc := string(got)
			assert.Contains(t, doc, "<svg xmlns=\"http://www.w3.org/2000/svg\" xmlns:xlink=\"http://www.w3.org/1999/xlink\" "+tt.wantCanvas+">")
			for _, cell := range tt.wantCells {
				assert.Contains(t, doc, cell)
			}
			if tt.dontWantCell != "" {
				assert.NotContains(t, doc, tt.dontWantCell)
			}
			assert.Equal(t, tt.count, strings.Count(doc, "<a "))
			assert.Equal(t, tt.count, strings.Count(doc, "<image "))
		})
	}
}

func TestComposerGroupOrderFollowsInput(t *testing.T) {
	t.Parallel()

	contributors, avatars := makeContributors(5)

	c := NewComposer()
	got, err := c.Compose(contributors, avatars, 16, 3)
	require.NoError(t, err)

	doc := string(got)
	lastIdx := -1
	for _, contributor := range contributors {
		anchor := fmt.Sprintf(`<a xlink:href="%s"`, contributor.ProfileURL)
		idx := strings.Index(doc, anchor)
		require.NotEqual(t, -1, idx, "missing anchor for %s", contributor.Login)
		assert.Greater(t, idx, lastIdx, "anchor for %s out of order", contributor.Login)
		lastIdx = idx
	}
}

func TestComposerEmbedsAvatarBytes(t *testing.T) {
	t.Parallel()

	contributors, avatars := makeContributors(2)

	c := NewComposer()
	got, err := c.Compose(contributors, avatars, 16, 10)
	require.NoError(t, err)

	doc := string(got)
	for _, avatar := range avatars {
		uri := "data:image/png;base64," + base64.StdEncoding.EncodeToString(avatar.Data)
		assert.Contains(t, doc, uri)
	}
	// Self-contained: nothing references the avatar host.
	assert.NotContains(t, doc, "avatars.test")
}

func TestComposerMediaTypeSniffing(t *testing.T) {
	t.Parallel()

	contributors := []app.Contributor{
		{Login: "gif", ProfileURL: "https://github.test/gif"},
		{Login: "unknown", ProfileURL: "https://github.test/unknown"},
	}
	avatars := []app.AvatarImage{
		{Data: []byte("GIF89a-fake-image-data")},
		{Data: []byte{0x00, 0x01, 0x02, 0x03}},
	}

	c := NewComposer()
	got, err := c.Compose(contributors, avatars, 16, 10)
	require.NoError(t, err)

	doc := string(got)
	assert.Contains(t, doc, "data:image/gif;base64,")
	// Unrecognized bytes fall back to the default raster type.
	assert.Contains(t, doc, "data:image/png;base64,")
}

func TestComposerDeterministic(t *testing.T) {
	t.Parallel()

	contributors, avatars := makeContributors(7)

	c := NewComposer()
	first, err := c.Compose(contributors, avatars, 12, 4)
	require.NoError(t, err)
	second, err := c.Compose(contributors, avatars, 12, 4)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestComposerEscapesProfileURL(t *testing.T) {
	t.Parallel()

	contributors := []app.Contributor{
		{Login: "x", ProfileURL: `https://github.test/x?a=1&b="2"`},
	}
	avatars := []app.AvatarImage{
		{Data: pngHeader},
	}

	c := NewComposer()
	got, err := c.Compose(contributors, avatars, 16, 10)
	require.NoError(t, err)

	doc := string(got)
	assert.Contains(t, doc, "a=1&amp;b=")
	assert.NotContains(t, doc, `b="2"`)
}

func TestComposerErrors(t *testing.T) {
	t.Parallel()

	contributors, avatars := makeContributors(2)

	tests := []struct {
		name         string
		contributors []app.Contributor
		avatars      []app.AvatarImage
		avatarSize   int
		numPerRow    int
		checkErr     func(error) bool
	}{
		{
			name:         "no contributors",
			contributors: nil,
			avatars:      nil,
			avatarSize:   16,
			numPerRow:    10,
			checkErr:     app.IsEmptyInputError,
		},
		{
			name:         "invalid avatar size",
			contributors: contributors,
			avatars:      avatars,
			avatarSize:   0,
			numPerRow:    10,
			checkErr:     app.IsInvalidRequestError,
		},
		{
			name:         "invalid num per row",
			contributors: contributors,
			avatars:      avatars,
			avatarSize:   16,
			numPerRow:    0,
			checkErr:     app.IsInvalidRequestError,
		},
		{
			name:         "avatars count doesn't match contributors",
			contributors: contributors,
			avatars:      avatars[:1],
			avatarSize:   16,
			numPerRow:    10,
			checkErr:     app.IsInvalidRequestError,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := NewComposer()
			got, err := c.Compose(tt.contributors, tt.avatars, tt.avatarSize, tt.numPerRow)
			require.Error(t, err)
			assert.True(t, tt.checkErr(err))
			assert.Nil(t, got)
		})
	}
}
