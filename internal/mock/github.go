package mock

import (
	"context"

	"github.com/m-zajac/contribgallery/internal/app"
)

// GithubClient mocks app.GithubClient.
type GithubClient struct {
	ContributorsByRepoFunc func(ctx context.Context, organization string, repo string) ([]app.Contributor, error)

	Calls int
}

// ContributorsByRepo returns fake contributors data.
func (m *GithubClient) ContributorsByRepo(ctx context.Context, organization string, repo string) ([]app.Contributor, error) {
	m.Calls++

	if m.ContributorsByRepoFunc != nil {
		return m.ContributorsByRepoFunc(ctx, organization, repo)
	}

	return []app.Contributor{}, nil
}

// AvatarDownloader mocks app.AvatarDownloader.
type AvatarDownloader struct {
	DownloadFunc func(ctx context.Context, contributor app.Contributor, pixelSize int) (app.AvatarImage, error)

	Downloaded []string
}

// Download returns fake avatar data.
func (m *AvatarDownloader) Download(ctx context.Context, contributor app.Contributor, pixelSize int) (app.AvatarImage, error) {
	m.Downloaded = append(m.Downloaded, contributor.Login)

	if m.DownloadFunc != nil {
		return m.DownloadFunc(ctx, contributor, pixelSize)
	}

	return app.AvatarImage{PixelSize: pixelSize}, nil
}

// GalleryComposer mocks app.GalleryComposer.
type GalleryComposer struct {
	ComposeFunc func(contributors []app.Contributor, avatars []app.AvatarImage, avatarSize int, numPerRow int) ([]byte, error)

	Calls int
}

// Compose returns fake gallery document.
func (m *GalleryComposer) Compose(contributors []app.Contributor, avatars []app.AvatarImage, avatarSize int, numPerRow int) ([]byte, error) {
	m.Calls++

	if m.ComposeFunc != nil {
		return m.ComposeFunc(contributors, avatars, avatarSize, numPerRow)
	}

	return []byte("<svg/>"), nil
}
