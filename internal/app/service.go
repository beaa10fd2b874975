package app

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// GithubClient returns contributors of github repositories.
type GithubClient interface {
	ContributorsByRepo(ctx context.Context, organization string, repo string) ([]Contributor, error)
}

// AvatarDownloader fetches raw avatar bytes for a contributor.
type AvatarDownloader interface {
	Download(ctx context.Context, contributor Contributor, pixelSize int) (AvatarImage, error)
}

// GalleryComposer builds the serialized gallery document from contributors
// and their downloaded avatars.
type GalleryComposer interface {
	Compose(contributors []Contributor, avatars []AvatarImage, avatarSize int, numPerRow int) ([]byte, error)
}

// Service is main apps entry point. Provides all app functionality.
type Service struct {
	githubClient GithubClient
	downloader   AvatarDownloader
	composer     GalleryComposer
	timeout      time.Duration
	l            logrus.FieldLogger
}

// NewService creates new Service instance.
func NewService(
	githubClient GithubClient,
	downloader AvatarDownloader,
	composer GalleryComposer,
	timeout time.Duration,
	l logrus.FieldLogger,
) *Service {
	return &Service{
		githubClient: githubClient,
		downloader:   downloader,
		composer:     composer,
		timeout:      timeout,
		l:            l,
	}
}

// GenerateGallery fetches all contributors of organization/repo, downloads
// their avatars one by one in fetch order and returns the composed gallery
// document.
//
// Any fetch, download or compose failure aborts the run - there are no
// retries and no partial result.
func (s *Service) GenerateGallery(
	ctx context.Context,
	organization string,
	repo string,
	avatarSize int,
	numPerRow int,
) ([]byte, error) {
	if organization == "" {
		return nil, InvalidRequestError("organization cannot be empty")
	}
	if repo == "" {
		return nil, InvalidRequestError("repo cannot be empty")
	}
	if avatarSize <= 0 {
		return nil, InvalidRequestError("avatar size must be greater than zero")
	}
	if numPerRow <= 0 {
		return nil, InvalidRequestError("number per row must be greater than zero")
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	contributors, err := s.githubClient.ContributorsByRepo(ctx, organization, repo)
	if err != nil {
		return nil, fmt.Errorf("fetching contributors: %w", err)
	}
	s.l.Infof("fetched %d contributors for %s/%s", len(contributors), organization, repo)

	avatars := make([]AvatarImage, 0, len(contributors))
	for i, c := range contributors {
		avatar, err := s.downloader.Download(ctx, c, avatarSize)
		if err != nil {
			return nil, fmt.Errorf("downloading avatar for %q: %w", c.Login, err)
		}
		avatars = append(avatars, avatar)
		s.l.Infof("downloaded avatar %d/%d (%s)", i+1, len(contributors), c.Login)
	}

	doc, err := s.composer.Compose(contributors, avatars, avatarSize, numPerRow)
	if err != nil {
		return nil, fmt.Errorf("composing gallery: %w", err)
	}

	return doc, nil
}

// GalleryFilename returns the output file name for given gallery params.
func GalleryFilename(organization string, repo string, numPerRow int) string {
	return fmt.Sprintf("contributors_%s_%s_%d.svg", organization, repo, numPerRow)
}
