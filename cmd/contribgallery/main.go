package main

import (
	"context"
	"fmt"
	netHttp "net/http"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"github.com/m-zajac/contribgallery/internal/adapter/github"
	"github.com/m-zajac/contribgallery/internal/app"
	"github.com/m-zajac/contribgallery/internal/limiter"
	"github.com/m-zajac/contribgallery/internal/svg"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	l := logrus.New()
	l.Level = logrus.InfoLevel

	var conf Config
	if err := envconfig.Process("", &conf); err != nil {
		l.Fatalf("couldn't parse config: %v", err)
	}
	if lvl, err := logrus.ParseLevel(conf.LogLevel); err == nil {
		l.Level = lvl
	}

	var (
		organization string
		repo         string
		avatarSize   int
		numPerRow    int
	)

	rootCmd := &cobra.Command{
		Use:           "contribgallery",
		Short:         "Generate an svg gallery of a github repo's contributor avatars",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), conf, l, organization, repo, avatarSize, numPerRow)
		},
	}
	rootCmd.Flags().StringVarP(&organization, "organization", "o", "", "github organization of the repo")
	rootCmd.Flags().StringVarP(&repo, "repo", "r", "", "github repository")
	rootCmd.Flags().IntVarP(&avatarSize, "avatar-size", "a", 16, "size of the avatars in the resulting svg, in pixels")
	rootCmd.Flags().IntVarP(&numPerRow, "num-per-row", "n", 10, "number of avatars per gallery row")
	_ = rootCmd.MarkFlagRequired("organization")
	_ = rootCmd.MarkFlagRequired("repo")

	if err := rootCmd.Execute(); err != nil {
		l.Errorf("generating gallery: %v", err)
		os.Exit(1)
	}
}

func run(
	ctx context.Context,
	conf Config,
	l *logrus.Logger,
	organization string,
	repo string,
	avatarSize int,
	numPerRow int,
) error {
	httpClient := &netHttp.Client{
		Timeout: conf.HTTPClientTimeout,
	}
	limitedHTTPClient := limiter.NewHTTPDoer(
		httpClient,
		conf.GithubAPIRateLimit,
	)

	githubClient := github.NewClient(
		limitedHTTPClient,
		conf.GithubAPIAddress,
		conf.GithubAPIToken,
	)
	downloader := github.NewAvatarDownloader(httpClient)
	composer := svg.NewComposer()

	service := app.NewService(
		githubClient,
		downloader,
		composer,
		conf.RunTimeout,
		l.WithField("component", "service"),
	)

	doc, err := service.GenerateGallery(ctx, organization, repo, avatarSize, numPerRow)
	if err != nil {
		return err
	}

	name := app.GalleryFilename(organization, repo, numPerRow)
	if err := writeFileAtomic(name, doc); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	l.Infof("gallery saved to %s", name)

	return nil
}

// writeFileAtomic writes data to a temp file next to path and renames it
// into place, so a failed run never leaves a partial output file behind.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("renaming temp file: %w", err)
	}

	return nil
}
