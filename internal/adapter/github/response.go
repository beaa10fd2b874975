package github

import (
	"github.com/m-zajac/contribgallery/internal/app"
)

type contributorsResponse []contributorsResponseItem

type contributorsResponseItem struct {
	Login         string `json:"login"`
	AvatarURL     string `json:"avatar_url"`
	HTMLURL       string `json:"html_url"`
	Contributions int    `json:"contributions"`
}

// ToContributors maps the api response to domain entities.
// Anonymous entries (no login) are skipped - they carry no avatar or profile.
func (r contributorsResponse) ToContributors() []app.Contributor {
	cs := make([]app.Contributor, 0, len(r))
	for _, i := range r {
		if i.Login == "" {
			continue
		}
		cs = append(cs, app.Contributor{
			Login:         i.Login,
			AvatarURL:     i.AvatarURL,
			ProfileURL:    i.HTMLURL,
			Contributions: i.Contributions,
		})
	}

	return cs
}
