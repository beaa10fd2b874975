package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/m-zajac/contribgallery/internal/app"
)

// HTTPDoer can execute http request.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client returns contributor listings of github repositories.
// This struct is an adapter for app.GithubClient.
type Client struct {
	doer      HTTPDoer
	address   string
	authToken string

	perPage                     int
	contributorsResponseMaxSize int
}

var _ app.GithubClient = &Client{}

// NewClient creates new github client.
// authToken is optional.
func NewClient(doer HTTPDoer, address string, authToken string) *Client {
	c := Client{
		doer:      doer,
		address:   address,
		authToken: authToken,

		perPage:                     100,
		contributorsResponseMaxSize: 1024 * 1024 * 10,
	}

	return &c
}

// ContributorsByRepo returns all contributors of given organization/repo,
// in the order github returns them (descending contribution count).
//
// Github paginates the listing; pages are followed via the "Link" response
// header until there's no rel="next" link or a page comes back empty.
func (c *Client) ContributorsByRepo(ctx context.Context, organization string, repo string) ([]app.Contributor, error) {
	if organization == "" {
		return nil, app.InvalidRequestError("organization cannot be empty")
	}
	if repo == "" {
		return nil, app.InvalidRequestError("repo cannot be empty")
	}

	u, err := url.Parse(c.address + fmt.Sprintf("/repos/%s/%s/contributors", organization, repo))
	if err != nil {
		return nil, fmt.Errorf("invalid url: %w", err)
	}

	v := make(url.Values)
	v.Set("per_page", strconv.Itoa(c.perPage))
	u.RawQuery = v.Encode()

	contributors := make([]app.Contributor, 0, c.perPage)
	next := u.String()
	for next != "" {
		httpReq, err := http.NewRequest(http.MethodGet, next, nil)
		if err != nil {
			return nil, fmt.Errorf("creating http request: %w", err)
		}

		body, header, err := c.makeRequest(ctx, httpReq, c.contributorsResponseMaxSize)
		if err != nil {
			return nil, fmt.Errorf("making http request: %w", err)
		}

		var resp contributorsResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return nil, fmt.Errorf("unmarshalling response: %w", err)
		}

		page := resp.ToContributors()
		if len(page) == 0 {
			break
		}
		contributors = append(contributors, page...)

		next = nextPageURL(header.Get("Link"))
	}

	return contributors, nil
}

func (c *Client) makeRequest(ctx context.Context, req *http.Request, maxBytes int) ([]byte, http.Header, error) {
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	if c.authToken != "" {
		req.Header.Set("Authorization", "token "+c.authToken)
	}

	resp, err := c.doer.Do(req.WithContext(ctx))
	if err != nil {
		return nil, nil, app.TransportError(fmt.Sprintf("doing http request: %v", err))
	}
	// Always drain body before close to allow connection reuse.
	// See: http://tleyden.github.io/blog/2016/11/21/tuning-the-go-http-client-library-for-load-testing/
	defer func() {
		_, _ = io.CopyN(io.Discard, resp.Body, 1024)
		resp.Body.Close()
	}()

	if resp.StatusCode/100 != 2 {
		switch {
		case resp.StatusCode == http.StatusNotFound:
			return nil, nil, app.NotFoundError(fmt.Sprintf("resource %s not found", req.URL.Path))
		case c.checkRateLimitExceeded(&resp.Header):
			return nil, nil, app.RateLimitError("github api rate limit exceeded")
		default:
			return nil, nil, app.TransportError(fmt.Sprintf("got invalid http status code: %d", resp.StatusCode))
		}
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, int64(maxBytes)))
	if err != nil {
		return nil, nil, app.TransportError(fmt.Sprintf("reading http response body: %v", err))
	}

	return b, resp.Header, nil
}

func (c *Client) checkRateLimitExceeded(h *http.Header) bool {
	if s := h.Get("X-RateLimit-Remaining"); s != "" {
		if limit, err := strconv.Atoi(s); err == nil && limit == 0 {
			return true
		}
	}
	return false
}

// nextPageURL extracts the rel="next" url from a "Link" response header.
// Returns empty string if the header carries no next link.
//
// Header format (RFC 5988):
//
//	<https://api.github.com/...?page=2>; rel="next", <https://...?page=5>; rel="last"
func nextPageURL(linkHeader string) string {
	for _, link := range strings.Split(linkHeader, ",") {
		parts := strings.Split(link, ";")
		if len(parts) < 2 {
			continue
		}
		target := strings.Trim(strings.TrimSpace(parts[0]), "<>")
		for _, param := range parts[1:] {
			if strings.TrimSpace(param) == `rel="next"` {
				return target
			}
		}
	}

	return ""
}
