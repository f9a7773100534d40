package video_link

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

const (
	Scheme = "https"
	Host   = "www.youtube.com"
	Path   = "/watch"
	Param  = "v"

	MaxIDLength = 40
)

var ErrInvalidLink = errors.New("invalid YouTube URL")

// Parse extracts the video identifier from a link of the form
// https://www.youtube.com/watch?v=<id>. Any other shape returns an error
// wrapping ErrInvalidLink.
func Parse(link string) (string, error) {
	u, err := url.Parse(link)
	if err != nil {
		return "", errors.Wrapf(ErrInvalidLink, "unable to parse %q", link)
	}
	if u.Scheme != Scheme {
		return "", errors.Wrapf(ErrInvalidLink, "wrong scheme %q", u.Scheme)
	}
	if u.User != nil || u.Host != Host {
		return "", errors.Wrapf(ErrInvalidLink, "wrong host %q", u.Host)
	}
	if u.EscapedPath() != Path {
		return "", errors.Wrapf(ErrInvalidLink, "wrong path %q", u.EscapedPath())
	}
	if u.RawQuery == "" {
		return "", errors.Wrap(ErrInvalidLink, "no query")
	}
	params, err := parseQuery(u.RawQuery)
	if err != nil {
		return "", errors.Wrap(ErrInvalidLink, err.Error())
	}
	vs := params[Param]
	if len(vs) == 0 {
		return "", errors.Wrapf(ErrInvalidLink, "no %q parameter", Param)
	}
	id := vs[0]
	if len(id) > MaxIDLength {
		return "", errors.Wrapf(ErrInvalidLink, "identifier longer than %d characters", MaxIDLength)
	}
	return id, nil
}

// parseQuery is stricter than url.ParseQuery: every field must carry "=",
// and fields with blank values are dropped.
func parseQuery(q string) (map[string][]string, error) {
	res := map[string][]string{}
	for _, field := range strings.Split(q, "&") {
		k, v, ok := strings.Cut(field, "=")
		if !ok {
			return nil, fmt.Errorf("bad query field %q", field)
		}
		key, err := url.QueryUnescape(k)
		if err != nil {
			return nil, fmt.Errorf("bad query key %q", k)
		}
		value, err := url.QueryUnescape(v)
		if err != nil {
			return nil, fmt.Errorf("bad query value %q", v)
		}
		if value == "" {
			continue
		}
		res[key] = append(res[key], value)
	}
	return res, nil
}

// Link returns the canonical watch link for id.
func Link(id string) string {
	u := url.URL{
		Scheme:   Scheme,
		Host:     Host,
		Path:     Path,
		RawQuery: url.Values{Param: []string{id}}.Encode(),
	}
	return u.String()
}

// EmbedLink returns the player link for id.
func EmbedLink(id string) string {
	return fmt.Sprintf("%v://%v/embed/%v", Scheme, Host, url.PathEscape(id))
}
