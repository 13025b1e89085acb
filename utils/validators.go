package utils

import (
	"net/url"
	"regexp"
)

var (
	slugRegex     = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]{3,50}$`)
)

func IsValidSlug(slug string) bool {
	return len(slug) <= 100 && slugRegex.MatchString(slug)
}

func IsValidUsername(username string) bool {
	return usernameRegex.MatchString(username)
}

// IsValidImageURL accepts absolute http(s) URLs only; image uploads are
// stored by a collaborator and referenced by URL here.
func IsValidImageURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
