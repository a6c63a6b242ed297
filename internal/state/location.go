package state

import (
	"net/url"
	"strings"
)

// ParsedLocation is a location split into the parts the reducer needs.
type ParsedLocation struct {
	Path  string
	Page  string
	Query url.Values
}

// ParseLocation splits "/path?query" and derives the page name from the path.
// "/" and "" lead to RouteHome. Paths that fail to decode are kept raw.
func ParseLocation(location string) ParsedLocation {
	path, rawQuery, _ := strings.Cut(location, "?")
	if decoded, err := url.PathUnescape(path); err == nil {
		path = decoded
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		query = url.Values{}
	}

	page := strings.TrimPrefix(path, "/")
	if page == "" {
		page = RouteHome
	}

	return ParsedLocation{
		Path:  path,
		Page:  page,
		Query: query,
	}
}

// ControlsURL builds the controls location carrying text as its q parameter.
func ControlsURL(text string) string {
	return "/" + RouteControls + "?" + url.Values{"q": []string{text}}.Encode()
}
