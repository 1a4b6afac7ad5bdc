package main

import (
	"net/url"
	"strconv"
	"strings"
)

type route int

const (
	routeSearch route = iota
	routeDetail
)

// Location is the navigable address of the application. It carries at most
// one parameter, the search query.
type Location struct {
	Path   string
	Search string
}

// ParseLocation reads an address such as "/", "/?search=dune" or
// "/movie/42". Anything unparseable is treated as the landing page.
func ParseLocation(raw string) Location {
	u, err := url.Parse(raw)
	if err != nil {
		return Location{Path: "/"}
	}

	path := u.Path
	if path == "" {
		path = "/"
	}
	return Location{
		Path:   path,
		Search: u.Query().Get("search"),
	}
}

// SearchLocation is the landing route, with the query encoded when non-empty.
func SearchLocation(query string) Location {
	return Location{Path: "/", Search: query}
}

// DetailLocation is the detail route for id.
func DetailLocation(id int) Location {
	return Location{Path: "/movie/" + strconv.Itoa(id)}
}

func (l Location) String() string {
	path := l.Path
	if path == "" {
		path = "/"
	}
	if l.Search == "" {
		return path
	}
	return path + "?" + url.Values{"search": {l.Search}}.Encode()
}

// Route reports which view the location selects. Unknown paths fall back
// to the search view.
func (l Location) Route() route {
	if strings.HasPrefix(l.Path, "/movie/") {
		return routeDetail
	}
	return routeSearch
}

// MovieID extracts the record identifier of a detail location.
func (l Location) MovieID() (int, bool) {
	rest, ok := strings.CutPrefix(l.Path, "/movie/")
	if !ok {
		return 0, false
	}
	id, err := strconv.Atoi(strings.TrimSuffix(rest, "/"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// History is a browser-like stack of visited locations.
type History struct {
	entries []Location
}

// NewHistory starts a history at loc.
func NewHistory(loc Location) *History {
	return &History{entries: []Location{loc}}
}

// Current is the location being displayed.
func (h *History) Current() Location {
	return h.entries[len(h.entries)-1]
}

// Push appends loc and makes it current.
func (h *History) Push(loc Location) {
	h.entries = append(h.entries, loc)
}

// Back pops the current entry. It reports false when already at the first
// entry.
func (h *History) Back() (Location, bool) {
	if len(h.entries) == 1 {
		return h.Current(), false
	}
	h.entries = h.entries[:len(h.entries)-1]
	return h.Current(), true
}

// Len is the number of entries, including the current one.
func (h *History) Len() int {
	return len(h.entries)
}
