package main

import "strings"

// pageSize is the number of result cards shown per page.
const pageSize = 8

type searchPhase int

const (
	phaseIdle searchPhase = iota
	phaseLoading
	phaseSettled
)

func (p searchPhase) String() string {
	switch p {
	case phaseLoading:
		return "loading"
	case phaseSettled:
		return "settled"
	default:
		return "idle"
	}
}

// searchRequest is a dispatched search. token identifies it among all
// searches dispatched by the same SearchState.
type searchRequest struct {
	token int
	query string
}

// SearchState is the authoritative model of the search view. Query always
// mirrors the "search" parameter of the last location delivered through
// AddressChanged.
type SearchState struct {
	Query         string
	InputValue    string
	Results       []MovieSummary
	Loading       bool
	HasSearched   bool
	CurrentPage   int
	SearchFocused bool

	// token is the last dispatched request; older resolutions are stale.
	token int
}

func NewSearchState() SearchState {
	return SearchState{CurrentPage: 1}
}

// Phase is the state machine position derived from the fields.
func (s SearchState) Phase() searchPhase {
	switch {
	case s.Query == "":
		return phaseIdle
	case s.Loading:
		return phaseLoading
	default:
		return phaseSettled
	}
}

// AddressChanged applies a new location. It returns the request to dispatch,
// or nil when the location carries no query. Either way every earlier
// request becomes stale.
func (s *SearchState) AddressChanged(loc Location) *searchRequest {
	s.token++
	s.Query = strings.TrimSpace(loc.Search)
	s.InputValue = s.Query

	if s.Query == "" {
		s.setResults(nil)
		s.Loading = false
		s.HasSearched = false
		return nil
	}

	s.Loading = true
	return &searchRequest{token: s.token, query: s.Query}
}

// Resolve applies the results of request token. Resolutions of anything
// but the latest dispatched request are discarded and Resolve reports false.
func (s *SearchState) Resolve(token int, results []MovieSummary) bool {
	if token != s.token || !s.Loading {
		return false
	}
	s.setResults(results)
	s.Loading = false
	s.HasSearched = true
	return true
}

// Submit turns a user submission into the location to navigate to. The
// state itself only changes once that location is delivered back.
func (s *SearchState) Submit(value string) Location {
	value = strings.TrimSpace(value)
	s.InputValue = value
	return SearchLocation(value)
}

// Edit records a keystroke in the input without searching.
func (s *SearchState) Edit(value string) {
	s.InputValue = value
}

func (s *SearchState) SetFocus(focused bool) {
	s.SearchFocused = focused
}

// SetPage moves to page n, clamped to the available pages.
func (s *SearchState) SetPage(n int) {
	s.CurrentPage = clampPage(n, totalPages(len(displayedResults(s.Results))))
}

func (s *SearchState) NextPage() { s.SetPage(s.CurrentPage + 1) }

func (s *SearchState) PrevPage() { s.SetPage(s.CurrentPage - 1) }

func (s *SearchState) setResults(results []MovieSummary) {
	s.Results = results
	s.CurrentPage = 1
}

// SearchView is everything the search screen renders, derived from a
// SearchState.
type SearchView struct {
	Phase            searchPhase
	Query            string
	InputValue       string
	DisplayedResults []MovieSummary
	PageItems        []MovieSummary
	PageOffset       int
	CurrentPage      int
	TotalPages       int
	MostPopular      *MovieSummary
	WelcomeVisible   bool
	NoResultsVisible bool
	HeaderFixed      bool
}

// DeriveSearchView projects the state into what is displayed. It has no
// side effects.
func DeriveSearchView(s SearchState, vc ViewportClass) SearchView {
	displayed := displayedResults(s.Results)
	total := totalPages(len(displayed))
	page := clampPage(s.CurrentPage, total)

	start := (page - 1) * pageSize
	end := min(start+pageSize, len(displayed))
	var items []MovieSummary
	if start < end {
		items = displayed[start:end]
	}

	welcome := s.Query == "" && !s.Loading && len(s.Results) == 0

	v := SearchView{
		Phase:            s.Phase(),
		Query:            s.Query,
		InputValue:       s.InputValue,
		DisplayedResults: displayed,
		PageItems:        items,
		PageOffset:       start,
		CurrentPage:      page,
		TotalPages:       total,
		WelcomeVisible:   welcome,
		NoResultsVisible: !s.Loading && len(displayed) == 0 && s.HasSearched,
		HeaderFixed:      vc == viewportSmall && s.SearchFocused && !welcome,
	}
	if s.Query == "" {
		v.MostPopular = mostPopular(displayed)
	}
	return v
}

// displayedResults keeps only results that have a poster.
func displayedResults(results []MovieSummary) []MovieSummary {
	var out []MovieSummary
	for _, m := range results {
		if m.PosterPath != "" {
			out = append(out, m)
		}
	}
	return out
}

// mostPopular returns the first result with the highest popularity.
func mostPopular(results []MovieSummary) *MovieSummary {
	var best *MovieSummary
	for i := range results {
		if best == nil || results[i].Popularity > best.Popularity {
			best = &results[i]
		}
	}
	return best
}

func totalPages(n int) int {
	return (n + pageSize - 1) / pageSize
}

func clampPage(n, total int) int {
	return max(1, min(n, max(1, total)))
}
