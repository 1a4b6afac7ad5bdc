package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// MovieSummary is the list-view projection of a movie returned by a search.
type MovieSummary struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	ReleaseDate string  `json:"release_date"`
	PosterPath  string  `json:"poster_path"`
	Popularity  float64 `json:"popularity"`
	Overview    string  `json:"overview"`
}

// Genre is a single genre attached to a movie.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// MovieDetail is the full projection of a movie.
type MovieDetail struct {
	MovieSummary
	Genres      []Genre `json:"genres"`
	VoteAverage float64 `json:"vote_average"`
	VoteCount   int     `json:"vote_count"`
}

// CastMember is one entry of a movie's credits.
type CastMember struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Character   string `json:"character"`
	ProfilePath string `json:"profile_path"`
}

// Trailer is a video hosted by a third party.
type Trailer struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Site string `json:"site"`
	Type string `json:"type"`
}

// MetadataClient is the set of provider operations the controllers depend on.
type MetadataClient interface {
	SearchMovies(ctx context.Context, query string) ([]MovieSummary, error)
	GetMovie(ctx context.Context, id int) (*MovieDetail, error)
	GetTrailer(ctx context.Context, id int) (*Trailer, error)
	GetCast(ctx context.Context, id int) ([]CastMember, error)
}

// Fetch failure kinds. Every error returned by TMDBClient matches
// ErrFetchFailed and exactly one of the kinds below.
var (
	ErrFetchFailed   = errors.New("fetch failed")
	ErrNetwork       = errors.New("network failure")
	ErrBadResponse   = errors.New("bad response")
	ErrMalformedBody = errors.New("malformed body")
	ErrNotFound      = errors.New("not found")
)

// FetchError describes a failed provider request.
type FetchError struct {
	Op     string
	Kind   error
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	msg := fmt.Sprintf("tmdb %s: %v", e.Op, e.Kind)
	if e.Status != 0 {
		msg += fmt.Sprintf(" (status %d)", e.Status)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FetchError) Unwrap() []error {
	errs := []error{ErrFetchFailed, e.Kind}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

const (
	posterSize  = "w300"
	detailSize  = "w500"
	profileSize = "w92"
)

var placeholders = map[string]string{
	posterSize:  "https://via.placeholder.com/300x450?text=No+Image",
	detailSize:  "https://via.placeholder.com/500x750?text=No+Image",
	profileSize: "https://via.placeholder.com/48x72?text=No+Image",
}

// ImageURL builds the URL of a provider image. An empty path yields a
// placeholder sized for the requested slot.
func ImageURL(base, size, path string) string {
	if path == "" {
		if p, ok := placeholders[size]; ok {
			return p
		}
		return placeholders[posterSize]
	}
	return strings.TrimRight(base, "/") + "/" + size + path
}

// TMDBClient talks to The Movie Database v3 API.
type TMDBClient struct {
	client    *http.Client
	baseURL   string
	apiKey    string
	readToken string
	language  string
}

// NewTMDBClient creates a client from an explicit configuration.
func NewTMDBClient(cfg TMDBConfig) *TMDBClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &TMDBClient{
		client:    &http.Client{Timeout: timeout},
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:    cfg.APIKey,
		readToken: cfg.ReadToken,
		language:  cfg.Language,
	}
}

type searchResponse struct {
	Page    int            `json:"page"`
	Results []MovieSummary `json:"results"`
}

type videosResponse struct {
	Results []Trailer `json:"results"`
}

type creditsResponse struct {
	Cast []CastMember `json:"cast"`
}

// get performs a GET against the API and decodes the JSON body into out.
func (c *TMDBClient) get(ctx context.Context, op, endpoint string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return &FetchError{Op: op, Kind: ErrNetwork, Err: err}
	}

	q := req.URL.Query()
	if c.language != "" {
		q.Set("language", c.language)
	}
	for key, values := range params {
		for _, v := range values {
			q.Add(key, v)
		}
	}
	if c.apiKey != "" {
		q.Set("api_key", c.apiKey)
	}
	req.URL.RawQuery = q.Encode()

	req.Header.Set("Accept", "application/json")
	if c.readToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.readToken)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return &FetchError{Op: op, Kind: ErrNetwork, Err: redactURLError(err)}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return &FetchError{Op: op, Kind: ErrNotFound, Status: resp.StatusCode}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return &FetchError{Op: op, Kind: ErrBadResponse, Status: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &FetchError{Op: op, Kind: ErrMalformedBody, Status: resp.StatusCode, Err: err}
	}
	return nil
}

// SearchMovies returns the first page of movies matching query. A blank
// query returns no results without contacting the provider.
func (c *TMDBClient) SearchMovies(ctx context.Context, query string) ([]MovieSummary, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	params := url.Values{
		"query":         {query},
		"include_adult": {"false"},
	}

	var page searchResponse
	if err := c.get(ctx, "search", "/search/movie", params, &page); err != nil {
		return nil, err
	}

	for i := range page.Results {
		cleanSummary(&page.Results[i])
	}
	return page.Results, nil
}

// GetMovie fetches the full record for id.
func (c *TMDBClient) GetMovie(ctx context.Context, id int) (*MovieDetail, error) {
	var movie MovieDetail
	if err := c.get(ctx, "movie", "/movie/"+strconv.Itoa(id), nil, &movie); err != nil {
		return nil, err
	}
	if movie.ID == 0 {
		return nil, &FetchError{Op: "movie", Kind: ErrNotFound, Status: http.StatusOK}
	}

	cleanSummary(&movie.MovieSummary)
	return &movie, nil
}

// GetTrailer returns the first YouTube trailer listed for id, or nil when
// the movie has none.
func (c *TMDBClient) GetTrailer(ctx context.Context, id int) (*Trailer, error) {
	var videos videosResponse
	if err := c.get(ctx, "videos", "/movie/"+strconv.Itoa(id)+"/videos", nil, &videos); err != nil {
		return nil, err
	}
	return selectTrailer(videos.Results), nil
}

// GetCast returns the billed cast of id in provider order.
func (c *TMDBClient) GetCast(ctx context.Context, id int) ([]CastMember, error) {
	var credits creditsResponse
	if err := c.get(ctx, "credits", "/movie/"+strconv.Itoa(id)+"/credits", nil, &credits); err != nil {
		return nil, err
	}
	return credits.Cast, nil
}

func selectTrailer(videos []Trailer) *Trailer {
	for _, v := range videos {
		if v.Site == "YouTube" && v.Type == "Trailer" {
			t := v
			return &t
		}
	}
	return nil
}

func cleanSummary(m *MovieSummary) {
	m.Title = cleanText(m.Title)
	m.Overview = cleanText(m.Overview)
}

// redactURLError strips credentials from the URL carried by transport errors.
func redactURLError(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		uerr.URL = redactURL(uerr.URL)
	}
	return err
}

func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "[unparseable url]"
	}
	q := u.Query()
	if q.Has("api_key") {
		q.Set("api_key", "REDACTED")
		u.RawQuery = q.Encode()
	}
	return u.String()
}
