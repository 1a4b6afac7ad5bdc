package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/glamour"
	"github.com/sourcegraph/conc"
)

// renderPlain prints a single location to w without starting the UI.
func renderPlain(ctx context.Context, w io.Writer, client MetadataClient, logger *slog.Logger, opts Options, loc Location, page int) error {
	if loc.Route() == routeDetail {
		return printDetail(ctx, w, client, logger, opts, loc)
	}
	return printSearch(ctx, w, client, logger, opts, loc, page)
}

func printSearch(ctx context.Context, w io.Writer, client MetadataClient, logger *slog.Logger, opts Options, loc Location, page int) error {
	state := NewSearchState()
	if req := state.AddressChanged(loc); req != nil {
		results, err := client.SearchMovies(ctx, req.query)
		if err != nil {
			logger.Warn("search failed", "query", req.query, "error", err)
			results = nil
		}
		state.Resolve(req.token, results)
	}
	state.SetPage(page)

	view := DeriveSearchView(state, viewportLarge)
	switch {
	case view.WelcomeVisible:
		_, err := fmt.Fprintln(w, "¡Bienvenido! Usa -search para buscar películas.")
		return err
	case view.NoResultsVisible:
		_, err := fmt.Fprintln(w, "No se encontraron resultados.")
		return err
	}

	for i, m := range view.PageItems {
		card := NewResultCard(m, opts.ImageBaseURL)
		if _, err := fmt.Fprintf(w, "%3d. %s (%s) [id %d]\n     %s\n", view.PageOffset+i+1, card.Title, card.Year, card.ID, card.PosterURL); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Página %d/%d · %d resultados\n", view.CurrentPage, view.TotalPages, len(view.DisplayedResults))
	return err
}

// printDetail fetches the movie, trailer and cast concurrently and prints
// them once all three have settled.
func printDetail(ctx context.Context, w io.Writer, client MetadataClient, logger *slog.Logger, opts Options, loc Location) error {
	id, ok := loc.MovieID()
	if !ok {
		_, err := fmt.Fprintln(w, "Película no encontrada.")
		return err
	}

	var (
		movie   *MovieDetail
		trailer *Trailer
		cast    []CastMember
		wg      conc.WaitGroup
	)
	wg.Go(func() {
		var err error
		if movie, err = client.GetMovie(ctx, id); err != nil {
			logger.Warn("movie fetch failed", "id", id, "error", err)
			movie = nil
		}
	})
	wg.Go(func() {
		var err error
		if trailer, err = client.GetTrailer(ctx, id); err != nil {
			logger.Warn("trailer fetch failed", "id", id, "error", err)
			trailer = nil
		}
	})
	wg.Go(func() {
		var err error
		if cast, err = client.GetCast(ctx, id); err != nil {
			logger.Warn("cast fetch failed", "id", id, "error", err)
			cast = nil
		}
	})
	wg.Wait()

	if movie == nil {
		_, err := fmt.Fprintln(w, "Película no encontrada.")
		return err
	}

	d := detailPage{
		imageBase: opts.ImageBaseURL,
		wikiLang:  opts.WikiLanguage,
		id:        id,
		movie:     movie,
		trailer:   trailer,
		cast:      cast,
	}
	out, err := glamour.Render(d.markdown(), "notty")
	if err != nil {
		out = wrapText(d.markdown(), 80)
	}
	_, err = io.WriteString(w, out)
	return err
}
