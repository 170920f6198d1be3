package tmdb

import (
	"context"
	"net/url"
	"slices"
	"strconv"
)

// MaxVersionIDs is the largest id list the version endpoints accept
const MaxVersionIDs = 50

var (
	browseOrderBy = []string{"rating", "release", "title"}
	browseOrder   = []string{"asc", "desc"}
)

// BrowseOptions controls Movie.browse. Zero values fall back to rating, asc, page 1
// and 10 results per page.
type BrowseOptions struct {
	OrderBy string
	Order   string
	Page    int
	PerPage int
	// Extra carries any further browse parameters (query, year, genres, ...)
	Extra url.Values
}

// SearchMovies searches movies by title. The name may include a release year.
func (c *Client) SearchMovies(ctx context.Context, name string) (Result, error) {
	return c.get(ctx, "Movie.search", Scalar(name))
}

// MovieInfo retrieves the full record of a movie
func (c *Client) MovieInfo(ctx context.Context, id int) (Result, error) {
	return c.get(ctx, "Movie.getInfo", Int(id))
}

// MovieImages retrieves the posters and backdrops of a movie
func (c *Client) MovieImages(ctx context.Context, id int) (Result, error) {
	result, err := c.get(ctx, "Movie.getImages", Int(id))
	if err != nil {
		return Result{}, err
	}
	return result.First(), nil
}

// LatestMovie retrieves the most recently added movie
func (c *Client) LatestMovie(ctx context.Context) (Result, error) {
	result, err := c.get(ctx, "Movie.getLatest", nil)
	if err != nil {
		return Result{}, err
	}
	return result.First(), nil
}

// MovieTranslations retrieves the languages a movie is translated into
func (c *Client) MovieTranslations(ctx context.Context, id int) (Result, error) {
	result, err := c.get(ctx, "Movie.getTranslations", Int(id))
	if err != nil {
		return Result{}, err
	}
	return result.First(), nil
}

// MovieVersion retrieves the last-modified version of up to 50 movies at once
func (c *Client) MovieVersion(ctx context.Context, ids ...string) (Result, error) {
	if len(ids) == 0 || len(ids) > MaxVersionIDs {
		return Result{}, ErrInvalidIDCount
	}
	return c.get(ctx, "Movie.getVersion", List(ids))
}

// BrowseMovies pages through the movie database. An unknown OrderBy or Order yields
// the absent result without issuing a request.
func (c *Client) BrowseMovies(ctx context.Context, opts BrowseOptions) (Result, error) {
	params, ok := opts.values()
	if !ok {
		c.logger.Warn().
			Str("order_by", opts.OrderBy).
			Str("order", opts.Order).
			Msg("Invalid browse ordering, skipping request")
		return Absent(), nil
	}
	return c.get(ctx, "Movie.browse", params)
}

// values validates the ordering and renders the browse parameters
func (o BrowseOptions) values() (Values, bool) {
	orderBy, order := o.OrderBy, o.Order
	if orderBy == "" {
		orderBy = "rating"
	}
	if order == "" {
		order = "asc"
	}
	if !slices.Contains(browseOrderBy, orderBy) || !slices.Contains(browseOrder, order) {
		return nil, false
	}

	page, perPage := o.Page, o.PerPage
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 10
	}

	params := url.Values{}
	for key, values := range o.Extra {
		params[key] = append([]string(nil), values...)
	}
	params.Set("order_by", orderBy)
	params.Set("order", order)
	params.Set("page", strconv.Itoa(page))
	params.Set("per_page", strconv.Itoa(perPage))

	return Values(params), true
}

// IMDbLookup finds a movie by its IMDb id. The absent result is returned when the
// answer is not a movie record, e.g. "Nothing found.".
func (c *Client) IMDbLookup(ctx context.Context, imdbID string) (Result, error) {
	result, err := c.get(ctx, "Movie.imdbLookup", Scalar(imdbID))
	if err != nil {
		return Result{}, err
	}

	first := result.First()
	if first.Kind() == KindRaw {
		return first, nil
	}
	if !isMovieRecord(first) {
		return Absent(), nil
	}
	return first, nil
}

// isMovieRecord reports whether a lookup answer carries a movie. XML answers wrap
// movies in <movies><movie>; a miss leaves <movies> holding only text.
func isMovieRecord(r Result) bool {
	if elem, ok := r.XML(); ok {
		return elem.Tag == "movie" || elem.FindElement("./movies/movie") != nil
	}
	return r.IsRecord()
}

// AddMovieRating rates a movie on behalf of the user owning sessionKey
func (c *Client) AddMovieRating(ctx context.Context, id int, rating float64, sessionKey string) (Result, error) {
	params := url.Values{}
	params.Set("id", strconv.Itoa(id))
	params.Set("rating", strconv.FormatFloat(rating, 'f', -1, 64))
	params.Set("session_key", sessionKey)

	return c.Do(ctx, Operation{
		Name:   "Movie.addRating",
		Params: Values(params),
		Method: MethodPost,
	})
}
