package tmdb

import "context"

// SearchPersons searches actors, actresses and production members by name
func (c *Client) SearchPersons(ctx context.Context, name string) (Result, error) {
	return c.get(ctx, "Person.search", Scalar(name))
}

// PersonInfo retrieves filmography, known movies, images and biography of a person
func (c *Client) PersonInfo(ctx context.Context, id int) (Result, error) {
	result, err := c.get(ctx, "Person.getInfo", Int(id))
	if err != nil {
		return Result{}, err
	}
	return result.First(), nil
}

// LatestPerson retrieves the most recently added person
func (c *Client) LatestPerson(ctx context.Context) (Result, error) {
	result, err := c.get(ctx, "Person.getLatest", nil)
	if err != nil {
		return Result{}, err
	}
	return result.First(), nil
}

// PersonVersion retrieves the last-modified version of up to 50 people at once
func (c *Client) PersonVersion(ctx context.Context, ids ...string) (Result, error) {
	if len(ids) == 0 || len(ids) > MaxVersionIDs {
		return Result{}, ErrInvalidIDCount
	}
	return c.get(ctx, "Person.getVersion", List(ids))
}
