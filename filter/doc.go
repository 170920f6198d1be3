// Package filter selects records from decoded TMDb results with expr expressions.
//
// Every key of a record is available as a variable, next to a set of helpers:
//
//	num(rating) >= 7 and year(released) > 1990
//	icontains(name, "club") or has("imdb_id")
//	lower(name) contains "club"
//
// Compiled programs are cached by expression text and large result sets are
// evaluated on a small worker pool.
package filter
