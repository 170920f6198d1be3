// Package tmdb provides a client for the TMDb 2.1 API.
//
// The client translates a named operation (e.g. "Movie.search") and its parameters
// into a request URL or a form body, hands it to a Transport and decodes the answer
// according to the configured Format.
//
// # Usage
//
//	logger := zerolog.New(os.Stderr)
//	client := tmdb.NewClient("your-api-key", logger,
//		tmdb.WithLanguage("de"),
//		tmdb.WithHTTPTimeout(10*time.Second),
//	)
//
//	result, err := client.SearchMovies(ctx, "Fight Club 1999")
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, movie := range result.Records() {
//		fmt.Println(movie["name"])
//	}
//
// # Formats
//
// Results are a tagged union. JSON answers are decoded into a generic tree, XML
// answers into an etree document and YAML answers are kept as raw text:
//
//	switch result.Kind() {
//	case tmdb.KindJSON:
//		tree, _ := result.JSON()
//	case tmdb.KindXML:
//		root, _ := result.XML()
//	case tmdb.KindRaw:
//		text, _ := result.Raw()
//	case tmdb.KindAbsent:
//		// nothing found or invalid arguments
//	}
//
// Result.Lookup navigates any of them with a dotted path and Result.Decode
// unmarshals into a typed struct.
//
// # Configuration
//
// A Client never changes after construction. WithFormat, WithLanguage and
// WithAPIKey return adjusted copies, so one client can serve many goroutines:
//
//	xmlClient := client.WithFormat("xml")
//
// Unrecognized formats are ignored and the copy keeps the previous format.
//
// # Error Handling
//
//   - ErrMissingAPIKey: no API key configured
//   - ErrInvalidIDCount: version lookups outside 1..50 ids
//   - ErrNoToken: token endpoint answered without a token
//   - APIError: non-2xx answers, with IsNotFound and IsUnauthorized helpers
//   - DecodeError: body does not match the requested format
package tmdb
