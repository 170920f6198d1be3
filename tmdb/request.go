package tmdb

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// authPrefix marks operations that are addressed without a language segment
const authPrefix = "Auth"

// Params is the parameter payload of an operation: Scalar, List or Values
type Params interface {
	isParams()
}

// Scalar is a single parameter appended to the URL as a path segment
type Scalar string

// List is a set of identifiers sent as one comma separated Scalar
type List []string

// Values is a key-value parameter set, sent as a query string (GET) or form fields (POST)
type Values url.Values

func (Scalar) isParams() {}
func (List) isParams()   {}
func (Values) isParams() {}

// Int returns the decimal Scalar for id
func Int(id int) Scalar {
	return Scalar(strconv.Itoa(id))
}

// String joins the list with commas
func (l List) String() string {
	return strings.Join(l, ",")
}

// Operation is a single named call against the API
type Operation struct {
	// Name is the API operation, e.g. "Movie.search"
	Name string
	// Params is nil when the operation takes no parameters
	Params Params
	// Method defaults to GET
	Method Method
	// Format overrides the client format for this call when set
	Format Format
}

// Request is what a Transport sends over the wire
type Request struct {
	Method Method
	URL    string
	// Form carries the POST fields; nil for GET
	Form url.Values
}

// buildRequest translates an operation into a wire request using the config snapshot
func buildRequest(cfg Config, op Operation) (Request, Format, error) {
	if cfg.APIKey == "" {
		return Request{}, "", ErrMissingAPIKey
	}

	format := cfg.Format
	if op.Format != "" && op.Format.Valid() {
		format = op.Format
	}

	method := op.Method
	if method == "" {
		method = MethodGet
	}

	endpoint := operationEndpoint(cfg, op.Name)

	if method == MethodPost {
		form, err := postFields(op.Params)
		if err != nil {
			return Request{}, "", err
		}
		form.Set("api_key", cfg.APIKey)
		form.Set("type", format.String())

		return Request{Method: MethodPost, URL: endpoint, Form: form}, format, nil
	}

	var sb strings.Builder
	sb.WriteString(keyPrefix(cfg, op.Name, format))
	sb.WriteString(cfg.APIKey)

	switch p := op.Params.(type) {
	case nil:
	case Scalar:
		sb.WriteString("/" + url.QueryEscape(string(p)))
	case List:
		sb.WriteString("/" + url.QueryEscape(p.String()))
	case Values:
		if len(p) > 0 {
			sb.WriteString("?" + url.Values(p).Encode())
		}
	default:
		return Request{}, "", fmt.Errorf("%w: %T", ErrUnsupportedParams, op.Params)
	}

	return Request{Method: MethodGet, URL: sb.String()}, format, nil
}

// postFields copies the caller parameters into a fresh form
func postFields(params Params) (url.Values, error) {
	form := url.Values{}

	switch p := params.(type) {
	case nil:
	case Scalar:
		form.Set("0", string(p))
	case List:
		form.Set("0", p.String())
	case Values:
		for key, values := range p {
			form[key] = append([]string(nil), values...)
		}
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedParams, params)
	}

	return form, nil
}

func operationEndpoint(cfg Config, name string) string {
	return strings.TrimRight(cfg.BaseURL, "/") + "/" + cfg.APIVersion + "/" + name
}

// keyPrefix is the GET URL up to the API key segment
func keyPrefix(cfg Config, name string, format Format) string {
	var sb strings.Builder
	sb.WriteString(operationEndpoint(cfg, name))
	if !isAuthOperation(name) {
		sb.WriteString("/" + cfg.Language)
	}
	sb.WriteString("/" + format.String() + "/")
	return sb.String()
}

// redactURL hides the API key segment that follows prefix. URLs without the key
// at that position, such as POST endpoints, are returned unchanged.
func redactURL(rawURL, prefix, apiKey string) string {
	if apiKey == "" || !strings.HasPrefix(rawURL, prefix+apiKey) {
		return rawURL
	}
	rest := rawURL[len(prefix)+len(apiKey):]
	if rest != "" && rest[0] != '/' && rest[0] != '?' {
		return rawURL
	}
	return prefix + "REDACTED" + rest
}
