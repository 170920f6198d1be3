package tmdb

// Format is the serialization the API is asked to return
type Format string

const (
	// FormatJSON requests JSON responses
	FormatJSON Format = "json"
	// FormatXML requests XML responses
	FormatXML Format = "xml"
	// FormatYAML requests YAML responses, which are returned undecoded
	FormatYAML Format = "yaml"
)

// ParseFormat reports whether s is exactly one of the supported formats
func ParseFormat(s string) (Format, bool) {
	switch f := Format(s); f {
	case FormatJSON, FormatXML, FormatYAML:
		return f, true
	default:
		return "", false
	}
}

// Valid reports whether f is a supported format
func (f Format) Valid() bool {
	_, ok := ParseFormat(string(f))
	return ok
}

// String returns the path segment used for the format
func (f Format) String() string {
	return string(f)
}

// Method is the HTTP verb used for an operation
type Method string

const (
	// MethodGet issues the operation as a GET with parameters in the URL
	MethodGet Method = "GET"
	// MethodPost issues the operation as a form-encoded POST
	MethodPost Method = "POST"
)
