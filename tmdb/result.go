package tmdb

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"gopkg.in/yaml.v3"
)

// Kind identifies which variant a Result holds
type Kind int

const (
	// KindAbsent is the explicit "no value" result
	KindAbsent Kind = iota
	// KindJSON holds a generic JSON tree
	KindJSON
	// KindXML holds a navigable XML document
	KindXML
	// KindRaw holds undecoded text (YAML)
	KindRaw
)

// String returns the name of the kind
func (k Kind) String() string {
	switch k {
	case KindJSON:
		return "json"
	case KindXML:
		return "xml"
	case KindRaw:
		return "raw"
	default:
		return "absent"
	}
}

// Result is a decoded API response. The zero value is absent.
type Result struct {
	kind Kind
	body []byte
	tree any
	doc  *etree.Document
	elem *etree.Element
}

// Absent returns the absent result
func Absent() Result {
	return Result{}
}

// decodeResult decodes body according to format
func decodeResult(format Format, body []byte) (Result, error) {
	switch format {
	case FormatJSON:
		var tree any
		if err := json.Unmarshal(body, &tree); err != nil {
			return Result{}, &DecodeError{Format: format, Err: err}
		}
		return Result{kind: KindJSON, body: body, tree: tree}, nil

	case FormatXML:
		doc := etree.NewDocument()
		if err := doc.ReadFromBytes(body); err != nil {
			return Result{}, &DecodeError{Format: format, Err: err}
		}
		if doc.Root() == nil {
			return Result{}, &DecodeError{Format: format, Err: fmt.Errorf("document has no root element")}
		}
		return Result{kind: KindXML, body: body, doc: doc, elem: doc.Root()}, nil

	default:
		return Result{kind: KindRaw, body: body}, nil
	}
}

// Kind returns the variant held by r
func (r Result) Kind() Kind {
	return r.kind
}

// IsAbsent reports whether r is the absent result
func (r Result) IsAbsent() bool {
	return r.kind == KindAbsent
}

// JSON returns the generic JSON tree
func (r Result) JSON() (any, bool) {
	if r.kind != KindJSON {
		return nil, false
	}
	return r.tree, true
}

// XML returns the element the result points at (the document root unless unwrapped)
func (r Result) XML() (*etree.Element, bool) {
	if r.kind != KindXML || r.elem == nil {
		return nil, false
	}
	return r.elem, true
}

// Document returns the full XML document
func (r Result) Document() (*etree.Document, bool) {
	if r.kind != KindXML {
		return nil, false
	}
	return r.doc, true
}

// Raw returns the undecoded body text
func (r Result) Raw() (string, bool) {
	if r.kind != KindRaw {
		return "", false
	}
	return string(r.body), true
}

// Body returns the response body the result was decoded from
func (r Result) Body() []byte {
	return r.body
}

// String renders the result as text
func (r Result) String() string {
	switch r.kind {
	case KindJSON:
		out, err := json.Marshal(r.tree)
		if err != nil {
			return string(r.body)
		}
		return string(out)
	case KindXML:
		doc := etree.NewDocument()
		doc.SetRoot(r.elem.Copy())
		out, err := doc.WriteToString()
		if err != nil {
			return string(r.body)
		}
		return out
	case KindRaw:
		return string(r.body)
	default:
		return ""
	}
}

// Decode unmarshals the response into v using the codec of the result's kind.
// JSON results that were unwrapped decode only the unwrapped element.
func (r Result) Decode(v any) error {
	switch r.kind {
	case KindJSON:
		data, err := json.Marshal(r.tree)
		if err != nil {
			return err
		}
		return json.Unmarshal(data, v)
	case KindXML:
		doc := etree.NewDocument()
		doc.SetRoot(r.elem.Copy())
		data, err := doc.WriteToBytes()
		if err != nil {
			return err
		}
		return xml.Unmarshal(data, v)
	case KindRaw:
		return yaml.Unmarshal(r.body, v)
	default:
		return fmt.Errorf("cannot decode absent result")
	}
}

// First unwraps a one-element sequence. JSON arrays yield their first element, or
// the absent result when it is missing or falsy. XML results stay on the root element.
func (r Result) First() Result {
	switch r.kind {
	case KindJSON:
		items, ok := r.tree.([]any)
		if !ok {
			if truthy(r.tree) {
				return r
			}
			return Absent()
		}
		if len(items) == 0 || !truthy(items[0]) {
			return Absent()
		}
		return Result{kind: KindJSON, body: r.body, tree: items[0]}
	case KindXML:
		if r.elem == nil {
			return Absent()
		}
		return r
	default:
		return r
	}
}

// IsRecord reports whether r is a well-formed record: a JSON object or an XML element
func (r Result) IsRecord() bool {
	switch r.kind {
	case KindJSON:
		_, ok := r.tree.(map[string]any)
		return ok
	case KindXML:
		return r.elem != nil
	default:
		return false
	}
}

// Records returns the JSON objects held by the result. A single object yields a
// one-element slice; non-object array items are skipped.
func (r Result) Records() []map[string]any {
	if r.kind != KindJSON {
		return nil
	}

	switch v := r.tree.(type) {
	case map[string]any:
		return []map[string]any{v}
	case []any:
		records := make([]map[string]any, 0, len(v))
		for _, item := range v {
			if record, ok := item.(map[string]any); ok {
				records = append(records, record)
			}
		}
		return records
	default:
		return nil
	}
}

// Lookup resolves a dotted path and returns its text value. JSON paths use object
// keys and array indices. XML paths name child elements below the current element;
// a leading segment equal to the element's own tag is skipped. Raw bodies are parsed
// as YAML for the lookup.
func (r Result) Lookup(path string) (string, bool) {
	var segments []string
	if path != "" {
		segments = strings.Split(path, ".")
	}

	switch r.kind {
	case KindJSON:
		return lookupTree(r.tree, segments)
	case KindXML:
		return lookupElement(r.elem, segments)
	case KindRaw:
		var tree any
		if err := yaml.Unmarshal(r.body, &tree); err != nil {
			return "", false
		}
		return lookupTree(tree, segments)
	default:
		return "", false
	}
}

func lookupTree(node any, segments []string) (string, bool) {
	for _, seg := range segments {
		switch v := node.(type) {
		case map[string]any:
			next, ok := v[seg]
			if !ok {
				return "", false
			}
			node = next
		case []any:
			i, err := strconv.Atoi(seg)
			if err != nil || i < 0 || i >= len(v) {
				return "", false
			}
			node = v[i]
		default:
			return "", false
		}
	}
	return scalarText(node)
}

func lookupElement(elem *etree.Element, segments []string) (string, bool) {
	if elem == nil {
		return "", false
	}
	if len(segments) > 0 && segments[0] == elem.Tag && elem.SelectElement(segments[0]) == nil {
		segments = segments[1:]
	}
	for _, seg := range segments {
		elem = elem.SelectElement(seg)
		if elem == nil {
			return "", false
		}
	}
	return strings.TrimSpace(elem.Text()), true
}

func scalarText(node any) (string, bool) {
	switch v := node.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case int:
		return strconv.Itoa(v), true
	case bool:
		return strconv.FormatBool(v), true
	case map[string]any, []any:
		return "", false
	default:
		return fmt.Sprint(v), true
	}
}

// truthy mirrors the loose emptiness check applied when unwrapping sequences
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != "" && t != "0"
	case float64:
		return t != 0
	case []any:
		return len(t) > 0
	case map[string]any:
		return true
	default:
		return true
	}
}
