package fetch

import (
	"fmt"

	"github.com/gaurav-prasanna/wikiroulette/core"
)

// field is a required string member of the summary object.
type field struct {
	name     string
	nonEmpty bool
}

// pageSchema lists the members a summary must carry to become a Page.
// Anything else in the object is ignored.
var pageSchema = []field{
	{name: "title", nonEmpty: true},
	{name: "extract"},
}

// validatePage checks a decoded JSON value against pageSchema and builds
// the Page. It fails closed: any violation yields no page.
func validatePage(raw any) (*core.Page, []FieldError) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, []FieldError{{Problem: "expected JSON object, got " + jsonType(raw)}}
	}

	values := make(map[string]string, len(pageSchema))
	var problems []FieldError
	for _, f := range pageSchema {
		v, present := obj[f.name]
		if !present {
			problems = append(problems, FieldError{Field: f.name, Problem: "missing required field"})
			continue
		}
		s, ok := v.(string)
		if !ok {
			problems = append(problems, FieldError{Field: f.name, Problem: "expected string, got " + jsonType(v)})
			continue
		}
		if f.nonEmpty && s == "" {
			problems = append(problems, FieldError{Field: f.name, Problem: "must not be empty"})
			continue
		}
		values[f.name] = s
	}
	if len(problems) > 0 {
		return nil, problems
	}

	return &core.Page{
		Title:   values["title"],
		Extract: values["extract"],
		Meta:    metadataFrom(obj),
	}, nil
}

// metadataFrom picks optional members; wrong types are skipped.
func metadataFrom(obj map[string]any) core.PageMetadata {
	meta := core.PageMetadata{
		Description: stringAt(obj, "description"),
		ExtractHTML: stringAt(obj, "extract_html"),
		Language:    stringAt(obj, "lang"),
	}
	if urls, ok := obj["content_urls"].(map[string]any); ok {
		if desktop, ok := urls["desktop"].(map[string]any); ok {
			meta.URL = stringAt(desktop, "page")
		}
	}
	return meta
}

func stringAt(obj map[string]any, key string) string {
	s, _ := obj[key].(string)
	return s
}

// jsonType names the JSON type of a value produced by encoding/json.
func jsonType(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
