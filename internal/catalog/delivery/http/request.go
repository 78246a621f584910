package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pmslab/catalog-service/internal/catalog/domain"
)

// queryToSection flattens URL query values into a validation section.
// Bracketed attribute parameters (attributes[colors]=white,silver) fold into
// a nested map under "attributes".
func queryToSection(values url.Values) map[string]interface{} {
	section := make(map[string]interface{}, len(values))
	attrs := map[string]interface{}{}
	for key, vals := range values {
		if len(vals) == 0 {
			continue
		}
		if inner, ok := bracketKey(key, "attributes"); ok {
			attrs[inner] = vals[0]
			continue
		}
		section[key] = vals[0]
	}
	if len(attrs) > 0 {
		section["attributes"] = attrs
	}
	return section
}

func bracketKey(key, prefix string) (string, bool) {
	if strings.HasPrefix(key, prefix+"[") && strings.HasSuffix(key, "]") {
		return key[len(prefix)+1 : len(key)-1], true
	}
	return "", false
}

// varsToSection lifts mux path variables into a validation section
func varsToSection(vars map[string]string) map[string]interface{} {
	section := make(map[string]interface{}, len(vars))
	for key, value := range vars {
		section[key] = value
	}
	return section
}

// decodeBody reads the request body as a JSON object. An absent or empty
// body decodes to an empty map; malformed JSON is an error.
func decodeBody(r *http.Request) (map[string]interface{}, error) {
	body := map[string]interface{}{}
	err := json.NewDecoder(r.Body).Decode(&body)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return body, nil
}

// Typed accessors for normalized section values. The validator guarantees
// the dynamic types, so the assertions only guard against absent fields.

func strField(section map[string]interface{}, name string) string {
	s, _ := section[name].(string)
	return s
}

func intField(section map[string]interface{}, name string, def int) int {
	if n, ok := section[name].(int); ok {
		return n
	}
	return def
}

func floatField(section map[string]interface{}, name string) float64 {
	n, _ := section[name].(float64)
	return n
}

func listField(section map[string]interface{}, name string) []string {
	list, _ := section[name].([]string)
	return list
}

func listMapField(section map[string]interface{}, name string) map[string][]string {
	m, _ := section[name].(map[string][]string)
	return m
}

func timeField(section map[string]interface{}, name string) *time.Time {
	if t, ok := section[name].(time.Time); ok {
		return &t
	}
	return nil
}

// csvField splits a comma-separated query value into its parts
func csvField(section map[string]interface{}, name string) []string {
	s := strField(section, name)
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

// attrFilterField turns normalized attributes[k]=v1,v2 parameters into the
// exact value lists the filter matches against
func attrFilterField(section map[string]interface{}, name string) map[string][]string {
	raw, ok := section[name].(map[string]string)
	if !ok || len(raw) == 0 {
		return nil
	}
	attrs := make(map[string][]string, len(raw))
	for key, csv := range raw {
		attrs[key] = strings.Split(csv, ",")
	}
	return attrs
}

// pageFrom reads the skip/limit pagination pair, falling back to the
// defaults when absent
func pageFrom(section map[string]interface{}) domain.Page {
	page := domain.DefaultPage()
	page.Offset = intField(section, "offset", page.Offset)
	page.Limit = intField(section, "limit", page.Limit)
	return page
}
