// Package validator checks loosely-typed request sections against declarative
// per-field constraint tables and produces normalized values with defaults
// applied. Constraints are data, not code: a new resource adds table entries,
// not types.
package validator

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode/utf8"
)

// Kind is the declared type of a field
type Kind int

const (
	String Kind = iota
	Number
	Integer
	Boolean
	Date
	StringList // array of strings
	StringMap  // map from string to string
	ListMap    // map from string to array of strings
)

// Format is an additional shape constraint for String fields
type Format int

const (
	FormatNone Format = iota
	FormatURL
	FormatEmail
)

var (
	urlPattern   = regexp.MustCompile(`^(ftp|http|https)://(\w+:?\w*@)?(\S+)(:[0-9]+)?(/|/([\w#!:.?+=&%@!\-/]))?$`)
	emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)
)

// Rule is a single field constraint
type Rule struct {
	Kind     Kind
	Required bool
	Min      *float64 // numeric lower bound
	Max      *float64 // numeric upper bound
	MinLen   int      // string length bounds, 0 means unset
	MaxLen   int
	Enum     []string    // allowed values for String fields
	Format   Format      // shape constraint for String fields
	Default  interface{} // applied when the field is absent
}

// Fields maps field names to their constraints
type Fields map[string]Rule

// Schema declares the constraints for each request section. A nil section
// means no constraint: its input passes through unchanged.
type Schema struct {
	Headers Fields
	Params  Fields
	Query   Fields
	Body    Fields
}

// Request carries the untyped request sections to validate
type Request struct {
	Headers map[string]interface{}
	Params  map[string]interface{}
	Query   map[string]interface{}
	Body    map[string]interface{}
}

// Validated carries the normalized sections after a successful validation
type Validated struct {
	Headers map[string]interface{}
	Params  map[string]interface{}
	Query   map[string]interface{}
	Body    map[string]interface{}
}

// ValidationError aggregates every failing field across all sections
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	return "Validation Error: " + strings.Join(e.Details, ", ")
}

// Validate checks each section against its declared constraints. The four
// sections are independent and validated concurrently; on failure every
// failing field is represented in the combined error.
func (s Schema) Validate(req Request) (*Validated, error) {
	sections := []struct {
		fields Fields
		input  map[string]interface{}
		out    *map[string]interface{}
	}{
		{s.Headers, req.Headers, nil},
		{s.Params, req.Params, nil},
		{s.Query, req.Query, nil},
		{s.Body, req.Body, nil},
	}

	result := &Validated{}
	sections[0].out = &result.Headers
	sections[1].out = &result.Params
	sections[2].out = &result.Query
	sections[3].out = &result.Body

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		details []string
	)
	for i := range sections {
		wg.Add(1)
		go func(fields Fields, input map[string]interface{}, out *map[string]interface{}) {
			defer wg.Done()
			normalized, errs := validateSection(fields, input)
			mu.Lock()
			*out = normalized
			details = append(details, errs...)
			mu.Unlock()
		}(sections[i].fields, sections[i].input, sections[i].out)
	}
	wg.Wait()

	if len(details) > 0 {
		sort.Strings(details)
		return nil, &ValidationError{Details: details}
	}
	return result, nil
}

func validateSection(fields Fields, input map[string]interface{}) (map[string]interface{}, []string) {
	if fields == nil {
		return input, nil
	}

	out := make(map[string]interface{}, len(fields))
	var errs []string

	for name := range input {
		if _, declared := fields[name]; !declared {
			errs = append(errs, fmt.Sprintf("%q is not allowed", name))
		}
	}

	for name, rule := range fields {
		value, present := input[name]
		if !present || value == nil {
			if rule.Required {
				errs = append(errs, fmt.Sprintf("%q is required", name))
			} else if rule.Default != nil {
				out[name] = rule.Default
			}
			continue
		}

		normalized, err := rule.normalize(name, value)
		if err != "" {
			errs = append(errs, err)
			continue
		}
		out[name] = normalized
	}

	return out, errs
}

// normalize coerces value to the rule's kind and checks its bounds, returning
// the normalized value or the first failure message for the field
func (r Rule) normalize(name string, value interface{}) (interface{}, string) {
	switch r.Kind {
	case String:
		return r.normalizeString(name, value)
	case Number:
		n, ok := toFloat(value)
		if !ok {
			return nil, fmt.Sprintf("%q must be a number", name)
		}
		if msg := r.checkBounds(name, n); msg != "" {
			return nil, msg
		}
		return n, ""
	case Integer:
		n, ok := toFloat(value)
		if !ok || n != float64(int(n)) {
			return nil, fmt.Sprintf("%q must be an integer", name)
		}
		if msg := r.checkBounds(name, n); msg != "" {
			return nil, msg
		}
		return int(n), ""
	case Boolean:
		switch v := value.(type) {
		case bool:
			return v, ""
		case string:
			if b, err := strconv.ParseBool(v); err == nil {
				return b, ""
			}
		}
		return nil, fmt.Sprintf("%q must be a boolean", name)
	case Date:
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Sprintf("%q must be a valid date", name)
		}
		for _, layout := range []string{time.RFC3339, "2006-01-02"} {
			if t, err := time.Parse(layout, s); err == nil {
				return t, ""
			}
		}
		return nil, fmt.Sprintf("%q must be a valid date", name)
	case StringList:
		list, ok := toStringList(value)
		if !ok {
			return nil, fmt.Sprintf("%q must be an array of strings", name)
		}
		return list, ""
	case StringMap:
		m, ok := toStringMap(value)
		if !ok {
			return nil, fmt.Sprintf("%q must be a map of strings", name)
		}
		return m, ""
	case ListMap:
		m, ok := toListMap(value)
		if !ok {
			return nil, fmt.Sprintf("%q must map keys to arrays of strings", name)
		}
		return m, ""
	}
	return nil, fmt.Sprintf("%q has an unknown constraint kind", name)
}

func (r Rule) normalizeString(name string, value interface{}) (interface{}, string) {
	s, ok := value.(string)
	if !ok {
		return nil, fmt.Sprintf("%q must be a string", name)
	}
	length := utf8.RuneCountInString(s)
	switch {
	case r.MinLen > 0 && r.MinLen == r.MaxLen && length != r.MinLen:
		return nil, fmt.Sprintf("%q length must be %d characters", name, r.MinLen)
	case r.MinLen > 0 && length < r.MinLen:
		return nil, fmt.Sprintf("%q length must be at least %d characters", name, r.MinLen)
	case r.MaxLen > 0 && length > r.MaxLen:
		return nil, fmt.Sprintf("%q length must be at most %d characters", name, r.MaxLen)
	}
	if len(r.Enum) > 0 {
		found := false
		for _, allowed := range r.Enum {
			if s == allowed {
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Sprintf("%q must be one of [%s]", name, strings.Join(r.Enum, ", "))
		}
	}
	switch r.Format {
	case FormatURL:
		if !urlPattern.MatchString(s) {
			return nil, fmt.Sprintf("%q must be a valid URL", name)
		}
	case FormatEmail:
		if !emailPattern.MatchString(s) {
			return nil, fmt.Sprintf("%q must be a valid e-mail address", name)
		}
	}
	return s, ""
}

func (r Rule) checkBounds(name string, n float64) string {
	if r.Min != nil && n < *r.Min {
		return fmt.Sprintf("%q must be at least %s", name, formatNum(*r.Min))
	}
	if r.Max != nil && n > *r.Max {
		return fmt.Sprintf("%q must be at most %s", name, formatNum(*r.Max))
	}
	return ""
}

func formatNum(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// toFloat coerces JSON numbers, Go integers and numeric strings. Query and
// path values always arrive as strings.
func toFloat(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		n, err := strconv.ParseFloat(v, 64)
		return n, err == nil
	}
	return 0, false
}

func toStringList(value interface{}) ([]string, bool) {
	switch v := value.(type) {
	case []string:
		return v, true
	case []interface{}:
		list := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			list = append(list, s)
		}
		return list, true
	}
	return nil, false
}

func toStringMap(value interface{}) (map[string]string, bool) {
	switch v := value.(type) {
	case map[string]string:
		return v, true
	case map[string]interface{}:
		m := make(map[string]string, len(v))
		for k, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			m[k] = s
		}
		return m, true
	}
	return nil, false
}

func toListMap(value interface{}) (map[string][]string, bool) {
	switch v := value.(type) {
	case map[string][]string:
		return v, true
	case map[string]interface{}:
		m := make(map[string][]string, len(v))
		for k, item := range v {
			list, ok := toStringList(item)
			if !ok {
				return nil, false
			}
			m[k] = list
		}
		return m, true
	}
	return nil, false
}
