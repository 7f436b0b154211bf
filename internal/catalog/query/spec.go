// Package query implements the filter specification and the list
// projection: pure functions from the product list and the URL query
// string to the page a view renders.
package query

import "net/url"

// Query parameter names used on the list route.
const (
	ParamQuery    = "q"
	ParamCategory = "category"
	ParamMin      = "min"
	ParamMax      = "max"
	ParamPage     = "page"
)

// Spec holds the four filter parameters in their raw text form as read
// from the URL. It has no storage of its own; it is recomputed from the
// request on every read. Numeric interpretation of Min and Max happens at
// projection time, never here.
type Spec struct {
	Query    string
	Category string
	Min      string
	Max      string
}

// ParseSpec reads the filter parameters from URL query values. Absent
// parameters stay unset.
func ParseSpec(values url.Values) Spec {
	return Spec{
		Query:    values.Get(ParamQuery),
		Category: values.Get(ParamCategory),
		Min:      values.Get(ParamMin),
		Max:      values.Get(ParamMax),
	}
}

// IsZero reports whether no filter parameter is set.
func (s Spec) IsZero() bool {
	return s == Spec{}
}

// Values serializes the spec back to URL query values. Unset parameters
// are omitted entirely rather than written as empty values.
func (s Spec) Values() url.Values {
	values := url.Values{}
	if s.Query != "" {
		values.Set(ParamQuery, s.Query)
	}
	if s.Category != "" {
		values.Set(ParamCategory, s.Category)
	}
	if s.Min != "" {
		values.Set(ParamMin, s.Min)
	}
	if s.Max != "" {
		values.Set(ParamMax, s.Max)
	}
	return values
}

// Encode returns the spec as a query string without a leading "?", empty
// when no parameter is set.
func (s Spec) Encode() string {
	return s.Values().Encode()
}

// Patch is a partial spec. Nil fields leave the current value unchanged;
// pointing at an empty string unsets a parameter.
type Patch struct {
	Query    *string
	Category *string
	Min      *string
	Max      *string
}

// ApplyTo merges the patch into spec and returns the result.
func (p Patch) ApplyTo(spec Spec) Spec {
	if p.Query != nil {
		spec.Query = *p.Query
	}
	if p.Category != nil {
		spec.Category = *p.Category
	}
	if p.Min != nil {
		spec.Min = *p.Min
	}
	if p.Max != nil {
		spec.Max = *p.Max
	}
	return spec
}
