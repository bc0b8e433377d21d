package atlas

import (
	"net/url"
	"strconv"
)

// QueryParams describes one logical feature-service query. The zero value
// matches all records with all fields in WGS84. Params are read-only once
// handed to the client; pagination offsets are added per request.
type QueryParams struct {
	Where          string // filter predicate, defaults to "1=1"
	OutFields      string // requested field list, defaults to "*"
	OutSR          int    // output spatial reference, defaults to 4326
	PageSize       int    // per-page record count override, 0 means client default
	OrderByFields  string // optional ORDER BY clause
	ReturnGeometry bool   // request point geometry; NewQueryParams enables it
}

// NewQueryParams returns params that match all records and return geometry.
func NewQueryParams() QueryParams {
	return QueryParams{ReturnGeometry: true}
}

// Values translates the params to feature-service query parameters.
func (q QueryParams) Values() url.Values {
	where := q.Where
	if where == "" {
		where = "1=1"
	}
	outFields := q.OutFields
	if outFields == "" {
		outFields = "*"
	}
	outSR := q.OutSR
	if outSR == 0 {
		outSR = 4326
	}

	v := url.Values{
		"where":          {where},
		"outFields":      {outFields},
		"outSR":          {strconv.Itoa(outSR)},
		"returnGeometry": {strconv.FormatBool(q.ReturnGeometry)},
		"f":              {"json"},
	}
	if q.PageSize > 0 {
		v.Set("resultRecordCount", strconv.Itoa(q.PageSize))
	}
	if q.OrderByFields != "" {
		v.Set("orderByFields", q.OrderByFields)
	}
	return v
}
