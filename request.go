package extgrid

import (
	"encoding/json"
	"net/url"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// RawRequest holds the paging and sorting parameters an ExtJS store sends.
// It can be decoded from a JSON body directly or from query parameters with
// ParseRequest.
type RawRequest struct {
	// Start is the offset of the first requested row.
	Start int `json:"start"`
	// Limit is the page size. Zero requests every row.
	Limit    int    `json:"limit"`
	SortBy   string `json:"sort"`
	SortDir  string `json:"dir"`
	GroupBy  string `json:"groupBy"`
	GroupDir string `json:"groupDir"`
}

// sorter is an element of the JSON encoded "sort" and "group" parameters.
type sorter struct {
	Property  string `json:"property"`
	Direction string `json:"direction"`
}

// ParseRequest reads a RawRequest from query or form parameters.
//
// Both the plain form ("sort=name&dir=DESC", "groupBy=city&groupDir=ASC") and
// the JSON encoded form ("sort=[{"property":"name","direction":"DESC"}]",
// "group=[...]") are understood. Only the first sorter is used. Values that do
// not parse are treated as absent.
func ParseRequest(values url.Values) RawRequest {
	ret := RawRequest{
		Start: parseInt(values.Get("start")),
		Limit: parseInt(values.Get("limit")),
	}

	ret.SortBy, ret.SortDir = parseSorter(values.Get("sort"), values.Get("dir"))
	groupBy := values.Get("groupBy")
	ret.GroupBy, ret.GroupDir = parseSorter(
		lo.Ternary(groupBy != "", groupBy, values.Get("group")),
		values.Get("groupDir"),
	)

	return ret
}

func parseInt(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}

	return n
}

func parseSorter(raw, dir string) (string, string) {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "[") {
		return raw, dir
	}

	var sorters []sorter
	if err := json.Unmarshal([]byte(raw), &sorters); err != nil || len(sorters) == 0 {
		return "", ""
	}

	return sorters[0].Property, lo.Ternary(sorters[0].Direction != "", sorters[0].Direction, dir)
}

// ApplyRequest copies paging and sorting parameters of r into the options.
func (o *Options[T]) ApplyRequest(r RawRequest) *Options[T] {
	if o == nil {
		o = new(Options[T])
	}

	o.Start = r.Start
	o.Limit = r.Limit
	o.SortBy = r.SortBy
	o.SortDir = r.SortDir
	o.GroupBy = r.GroupBy
	o.GroupDir = r.GroupDir

	return o
}
