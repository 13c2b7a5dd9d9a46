package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/taskhub/taskhub-api/internal/filter"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// queryFilters builds filter descriptors from the request's query parameters.
// String parameters pass through as-is; boolean parameters accept true/false
// and 1/0. Parameters absent from the query produce no descriptor.
func queryFilters(c *gin.Context, stringParams, boolParams []string) []filter.Descriptor {
	var filters []filter.Descriptor

	for _, p := range stringParams {
		if v, ok := c.GetQuery(p); ok && v != "" {
			filters = append(filters, filter.Descriptor{Field: p, Value: v})
		}
	}

	for _, p := range boolParams {
		v, ok := c.GetQuery(p)
		if !ok {
			continue
		}
		switch v {
		case "true", "TRUE", "1":
			filters = append(filters, filter.Descriptor{Field: p, Value: true})
		case "false", "FALSE", "0":
			filters = append(filters, filter.Descriptor{Field: p, Value: false})
		}
	}

	return filters
}

// listFilters appends descriptors for parameters that may repeat in the
// query string. A single occurrence stays a scalar; repeats become a set.
func listFilters(c *gin.Context, filters []filter.Descriptor, params ...string) []filter.Descriptor {
	for _, p := range params {
		vals := c.QueryArray(p)
		switch {
		case len(vals) == 1 && vals[0] != "":
			filters = append(filters, filter.Descriptor{Field: p, Value: vals[0]})
		case len(vals) > 1:
			filters = append(filters, filter.Descriptor{Field: p, Value: vals})
		}
	}
	return filters
}

// pageParams extracts page, limit, and order_by. A caller-supplied
// non-positive limit is passed through: it is the return-everything sentinel.
func pageParams(c *gin.Context) (page, limit int, orderBy string) {
	page = defaultPage
	if v, err := strconv.Atoi(c.DefaultQuery("page", "")); err == nil {
		page = v
	}
	limit = defaultLimit
	if v, err := strconv.Atoi(c.DefaultQuery("limit", "")); err == nil {
		limit = v
	}
	orderBy = c.Query("order_by")
	return page, limit, orderBy
}
