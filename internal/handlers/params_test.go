package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/taskhub/taskhub-api/internal/filter"
)

func testContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return c
}

func TestQueryFilters(t *testing.T) {
	c := testContext(t, "email=a@x.com&is_deleted=true&ignored=zzz")

	filters := queryFilters(c, []string{"email", "username"}, []string{"is_deleted"})
	require.Equal(t, []filter.Descriptor{
		{Field: "email", Value: "a@x.com"},
		{Field: "is_deleted", Value: true},
	}, filters)
}

func TestQueryFiltersBooleanSpellings(t *testing.T) {
	for query, want := range map[string]any{
		"is_deleted=1":     true,
		"is_deleted=0":     false,
		"is_deleted=FALSE": false,
	} {
		filters := queryFilters(testContext(t, query), nil, []string{"is_deleted"})
		require.Equal(t, []filter.Descriptor{{Field: "is_deleted", Value: want}}, filters, query)
	}

	// unparseable boolean values produce no descriptor
	require.Empty(t, queryFilters(testContext(t, "is_deleted=maybe"), nil, []string{"is_deleted"}))
}

func TestListFilters(t *testing.T) {
	c := testContext(t, "status=todo")
	filters := listFilters(c, nil, "status")
	require.Equal(t, []filter.Descriptor{{Field: "status", Value: "todo"}}, filters)

	// repeated parameters collapse into one set-valued descriptor
	c = testContext(t, "status=todo&status=done")
	filters = listFilters(c, nil, "status")
	require.Equal(t, []filter.Descriptor{{Field: "status", Value: []string{"todo", "done"}}}, filters)

	require.Empty(t, listFilters(testContext(t, ""), nil, "status"))
	require.Empty(t, listFilters(testContext(t, "status="), nil, "status"))
}

func TestPageParamsDefaults(t *testing.T) {
	page, limit, orderBy := pageParams(testContext(t, ""))
	require.Equal(t, 1, page)
	require.Equal(t, 10, limit)
	require.Equal(t, "", orderBy)
}

func TestPageParamsPassThrough(t *testing.T) {
	page, limit, orderBy := pageParams(testContext(t, "page=3&limit=25&order_by=-created_at"))
	require.Equal(t, 3, page)
	require.Equal(t, 25, limit)
	require.Equal(t, "-created_at", orderBy)
}

func TestPageParamsKeepsSentinelLimit(t *testing.T) {
	_, limit, _ := pageParams(testContext(t, "limit=0"))
	require.Equal(t, 0, limit)

	_, limit, _ = pageParams(testContext(t, "limit=-1"))
	require.Equal(t, -1, limit)
}
