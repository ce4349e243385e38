// Copyright (c) 2026 Mingyuan. All rights reserved.
// Author: dev@mingyuan.app

/*
Package request provides utilities for extracting data from HTTP requests.

All Mingyuan endpoints are retrieval-only and parameterized exclusively via
the query string, so this package focuses on consistent, fault-tolerant
query-parameter extraction.
*/
package requestutil

import (
	"net/http"
	"strings"
)

/*
Query retrieves a named query-string parameter from the request.

The value is returned exactly as decoded by net/url; no trimming is applied
so that downstream lookup policies (e.g. the detail service's trim-retry)
can observe the original input.
*/
func Query(request *http.Request, name string) string {
	return request.URL.Query().Get(name)
}

/*
QueryDefault retrieves a named query-string parameter, falling back to def
when the parameter is absent or empty after trimming.
*/
func QueryDefault(request *http.Request, name, def string) string {
	value := request.URL.Query().Get(name)
	if strings.TrimSpace(value) == "" {
		return def
	}
	return value
}
