package database

import (
	"fmt"
	"strings"
)

// ConstructDatabaseURL combines a base connection URL with an optional
// database name, defaulting sslmode to disable when the URL does not
// choose one. An empty name leaves the base URL untouched.
func ConstructDatabaseURL(baseURL, databaseName string) string {
	if databaseName == "" {
		return baseURL
	}

	base := strings.TrimRight(baseURL, "/")

	var databaseURL string
	if host, params, ok := strings.Cut(base, "?"); ok {
		databaseURL = fmt.Sprintf("%s/%s?%s", host, databaseName, params)
	} else {
		databaseURL = fmt.Sprintf("%s/%s", base, databaseName)
	}

	if !strings.Contains(databaseURL, "sslmode=") {
		separator := "&"
		if !strings.Contains(databaseURL, "?") {
			separator = "?"
		}
		databaseURL += separator + "sslmode=disable"
	}

	return databaseURL
}
