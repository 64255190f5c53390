// Package services holds the console's business logic between the controllers and the store.
package services

import (
	"strconv"
	"strings"
	"time"
)

// IDGenerator returns the id for a document created without one.
type IDGenerator func() string

// TimestampID mirrors the ids the console has always generated: Unix milliseconds as text.
func TimestampID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}

// containsFold reports whether sub occurs in s ignoring case. An empty sub matches everything.
func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
