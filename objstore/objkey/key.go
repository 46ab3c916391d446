// Package objkey builds the deterministic object-store keys used to locate a media's bytes.
package objkey

import (
	"fmt"
	"regexp"
	"strings"
)

var slugInvalid = regexp.MustCompile(`[^a-z0-9]+`)

// Slug lowercases, trims, and collapses runs of non-alphanumeric characters in 'name' into a single hyphen, producing
// a value that's safe to use as the final path segment of an object-store key.
//
// NOTE: An empty/fully-punctuation 'name' slugs to "media" rather than an empty string, so the resulting key is
// never left with a trailing slash.
func Slug(name string) string {
	slug := strings.Trim(slugInvalid.ReplaceAllString(strings.ToLower(name), "-"), "-")
	if slug == "" {
		return "media"
	}

	return slug
}

// Build returns the object-store key for a media belonging to 'marketBoothID' with the given 'mediaID' and 'name':
// "{market_booth_id}/{media_id}/{slug(name)}".
//
// The 'media_id' segment uniquely isolates the media's bytes, so 'objcli.Client.DeleteDirectory' on this key's
// directory cleans up any partial re-upload residue left behind by an aborted multipart upload.
func Build(marketBoothID, mediaID, name string) string {
	return fmt.Sprintf("%s/%s/%s", marketBoothID, mediaID, Slug(name))
}

// Directory returns the prefix under which all of a media's objects (including abandoned multipart parts) live:
// "{market_booth_id}/{media_id}/".
func Directory(marketBoothID, mediaID string) string {
	return fmt.Sprintf("%s/%s/", marketBoothID, mediaID)
}
