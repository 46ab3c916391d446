package netutil

import "strings"

// TrimSchema trims a leading "http://"/"https://" schema from the given host.
func TrimSchema(host string) string {
	host = strings.TrimPrefix(host, "http://")
	host = strings.TrimPrefix(host, "https://")

	return host
}
