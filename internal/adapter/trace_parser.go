package adapter

import (
	"bufio"
	"regexp"
	"strings"

	"github.com/MKhiriev/cf-error-page/models"
)

// RayHeader is the response header carrying the edge-request identifier.
const RayHeader = "Cf-Ray"

var (
	// ipLine accepts IPv4 and IPv6 literals: digits, hex letters, dots, colons.
	ipLine = regexp.MustCompile(`(?im)^ip=([\d.a-f:]+)`)
	// coloLine accepts a three-letter facility code.
	coloLine = regexp.MustCompile(`(?im)^colo=([a-z]{3})`)
)

// ParseTraceBody extracts the visitor address, the facility code and every
// key=value field from a diagnostic response body. Lines that do not match
// are skipped; nothing in the body is required.
func ParseTraceBody(body string) models.TraceInfo {
	var info models.TraceInfo

	if m := ipLine.FindStringSubmatch(body); m != nil {
		info.IP = m[1]
	}
	if m := coloLine.FindStringSubmatch(body); m != nil {
		info.Colo = m[1]
	}

	scanner := bufio.NewScanner(strings.NewReader(body))
	for scanner.Scan() {
		key, value, ok := strings.Cut(strings.TrimSpace(scanner.Text()), "=")
		if !ok || key == "" {
			continue
		}
		if info.Fields == nil {
			info.Fields = make(map[string]string)
		}
		info.Fields[key] = value
	}

	return info
}

// SplitRay splits an edge-request identifier "<hex-id>-<facility>" into its
// two segments. The facility is empty when the identifier has no hyphen.
func SplitRay(ray string) (id, facility string) {
	id, rest, found := strings.Cut(ray, "-")
	if !found {
		return id, ""
	}
	facility, _, _ = strings.Cut(rest, "-")
	return id, facility
}
