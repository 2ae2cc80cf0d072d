// Package identifier normalizes raw record values and validates content and
// name identifiers before they are allowed into an upstream URL.
package identifier

import "regexp"

var (
	ipfsScheme = regexp.MustCompile(`(?i)^ipfs://(.*)`)
	ipfsPath   = regexp.MustCompile(`(?i)/ipfs/(.*)`)
	ipnsScheme = regexp.MustCompile(`(?i)^ipns://(.*)`)
	ipnsPath   = regexp.MustCompile(`(?i)/ipns/(.*)`)
)

// NormalizeIPFS strips a leading ipfs:// scheme or the first /ipfs/ segment.
func NormalizeIPFS(raw string) string {
	return strip(raw, ipfsScheme, ipfsPath)
}

// NormalizeIPNS strips a leading ipns:// scheme or the first /ipns/ segment.
func NormalizeIPNS(raw string) string {
	return strip(raw, ipnsScheme, ipnsPath)
}

func strip(raw string, patterns ...*regexp.Regexp) string {
	for _, p := range patterns {
		if m := p.FindStringSubmatch(raw); m != nil {
			return m[len(m)-1]
		}
	}

	return raw
}
