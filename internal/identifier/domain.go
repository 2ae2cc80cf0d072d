package identifier

import (
	"strings"

	"golang.org/x/net/idna"
)

var hostProfile = idna.New(
	idna.MapForLookup(),
	idna.Transitional(false),
	idna.StrictDomainName(false),
)

// IsDomainHost reports whether host is a syntactically valid domain name with
// at least one dot. Unicode labels are accepted; wildcards and bare top-level
// names are not.
func IsDomainHost(host string) bool {
	if host == "" || strings.ContainsAny(host, "*/:@ ") {
		return false
	}

	ascii, err := hostProfile.ToASCII(host)
	if err != nil || len(ascii) > 253 {
		return false
	}

	labels := strings.Split(ascii, ".")
	if len(labels) < 2 {
		return false
	}

	for _, label := range labels {
		if !validLabel(label) {
			return false
		}
	}

	return !allDigits(labels[len(labels)-1])
}

func validLabel(label string) bool {
	if len(label) == 0 || len(label) > 63 {
		return false
	}

	if label[0] == '-' || label[len(label)-1] == '-' {
		return false
	}

	for i := 0; i < len(label); i++ {
		c := label[i]
		if !(c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '-') {
			return false
		}
	}

	return true
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
