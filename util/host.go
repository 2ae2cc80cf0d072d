package util

import (
	"net"
	"strings"

	"github.com/LerianStudio/lib-commons/commons"
)

// NormalizeHost lower-cases the host and strips any port.
func NormalizeHost(host string) string {
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}

	return strings.ToLower(strings.TrimSuffix(host, "."))
}

// AccountFromHost strips suffix from host. It returns false when the host does
// not carry the suffix or nothing is left once it is removed.
func AccountFromHost(host, suffix string) (string, bool) {
	host = NormalizeHost(host)

	if commons.IsNilOrEmpty(&host) || !strings.HasSuffix(host, suffix) {
		return "", false
	}

	account := strings.TrimSuffix(host, suffix)
	if commons.IsNilOrEmpty(&account) {
		return "", false
	}

	return account, true
}
