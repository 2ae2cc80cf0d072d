package model

import (
	"strings"

	cn "github.com/LerianStudio/dweb-gateway/constant"
)

// Record is a single key/value pair returned by the account-record lookup.
type Record struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// RecordsData is the data payload of a lookup response.
type RecordsData struct {
	Records []Record `json:"records"`
}

// LookupResponse is the body returned by the account-record lookup.
// Data is nil when the account has no records.
type LookupResponse struct {
	Data *RecordsData `json:"data"`
}

// LookupRequest is the body sent to the account-record lookup.
type LookupRequest struct {
	Account string `json:"account"`
}

// Pointer is the single record chosen to drive proxying for an account.
type Pointer struct {
	Kind  string
	Value string
}

// Encode joins kind and value for storage in the resolution cache.
func (p Pointer) Encode() string {
	return p.Kind + cn.PointerSeparator + p.Value
}

// DecodePointer reverses Encode. Values may themselves contain the separator.
func DecodePointer(s string) (Pointer, bool) {
	kind, value, ok := strings.Cut(s, cn.PointerSeparator)
	if !ok || kind == "" {
		return Pointer{}, false
	}

	return Pointer{Kind: kind, Value: value}, true
}
