package resolver

import (
	cn "github.com/LerianStudio/dweb-gateway/constant"
	"github.com/LerianStudio/dweb-gateway/model"
)

// priority is the selection order. It must not change: accounts rely on ipns
// shadowing ipfs, and so on down the list.
var priority = []string{
	cn.RecordIPNS,
	cn.RecordIPFS,
	cn.RecordSkynet,
	cn.RecordArweave,
}

// Choose picks the pointer that drives proxying for an account. Only the first
// record of each kind counts; when it is empty the next kind is tried. resilio
// records are recognized but never chosen.
func Choose(records []model.Record) (model.Pointer, bool) {
	buckets := make(map[string]string, 5)

	for _, r := range records {
		switch r.Key {
		case cn.RecordIPNS, cn.RecordIPFS, cn.RecordResilio, cn.RecordSkynet, cn.RecordArweave:
			if _, seen := buckets[r.Key]; !seen {
				buckets[r.Key] = r.Value
			}
		}
	}

	for _, kind := range priority {
		if value := buckets[kind]; value != "" {
			return model.Pointer{Kind: kind, Value: value}, true
		}
	}

	return model.Pointer{}, false
}
