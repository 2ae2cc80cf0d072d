package resolver

import (
	"testing"

	"github.com/LerianStudio/dweb-gateway/model"
	"github.com/stretchr/testify/assert"
)

func TestChoose(t *testing.T) {
	tests := []struct {
		name    string
		records []model.Record
		want    model.Pointer
		ok      bool
	}{
		{
			name: "ipns beats ipfs regardless of order",
			records: []model.Record{
				{Key: "dweb.ipfs", Value: "ipfs://bafy"},
				{Key: "dweb.ipns", Value: "k51"},
			},
			want: model.Pointer{Kind: "dweb.ipns", Value: "k51"},
			ok:   true,
		},
		{
			name: "ipfs beats skynet and arweave",
			records: []model.Record{
				{Key: "dweb.arweave", Value: "ar"},
				{Key: "dweb.skynet", Value: "sky"},
				{Key: "dweb.ipfs", Value: "Qm"},
			},
			want: model.Pointer{Kind: "dweb.ipfs", Value: "Qm"},
			ok:   true,
		},
		{
			name: "skynet beats arweave",
			records: []model.Record{
				{Key: "dweb.arweave", Value: "ar"},
				{Key: "dweb.skynet", Value: "sky"},
			},
			want: model.Pointer{Kind: "dweb.skynet", Value: "sky"},
			ok:   true,
		},
		{
			name: "resilio is skipped",
			records: []model.Record{
				{Key: "dweb.resilio", Value: "btsync"},
				{Key: "dweb.arweave", Value: "ar"},
			},
			want: model.Pointer{Kind: "dweb.arweave", Value: "ar"},
			ok:   true,
		},
		{
			name:    "resilio only",
			records: []model.Record{{Key: "dweb.resilio", Value: "btsync"}},
			ok:      false,
		},
		{
			name: "first record of a kind wins",
			records: []model.Record{
				{Key: "dweb.ipfs", Value: "first"},
				{Key: "dweb.ipfs", Value: "second"},
			},
			want: model.Pointer{Kind: "dweb.ipfs", Value: "first"},
			ok:   true,
		},
		{
			name: "empty values are ignored",
			records: []model.Record{
				{Key: "dweb.ipns", Value: ""},
				{Key: "dweb.ipfs", Value: "Qm"},
			},
			want: model.Pointer{Kind: "dweb.ipfs", Value: "Qm"},
			ok:   true,
		},
		{
			name: "an empty first record shadows later ones of its kind",
			records: []model.Record{
				{Key: "dweb.ipns", Value: ""},
				{Key: "dweb.ipns", Value: "k51"},
				{Key: "dweb.arweave", Value: "ar"},
			},
			want: model.Pointer{Kind: "dweb.arweave", Value: "ar"},
			ok:   true,
		},
		{
			name:    "empty only",
			records: []model.Record{{Key: "dweb.ipfs", Value: ""}},
			ok:      false,
		},
		{
			name:    "unrelated records",
			records: []model.Record{{Key: "profile.twitter", Value: "x"}},
			ok:      false,
		},
		{
			name: "no records",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Choose(tt.records)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
