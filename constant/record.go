package constant

// Record keys returned by the account-record lookup
const (
	RecordIPNS    = "dweb.ipns"
	RecordIPFS    = "dweb.ipfs"
	RecordResilio = "dweb.resilio"
	RecordSkynet  = "dweb.skynet"
	RecordArweave = "dweb.arweave"
)

// PointerSeparator joins kind and value in the resolution cache encoding
const PointerSeparator = "@"
