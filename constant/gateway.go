package constant

// SkynetGatewayCheckerHash is embedded in every skynet candidate URL. A gateway
// that serves it is considered alive, and it is replaced by the record value to
// build the upstream URL.
const SkynetGatewayCheckerHash = "AAAKYhYQ1R6PwULeslCcsf5c3TGJdxboe9LUAjX5IPIB3w"

// URLConstants defines fixed upstream endpoints
const (
	// IPFSGatewayBaseURL serves both /ipfs/ and /ipns/ paths
	IPFSGatewayBaseURL = "https://cloudflare-ipfs.com"
	// ArweaveGatewayBaseURL is the single arweave gateway, trailing slash included
	ArweaveGatewayBaseURL = "https://arweave.net/"
	// RecordLookupURL is the account-record indexer endpoint
	RecordLookupURL = "https://indexer-v1.did.id/v2/account/records"
)

// Host constants
const (
	// AccountSuffix is stripped from the request host to get the account
	AccountSuffix = ".cc"
	// BypassHost is always forwarded unmodified
	BypassHost = "bit.cc"
)

// SkynetGateways returns the skynet candidates in preference order.
func SkynetGateways() []string {
	return []string{
		"https://siasky.net/" + SkynetGatewayCheckerHash,
		"https://skynetfree.net/" + SkynetGatewayCheckerHash,
		"https://web3portal.com/" + SkynetGatewayCheckerHash,
		"https://skynetpro.net/" + SkynetGatewayCheckerHash,
	}
}
