package types //nolint:revive,nolintlint // allow pkg name 'types'

// BlockHead is the caller-visible point in time: the number of the block being built and its
// timestamp in seconds since the epoch.
type BlockHead struct {
	Number    uint64 `json:"number"`
	Timestamp uint64 `json:"timestamp"`
}
