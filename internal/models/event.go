package models

// Event kinds published after wallet changes. EventSnapshot is only sent to
// a stream subscriber when it connects.
const (
	EventWalletUpdated = "wallet-updated"
	EventRecompute     = "recompute"
	EventSnapshot      = "snapshot"
)

// Event is a wake-up hint for other contexts sharing the same store.
// Receivers re-read the wallet instead of trusting the payload.
type Event struct {
	ID          string       `json:"id"`                    // Unique event identifier
	Kind        string       `json:"kind"`                  // wallet-updated or recompute
	At          int64        `json:"at"`                    // Unix milliseconds
	Transaction *Transaction `json:"transaction,omitempty"` // Appended record, if any
}

// WalletPush is what the websocket stream sends: the kind of change that
// triggered it and a freshly read wallet.
// swagger:model WalletPush
type WalletPush struct {
	Kind   string `json:"kind"`
	At     int64  `json:"at"`
	Wallet Wallet `json:"wallet"`
}
