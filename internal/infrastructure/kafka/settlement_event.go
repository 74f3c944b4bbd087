package kafka

// SettlementEvent is emitted whenever a transaction becomes durable, either
// through offer acceptance (source "market") or manual teller entry
// (source "manual").
type SettlementEvent struct {
	TransactionID string  `json:"transaction_id"`
	TellerID      string  `json:"teller_id"`
	UserID        string  `json:"user_id,omitempty"`
	UsdAmount     float64 `json:"usd_amount"`
	LbpAmount     float64 `json:"lbp_amount"`
	UsdToLbp      bool    `json:"usd_to_lbp"`
	Source        string  `json:"source"`
}
