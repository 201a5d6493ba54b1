package model

// CatalogGenerated is the event published after the engine produces an
// on_search payload. It is consumed by the archive worker.
type CatalogGenerated struct {
	TransactionID string `json:"transaction_id"`
	MessageID     string `json:"message_id"`
	ProviderName  string `json:"provider_name"`
	Domain        string `json:"domain"`
	City          string `json:"city"`
	Items         int    `json:"items"`
	Timestamp     string `json:"timestamp"`

	// Payload carries the full envelope so the archive worker does not need
	// to re-fetch anything.
	Payload *OnSearchEnvelope `json:"payload,omitempty"`
}
