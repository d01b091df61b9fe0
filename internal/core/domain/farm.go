package domain

// Farm is a physical location holding stock. Master data; never deleted while
// ledger history references it, only deactivated.
type Farm struct {
	FarmID   string `json:"farmID"` // Primary key (UUID)
	Name     string `json:"name"`
	Location string `json:"location"`
	IsActive bool   `json:"isActive"`
	AuditFields
}
