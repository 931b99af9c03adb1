package domain

// Outlet represents a single physical retail location. Ledger entries and
// orders are partitioned by outlet.
type Outlet struct {
	OutletID    string `json:"outletID"` // Primary Key (UUID)
	Name        string `json:"name"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	IsActive    bool   `json:"isActive"` // Disabled outlets stop accepting orders
	AuditFields        // Embed common audit fields
}
