package restsource

import (
	"errors"
	"sort"
)

// ErrUnknownResource indicates that a resource is not served by the backend.
var ErrUnknownResource = errors.New("unknown resource")

// Resource describes one backend table: where its list lives, where new
// records are posted and which cached lists a successful insert outdates.
type Resource struct {
	// Key is the list path below /getall/ and the cache key of the list.
	Key string
	// InsertPath is the path below /insert/, empty if records cannot be inserted.
	InsertPath string
	// Invalidates names the lists, besides Key, that the backend changes on insert.
	Invalidates []string
}

// Resources are the backend tables known to the dashboard.
var Resources = map[string]Resource{
	"users":              {Key: "users"},
	"supervisors":        {Key: "supervisors"},
	"farmers":            {Key: "farmers", InsertPath: "farmers"},
	"traders":            {Key: "traders", InsertPath: "traders"},
	"suppliers":          {Key: "suppliers", InsertPath: "suppliers"},
	"production_lines":   {Key: "production_lines", InsertPath: "production_lines"},
	"items":              {Key: "items", InsertPath: "items"},
	"inventory":          {Key: "inventory"},
	"stock_receipts":     {Key: "stock_receipts"},
	"bird_sell_history":  {Key: "bird_sell_history", InsertPath: "bird_sell_history"},
	"ledger_entries":     {Key: "ledger_entries"},
	"batch_allocations":  {Key: "batch_allocations", InsertPath: "batch_allocations"},
	"batch_requirements": {Key: "batch_requirements", InsertPath: "batch_requirements"},
	"inventory_movements": {
		Key: "inventory_movements",
	},
	"batch_allocation_lines": {
		Key: "batch_allocation_lines",
	},
	"ledger_accounts": {
		Key:        "ledger_accounts",
		InsertPath: "ledger_account",
	},
	"bird_count_history": {
		Key:         "bird_count_history",
		InsertPath:  "bird_count_history",
		Invalidates: []string{"batches"},
	},
	"batches": {
		Key:        "batches",
		InsertPath: "batches",
		Invalidates: []string{
			"batch_requirements", "batch_allocations", "batch_allocation_lines",
			"inventory", "inventory_movements", "ledger_entries", "ledger_accounts",
		},
	},
	"purchases": {
		Key:        "purchases",
		InsertPath: "purchases",
		Invalidates: []string{
			"stock_receipts", "inventory", "inventory_movements", "ledger_entries", "ledger_accounts",
		},
	},
	"batch_sales": {
		Key:         "batch_sales",
		InsertPath:  "batch_sales",
		Invalidates: []string{"batch_closure_summary", "ledger_entries", "ledger_accounts"},
	},
	"farmer_commission": {
		Key:         "farmer_commission",
		InsertPath:  "farmer_commission",
		Invalidates: []string{"ledger_entries", "ledger_accounts"},
	},
	"batch_closure_summary": {
		Key:         "batch_closure_summary",
		InsertPath:  "batch_closure_summary",
		Invalidates: []string{"batches"},
	},
}

// approvalInvalidates are the lists an approved requirement changes.
var approvalInvalidates = []string{
	"batch_requirements", "batch_allocations", "batch_allocation_lines", "inventory", "inventory_movements",
}

// LookupResource returns the Resource registered under key.
func LookupResource(key string) (Resource, error) {
	resource, exists := Resources[key]
	if !exists {
		return Resource{}, ErrUnknownResource
	}

	return resource, nil
}

// ResourceNames returns all known resource keys ordered alphabetically.
func ResourceNames() []string {
	names := make([]string, 0, len(Resources))
	for name := range Resources {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
