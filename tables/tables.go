// Package tables binds the dashboard tables to the sorting engine: every
// constructor returns the sort state of one table view, starting at its
// default order, with an extractor knowing the table's computed and
// renamed columns.
package tables

import (
	"strings"

	"github.com/Swyamk/rjagro-sub000/model"
	"github.com/Swyamk/rjagro-sub000/sorting"
)

// LedgerAccounts sorts the chart of accounts, by account number initially.
func LedgerAccounts() *sorting.Table[model.LedgerAccount] {
	return sorting.NewTable(sorting.Ascending("account_id"), ledgerAccountValue)
}

func ledgerAccountValue(item model.LedgerAccount, key string) sorting.Value {
	switch key {
	case "current_balance":
		return item.CurrentBalance.Float64()
	case "account_id":
		return item.AccountID
	case "name":
		return strings.ToLower(item.Name)
	case "account_type":
		return strings.ToLower(string(item.AccountType))
	case "created_at":
		return item.CreatedAt
	default:
		return sorting.Field(item, key)
	}
}

// LedgerEntries sorts the journal, newest first initially.
func LedgerEntries() *sorting.Table[model.LedgerEntry] {
	return sorting.NewTable(sorting.Descending("txn_date"), ledgerEntryValue)
}

func ledgerEntryValue(item model.LedgerEntry, key string) sorting.Value {
	switch key {
	case "txn_date":
		return item.TxnDate
	case "entry_id":
		return item.EntryID
	case "account_id":
		return item.AccountID
	case "debit":
		return item.DebitAmount().Float64()
	case "credit":
		return item.CreditAmount().Float64()
	case "created_at":
		return item.CreatedAt
	default:
		return sorting.Field(item, key)
	}
}

// Batches sorts batches, most recently started first initially.
func Batches() *sorting.Table[model.Batch] {
	return sorting.NewTable(sorting.Descending("start_date"), batchValue)
}

func batchValue(item model.Batch, key string) sorting.Value {
	switch key {
	case "start_date":
		return item.StartDate
	case "batch_id":
		return item.BatchID
	default:
		return sorting.Field(item, key)
	}
}

// BatchRequirements sorts requirements, newest request number first
// initially. The view calls the requirement number "req_id".
func BatchRequirements() *sorting.Table[model.BatchRequirement] {
	return sorting.NewTable(sorting.Descending("req_id"), batchRequirementValue)
}

func batchRequirementValue(item model.BatchRequirement, key string) sorting.Value {
	switch key {
	case "req_id":
		return item.RequirementID
	case "request_date":
		// Compared as text; ISO dates order chronologically anyway.
		return item.RequestDate.String()
	default:
		return sorting.Field(item, key)
	}
}

// BatchAllocations sorts allocations, newest first initially. The view
// calls the allocation number "alloc_id" and its date "alloc_date".
func BatchAllocations() *sorting.Table[model.BatchAllocation] {
	return sorting.NewTable(sorting.Descending("alloc_date"), batchAllocationValue)
}

func batchAllocationValue(item model.BatchAllocation, key string) sorting.Value {
	switch key {
	case "alloc_date":
		return item.AllocationDate
	case "alloc_id":
		return item.AllocationID
	default:
		return sorting.Field(item, key)
	}
}

// BatchSales sorts sales, in their delivered order initially.
func BatchSales() *sorting.Table[model.BatchSale] {
	return sorting.NewTable(sorting.Unsorted, batchSaleValue)
}

func batchSaleValue(item model.BatchSale, key string) sorting.Value {
	switch key {
	case "created_at":
		return item.CreatedAt
	case "avg_weight", "rate", "quantity", "value":
		return sorting.NumericField(item, key)
	default:
		return sorting.Field(item, key)
	}
}

// BirdCountHistory sorts the daily bird counts, in their delivered order
// initially. "net_change" is computed from additions and deaths.
func BirdCountHistory() *sorting.Table[model.BirdCountHistory] {
	return sorting.NewTable(sorting.Unsorted, birdCountValue)
}

func birdCountValue(item model.BirdCountHistory, key string) sorting.Value {
	switch key {
	case "record_date":
		return item.RecordDate
	case "created_at":
		return item.CreatedAt
	case "net_change":
		return item.NetChange()
	case "deaths":
		return item.Deaths
	case "additions":
		return item.Additions
	default:
		return sorting.Field(item, key)
	}
}
