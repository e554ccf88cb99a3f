package model

// AccountType is the kind of a ledger account. It decides whether debits
// or credits increase the balance.
type AccountType string

const (
	AccountAsset     AccountType = "Asset"
	AccountLiability AccountType = "Liability"
	AccountEquity    AccountType = "Equity"
	AccountRevenue   AccountType = "Revenue"
	AccountExpense   AccountType = "Expense"
)

// AccountTypes lists all account types.
var AccountTypes = []AccountType{AccountAsset, AccountLiability, AccountEquity, AccountRevenue, AccountExpense}

type LedgerAccount struct {
	AccountID      int64       `json:"account_id"`
	Name           string      `json:"name"`
	AccountType    AccountType `json:"account_type"`
	CurrentBalance Amount      `json:"current_balance"`
	CreatedAt      Date        `json:"created_at"`
}

// LedgerEntry is one side of a booking. Entries posted together share a
// transaction group.
type LedgerEntry struct {
	EntryID         int64       `json:"entry_id,omitempty"`
	AccountID       int64       `json:"account_id"`
	TransactionType AccountType `json:"transaction_type,omitempty"`
	Debit           *Amount     `json:"debit"`
	Credit          *Amount     `json:"credit"`
	TxnDate         Date        `json:"txn_date"`
	ReferenceTable  string      `json:"reference_table,omitempty"`
	ReferenceID     *int64      `json:"reference_id,omitempty"`
	Narration       string      `json:"narration,omitempty"`
	TxnGroupID      string      `json:"txn_group_id,omitempty"`
	CreatedAt       Date        `json:"created_at"`
	CreatedBy       *int64      `json:"created_by,omitempty"`
	CreatedByName   string      `json:"created_by_name,omitempty"`
}

// DebitAmount is the debit of the entry, 0 if none.
func (e LedgerEntry) DebitAmount() Amount {
	if e.Debit == nil {
		return 0
	}
	return *e.Debit
}

// CreditAmount is the credit of the entry, 0 if none.
func (e LedgerEntry) CreditAmount() Amount {
	if e.Credit == nil {
		return 0
	}
	return *e.Credit
}
