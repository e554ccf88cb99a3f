// Package ledger holds the accounting rules of the farm ledger: how a
// booking moves an account balance, what makes an entry valid, and the
// entries posted for a farmer commission.
package ledger

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Swyamk/rjagro-sub000/model"
)

const (
	// CashAccountID is the cash in hand account.
	CashAccountID int64 = 101

	// CommissionExpenseAccountID is the expense account farmer commissions
	// are booked on.
	CommissionExpenseAccountID int64 = 106

	// CommissionReferenceTable is the table commission entries refer to.
	CommissionReferenceTable = "farmer_commission_history"
)

// ValidationError describes why an entry cannot be posted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid ledger entry: %s %s", e.Field, e.Reason)
}

// IncreasesWithDebit reports whether debits increase the balance of an
// account type. Type names are matched case insensitive.
func IncreasesWithDebit(accountType model.AccountType) bool {
	name := string(accountType)

	return strings.EqualFold(name, string(model.AccountAsset)) ||
		strings.EqualFold(name, string(model.AccountExpense))
}

// BalanceDelta is the change a booking applies to an account balance.
// Assets and expenses grow with debits, liabilities, equity and revenue
// grow with credits.
func BalanceDelta(accountType model.AccountType, debit, credit float64) float64 {
	if IncreasesWithDebit(accountType) {
		return debit - credit
	}

	return credit - debit
}

// Apply returns account with the balance moved by entry.
func Apply(account model.LedgerAccount, entry model.LedgerEntry) model.LedgerAccount {
	delta := BalanceDelta(account.AccountType, entry.DebitAmount().Float64(), entry.CreditAmount().Float64())
	account.CurrentBalance += model.Amount(delta)

	return account
}

// ValidateEntry checks that an entry has a transaction date and books
// exactly one positive side.
func ValidateEntry(entry model.LedgerEntry) error {
	if entry.TxnDate.IsZero() {
		return ValidationError{Field: "txn_date", Reason: "is required"}
	}

	debit, credit := entry.DebitAmount(), entry.CreditAmount()
	if debit < 0 || credit < 0 {
		return ValidationError{Field: "amount", Reason: "must not be negative"}
	}

	if (debit > 0) == (credit > 0) {
		return ValidationError{Field: "amount", Reason: "must be either a debit or a credit"}
	}

	return nil
}

// Commission is a commission paid out to a farmer.
type Commission struct {
	ID        int64
	FarmerID  int64
	Amount    model.Amount
	Date      model.Date
	CreatedBy *int64
}

// NewCommissionEntries returns the debit on the commission expense account
// and the credit on the cash account for a paid commission. Both entries
// share a new transaction group.
func NewCommissionEntries(commission Commission) ([]model.LedgerEntry, error) {
	if commission.Amount <= 0 {
		return nil, ValidationError{Field: "commission_amount", Reason: "must be positive"}
	}

	date := commission.Date
	if date.IsZero() {
		date = model.Today()
	}

	group := uuid.New().String()
	amount := commission.Amount

	var reference *int64
	if commission.ID != 0 {
		id := commission.ID
		reference = &id
	}

	debit := model.LedgerEntry{
		AccountID:      CommissionExpenseAccountID,
		Debit:          &amount,
		TxnDate:        date,
		ReferenceTable: CommissionReferenceTable,
		ReferenceID:    reference,
		Narration:      "Farmer commission debit",
		TxnGroupID:     group,
		CreatedBy:      commission.CreatedBy,
	}

	credit := model.LedgerEntry{
		AccountID:      CashAccountID,
		Credit:         &amount,
		TxnDate:        date,
		ReferenceTable: CommissionReferenceTable,
		ReferenceID:    reference,
		Narration:      "Cash paid for farmer commission",
		TxnGroupID:     group,
		CreatedBy:      commission.CreatedBy,
	}

	return []model.LedgerEntry{debit, credit}, nil
}

// Balanced reports whether the debits and credits of entries cancel out.
func Balanced(entries []model.LedgerEntry) bool {
	var sum float64
	for _, entry := range entries {
		sum += entry.DebitAmount().Float64() - entry.CreditAmount().Float64()
	}

	return sum > -0.005 && sum < 0.005
}
