package tables_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/Swyamk/rjagro-sub000/model"
	"github.com/Swyamk/rjagro-sub000/sorting"
	"github.com/Swyamk/rjagro-sub000/tables"
)

func date(s string) model.Date {
	d, _ := model.ParseDate(s)
	return d
}

func amount(a model.Amount) *model.Amount {
	return &a
}

var _ = Describe("Tables", func() {
	Context("ledger accounts", func() {
		accounts := []model.LedgerAccount{
			{AccountID: 106, Name: "Commission", AccountType: model.AccountExpense, CurrentBalance: 900},
			{AccountID: 101, Name: "cash", AccountType: model.AccountAsset, CurrentBalance: 12000},
			{AccountID: 201, Name: "Bank Loan", AccountType: model.AccountLiability, CurrentBalance: 50},
		}

		ids := func(rows []model.LedgerAccount) []int64 {
			out := []int64{}
			for _, row := range rows {
				out = append(out, row.AccountID)
			}
			return out
		}

		It("should start sorted by account number", func() {
			view := tables.LedgerAccounts()

			Expect(view.Config()).To(Equal(sorting.Ascending("account_id")))
			Expect(ids(view.CurrentOrder(accounts))).To(Equal([]int64{101, 106, 201}))
		})

		It("should sort balances numerically and names case insensitive", func() {
			view := tables.LedgerAccounts()

			view.Toggle("current_balance")
			Expect(ids(view.CurrentOrder(accounts))).To(Equal([]int64{201, 106, 101}))

			view.Toggle("name")
			Expect(ids(view.CurrentOrder(accounts))).To(Equal([]int64{201, 101, 106}))
		})
	})

	Context("ledger entries", func() {
		entries := []model.LedgerEntry{
			{EntryID: 1, TxnDate: date("2024-01-05"), Debit: amount(100)},
			{EntryID: 2, TxnDate: date("2024-02-01"), Credit: amount(100)},
			{EntryID: 3, TxnDate: date("2023-12-30"), Debit: amount(5)},
		}

		ids := func(rows []model.LedgerEntry) []int64 {
			out := []int64{}
			for _, row := range rows {
				out = append(out, row.EntryID)
			}
			return out
		}

		It("should start newest first", func() {
			Expect(ids(tables.LedgerEntries().CurrentOrder(entries))).To(Equal([]int64{2, 1, 3}))
		})

		It("should read missing debits as zero", func() {
			view := tables.LedgerEntries()
			view.Toggle("debit")

			Expect(ids(view.CurrentOrder(entries))).To(Equal([]int64{2, 3, 1}))
		})
	})

	Context("batches", func() {
		It("should start with the latest batch", func() {
			batches := []model.Batch{
				{BatchID: 1, StartDate: date("2024-01-01")},
				{BatchID: 2, StartDate: date("2024-04-01")},
				{BatchID: 3},
			}

			sorted := tables.Batches().CurrentOrder(batches)

			Expect([]int64{sorted[0].BatchID, sorted[1].BatchID, sorted[2].BatchID}).To(Equal([]int64{2, 1, 3}))
		})

		It("should sort by plain fields through their json name", func() {
			view := tables.Batches()
			view.Toggle("farmer_name")

			sorted := view.CurrentOrder([]model.Batch{{BatchID: 1, FarmerName: "ravi"}, {BatchID: 2, FarmerName: "Asha"}})

			Expect(sorted[0].BatchID).To(BeEquivalentTo(2))
		})
	})

	Context("batch requirements", func() {
		It("should sort by the renamed requirement number", func() {
			view := tables.BatchRequirements()
			requirements := []model.BatchRequirement{{RequirementID: 4}, {RequirementID: 9}, {RequirementID: 7}}

			Expect(view.Icon("req_id")).To(Equal(sorting.IconDescending))

			sorted := view.CurrentOrder(requirements)
			Expect([]int64{sorted[0].RequirementID, sorted[1].RequirementID, sorted[2].RequirementID}).To(Equal([]int64{9, 7, 4}))
		})
	})

	Context("batch allocations", func() {
		It("should sort by the renamed allocation fields", func() {
			view := tables.BatchAllocations()
			allocations := []model.BatchAllocation{
				{AllocationID: 1, AllocationDate: date("2024-03-01")},
				{AllocationID: 2, AllocationDate: date("2024-03-05")},
			}

			Expect(view.CurrentOrder(allocations)[0].AllocationID).To(BeEquivalentTo(2))

			view.Toggle("alloc_id")
			Expect(view.CurrentOrder(allocations)[0].AllocationID).To(BeEquivalentTo(1))
		})
	})

	Context("batch sales", func() {
		It("should keep the delivered order until a column is chosen", func() {
			view := tables.BatchSales()
			sales := []model.BatchSale{{ID: 1, Rate: 95}, {ID: 2, Rate: 88.5}}

			Expect(view.CurrentOrder(sales)[0].ID).To(BeEquivalentTo(1))

			view.Toggle("rate")
			Expect(view.CurrentOrder(sales)[0].ID).To(BeEquivalentTo(2))
		})
	})

	Context("bird count history", func() {
		It("should sort by the computed net change", func() {
			view := tables.BirdCountHistory()
			history := []model.BirdCountHistory{
				{RecordID: 1, Deaths: 5, Additions: 3},
				{RecordID: 2, Deaths: 2, Additions: 9},
			}

			view.Toggle("net_change")
			view.Toggle("net_change")
			sorted := view.CurrentOrder(history)

			Expect(view.Config()).To(Equal(sorting.Descending("net_change")))
			Expect([]int64{sorted[0].NetChange(), sorted[1].NetChange()}).To(Equal([]int64{7, -2}))
		})
	})
})
