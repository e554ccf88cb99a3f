package order_test

import (
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/Swyamk/rjagro-sub000/config"
	"github.com/Swyamk/rjagro-sub000/sorting"
	"github.com/Swyamk/rjagro-sub000/sorting/order"
)

var _ = Describe("Order strategies", func() {
	var (
		registry order.Registry
		status   config.TableSchemaColumn
	)

	BeforeEach(func() {
		mapper := config.NewEnumMapper(map[string]config.Enum{
			"RequirementStatus": {
				"Pending":  "enum.requirementstatus.pending",
				"Approved": "enum.requirementstatus.approved",
				"Rejected": "enum.requirementstatus.rejected",
			},
		})

		translator := config.NewTranslator(map[string]config.LanguageCatalog{
			"en": {
				"enum.requirementstatus.pending":        "Waiting",
				"enum.requirementstatus.approved":       "Accepted",
				"enum.requirementstatus.rejected":       "Declined",
				"enum.requirementstatus.pending.short":  "P",
				"enum.requirementstatus.approved.short": "A",
				"enum.requirementstatus.rejected.short": "R",
			},
		})

		registry = order.NewRegistry(mapper, translator)
		status = config.TableSchemaColumn{Path: "status", Type: "RequirementStatus"}
	})

	Context("when resolving strategies", func() {
		It("should resolve named strategies", func() {
			sorter, err := registry.Sorter("NumericOrder")
			Expect(err).ToNot(HaveOccurred())
			Expect(sorter).To(Equal(order.Numeric{}))
		})

		It("should reject unknown names", func() {
			_, err := registry.Sorter("FancyOrder")
			Expect(err).To(MatchError(order.ErrUnknownSorter))

			_, err = registry.ForColumn(config.TableSchemaColumn{Order: "FancyOrder"})
			Expect(err).To(MatchError(order.ErrUnknownSorter))
		})

		It("should derive a strategy from the column type", func() {
			sorter, err := registry.ForColumn(config.TableSchemaColumn{Type: "date"})
			Expect(err).ToNot(HaveOccurred())
			Expect(sorter).To(Equal(order.Date{}))

			sorter, err = registry.ForColumn(config.TableSchemaColumn{Type: "numeric"})
			Expect(err).ToNot(HaveOccurred())
			Expect(sorter).To(Equal(order.Numeric{}))

			sorter, err = registry.ForColumn(config.TableSchemaColumn{Type: "string"})
			Expect(err).ToNot(HaveOccurred())
			Expect(sorter).To(Equal(order.Text{}))
		})

		It("should accept custom strategies", func() {
			registry.Register("FancyOrder", order.Text{})

			sorter, err := registry.ForColumn(config.TableSchemaColumn{Order: "FancyOrder", Type: "numeric"})
			Expect(err).ToNot(HaveOccurred())
			Expect(sorter).To(Equal(order.Text{}))
		})
	})

	Context("when converting primitive values", func() {
		column := config.TableSchemaColumn{}

		It("should pass values through directly", func() {
			Expect(order.Direct{}.SortValue("X", column, "en")).To(Equal("X"))
		})

		It("should parse numbers", func() {
			Expect(order.Numeric{}.SortValue("1,250.5", column, "en")).To(Equal(1250.5))
			Expect(order.Numeric{}.SortValue(nil, column, "en")).To(Equal(0.0))
		})

		It("should parse dates", func() {
			Expect(order.Date{}.SortValue("2024-05-01", column, "en")).
				To(Equal(time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)))
			Expect(order.Date{}.SortValue("soon", column, "en")).To(BeNil())
		})

		It("should lower case text", func() {
			Expect(order.Text{}.SortValue("Ravi", column, "en")).To(Equal("ravi"))
		})
	})

	Context("when converting enum values", func() {
		It("should rank keys by their translated label", func() {
			sorter, err := registry.ForColumn(status)
			Expect(err).ToNot(HaveOccurred())

			Expect(sorter.SortValue("Approved", status, "en")).To(Equal(0))
			Expect(sorter.SortValue("Rejected", status, "en")).To(Equal(1))
			Expect(sorter.SortValue("Pending", status, "en")).To(Equal(2))
		})

		It("should rank by the short label", func() {
			sorter, err := registry.Sorter("ShortEnumOrder")
			Expect(err).ToNot(HaveOccurred())

			Expect(sorter.SortValue("Approved", status, "en")).To(Equal(0))
			Expect(sorter.SortValue("Pending", status, "en")).To(Equal(1))
			Expect(sorter.SortValue("Rejected", status, "en")).To(Equal(2))
		})

		It("should treat unknown keys as absent", func() {
			sorter, err := registry.ForColumn(status)
			Expect(err).ToNot(HaveOccurred())

			Expect(sorter.SortValue("Lost", status, "en")).To(BeNil())
			Expect(sorter.SortValue(nil, status, "en")).To(BeNil())
		})

		It("should fail for unknown enums", func() {
			sorter, err := registry.Sorter("EnumOrder")
			Expect(err).ToNot(HaveOccurred())

			_, err = sorter.SortValue("Approved", config.TableSchemaColumn{Type: "Nope"}, "en")
			Expect(err).To(MatchError(config.ErrUnknownEnum))
		})

		It("should order rows with the ranks", func() {
			sorter, err := registry.ForColumn(status)
			Expect(err).ToNot(HaveOccurred())

			rows := []string{"Pending", "Approved", "Rejected"}
			sorted := sorting.SortData(rows, sorting.Ascending("status"), func(item string, key string) sorting.Value {
				value, _ := sorter.SortValue(item, status, "en")
				return value
			})

			Expect(sorted).To(Equal([]string{"Approved", "Rejected", "Pending"}))
		})
	})
})
