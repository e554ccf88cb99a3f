package cli

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	rjagro "github.com/Swyamk/rjagro-sub000"
	"github.com/Swyamk/rjagro-sub000/config"
	"github.com/Swyamk/rjagro-sub000/sorting"
)

var _ = Describe("Request building", func() {
	schema := config.NewResolvedTableSchema(config.TableSchema{
		Entity:      "batch",
		Resource:    "batches",
		DefaultSort: config.SortSpec{Key: "start_date", Direction: "desc"},
		Columns: []config.TableSchemaColumn{
			{Path: "batch_id", Type: "integer", Sortable: true},
			{Path: "start_date", Type: "date", Sortable: true},
			{Path: "status", Type: "BatchStatus", Sortable: true},
		},
	})

	It("should group filters by column", func() {
		groups, err := parseFilters([]string{"status:equals:Active", "batch_id:GREATER:2", "status:EQUALS:Closed:x"})

		Expect(err).ToNot(HaveOccurred())
		Expect(groups).To(HaveLen(2))
		Expect(groups[0].Path()).To(Equal("status"))
		Expect(groups[0].Filters()).To(HaveLen(2))
		Expect(groups[0].Filters()[1].Value()).To(Equal("Closed:x"))
		Expect(groups[1].Filters()[0].FilterMode()).To(Equal(rjagro.FilterGreater))
	})

	It("should refuse unknown filter modes", func() {
		_, err := parseFilters([]string{"status:ABOUT:Active"})

		Expect(err).To(MatchError(ContainSubstring("unknown mode ABOUT")))
	})

	It("should fall back to the default sort", func() {
		request, active, err := buildRequest(schema, listOptions{}, "en")

		Expect(err).ToNot(HaveOccurred())
		Expect(request.Orders).To(BeEmpty())
		Expect(request.Columns).To(HaveLen(3))
		Expect(active).To(Equal(sorting.Descending("start_date")))
	})

	It("should order by the requested column", func() {
		request, active, err := buildRequest(schema, listOptions{sort: "batch_id", columns: []string{"batch_id", " status"}}, "en")

		Expect(err).ToNot(HaveOccurred())
		Expect(request.Orders).To(HaveLen(1))
		Expect(request.Orders[0].Direction()).To(Equal(rjagro.OrderAsc))
		Expect(request.Columns).To(HaveLen(2))
		Expect(active).To(Equal(sorting.Ascending("batch_id")))
	})

	It("should refuse unknown columns", func() {
		_, _, err := buildRequest(schema, listOptions{columns: []string{"unicorn"}}, "en")

		Expect(err).To(MatchError("unknown column unicorn"))
	})

	DescribeTable("formatting numbers",
		func(n float64, expected string) {
			Expect(formatNumber(n)).To(Equal(expected))
		},
		Entry("whole", 1250.0, "1250"),
		Entry("negative whole", -3.0, "-3"),
		Entry("fraction", 12.5, "12.50"),
		Entry("rounded", 0.126, "0.13"),
	)
})
