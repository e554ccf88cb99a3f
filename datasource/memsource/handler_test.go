package memsource_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	rjagro "github.com/Swyamk/rjagro-sub000"
	"github.com/Swyamk/rjagro-sub000/config"
	"github.com/Swyamk/rjagro-sub000/datasource"
	"github.com/Swyamk/rjagro-sub000/datasource/memsource"
)

type failingProvider struct{}

var errBackendDown = errors.New("backend down")

func (failingProvider) Fetch(context.Context, string) ([]datasource.Record, error) {
	return nil, errBackendDown
}

func batchIDs(result *datasource.Result) []interface{} {
	ids := make([]interface{}, len(*result))
	for i, row := range *result {
		ids[i] = row["batch_id"]
	}
	return ids
}

var _ = Describe("Connector", func() {
	var (
		connector datasource.Connector
		schema    config.ResolvedTableSchema
		request   datasource.Request
	)

	BeforeEach(func() {
		enums := config.NewEnumMapper(map[string]config.Enum{
			"BatchStatus": {
				"Active": "enum.batchstatus.active",
				"Closed": "enum.batchstatus.closed",
			},
		})
		translator := config.NewTranslator(map[string]config.LanguageCatalog{
			"en": {
				"enum.batchstatus.active": "Running",
				"enum.batchstatus.closed": "Finished",
			},
		})

		provider := memsource.StaticProvider{
			"batches": {
				{"batch_id": 1, "farmer_name": "Ravi", "start_date": "2024-01-10", "status": "Active", "initial_bird_count": 1000.0},
				{"batch_id": 2, "farmer_name": "asha", "start_date": "2024-03-01", "status": "Closed", "initial_bird_count": 500.0},
				{"batch_id": 3, "farmer_name": "Mohan", "start_date": "2023-12-24", "status": "Active", "initial_bird_count": 1500.0},
				{"batch_id": 4, "farmer_name": "Asha", "start_date": "2024-02-14", "status": "Closed"},
			},
		}

		connector = memsource.NewConnector(provider, enums, translator)

		schema = config.NewResolvedTableSchema(config.TableSchema{
			Entity:      "batches",
			Resource:    "batches",
			DefaultSort: config.SortSpec{Key: "start_date", Direction: "desc"},
			Columns: []config.TableSchemaColumn{
				{Path: "batch_id", Type: "integer", Sortable: true},
				{Path: "farmer_name", Type: "string", Sortable: true},
				{Path: "start_date", Type: "date", Sortable: true},
				{Path: "status", Type: "BatchStatus", Sortable: true},
				{Path: "initial_bird_count", Type: "numeric", Sortable: true},
				{Path: "notes", Type: "string"},
			},
		})

		request = datasource.Request{
			Schema:  schema,
			Columns: schema.Columns(),
			Locale:  "en",
		}
	})

	fetch := func() (*datasource.Result, uint64, uint64) {
		Expect(connector.ValidateRequest(request)).To(Succeed())

		result, total, filtered, err := connector.FetchData(context.Background(), request)
		Expect(err).ToNot(HaveOccurred())

		return result, total, filtered
	}

	Context("when no order is requested", func() {
		It("should apply the default sort of the schema", func() {
			result, total, filtered := fetch()

			Expect(batchIDs(result)).To(Equal([]interface{}{2, 4, 1, 3}))
			Expect(total).To(BeEquivalentTo(4))
			Expect(filtered).To(BeEquivalentTo(4))
		})

		It("should keep the natural order for orders without direction", func() {
			request.Orders = []datasource.Order{datasource.NewOrder("farmer_name", rjagro.OrderNone, nil)}

			result, _, _ := fetch()

			Expect(batchIDs(result)).To(Equal([]interface{}{1, 2, 3, 4}))
		})
	})

	Context("when ordering", func() {
		It("should order text case insensitive with stable ties", func() {
			request.Orders = []datasource.Order{datasource.NewOrder("farmer_name", rjagro.OrderAsc, nil)}

			result, _, _ := fetch()

			Expect(batchIDs(result)).To(Equal([]interface{}{2, 4, 3, 1}))
		})

		It("should put missing numbers first", func() {
			request.Orders = []datasource.Order{datasource.NewOrder("initial_bird_count", rjagro.OrderAsc, nil)}

			result, _, _ := fetch()

			Expect(batchIDs(result)).To(Equal([]interface{}{4, 2, 1, 3}))
		})

		It("should order enums by their translated label", func() {
			request.Orders = []datasource.Order{
				datasource.NewOrder("status", rjagro.OrderAsc, nil),
				datasource.NewOrder("batch_id", rjagro.OrderDesc, nil),
			}

			result, _, _ := fetch()

			Expect(batchIDs(result)).To(Equal([]interface{}{4, 2, 3, 1}))
		})

		It("should honor fixed sort keys", func() {
			request.Orders = []datasource.Order{datasource.NewOrder("batch_id", rjagro.OrderAsc, []interface{}{3, 1, 4})}

			result, _, _ := fetch()

			Expect(batchIDs(result)).To(Equal([]interface{}{2, 3, 1, 4}))
		})
	})

	Context("when filtering", func() {
		It("should AND groups and OR filters within a group", func() {
			request.Filters = []datasource.FilterGroup{
				datasource.NewSimpleFilterGroup("status", rjagro.FilterEquals, []interface{}{"Active", "Closed"}),
				datasource.NewFilterGroup("start_date", []datasource.Filter{
					datasource.NewFilter(rjagro.FilterGreaterEquals, "2024-01-01"),
				}),
			}

			result, total, filtered := fetch()

			Expect(batchIDs(result)).To(Equal([]interface{}{2, 4, 1}))
			Expect(total).To(BeEquivalentTo(4))
			Expect(filtered).To(BeEquivalentTo(3))
		})

		It("should search all selected columns", func() {
			request.GlobalSearch = " ASHA "

			result, _, filtered := fetch()

			Expect(batchIDs(result)).To(Equal([]interface{}{2, 4}))
			Expect(filtered).To(BeEquivalentTo(2))
		})

		It("should report unparsable operands", func() {
			request.Filters = []datasource.FilterGroup{
				datasource.NewSimpleFilterGroup("initial_bird_count", rjagro.FilterGreater, []interface{}{"lots"}),
			}

			_, _, _, err := connector.FetchData(context.Background(), request)
			Expect(err).To(HaveOccurred())
		})
	})

	Context("when paging", func() {
		It("should apply offset and limit after sorting", func() {
			request.Limit = 2
			request.Offset = 1

			result, _, filtered := fetch()

			Expect(batchIDs(result)).To(Equal([]interface{}{4, 1}))
			Expect(filtered).To(BeEquivalentTo(4))
		})

		It("should return nothing past the end", func() {
			request.Offset = 10

			result, _, _ := fetch()

			Expect(*result).To(BeEmpty())
		})
	})

	Context("when projecting", func() {
		It("should only return the selected columns", func() {
			column, err := schema.Column("batch_id")
			Expect(err).ToNot(HaveOccurred())
			request.Columns = []config.TableSchemaColumn{column}

			result, _, _ := fetch()

			Expect((*result)[0]).To(Equal(map[string]interface{}{"batch_id": 2}))
		})

		It("should return missing values as nil", func() {
			result, _, _ := fetch()

			Expect((*result)[0]).To(HaveKeyWithValue("notes", BeNil()))
		})
	})

	Context("when validating", func() {
		It("should reject empty column selections", func() {
			request.Columns = nil
			Expect(connector.ValidateRequest(request)).To(HaveOccurred())
		})

		It("should reject unknown locales", func() {
			request.Locale = "fr"
			Expect(connector.ValidateRequest(request)).To(MatchError("unknown locale fr"))
		})

		It("should reject unknown columns", func() {
			request.Orders = []datasource.Order{datasource.NewOrder("weight", rjagro.OrderAsc, nil)}
			Expect(connector.ValidateRequest(request)).To(MatchError("unknown order column weight"))
		})

		It("should reject ordering on unsortable columns", func() {
			request.Orders = []datasource.Order{datasource.NewOrder("notes", rjagro.OrderAsc, nil)}
			Expect(connector.ValidateRequest(request)).To(MatchError("column notes is not sortable"))
		})

		It("should reject unknown directions", func() {
			request.Orders = []datasource.Order{datasource.NewOrder("batch_id", rjagro.Order("up"), nil)}
			Expect(connector.ValidateRequest(request)).To(HaveOccurred())
		})

		It("should reject unknown filter modes", func() {
			request.Filters = []datasource.FilterGroup{
				datasource.NewSimpleFilterGroup("status", rjagro.FilterMode("LIKE"), []interface{}{"x"}),
			}
			Expect(connector.ValidateRequest(request)).To(HaveOccurred())
		})
	})

	Context("when the provider fails", func() {
		It("should pass the error on", func() {
			failing := memsource.NewConnector(failingProvider{}, config.NewEnumMapper(nil), config.NewTranslator(nil))

			_, _, _, err := failing.FetchData(context.Background(), request)
			Expect(err).To(MatchError(errBackendDown))
		})
	})

	Context("when the context is done", func() {
		It("should stop", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			_, _, _, err := connector.FetchData(ctx, request)
			Expect(err).To(MatchError(context.Canceled))
		})
	})
})

var _ = Describe("Connector over the shipped assets", func() {
	var (
		connector datasource.Connector
		request   datasource.Request
	)

	BeforeEach(func() {
		catalog, err := rjagro.NewCatalogFromFolder("../../assets")
		Expect(err).ToNot(HaveOccurred())

		schema, err := catalog.Schemas.ResolvedSchemaForResource("bird_count_history")
		Expect(err).ToNot(HaveOccurred())

		provider := memsource.StaticProvider{
			"bird_count_history": {
				{"record_id": 1.0, "batch_id": 7.0, "record_date": "2024-01-12", "deaths": 5.0, "additions": 3.0},
				{"record_id": 2.0, "batch_id": 7.0, "record_date": "2024-01-13", "deaths": 2.0, "additions": 9.0},
				{"record_id": 3.0, "batch_id": 7.0, "record_date": "2024-01-14", "deaths": 0.0, "additions": 0.0},
			},
		}

		connector = memsource.NewConnector(provider, catalog.Enums, catalog.Translator)
		request = datasource.Request{
			Schema:  schema,
			Columns: schema.Columns(),
			Locale:  "en",
		}
	})

	recordIDs := func() []interface{} {
		Expect(connector.ValidateRequest(request)).To(Succeed())

		result, _, _, err := connector.FetchData(context.Background(), request)
		Expect(err).ToNot(HaveOccurred())

		ids := make([]interface{}, len(*result))
		for i, row := range *result {
			ids[i] = row["record_id"]
		}
		return ids
	}

	It("should order bird counts by their net change", func() {
		request.Orders = []datasource.Order{datasource.NewOrder("net_change", rjagro.OrderDesc, nil)}

		Expect(recordIDs()).To(Equal([]interface{}{2.0, 3.0, 1.0}))
	})

	It("should filter and project the net change", func() {
		request.Filters = []datasource.FilterGroup{
			datasource.NewSimpleFilterGroup("net_change", rjagro.FilterLesser, []interface{}{"0"}),
		}

		Expect(recordIDs()).To(Equal([]interface{}{1.0}))

		result, _, _, err := connector.FetchData(context.Background(), request)
		Expect(err).ToNot(HaveOccurred())
		Expect((*result)[0]).To(HaveKeyWithValue("net_change", -2.0))
	})
})
