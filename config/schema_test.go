package config_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"encoding/json"
	"os"
	"path/filepath"

	"github.com/Swyamk/rjagro-sub000/config"
)

var _ = Describe("Schema", func() {
	var (
		mapper config.SchemaMapper
		enums  config.EnumMapper
		err    error
	)

	BeforeEach(func() {
		enums = config.NewEnumMapper(map[string]config.Enum{
			"BatchStatus": {"Active": "enum.batchstatus.active"},
		})
	})

	Describe("While working with broken files", func() {
		It("should error on broken json", func() {
			_, err := config.NewSchemaMapperFromFolder(filepath.Join("testfiles", "schema-broken-files", "simplybroken"))

			Expect(err).To(HaveOccurred())
			Expect(err).To(BeAssignableToTypeOf(&json.SyntaxError{}))
		})

		It("should error on a non existent path", func() {
			_, err := config.NewSchemaMapperFromFolder("i can't exist")

			Expect(err).To(HaveOccurred())
			Expect(err).To(BeAssignableToTypeOf(&os.PathError{}))
		})

		It("should error on missing references", func() {
			_, err := config.NewSchemaMapperFromFolder(filepath.Join("testfiles", "schema-wrong-reference"))

			Expect(err).To(HaveOccurred())
			Expect(err).To(BeAssignableToTypeOf(&config.UnresolvableSchemaError{}))
			Expect(err.Error()).To(Equal("cannot resolve table schema shared/audit"))
		})

		It("should error when validating an unknown enum type", func() {
			mapper, mapperErr := config.NewSchemaMapperFromFolder(filepath.Join("testfiles", "schema-unknown-type"))
			Expect(mapperErr).ToNot(HaveOccurred())

			err := mapper.ValidateIntegrity(enums)

			Expect(err).To(BeAssignableToTypeOf(&config.UnknownColumnTypeError{}))
			Expect(err.Error()).To(Equal("unknown column type SupplierKind in column supplier_type of schema supplier"))
		})

		It("should error when the default sort points at an unsortable column", func() {
			mapper, mapperErr := config.NewSchemaMapperFromFolder(filepath.Join("testfiles", "schema-bad-sort"))
			Expect(mapperErr).ToNot(HaveOccurred())

			err := mapper.ValidateIntegrity(enums)

			Expect(err).To(BeAssignableToTypeOf(&config.InvalidDefaultSortError{}))
			Expect(err.Error()).To(ContainSubstring("schema trader"))
		})

		It("should error on extension cycles", func() {
			_, err := config.NewSchemaMapper(map[string]config.TableSchema{
				"a": {Entity: "a", Extensions: []config.TableSchemaExtensionTable{{Table: "b"}}},
				"b": {Entity: "b", Extensions: []config.TableSchemaExtensionTable{{Table: "a"}}},
			})

			Expect(err).To(BeAssignableToTypeOf(&config.UnresolvableSchemaError{}))
		})
	})

	Describe("While working with correct files", func() {
		BeforeEach(func() {
			mapper, err = config.NewSchemaMapperFromFolder(filepath.Join("testfiles", "schema-test-files"))
		})

		It("should load all schemas, ignoring non json files", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(mapper.Names()).To(Equal([]string{"batches", "shared/audit", "shared/person"}))
			Expect(mapper.Schemas()).To(HaveLen(3))
			Expect(mapper.ResolvedSchemas()).To(HaveLen(3))
		})

		It("should validate against the known enums", func() {
			Expect(mapper.ValidateIntegrity(enums)).To(Succeed())
		})

		It("should error, when trying to access an unknown schema", func() {
			tableSchema, err := mapper.Schema("wat")

			Expect(err).To(Equal(config.ErrUnknownSchema))
			Expect(tableSchema).To(Equal(config.TableSchema{}))

			_, err = mapper.ResolvedSchema("wat")
			Expect(err).To(Equal(config.ErrUnknownSchema))
		})

		Context("when working with a loaded schema", func() {
			var (
				tableSchema config.TableSchema
			)

			JustBeforeEach(func() {
				tableSchema, err = mapper.Schema("batches")
				Expect(err).NotTo(HaveOccurred())
			})

			It("should contain the parsed entity and resource", func() {
				Expect(tableSchema.Entity).To(Equal("batch"))
				Expect(tableSchema.Resource).To(Equal("batches"))
				Expect(tableSchema.DefaultSort).To(Equal(config.SortSpec{Key: "start_date", Direction: "desc"}))
			})

			It("should contain the parsed extensions", func() {
				Expect(tableSchema.Extensions).To(HaveLen(2))
				Expect(tableSchema.Extensions[0].Key).To(Equal("")) // was null in json
				Expect(tableSchema.Extensions[0].Table).To(Equal("shared/audit"))
				Expect(tableSchema.Extensions[1].Key).To(Equal("farmer"))
			})

			It("should contain the parsed columns", func() {
				Expect(tableSchema.Columns).To(HaveLen(3))

				status := tableSchema.Columns[2]
				Expect(status.Path).To(Equal("status"))
				Expect(status.Type).To(Equal("BatchStatus"))
				Expect(status.Order).To(Equal("EnumOrder"))
				Expect(status.Sortable).To(BeTrue())
				Expect(status.FrontendHints).To(HaveKeyWithValue("badge", true))
			})
		})

		Context("when working with a resolved schema", func() {
			var (
				resolved config.ResolvedTableSchema
			)

			JustBeforeEach(func() {
				resolved, err = mapper.ResolvedSchemaForResource("batches")
				Expect(err).NotTo(HaveOccurred())
			})

			It("should pull in extended columns and drop excluded ones", func() {
				paths := []string{}
				for _, column := range resolved.Columns() {
					paths = append(paths, column.Path)
				}

				Expect(paths).To(Equal([]string{"batch_id", "start_date", "status", "created_at", "farmer.name"}))
			})

			It("should look up single columns", func() {
				column, err := resolved.Column("farmer.name")
				Expect(err).NotTo(HaveOccurred())
				Expect(column.Title).To(Equal("columns.person.name"))

				_, err = resolved.Column("farmer.phone")
				Expect(err).To(Equal(config.ErrUnknownColumn))
			})

			It("should keep a reference to the original schema", func() {
				Expect(resolved.OriginalSchema().Columns).To(HaveLen(3))
			})

			It("should not leak its internal column slice", func() {
				columns := resolved.Columns()
				columns[0].Path = "changed"

				Expect(resolved.Columns()[0].Path).To(Equal("batch_id"))
			})
		})
	})

	Describe("Standalone schemas", func() {
		It("should resolve without extensions", func() {
			resolved := config.NewResolvedTableSchema(config.TableSchema{
				Entity:      "item",
				DefaultSort: config.SortSpec{Key: "item_code", Direction: "asc"},
				Exclusions:  []config.TableSchemaExclusion{"internal"},
				Columns: []config.TableSchemaColumn{
					{Path: "item_code", Type: "string", Sortable: true},
					{Path: "internal_ref", Type: "string"},
				},
			})

			Expect(resolved.Columns()).To(HaveLen(1))
			Expect(resolved.ValidateDefaultSort()).To(Succeed())
		})

		It("should reject half empty default sorts", func() {
			resolved := config.NewResolvedTableSchema(config.TableSchema{
				Entity:      "item",
				DefaultSort: config.SortSpec{Key: "item_code"},
				Columns:     []config.TableSchemaColumn{{Path: "item_code", Type: "string", Sortable: true}},
			})

			Expect(resolved.ValidateDefaultSort()).To(BeAssignableToTypeOf(&config.InvalidDefaultSortError{}))
		})
	})
})
