package rjagro_test

import (
	"path/filepath"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	rjagro "github.com/Swyamk/rjagro-sub000"
	"github.com/Swyamk/rjagro-sub000/datasource/restsource"
)

var _ = Describe("Shipped assets", func() {
	var catalog rjagro.Catalog

	BeforeEach(func() {
		var err error
		catalog, err = rjagro.NewCatalogFromFolder("assets")
		Expect(err).ToNot(HaveOccurred())
	})

	It("should have a table schema for every backend resource", func() {
		for _, resource := range restsource.ResourceNames() {
			schema, err := catalog.Schemas.ResolvedSchemaForResource(resource)
			Expect(err).ToNot(HaveOccurred(), resource)
			Expect(schema.Columns()).ToNot(BeEmpty(), resource)
		}
	})

	It("should pull shared columns into the tables", func() {
		batches, err := catalog.Schemas.ResolvedSchemaForResource("batches")
		Expect(err).ToNot(HaveOccurred())

		_, err = batches.Column("created_at")
		Expect(err).ToNot(HaveOccurred())

		farmers, err := catalog.Schemas.ResolvedSchemaForResource("farmers")
		Expect(err).ToNot(HaveOccurred())

		_, err = farmers.Column("bank_name")
		Expect(err).ToNot(HaveOccurred())
		_, err = farmers.Column("address")
		Expect(err).To(HaveOccurred())
	})

	It("should translate every enum key in every language", func() {
		for _, language := range catalog.Translator.LanguageNames() {
			for _, name := range catalog.Enums.Names() {
				enum, err := catalog.Enums.Enum(name)
				Expect(err).ToNot(HaveOccurred())

				for _, entry := range enum.Entries() {
					_, err := catalog.Translator.Translate(language, entry.TranslationKey)
					Expect(err).ToNot(HaveOccurred(), language+" "+entry.TranslationKey)

					_, err = catalog.Translator.Translate(language, entry.TranslationKey+".short")
					Expect(err).ToNot(HaveOccurred(), language+" "+entry.TranslationKey+".short")
				}
			}
		}
	})

	It("should translate every column title", func() {
		for _, schema := range catalog.Schemas.ResolvedSchemas() {
			for _, column := range schema.Columns() {
				_, err := catalog.Translator.Translate("en", column.Title)
				Expect(err).ToNot(HaveOccurred(), column.Title)
			}
		}
	})
})

var _ = Describe("Assets next to the binary", func() {
	It("should point into the folder of the executable", func() {
		dir, err := rjagro.AssetsDir()

		Expect(err).ToNot(HaveOccurred())
		Expect(filepath.Base(dir)).To(Equal("assets"))
		Expect(filepath.IsAbs(dir)).To(BeTrue())
	})

	It("should report missing asset folders instead of loading an empty catalog", func() {
		dir, err := rjagro.AssetsDir()
		Expect(err).ToNot(HaveOccurred())
		Expect(dir).ToNot(BeADirectory())

		_, err = rjagro.NewCatalogFromAssets()
		Expect(err).To(HaveOccurred())

		_, err = rjagro.NewEnumMapperFromAssets()
		Expect(err).To(HaveOccurred())
		_, err = rjagro.NewTranslatorFromAssets()
		Expect(err).To(HaveOccurred())
		_, err = rjagro.NewSchemaMapperFromAssets()
		Expect(err).To(HaveOccurred())
	})
})
