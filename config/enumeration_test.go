package config_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"os"
	"path/filepath"

	"github.com/Swyamk/rjagro-sub000/config"
)

var _ = Describe("Enum mapper", func() {
	var (
		mapper config.EnumMapper
		err    error
	)

	BeforeEach(func() {
		mapper, err = config.NewEnumMapperFromFolder(filepath.Join("testfiles", "enum-test-files"))
	})

	Context("when trying to load the test files", func() {
		It("should not error", func() {
			Expect(err).NotTo(HaveOccurred())
		})

		It("contain exactly two enums", func() {
			Expect(mapper.Enums()).To(HaveLen(2))
			Expect(mapper.Names()).To(Equal([]string{"BatchStatus", "ledgerAccountType"}))
		})

		It("should contain the enum file from the sub folder (preserving casing)", func() {
			validEnum, err := mapper.Enum("ledgerAccountType")
			Expect(err).NotTo(HaveOccurred())
			Expect(validEnum).To(HaveKey("Liability"))
		})

		It("should be able to access a single, specific key from a enum directly", func() {
			translationKey, err := mapper.TranslationKeyInEnum("BatchStatus", "Closed")

			Expect(err).NotTo(HaveOccurred())
			Expect(translationKey).To(Equal("enum.batchstatus.closed"))
		})

		It("should error, when trying to access a non existing enum", func() {
			_, err := mapper.Enum("wat")

			Expect(err).To(Equal(config.ErrUnknownEnum))
		})

		It("should error, when trying to access a non existing key", func() {
			translationKey, err := mapper.TranslationKeyInEnum("BatchStatus", "Pending")

			Expect(err).To(Equal(config.ErrUnknownEnumKey))
			Expect(translationKey).To(Equal(""))
		})
	})

	Context("when listing the entries of an enum", func() {
		It("should order them by enum key", func() {
			enum, err := mapper.Enum("ledgerAccountType")
			Expect(err).NotTo(HaveOccurred())

			Expect(enum.Entries()).To(Equal([]config.KeyWithTranslation{
				{EnumKey: "Asset", TranslationKey: "enum.accounttype.asset"},
				{EnumKey: "Liability", TranslationKey: "enum.accounttype.liability"},
				{EnumKey: "Revenue", TranslationKey: "enum.accounttype.revenue"},
			}))
		})
	})

	Context("when trying to load a non existent path", func() {
		It("should error", func() {
			_, err := config.NewEnumMapperFromFolder("i can't exist")

			Expect(err).To(HaveOccurred())
			Expect(err).To(BeAssignableToTypeOf(&os.PathError{}))
		})
	})
})
