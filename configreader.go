package rjagro

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Swyamk/rjagro-sub000/config"
)

// Catalog bundles everything loaded from an asset folder.
type Catalog struct {
	Enums      config.EnumMapper
	Translator config.Translator
	Schemas    config.SchemaMapper
}

// AssetsDir returns the asset folder next to the executing binary.
func AssetsDir() (string, error) {
	ex, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("cannot locate assets: %w", err)
	}

	return filepath.Join(filepath.Dir(ex), "assets"), nil
}

// NewEnumMapperFromAssets creates a new EnumMapper from the asset folder, relative to the executing binary.
func NewEnumMapperFromAssets() (config.EnumMapper, error) {
	dir, err := AssetsDir()
	if err != nil {
		return config.EnumMapper{}, err
	}

	return config.NewEnumMapperFromFolder(filepath.Join(dir, "enum"))
}

// NewTranslatorFromAssets creates a new Translator from the asset folder, relative to the executing binary.
func NewTranslatorFromAssets() (config.Translator, error) {
	dir, err := AssetsDir()
	if err != nil {
		return config.Translator{}, err
	}

	return config.NewTranslatorFromFolder(filepath.Join(dir, "i18n"))
}

// NewSchemaMapperFromAssets creates a new SchemaMapper from the asset folder, relative to the executing binary.
func NewSchemaMapperFromAssets() (config.SchemaMapper, error) {
	dir, err := AssetsDir()
	if err != nil {
		return config.SchemaMapper{}, err
	}

	return config.NewSchemaMapperFromFolder(filepath.Join(dir, "schema"))
}

// NewCatalogFromAssets loads the catalog from the asset folder next to the
// executing binary.
func NewCatalogFromAssets() (Catalog, error) {
	enums, err := NewEnumMapperFromAssets()
	if err != nil {
		return Catalog{}, err
	}

	translator, err := NewTranslatorFromAssets()
	if err != nil {
		return Catalog{}, err
	}

	schemas, err := NewSchemaMapperFromAssets()
	if err != nil {
		return Catalog{}, err
	}

	return newCatalog(enums, translator, schemas)
}

// NewCatalogFromFolder loads enums, translations and schemas from root and
// validates the schemas against the loaded enums.
func NewCatalogFromFolder(root string) (Catalog, error) {
	enums, err := config.NewEnumMapperFromFolder(filepath.Join(root, "enum"))
	if err != nil {
		return Catalog{}, err
	}

	translator, err := config.NewTranslatorFromFolder(filepath.Join(root, "i18n"))
	if err != nil {
		return Catalog{}, err
	}

	schemas, err := config.NewSchemaMapperFromFolder(filepath.Join(root, "schema"))
	if err != nil {
		return Catalog{}, err
	}

	return newCatalog(enums, translator, schemas)
}

func newCatalog(enums config.EnumMapper, translator config.Translator, schemas config.SchemaMapper) (Catalog, error) {
	if err := schemas.ValidateIntegrity(enums); err != nil {
		return Catalog{}, err
	}

	return Catalog{
		Enums:      enums,
		Translator: translator,
		Schemas:    schemas,
	}, nil
}
