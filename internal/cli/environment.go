package cli

import (
	"path/filepath"

	rjagro "github.com/Swyamk/rjagro-sub000"
	"github.com/Swyamk/rjagro-sub000/config"
	"github.com/Swyamk/rjagro-sub000/datasource"
	"github.com/Swyamk/rjagro-sub000/datasource/memsource"
	"github.com/Swyamk/rjagro-sub000/datasource/restsource"
)

// environment is what a command works with: the loaded assets, the backend
// client and a connector sorting and filtering the client's lists.
type environment struct {
	settings  *Settings
	catalog   rjagro.Catalog
	client    *restsource.Client
	connector datasource.Connector
}

func newEnvironment(settings *Settings) (*environment, error) {
	catalog, err := loadCatalog(settings.Assets)
	if err != nil {
		return nil, err
	}

	client, err := restsource.NewClient(restsource.Config{
		BaseURL:    settings.APIURL,
		Token:      settings.Token,
		CacheTTL:   settings.CacheTTL,
		Timeout:    defaultTimeout,
		HTTPClient: settings.HTTPClient,
	})
	if err != nil {
		return nil, err
	}

	return &environment{
		settings:  settings,
		catalog:   catalog,
		client:    client,
		connector: memsource.NewConnector(client, catalog.Enums, catalog.Translator),
	}, nil
}

// loadCatalog loads the catalog from assets, or from the folder next to the
// binary if assets is empty.
func loadCatalog(assets string) (rjagro.Catalog, error) {
	if assets == "" {
		return rjagro.NewCatalogFromAssets()
	}

	return rjagro.NewCatalogFromFolder(filepath.Clean(assets))
}

// resolvedSchema finds the table schema by resource, or by schema name.
func (env *environment) resolvedSchema(name string) (config.ResolvedTableSchema, error) {
	if schema, err := env.catalog.Schemas.ResolvedSchemaForResource(name); err == nil {
		return schema, nil
	}

	return env.catalog.Schemas.ResolvedSchema(name)
}

// title translates a column title, falling back to English and then to the
// column path.
func (env *environment) title(column config.TableSchemaColumn) string {
	for _, language := range []string{env.settings.Locale, defaultLocale} {
		if title, err := env.catalog.Translator.Translate(language, column.Title); err == nil {
			return title
		}
	}

	return column.Path
}

// enumLabel translates an enum value of column, or returns it unchanged.
func (env *environment) enumLabel(column config.TableSchemaColumn, value string) string {
	label, _ := env.catalog.Translator.TranslateEnum(env.settings.Locale, env.catalog.Enums, column.Type, value)
	return label
}
