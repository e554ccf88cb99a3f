package path

import (
	"github.com/Swyamk/rjagro-sub000/config"
	"github.com/Swyamk/rjagro-sub000/datasource"
	"github.com/Swyamk/rjagro-sub000/sorting"
)

// NetChangeResolver resolves to the additions minus the deaths of a bird
// count record. The column path itself is not read. Records carrying
// neither count resolve to nil.
type NetChangeResolver struct {
}

func (netChangeResolver NetChangeResolver) ResolveValue(record datasource.Record, columnSchema config.TableSchemaColumn) interface{} {
	additions, hasAdditions := record["additions"]
	deaths, hasDeaths := record["deaths"]
	if !hasAdditions && !hasDeaths {
		return nil
	}

	return sorting.NumberOf(additions) - sorting.NumberOf(deaths)
}
