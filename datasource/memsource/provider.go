package memsource

import (
	"context"

	"github.com/Swyamk/rjagro-sub000/datasource"
)

// StaticProvider serves fixed resource lists, e.g. records read from a
// file. Unknown resources are empty.
type StaticProvider map[string][]datasource.Record

func (provider StaticProvider) Fetch(ctx context.Context, resource string) ([]datasource.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return provider[resource], nil
}
