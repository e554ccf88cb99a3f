package path

import (
	"errors"

	"github.com/Swyamk/rjagro-sub000/datasource"
)

// ErrUnknownResolver indicates that a column names a path resolver which is
// not registered.
var ErrUnknownResolver = errors.New("unknown path resolver")

var resolvers = map[string]datasource.PathResolver{
	"":                      SimpleResolver{},
	"SizePathResolver":      SizeResolver{},
	"NetChangePathResolver": NetChangeResolver{},
}

// Resolver returns the path resolver registered under name. The empty name
// is the SimpleResolver.
func Resolver(name string) (datasource.PathResolver, error) {
	resolver, exists := resolvers[name]
	if !exists {
		return nil, ErrUnknownResolver
	}

	return resolver, nil
}
