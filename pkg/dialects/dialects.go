// Package dialects collects the dialects shipped with sqlbridge.
//
// There is no mutable registry: callers pass *dialect.Dialect values
// around explicitly. ByName exists only so surfaces that take a dialect
// name as input (the CLI, config files) can resolve it.
package dialects

import (
	"sort"

	"github.com/sqlbridge/sqlbridge/pkg/dialect"
	"github.com/sqlbridge/sqlbridge/pkg/dialects/cloudberry"
	"github.com/sqlbridge/sqlbridge/pkg/dialects/postgres"
)

// ByName resolves a dialect by its canonical name.
func ByName(name string) (*dialect.Dialect, bool) {
	d, ok := byName[name]
	return d, ok
}

// Names returns the canonical dialect names, sorted.
func Names() []string {
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var byName = map[string]*dialect.Dialect{
	"postgres":   postgres.Postgres,
	"cloudberry": cloudberry.Cloudberry,
}
