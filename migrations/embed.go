// Package migrations holds the versioned SQL schema, named V<version>__<name>.sql.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
