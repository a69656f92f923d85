// Package all registers every built-in dialect. Import it for its side
// effects when dialects are chosen by name at runtime.
package all

import (
	// Each dialect registers itself in init().
	_ "github.com/leapstack-labs/querykit/pkg/dialects/bigquery"
	_ "github.com/leapstack-labs/querykit/pkg/dialects/common"
	_ "github.com/leapstack-labs/querykit/pkg/dialects/databend"
	_ "github.com/leapstack-labs/querykit/pkg/dialects/duckdb"
	_ "github.com/leapstack-labs/querykit/pkg/dialects/mssql"
	_ "github.com/leapstack-labs/querykit/pkg/dialects/mysql"
	_ "github.com/leapstack-labs/querykit/pkg/dialects/oracle"
	_ "github.com/leapstack-labs/querykit/pkg/dialects/postgres"
	_ "github.com/leapstack-labs/querykit/pkg/dialects/sqlite"
)
