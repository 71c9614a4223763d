// Package sqlite_setup sets up a sqlite database for named color scales
package sqlite_setup

import (
	"github.com/keep94/gosqlite/sqlite"
)

// SetUpTables creates all needed tables in database.
func SetUpTables(conn *sqlite.Conn) error {
	err := conn.Exec("create table if not exists named_scales (id INTEGER PRIMARY KEY AUTOINCREMENT, name TEXT, category TEXT, colors TEXT)")
	if err != nil {
		return err
	}
	return conn.Exec("create index if not exists named_scales_name_idx on named_scales (name)")
}
