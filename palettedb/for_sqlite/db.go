// Package for_sqlite provides a sqlite implementation of interfaces in
// palettedb package.
package for_sqlite

import (
	"strings"

	"github.com/keep94/colorscale/colors"
	"github.com/keep94/colorscale/palettedb"
	"github.com/keep94/consume"
	"github.com/keep94/gosqlite/sqlite"
	"github.com/keep94/toolbox/db"
	"github.com/keep94/toolbox/db/sqlite_db"
	"github.com/keep94/toolbox/db/sqlite_rw"
)

const (
	kSQLNamedScaleById   = "select id, name, category, colors from named_scales where id = ?"
	kSQLNamedScales      = "select id, name, category, colors from named_scales order by 1"
	kSQLAddNamedScale    = "insert into named_scales (name, category, colors) values (?, ?, ?)"
	kSQLUpdateNamedScale = "update named_scales set name = ?, category = ?, colors = ? where id = ?"
	kSQLRemoveNamedScale = "delete from named_scales where id = ?"
)

// kSeparator never appears in canonical rgb or hsl text.
const kSeparator = "|"

type Store struct {
	db sqlite_db.Doer
}

func New(db *sqlite_db.Db) Store {
	return Store{db}
}

func ConnNew(conn *sqlite.Conn) Store {
	return Store{sqlite_db.NewSqliteDoer(conn)}
}

func (s Store) NamedScaleById(
	t db.Transaction, id int64, named *palettedb.NamedScale) error {
	return sqlite_db.ToDoer(s.db, t).Do(func(conn *sqlite.Conn) error {
		return sqlite_rw.ReadSingle(
			conn,
			(&rawNamedScale{}).init(named),
			palettedb.ErrNoSuchId,
			kSQLNamedScaleById,
			id)
	})
}

func (s Store) NamedScales(
	t db.Transaction, consumer consume.Consumer) error {
	return sqlite_db.ToDoer(s.db, t).Do(func(conn *sqlite.Conn) error {
		return sqlite_rw.ReadMultiple(
			conn,
			(&rawNamedScale{}).init(&palettedb.NamedScale{}),
			consumer,
			kSQLNamedScales)
	})
}

func (s Store) AddNamedScale(
	t db.Transaction, named *palettedb.NamedScale) error {
	return sqlite_db.ToDoer(s.db, t).Do(func(conn *sqlite.Conn) error {
		return sqlite_rw.AddRow(
			conn,
			(&rawNamedScale{}).init(named),
			&named.Id,
			kSQLAddNamedScale)
	})
}

func (s Store) UpdateNamedScale(
	t db.Transaction, named *palettedb.NamedScale) error {
	return sqlite_db.ToDoer(s.db, t).Do(func(conn *sqlite.Conn) error {
		return sqlite_rw.UpdateRow(
			conn,
			(&rawNamedScale{}).init(named),
			kSQLUpdateNamedScale)
	})
}

func (s Store) RemoveNamedScale(t db.Transaction, id int64) error {
	return sqlite_db.ToDoer(s.db, t).Do(func(conn *sqlite.Conn) error {
		return conn.Exec(kSQLRemoveNamedScale, id)
	})
}

type rawNamedScale struct {
	*palettedb.NamedScale
	encoded string
}

func (r *rawNamedScale) init(bo *palettedb.NamedScale) *rawNamedScale {
	r.NamedScale = bo
	return r
}

func (r *rawNamedScale) ValuePtr() interface{} {
	return r.NamedScale
}

func (r *rawNamedScale) Ptrs() []interface{} {
	return []interface{}{&r.Id, &r.Name, &r.Category, &r.encoded}
}

func (r *rawNamedScale) Values() []interface{} {
	return []interface{}{r.Name, r.Category, r.encoded, r.Id}
}

// Unmarshall only splits the colors apart. palettedb.Catalog checks that
// they still parse.
func (r *rawNamedScale) Unmarshall() error {
	if r.encoded == "" {
		r.Colors = nil
		return nil
	}
	r.Colors = colors.Strings(strings.Split(r.encoded, kSeparator)...)
	return nil
}

func (r *rawNamedScale) Marshall() error {
	encoded, err := palettedb.Encode(r.Colors)
	if err != nil {
		return err
	}
	r.encoded = strings.Join(encoded, kSeparator)
	return nil
}
