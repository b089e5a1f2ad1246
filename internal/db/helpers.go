package db

import (
	"errors"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/mysql"
	"github.com/go-sql-driver/mysql"
)

// Dialect builds MySQL statements with prepared placeholders.
var Dialect = goqu.Dialect("mysql")

const mysqlDuplicateEntry = 1062

// IsDuplicateKey reports a unique index violation from the MySQL driver.
func IsDuplicateKey(err error) bool {
	var myErr *mysql.MySQLError
	return errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry
}
