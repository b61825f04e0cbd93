package repository

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/mattn/go-sqlite3"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrSessionNotFound   = errors.New("session not found")
	ErrDuplicateUsername = errors.New("username already exists")
	ErrDuplicateEmail    = errors.New("email already exists")
)

const mysqlDuplicateEntry = 1062

// uniqueViolation reports whether err is a unique-constraint violation and,
// if so, returns the driver message naming the offending key.
func uniqueViolation(err error) (string, bool) {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry {
		return myErr.Message, true
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) && liteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
		return liteErr.Error(), true
	}

	return "", false
}

// classifyUserInsert maps a unique violation on the users table to the
// column-specific sentinel. Other errors are returned unchanged.
//
// MySQL: "Duplicate entry 'x' for key 'users.uq_users_email'"
// SQLite: "UNIQUE constraint failed: users.email"
func classifyUserInsert(err error) error {
	msg, ok := uniqueViolation(err)
	if !ok {
		return err
	}

	// Only look at the key part so a duplicate value cannot mislead us.
	if i := strings.LastIndex(msg, "for key"); i >= 0 {
		msg = msg[i:]
	} else if i := strings.LastIndex(msg, ":"); i >= 0 {
		msg = msg[i:]
	}

	switch {
	case strings.Contains(msg, "username"):
		return ErrDuplicateUsername
	case strings.Contains(msg, "email"):
		return ErrDuplicateEmail
	default:
		return err
	}
}
