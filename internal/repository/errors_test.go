package repository

import (
	"errors"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
)

func TestClassifyUserInsert_MySQL(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		want error
	}{
		{"username mysql8", "Duplicate entry 'alice' for key 'users.uq_users_username'", ErrDuplicateUsername},
		{"email mysql8", "Duplicate entry 'a@x.com' for key 'users.uq_users_email'", ErrDuplicateEmail},
		{"username mysql57", "Duplicate entry 'alice' for key 'uq_users_username'", ErrDuplicateUsername},
		{"value mentions email", "Duplicate entry 'email' for key 'users.uq_users_username'", ErrDuplicateUsername},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &mysql.MySQLError{Number: mysqlDuplicateEntry, Message: tt.msg}
			assert.ErrorIs(t, classifyUserInsert(err), tt.want)
		})
	}
}

func TestClassifyUserInsert_PassesThroughOtherErrors(t *testing.T) {
	other := &mysql.MySQLError{Number: 1452, Message: "Cannot add or update a child row"}
	assert.Same(t, other, classifyUserInsert(other))

	plain := errors.New("connection refused")
	assert.Same(t, plain, classifyUserInsert(plain))

	unknownKey := &mysql.MySQLError{Number: mysqlDuplicateEntry, Message: "Duplicate entry '1' for key 'PRIMARY'"}
	assert.Same(t, unknownKey, classifyUserInsert(unknownKey))
}

func TestUniqueViolation_NotUnique(t *testing.T) {
	_, ok := uniqueViolation(errors.New("boom"))
	assert.False(t, ok)

	_, ok = uniqueViolation(nil)
	assert.False(t, ok)
}
