package postgres

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"hrms/pkg/platform/sentinel"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"no rows", sql.ErrNoRows, sentinel.ErrNotFound},
		{"unique violation", &pq.Error{Code: "23505"}, sentinel.ErrConflict},
		{"exclusion violation", &pq.Error{Code: "23P01"}, sentinel.ErrConflict},
		{"foreign key violation", &pq.Error{Code: "23503"}, sentinel.ErrInUse},
		{"foreign key violation is a conflict", &pq.Error{Code: "23503"}, sentinel.ErrConflict},
		{"bad connection", driver.ErrBadConn, sentinel.ErrUnavailable},
		{"dial failure", &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}, sentinel.ErrUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, Classify(tt.err, "payroll record"), tt.want)
		})
	}

	t.Run("unique violations are not reported as in use", func(t *testing.T) {
		assert.False(t, errors.Is(Classify(&pq.Error{Code: "23505"}, "employee"), sentinel.ErrInUse))
	})

	t.Run("other errors keep their cause", func(t *testing.T) {
		cause := &pq.Error{Code: "42P01"}
		err := Classify(cause, "payroll record")
		assert.False(t, errors.Is(err, sentinel.ErrConflict))
		var pqErr *pq.Error
		assert.ErrorAs(t, err, &pqErr)
	})

	assert.NoError(t, Classify(nil, "anything"))
}

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := migrations.ReadDir("migrations")
	assert.NoError(t, err)
	assert.Len(t, entries, 4)
}
