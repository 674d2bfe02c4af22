package health

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusWithoutDatabase(t *testing.T) {
	st := NewService(nil, "local").Status(context.Background())
	assert.True(t, st.OK)
	assert.Equal(t, "memory", st.StatsStore)
	assert.Equal(t, "local", st.Analyzer)
	assert.Empty(t, st.Database)
}

func TestStatusPingsDatabase(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectPing()
	st := NewService(db, "upstream").Status(context.Background())
	assert.True(t, st.OK)
	assert.Equal(t, "postgres", st.StatsStore)
	assert.Equal(t, "ok", st.Database)

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	st = NewService(db, "upstream").Status(context.Background())
	assert.False(t, st.OK)
	assert.Equal(t, "unreachable", st.Database)
	require.NoError(t, mock.ExpectationsWereMet())
}
