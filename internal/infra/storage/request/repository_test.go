package request

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oniit/e-jadwal-public-web/internal/domain"
	"github.com/oniit/e-jadwal-public-web/pkg/txmanager"
)

// scriptedDB is a database/sql driver that records every statement and fails
// successive request INSERTs with scripted errors.
type scriptedDB struct {
	statements []string
	codes      []string // request_id argument of each INSERT attempt

	insertErrs []error // error per INSERT INTO requests, nil = success
	inserts    int
}

func (s *scriptedDB) connector() driver.Connector { return scriptedConnector{db: s} }

func (s *scriptedDB) has(prefix string) int {
	n := 0
	for _, stmt := range s.statements {
		if strings.HasPrefix(stmt, prefix) {
			n++
		}
	}
	return n
}

type scriptedConnector struct{ db *scriptedDB }

func (c scriptedConnector) Connect(context.Context) (driver.Conn, error) {
	return &scriptedConn{db: c.db}, nil
}

func (c scriptedConnector) Driver() driver.Driver { return nil }

type scriptedConn struct{ db *scriptedDB }

func (c *scriptedConn) Prepare(string) (driver.Stmt, error) {
	return nil, fmt.Errorf("prepare not supported")
}

func (c *scriptedConn) Close() error { return nil }

func (c *scriptedConn) Begin() (driver.Tx, error) { return scriptedTx{}, nil }

func (c *scriptedConn) BeginTx(context.Context, driver.TxOptions) (driver.Tx, error) {
	return scriptedTx{}, nil
}

func (c *scriptedConn) ExecContext(_ context.Context, query string, _ []driver.NamedValue) (driver.Result, error) {
	c.db.statements = append(c.db.statements, query)
	return driver.RowsAffected(1), nil
}

func (c *scriptedConn) QueryContext(_ context.Context, query string, args []driver.NamedValue) (driver.Rows, error) {
	c.db.statements = append(c.db.statements, query)

	if strings.HasPrefix(query, "INSERT INTO requests") {
		if code, ok := args[0].Value.(string); ok {
			c.db.codes = append(c.db.codes, code)
		}
		attempt := c.db.inserts
		c.db.inserts++
		if attempt < len(c.db.insertErrs) && c.db.insertErrs[attempt] != nil {
			return nil, c.db.insertErrs[attempt]
		}
		return &insertReturningRows{}, nil
	}
	return nil, fmt.Errorf("unexpected query: %s", query)
}

type scriptedTx struct{}

func (scriptedTx) Commit() error   { return nil }
func (scriptedTx) Rollback() error { return nil }

// insertReturningRows is the RETURNING id, created_at, updated_at row of a
// successful request insert.
type insertReturningRows struct{ done bool }

func (r *insertReturningRows) Columns() []string {
	return []string{"id", "created_at", "updated_at"}
}

func (r *insertReturningRows) Close() error { return nil }

func (r *insertReturningRows) Next(dest []driver.Value) error {
	if r.done {
		return io.EOF
	}
	r.done = true
	now := time.Date(2025, 10, 10, 9, 0, 0, 0, time.UTC)
	dest[0] = int64(5)
	dest[1] = now
	dest[2] = now
	return nil
}

func uniqueViolationErr() error {
	return &pq.Error{Code: uniqueViolation, Constraint: "requests_request_id_key"}
}

func testRequest() *domain.Request {
	day := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	return &domain.Request{
		Status:         domain.StatusPending,
		Type:           domain.BookingTypeRoom,
		Window:         domain.Window{Start: day.Add(9 * time.Hour), End: day.Add(11 * time.Hour)},
		UserName:       "Dinas Pendidikan",
		AssetCode:      "GD-01",
		AssetName:      "Aula Utama",
		PersonInCharge: "Budi",
		PICPhone:       "08123456789",
		Room:           &domain.RoomDetails{ActivityName: "Rapat Koordinasi"},
	}
}

func TestCreateRegeneratesCodeInsideTransaction(t *testing.T) {
	script := &scriptedDB{insertErrs: []error{uniqueViolationErr(), nil}}
	db := sql.OpenDB(script.connector())
	defer db.Close()

	repo := NewRepository(db, 5)
	txMgr := txmanager.NewTransactionManager(db)

	var created *domain.Request
	err := txMgr.Do(context.Background(), func(txCtx context.Context) error {
		var err error
		created, err = repo.Create(txCtx, testRequest())
		return err
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.RequestID)
	require.Len(t, script.codes, 2, "second attempt issued after the collision")
	assert.NotEqual(t, script.codes[0], script.codes[1], "collision retried with a fresh code")
	assert.Equal(t, 2, script.has("SAVEPOINT"))
	assert.Equal(t, 1, script.has("ROLLBACK TO SAVEPOINT"))
}

func TestCreateExhaustsCodeAttempts(t *testing.T) {
	script := &scriptedDB{
		insertErrs: []error{uniqueViolationErr(), uniqueViolationErr(), uniqueViolationErr()},
	}
	db := sql.OpenDB(script.connector())
	defer db.Close()

	repo := NewRepository(db, 3)
	txMgr := txmanager.NewTransactionManager(db)

	err := txMgr.Do(context.Background(), func(txCtx context.Context) error {
		_, err := repo.Create(txCtx, testRequest())
		return err
	})
	assert.ErrorIs(t, err, ErrIDExhausted)
	assert.Len(t, script.codes, 3)
	assert.Equal(t, 3, script.has("ROLLBACK TO SAVEPOINT"))
}
