package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/edushare/internal/client/migrations"
	"github.com/dmitrijs2005/edushare/internal/client/models"
	"github.com/dmitrijs2005/edushare/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/edushare/internal/dbx"
	"github.com/dmitrijs2005/edushare/internal/filex"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// OpenDB opens (creating if needed) the local session database at dsn and
// applies the embedded migrations. ":memory:" gives a private in-memory
// database.
func OpenDB(ctx context.Context, dsn string) (*sql.DB, error) {
	if err := filex.EnsureParentDir(dsn); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}
	if dsn == ":memory:" {
		// every new connection would get its own empty database
		db.SetMaxOpenConns(1)
	}

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("migrate session db: %w", err)
	}
	return nil
}

// SQLiteStore keeps the session in the metadata table.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Save(ctx context.Context, sess models.Session) error {
	user, err := userRecord(sess)
	if err != nil {
		return err
	}

	return dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, KeyToken, []byte(sess.Token)); err != nil {
			return err
		}
		return repo.Set(ctx, KeyUser, user)
	})
}

func (s *SQLiteStore) Read(ctx context.Context) (*models.Session, error) {
	repo := metadata.NewSQLiteRepository(s.db)

	token, err := repo.Get(ctx, KeyToken)
	if err != nil {
		return nil, err
	}
	user, err := repo.Get(ctx, KeyUser)
	if err != nil {
		return nil, err
	}
	return decode(token, user)
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		return metadata.NewSQLiteRepository(tx).Delete(ctx, KeyToken, KeyUser)
	})
}

// userRecord is the serialized user kept under KeyUser.
func userRecord(sess models.Session) ([]byte, error) {
	if len(sess.UserJSON) > 0 {
		return append([]byte(nil), sess.UserJSON...), nil
	}
	b, err := json.Marshal(sess.User)
	if err != nil {
		return nil, fmt.Errorf("encode user: %w", err)
	}
	return b, nil
}

// decode rebuilds a session from the stored values. A missing or unreadable
// user record counts as no session.
func decode(token, user []byte) (*models.Session, error) {
	if len(token) == 0 || len(user) == 0 {
		return nil, ErrNoSession
	}

	if string(user) == "null" {
		return nil, ErrNoSession
	}

	var u models.User
	if err := json.Unmarshal(user, &u); err != nil {
		return nil, fmt.Errorf("%w: corrupt user record: %v", ErrNoSession, err)
	}

	return &models.Session{
		Token:    string(token),
		User:     u,
		UserJSON: json.RawMessage(user),
	}, nil
}
