// Package sqlkv backs the blob store with a two-column MySQL table, for
// deployments that already run a database and don't want state on local disk.
//
// Expected schema:
//
//	CREATE TABLE blob (
//	    k VARCHAR(64) NOT NULL PRIMARY KEY,
//	    v MEDIUMBLOB NOT NULL
//	);
package sqlkv

import (
	"database/sql"
	"fmt"

	"github.com/upper/db/v4"
	"github.com/upper/db/v4/adapter/mysql"

	_ "github.com/go-sql-driver/mysql"
)

type SQLKV struct {
	sess  db.Session
	sqlDB *sql.DB
}

func Open(dsn string) (*SQLKV, error) {
	sqlDB, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetConnMaxIdleTime(0)

	sess, err := mysql.New(sqlDB)
	if err != nil {
		return nil, fmt.Errorf("open mysql session: %w", err)
	}

	return &SQLKV{
		sess:  sess,
		sqlDB: sqlDB,
	}, nil
}

type blobRow struct {
	Key  string `db:"k"`
	Blob []byte `db:"v"`
}

func (s *SQLKV) Get(key string) ([]byte, bool, error) {
	var row blobRow
	if err := s.sess.SQL().
		Select("k", "v").
		From("blob").
		Where("k = ?", key).
		Iterator().
		One(&row); err != nil {
		if err == db.ErrNoMoreRows {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get blob %v: %w", key, err)
	}
	return row.Blob, true, nil
}

func (s *SQLKV) Set(key string, blob []byte) error {
	_, err := s.sess.SQL().Exec(db.Raw(`
INSERT INTO blob (k, v) VALUES (?, ?)
	ON DUPLICATE KEY UPDATE v = VALUES(v)
`, key, blob))
	if err != nil {
		return fmt.Errorf("set blob %v: %w", key, err)
	}
	return nil
}

func (s *SQLKV) Delete(key string) error {
	if _, err := s.sess.SQL().
		DeleteFrom("blob").
		Where("k = ?", key).
		Exec(); err != nil {
		return fmt.Errorf("delete blob %v: %w", key, err)
	}
	return nil
}

func (s *SQLKV) GetSQLDB() *sql.DB {
	return s.sqlDB
}

func (s *SQLKV) Close() error {
	return s.sess.Close()
}
