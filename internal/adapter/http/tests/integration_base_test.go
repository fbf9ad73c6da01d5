package tests

import (
	"context"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/suite"

	dbadapter "todo/internal/adapter/db"
	"todo/internal/config"
)

type IntegrationSuiteBase struct {
	suite.Suite

	DB     *sqlx.DB
	dbPath string
}

func (s *IntegrationSuiteBase) SetupSuite() {
	s.dbPath = filepath.Join(s.T().TempDir(), "todo_test.db")
}

func (s *IntegrationSuiteBase) TearDownTest() {
	if s.DB != nil {
		s.Require().NoError(s.DB.Close())
		s.DB = nil
	}
}

// ResetDatabase opens a fresh connection and recreates the schema so ids start at 1.
func (s *IntegrationSuiteBase) ResetDatabase() {
	db, err := dbadapter.ConnectDB(&config.Config{DatabaseURL: "file:" + s.dbPath + "?_busy_timeout=5000"})
	s.Require().NoError(err)

	// Dropping the table also removes its sqlite_sequence row.
	_, err = db.Exec("DROP TABLE IF EXISTS tasks")
	s.Require().NoError(err)

	s.Require().NoError(dbadapter.Migrate(context.Background(), db))
	s.DB = db
}
