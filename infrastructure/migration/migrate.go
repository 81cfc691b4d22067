// Package migration aplica o schema do banco a partir dos arquivos SQL embutidos no binário.
package migration

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"
)

//go:embed sql/*.sql
var migrationsFS embed.FS

const migrationsDir = "sql"

type Migrator struct {
	migrate *migrate.Migrate
	logger  *logrus.Entry
}

func New(db *sql.DB) (*Migrator, error) {
	source, err := iofs.New(migrationsFS, migrationsDir)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar migrações: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("erro ao criar driver postgres: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar migrador: %w", err)
	}

	return &Migrator{
		migrate: m,
		logger:  logrus.WithField("component", "migration"),
	}, nil
}

func (m *Migrator) Up() error {
	m.logger.Info("Aplicando migrações")

	err := m.migrate.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		m.logger.Info("Nenhuma migração pendente")
		return nil
	}
	if err != nil {
		return fmt.Errorf("migração up falhou: %w", err)
	}

	return m.logVersion()
}

func (m *Migrator) Down() error {
	m.logger.Warn("Revertendo todas as migrações")

	err := m.migrate.Down()
	if errors.Is(err, migrate.ErrNoChange) {
		m.logger.Info("Nenhuma migração para reverter")
		return nil
	}
	if err != nil {
		return fmt.Errorf("migração down falhou: %w", err)
	}

	return nil
}

// Steps aplica n migrações (positivo sobe, negativo desce)
func (m *Migrator) Steps(n int) error {
	err := m.migrate.Steps(n)
	if errors.Is(err, migrate.ErrNoChange) {
		m.logger.Info("Nenhuma migração para aplicar")
		return nil
	}
	if err != nil {
		return fmt.Errorf("migração steps falhou: %w", err)
	}

	return m.logVersion()
}

func (m *Migrator) Version() (uint, bool, error) {
	version, dirty, err := m.migrate.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("erro ao obter versão: %w", err)
	}
	return version, dirty, nil
}

func (m *Migrator) Close() error {
	sourceErr, dbErr := m.migrate.Close()
	if sourceErr != nil {
		return fmt.Errorf("erro ao fechar origem: %w", sourceErr)
	}
	if dbErr != nil {
		return fmt.Errorf("erro ao fechar banco: %w", dbErr)
	}
	return nil
}

func (m *Migrator) logVersion() error {
	version, dirty, err := m.Version()
	if err != nil {
		return err
	}

	m.logger.WithFields(logrus.Fields{
		"version": version,
		"dirty":   dirty,
	}).Info("Migrações concluídas")

	return nil
}
