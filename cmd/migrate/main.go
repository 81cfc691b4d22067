package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/storefront-api/infrastructure/database/postgres"
	"github.com/vfg2006/storefront-api/infrastructure/migration"
	"github.com/vfg2006/storefront-api/internal/config"
)

func main() {
	flag.Usage = printUsage
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}
	command := args[0]

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal("Erro ao carregar configurações: ", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.Fatal("Erro ao conectar no banco: ", err)
	}
	defer conn.Close()

	m, err := migration.New(conn.DB)
	if err != nil {
		logrus.Fatal("Erro ao criar migrador: ", err)
	}
	defer m.Close()

	switch command {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	case "steps":
		if len(args) < 2 {
			logrus.Fatal("Informe a quantidade de passos. Uso: migrate steps <n>")
		}
		n, convErr := strconv.Atoi(args[1])
		if convErr != nil {
			logrus.Fatalf("Quantidade de passos inválida: %s", args[1])
		}
		err = m.Steps(n)
	case "version":
		version, dirty, vErr := m.Version()
		if vErr != nil {
			logrus.Fatal("Erro ao obter versão: ", vErr)
		}
		logrus.WithFields(logrus.Fields{"version": version, "dirty": dirty}).Info("Versão atual do schema")
	default:
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		logrus.Fatal(err)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `Uso: migrate <comando>

Comandos:
  up          aplica todas as migrações pendentes
  down        reverte todas as migrações
  steps <n>   aplica n migrações (negativo reverte)
  version     mostra a versão atual do schema`)
}
