package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/rental-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/rental-insights-api/infrastructure/repository"
	"github.com/vfg2006/rental-insights-api/internal/api"
	"github.com/vfg2006/rental-insights-api/internal/config"
	"github.com/vfg2006/rental-insights-api/internal/scheduler"
	"github.com/vfg2006/rental-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/rental-insights-api/pkg/log"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	bookingRepo := repository.NewBookingRepository(pgConn)
	apartmentRepo := repository.NewApartmentRepository(pgConn)

	insightService := insighting.NewService(cfg.Analytics, bookingRepo, apartmentRepo)

	// Aquece o livro de noites; uma falha aqui não impede a subida, a próxima requisição tenta de novo
	warmCtx, _ := log.WithCorrelationID(ctx)
	if _, err := insightService.Refresh(warmCtx); err != nil {
		logrus.WithError(err).Warn("Não foi possível montar o livro de noites na inicialização")
	}

	ledgerRefreshService := scheduler.NewLedgerRefreshService(insightService, cfg.LedgerRefresh)
	if err := ledgerRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização do livro de noites")
	} else {
		logrus.Info("Agendador de atualização do livro de noites iniciado com sucesso")
	}

	server, err := api.New(cfg, insightService, ledgerRefreshService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	_ = os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
