package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mmm-explorer/infrastructure/database/postgres"
	"github.com/vfg2006/mmm-explorer/infrastructure/loader/fileloader"
	"github.com/vfg2006/mmm-explorer/internal/config"
	"github.com/vfg2006/mmm-explorer/internal/domain"
	"github.com/vfg2006/mmm-explorer/internal/usecases/exploring"
	"github.com/vfg2006/mmm-explorer/pkg/utils"
)

// Carga do CSV do MMM em uma tabela do PostgreSQL, usada pela origem DATASET_SOURCE=postgres.
// Uso: go run ./infrastructure/migration/script [arquivo.csv]

const batchSize = 500

func setupLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.Info("Iniciando script de carga do dataset...")
}

func createTableSQL(table string) string {
	columns := []string{
		"id BIGSERIAL PRIMARY KEY",
		columnName(domain.ColumnDate) + " DATE NOT NULL",
		columnName(domain.ColumnVertical) + " TEXT",
		columnName(domain.ColumnTerritory) + " TEXT",
	}
	for _, c := range domain.NumericColumns() {
		columns = append(columns, columnName(c)+" NUMERIC")
	}

	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n\t%s\n)", postgres.QuoteTable(table), strings.Join(columns, ",\n\t"))
}

func insertColumns() []string {
	columns := []string{
		columnName(domain.ColumnDate),
		columnName(domain.ColumnVertical),
		columnName(domain.ColumnTerritory),
	}
	for _, c := range domain.NumericColumns() {
		columns = append(columns, columnName(c))
	}
	return columns
}

// insertBatchQuery monta um INSERT com várias linhas. Linhas sem data válida ficam de fora.
func insertBatchQuery(table string, batch []domain.Record) (string, []interface{}, int, error) {
	builder := squirrel.
		Insert(postgres.QuoteTable(table)).
		Columns(insertColumns()...).
		PlaceholderFormat(squirrel.Dollar)

	inserted := 0
	for i := range batch {
		record := &batch[i]
		day, ok := exploring.ParseDay(record.Date)
		if !ok {
			continue
		}

		values := []interface{}{
			utils.FormatDate(&day),
			nullString(record.Vertical),
			nullString(record.Territory),
		}
		for _, c := range domain.NumericColumns() {
			field, _ := record.NumericField(c)
			values = append(values, *field)
		}

		builder = builder.Values(values...)
		inserted++
	}

	if inserted == 0 {
		return "", nil, 0, nil
	}

	query, args, err := builder.ToSql()
	return query, args, inserted, err
}

func insertRecords(ctx context.Context, tx *sql.Tx, table string, records []domain.Record) (int, int) {
	logrus.Infof("Iniciando inserção de %d registros...", len(records))
	startTime := time.Now()

	successCount := 0
	skippedCount := 0

	for start := 0; start < len(records); start += batchSize {
		end := start + batchSize
		if end > len(records) {
			end = len(records)
		}

		query, args, inserted, err := insertBatchQuery(table, records[start:end])
		if err != nil {
			logrus.Fatalf("ERRO ao montar insert do lote %d-%d: %v", start, end, err)
		}
		skippedCount += (end - start) - inserted
		if inserted == 0 {
			continue
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			logrus.Fatalf("ERRO ao inserir lote %d-%d: %v", start, end, err)
		}
		successCount += inserted

		logrus.Infof("Progresso: %d/%d registros processados", end, len(records))
	}

	logrus.Infof("Inserção concluída em %v. Sucesso: %d, Ignorados: %d", time.Since(startTime), successCount, skippedCount)
	return successCount, skippedCount
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func columnName(csvColumn string) string {
	return strings.ToLower(csvColumn)
}

func main() {
	setupLogger()
	ctx := context.Background()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("ERRO ao carregar configuração: %v", err)
	}

	file := cfg.Dataset.File
	if len(os.Args) > 1 {
		file = os.Args[1]
	}
	if file == "" {
		logrus.Fatal("ERRO: informe o arquivo CSV como argumento ou via DATASET_FILE")
	}

	table := cfg.Dataset.Table
	if table == "" {
		table = "mmm_records"
	}

	dataset, err := fileloader.New(file).Load(ctx)
	if err != nil {
		logrus.Fatalf("ERRO ao ler o CSV: %v", err)
	}
	records := dataset.Records
	logrus.Infof("Total de %d registros lidos de %s (%d avisos)", len(records), file, dataset.Warnings)

	logrus.Info("Conectando ao banco de dados...")
	db, err := sql.Open(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		logrus.Fatalf("ERRO ao conectar ao banco de dados: %v", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		logrus.Fatalf("ERRO ao verificar conexão com o banco: %v", err)
	}
	logrus.Info("Conexão com o banco de dados estabelecida com sucesso")

	startTime := time.Now()
	logrus.Info("Iniciando transação...")

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		logrus.Fatalf("ERRO ao iniciar transação: %v", err)
	}

	if _, err := tx.ExecContext(ctx, createTableSQL(table)); err != nil {
		logrus.Fatalf("ERRO ao criar tabela %s: %v", table, err)
	}
	if _, err := tx.ExecContext(ctx, "TRUNCATE TABLE "+postgres.QuoteTable(table)); err != nil {
		logrus.Fatalf("ERRO ao limpar tabela %s: %v", table, err)
	}

	insertRecords(ctx, tx, table, records)

	if err := tx.Commit(); err != nil {
		logrus.Errorf("ERRO ao confirmar transação: %v", err)
		if err := tx.Rollback(); err != nil {
			logrus.Fatalf("ERRO ao reverter transação: %v", err)
		}
		logrus.Info("Transação revertida")
		os.Exit(1)
	}

	logrus.Infof("Carga do dataset concluída em %v!", time.Since(startTime))
}
