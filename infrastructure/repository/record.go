package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/mmm-explorer/infrastructure/database/postgres"
	"github.com/vfg2006/mmm-explorer/internal/domain"
)

const (
	defaultRecordsTable = "mmm_records"
)

//go:generate mockgen -source=record.go -destination=mocks/mock_record.go -package=mocks

// RecordRepository lê o dataset MMM de uma tabela do PostgreSQL.
// As colunas têm os mesmos nomes do CSV, em minúsculas.
type RecordRepository interface {
	ListRecords(ctx context.Context) ([]domain.Record, error)
	Table() string
}

type recordRepository struct {
	conn  postgres.Queryer
	table string
}

func NewRecordRepository(conn postgres.Queryer, table string) RecordRepository {
	if table == "" {
		table = defaultRecordsTable
	}
	return &recordRepository{
		conn:  conn,
		table: table,
	}
}

func (r *recordRepository) Table() string {
	return r.table
}

func (r *recordRepository) ListRecords(ctx context.Context) ([]domain.Record, error) {
	query, args, err := r.listQuery()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]domain.Record, 0)
	for rows.Next() {
		record, err := r.scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear registro: %w", err)
		}
		records = append(records, *record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

func (r *recordRepository) listQuery() (string, []interface{}, error) {
	columns := []string{
		columnName(domain.ColumnDate) + "::text",
		columnName(domain.ColumnVertical),
		columnName(domain.ColumnTerritory),
	}
	for _, c := range domain.NumericColumns() {
		columns = append(columns, columnName(c))
	}

	return squirrel.
		Select(columns...).
		From(postgres.QuoteTable(r.table)).
		OrderBy(columnName(domain.ColumnDate) + " ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *recordRepository) scanRecord(rows *sql.Rows) (*domain.Record, error) {
	var (
		record    domain.Record
		date      sql.NullString
		vertical  sql.NullString
		territory sql.NullString
	)

	dest := []interface{}{&date, &vertical, &territory}
	for _, c := range domain.NumericColumns() {
		field, _ := record.NumericField(c)
		dest = append(dest, field)
	}

	if err := rows.Scan(dest...); err != nil {
		return nil, err
	}

	record.Date = strings.TrimSpace(date.String)
	record.Vertical = strings.TrimSpace(vertical.String)
	record.Territory = strings.TrimSpace(territory.String)

	return &record, nil
}

func columnName(csvColumn string) string {
	return strings.ToLower(csvColumn)
}
