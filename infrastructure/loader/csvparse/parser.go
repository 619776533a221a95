package csvparse

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mmm-explorer/internal/domain"
	"github.com/vfg2006/mmm-explorer/pkg/metrics"
)

// Quantidade máxima de avisos individuais enviados ao log por carregamento.
const maxLoggedWarnings = 20

var (
	ErrEmptyDocument     = errors.New("csvparse: empty document")
	ErrMissingDateColumn = errors.New("csvparse: header has no " + domain.ColumnDate + " column")
)

// RowWarning descreve um defeito de linha recuperado localmente.
type RowWarning struct {
	Line   int    `json:"line"`
	Column string `json:"column,omitempty"`
	Reason string `json:"reason"`
}

func (w RowWarning) String() string {
	if w.Column == "" {
		return fmt.Sprintf("line %d: %s", w.Line, w.Reason)
	}
	return fmt.Sprintf("line %d, column %s: %s", w.Line, w.Column, w.Reason)
}

// Result é o resultado de um parse: registros válidos e os avisos acumulados.
type Result struct {
	Records  []domain.Record
	Warnings []RowWarning
}

// Parse lê o CSV com cabeçalho. Colunas numéricas são tipadas como decimais, células
// vazias ficam nulas e linhas malformadas são puladas com aviso.
// Só falhas do documento inteiro (sem cabeçalho, sem coluna de data, erro de leitura) retornam erro.
func Parse(r io.Reader) (*Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmptyDocument
	}
	if err != nil {
		return nil, errors.Wrap(err, "csvparse: read header")
	}

	columns := normalizeHeader(header)
	if indexOf(columns, domain.ColumnDate) == -1 {
		return nil, ErrMissingDateColumn
	}

	result := &Result{Records: make([]domain.Record, 0)}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				result.Warnings = append(result.Warnings, RowWarning{
					Line:   parseErr.StartLine,
					Reason: parseErr.Err.Error(),
				})
				continue
			}
			return nil, errors.Wrap(err, "csvparse: read row")
		}

		line, _ := reader.FieldPos(0)

		if isBlank(row) {
			continue
		}

		if len(row) != len(columns) {
			result.Warnings = append(result.Warnings, RowWarning{
				Line:   line,
				Reason: fmt.Sprintf("expected %d fields, got %d", len(columns), len(row)),
			})
			continue
		}

		record, warnings := toRecord(columns, row, line)
		result.Warnings = append(result.Warnings, warnings...)
		result.Records = append(result.Records, record)
	}

	return result, nil
}

// Dataset converte o resultado para o formato entregue à sessão.
func (r *Result) Dataset() *domain.Dataset {
	return &domain.Dataset{
		Records:  r.Records,
		Warnings: len(r.Warnings),
	}
}

// Report registra os avisos no log e nas métricas. Nunca chega ao usuário final.
func (r *Result) Report(source string) {
	metrics.AddRowWarnings(source, len(r.Warnings))
	if len(r.Warnings) == 0 {
		return
	}

	logger := logrus.WithFields(logrus.Fields{
		"source":   source,
		"warnings": len(r.Warnings),
		"rows":     len(r.Records),
	})
	logger.Warn("CSV carregado com avisos de parse")

	for i, w := range r.Warnings {
		if i == maxLoggedWarnings {
			logger.Debugf("%d avisos omitidos", len(r.Warnings)-maxLoggedWarnings)
			break
		}
		logger.Debug(w.String())
	}
}

func toRecord(columns, row []string, line int) (domain.Record, []RowWarning) {
	var (
		record   domain.Record
		warnings []RowWarning
	)

	for i, column := range columns {
		value := strings.TrimSpace(row[i])

		switch column {
		case domain.ColumnDate:
			record.Date = value
			continue
		case domain.ColumnVertical:
			record.Vertical = value
			continue
		case domain.ColumnTerritory:
			record.Territory = value
			continue
		}

		field, ok := record.NumericField(column)
		if !ok || value == "" {
			continue
		}

		d, err := decimal.NewFromString(value)
		if err != nil {
			warnings = append(warnings, RowWarning{
				Line:   line,
				Column: column,
				Reason: fmt.Sprintf("not a number: %q", value),
			})
			continue
		}
		*field = decimal.NewNullDecimal(d)
	}

	return record, warnings
}

func normalizeHeader(header []string) []string {
	columns := make([]string, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		columns[i] = strings.TrimSpace(h)
	}
	return columns
}

func indexOf(values []string, target string) int {
	for i, v := range values {
		if v == target {
			return i
		}
	}
	return -1
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
