package transfer

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/phenrril/shopdesk/internal/domain"
)

type Importer struct{ db *gorm.DB }

func NewImporter(db *gorm.DB) *Importer { return &Importer{db: db} }

// Import appends the rows of a CSV or JSON file to the named table. It is
// strictly additive: no matching against existing rows, no upsert. Columns
// the target table does not have fail loudly; id columns are dropped so the
// store reassigns identifiers. Returns the number of rows appended.
func (i *Importer) Import(ctx context.Context, table, path string) (int, error) {
	if !knownTable(table) {
		return 0, fmt.Errorf("%w: %s", ErrUnknownTable, table)
	}

	var (
		rows []map[string]any
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		rows, err = readCSV(path)
	case ".json":
		rows, err = readJSON(path)
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}

	allowed := make(map[string]bool, len(tableColumns[table]))
	for _, col := range tableColumns[table] {
		allowed[col] = true
	}
	inserts := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		rec := make(map[string]any, len(row))
		for col, v := range row {
			if col == "id" {
				continue
			}
			if !allowed[col] {
				return 0, fmt.Errorf("%w: table %s has no column %q", ErrSchemaMismatch, table, col)
			}
			rec[col] = v
		}
		inserts = append(inserts, rec)
	}

	if err := i.db.WithContext(ctx).Table(table).Create(&inserts).Error; err != nil {
		return 0, importErr(err, table)
	}
	log.Info().Str("table", table).Str("path", path).Int("rows", len(inserts)).Msg("import finished")
	return len(inserts), nil
}

func importErr(err error, table string) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return &domain.ConstraintError{Table: table, Kind: domain.ErrDuplicate, Err: err}
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return &domain.ConstraintError{Table: table, Kind: domain.ErrForeignKey, Err: err}
	default:
		return fmt.Errorf("appending into %s: %w", table, err)
	}
}

func readCSV(path string) ([]map[string]any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	header := records[0]
	rows := make([]map[string]any, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(map[string]any, len(header))
		for i, col := range header {
			if i < len(rec) {
				row[col] = rec[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func readJSON(path string) ([]map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	var rows []map[string]any
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return rows, nil
}
