package transfer

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// TableFiles is the pair of snapshot files written for one table.
type TableFiles struct {
	CSV  string `json:"csv"`
	JSON string `json:"json"`
}

// Manifest describes one export run.
type Manifest struct {
	SnapshotID uuid.UUID             `json:"snapshot_id"`
	CreatedAt  time.Time             `json:"created_at"`
	Files      map[string]TableFiles `json:"files"`
}

type Exporter struct{ db *gorm.DB }

func NewExporter(db *gorm.DB) *Exporter { return &Exporter{db: db} }

// Export writes a full-table snapshot of every table to
// <prefix>_<table>.csv and <prefix>_<table>.json. The JSON file is
// record-oriented: an array of flat objects, one per row.
func (e *Exporter) Export(ctx context.Context, prefix string) (*Manifest, error) {
	m := &Manifest{
		SnapshotID: uuid.New(),
		CreatedAt:  time.Now(),
		Files:      make(map[string]TableFiles, len(Tables)),
	}
	for _, table := range Tables {
		rows, err := e.fetch(ctx, table)
		if err != nil {
			return nil, err
		}
		files := TableFiles{
			CSV:  fmt.Sprintf("%s_%s.csv", prefix, table),
			JSON: fmt.Sprintf("%s_%s.json", prefix, table),
		}
		if err := writeCSV(files.CSV, tableColumns[table], rows); err != nil {
			return nil, err
		}
		if err := writeJSON(files.JSON, rows); err != nil {
			return nil, err
		}
		m.Files[table] = files
		log.Debug().Str("table", table).Int("rows", len(rows)).Msg("table exported")
	}
	log.Info().Str("snapshot", m.SnapshotID.String()).Str("prefix", prefix).Msg("export finished")
	return m, nil
}

func (e *Exporter) fetch(ctx context.Context, table string) ([]map[string]any, error) {
	var rows []map[string]any
	if err := e.db.WithContext(ctx).Table(table).Order(tableOrder[table]).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("reading table %s: %w", table, err)
	}
	return rows, nil
}

func writeCSV(path string, columns []string, rows []map[string]any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(columns); err != nil {
		return fmt.Errorf("writing header to %s: %w", path, err)
	}
	rec := make([]string, len(columns))
	for _, row := range rows {
		for i, col := range columns {
			rec[i] = cell(row[col])
		}
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("writing row to %s: %w", path, err)
		}
	}
	w.Flush()
	return w.Error()
}

func writeJSON(path string, rows []map[string]any) error {
	if rows == nil {
		rows = []map[string]any{}
	}
	data, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func cell(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case time.Time:
		return t.Format(time.RFC3339Nano)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case []byte:
		return string(t)
	default:
		return fmt.Sprint(t)
	}
}
