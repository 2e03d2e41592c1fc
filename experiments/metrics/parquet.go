package metrics

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
)

const MoveRecordsParquet = "move_records.parquet"

// MoveRow is the parquet layout of a MoveRecord.
type MoveRow struct {
	Game       int64 `parquet:"game"`
	Step       int32 `parquet:"step"`
	Player     int32 `parquet:"player"`
	Pile       int32 `parquet:"pile"`
	Amount     int32 `parquet:"amount"`
	Depth      int32 `parquet:"depth"`
	Pruning    bool  `parquet:"pruning"`
	DurationNs int64 `parquet:"duration_ns"`
	Nodes      int64 `parquet:"nodes"`
	Leaves     int64 `parquet:"leaves"`
	Cutoffs    int64 `parquet:"cutoffs"`
}

func toMoveRow(record MoveRecord) MoveRow {
	return MoveRow{
		Game:       int64(record.Game),
		Step:       int32(record.Step),
		Player:     int32(record.Player),
		Pile:       int32(record.Action.Pile),
		Amount:     int32(record.Action.Amount),
		Depth:      int32(record.Depth),
		Pruning:    record.Pruning,
		DurationNs: record.Duration.Nanoseconds(),
		Nodes:      record.Nodes,
		Leaves:     record.Leaves,
		Cutoffs:    record.Cutoffs,
	}
}

// WriteMoveRecordsParquet writes the records to a tmp file first and renames it into place once
// the parquet footer is written.
func (w *Writer) WriteMoveRecordsParquet(records []MoveRecord) error {
	outPath := filepath.Join(w.baseDir, MoveRecordsParquet)
	tmpPath := outPath + ".tmp"

	f, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open tmp parquet: %w", err)
	}

	pw := parquet.NewGenericWriter[MoveRow](
		f,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
	)
	pw.SetKeyValueMetadata("schema", "move_row_v1")

	rows := make([]MoveRow, len(records))
	for i, record := range records {
		rows[i] = toMoveRow(record)
	}

	var errs error
	if len(rows) > 0 {
		if _, err := pw.Write(rows); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("write parquet rows: %w", err))
		}
	}
	if err := pw.Close(); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("close parquet writer: %w", err))
	}
	if err := f.Close(); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("close parquet file: %w", err))
	}
	if errs != nil {
		_ = os.Remove(tmpPath)
		return errs
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("rename parquet: %w", err)
	}
	return nil
}
