package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"tichess/game"
)

// reportedKinds are the event kinds that get their own column.
var reportedKinds = []game.EventKind{
	game.KindPieceCaptured,
	game.KindPieceTransformed,
	game.KindPiecePromoted,
	game.KindLeaderBuffApplied,
	game.KindInvestorVulnerable,
	game.KindStrategistPlacementReady,
}

type Writer struct {
	baseDir string
}

// NewWriter creates a timestamped subfolder of dir for one batch of records.
func NewWriter(dir string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(dir, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteGameRecords(records []GameMetric) error {
	path := filepath.Join(w.baseDir, "game_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create game records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	header := []string{"id", "first", "second", "winner", "start_time", "end_time", "duration", "moves", "placements"}
	for _, kind := range reportedKinds {
		header = append(header, string(kind))
	}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write game records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			record.ID,
			record.First,
			record.Second,
			record.Winner,
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
			strconv.Itoa(record.Placements),
		}
		for _, kind := range reportedKinds {
			row = append(row, strconv.Itoa(record.Events[kind]))
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write game record row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush game records: %w", err)
	}
	return nil
}
