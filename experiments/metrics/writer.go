package metrics

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

type GameRecord struct {
	ID int
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates a fresh run directory under root, named by a random ID.
func NewWriter(root string) (*Writer, error) {
	baseDir := filepath.Join(root, uuid.NewString())
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

// Dir is the run directory records are written to.
func (w *Writer) Dir() string {
	return w.baseDir
}

// WriteSetup stores the run configuration next to the records.
func (w *Writer) WriteSetup(setup any) error {
	data, err := yaml.Marshal(setup)
	if err != nil {
		return fmt.Errorf("failed to encode setup: %w", err)
	}
	err = os.WriteFile(filepath.Join(w.baseDir, "setup.yaml"), data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write setup: %w", err)
	}
	return nil
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	path := filepath.Join(w.baseDir, "game_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create game records file: %w", err)
	}
	defer f.Close()

	return encodeGameRecords(f, records)
}

func encodeGameRecords(out io.Writer, records []GameRecord) error {
	writer := csv.NewWriter(out)

	header := []string{"id", "seed", "agent1", "agent2", "winner", "start_time", "end_time", "duration", "total_moves", "captures"}
	err := writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write game records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Seed),
			record.Agent1,
			record.Agent2,
			record.Winner.String(),
			record.StartTime.Format(time.RFC3339Nano),
			record.EndTime.Format(time.RFC3339Nano),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
			strconv.Itoa(record.Captures),
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

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	path := filepath.Join(w.baseDir, "move_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create move records file: %w", err)
	}
	defer f.Close()

	return encodeMoveRecords(f, records)
}

func encodeMoveRecords(out io.Writer, records []MoveRecord) error {
	writer := csv.NewWriter(out)

	header := []string{"game", "step", "player", "agent", "from_x", "from_y", "to_x", "to_y", "capture", "duration"}
	err := writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write move records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Player.String(),
			record.Agent,
			strconv.Itoa(record.Move.From.X),
			strconv.Itoa(record.Move.From.Y),
			strconv.Itoa(record.Move.To.X),
			strconv.Itoa(record.Move.To.Y),
			strconv.FormatBool(record.Capture),
			record.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write move record row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush move records: %w", err)
	}
	return nil
}
