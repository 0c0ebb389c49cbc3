// Package store exports the tick stream of a run to parquet for offline
// analysis. Files are write-once; nothing here feeds back into a simulation.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"

	"github.com/brensch/snekwrap/game"
	"github.com/brensch/snekwrap/sim"
)

const traceSchema = "tick_trace_v1"

// TickRow is one tick of one run, recorded after the move was applied.
//
// Direction is the move label: 0=Up, 1=Down, 2=Left, 3=Right.
// Body coordinates are head first.
type TickRow struct {
	RunID      string  `parquet:"run_id,dict"`
	Strategy   string  `parquet:"strategy,dict"`
	Seed       int64   `parquet:"seed"`
	Turn       int32   `parquet:"turn"`
	Width      int32   `parquet:"width"`
	Height     int32   `parquet:"height"`
	Direction  int32   `parquet:"direction"`
	Alive      bool    `parquet:"alive"`
	AteFood    bool    `parquet:"ate_food"`
	NoSafeMove bool    `parquet:"no_safe_move"`
	BodyX      []int32 `parquet:"body_x"`
	BodyY      []int32 `parquet:"body_y"`
	FoodX      int32   `parquet:"food_x"`
	FoodY      int32   `parquet:"food_y"`
}

// RowFromTick snapshots state together with the result that produced it.
func RowFromTick(runID, strategy string, seed int64, state *game.State, res sim.TickResult) TickRow {
	row := TickRow{
		RunID:      runID,
		Strategy:   strategy,
		Seed:       seed,
		Turn:       int32(res.Turn),
		Width:      int32(state.Grid.Width),
		Height:     int32(state.Grid.Height),
		Direction:  int32(res.Direction),
		Alive:      res.Alive,
		AteFood:    res.AteFood,
		NoSafeMove: res.NoSafeMove,
		BodyX:      make([]int32, len(state.Snake.Body)),
		BodyY:      make([]int32, len(state.Snake.Body)),
		FoodX:      int32(state.Food.Pos.X),
		FoodY:      int32(state.Food.Pos.Y),
	}
	for i, p := range state.Snake.Body {
		row.BodyX[i] = int32(p.X)
		row.BodyY[i] = int32(p.Y)
	}
	return row
}

// Body rebuilds the body from the flattened columns.
func (r TickRow) Body() []game.Point {
	n := min(len(r.BodyX), len(r.BodyY))
	out := make([]game.Point, n)
	for i := 0; i < n; i++ {
		out[i] = game.Point{X: int(r.BodyX[i]), Y: int(r.BodyY[i])}
	}
	return out
}

// TraceWriter streams rows into a tmp file and moves it into place on Finalize.
type TraceWriter struct {
	outDir  string
	tmpPath string
	outPath string

	file   *os.File
	writer *parquet.GenericWriter[TickRow]

	rows int
}

func NewTraceWriter(outDir, runID string) (*TraceWriter, error) {
	if outDir == "" {
		return nil, fmt.Errorf("outDir is required")
	}
	if runID == "" {
		return nil, fmt.Errorf("runID is required")
	}

	absOut, err := filepath.Abs(outDir)
	if err != nil {
		absOut = outDir
	}
	tmpDir := filepath.Join(absOut, "tmp")
	if err := os.MkdirAll(tmpDir, 0o755); err != nil {
		return nil, fmt.Errorf("create tmp dir: %w", err)
	}

	name := fmt.Sprintf("trace_%s_%d.parquet", runID, time.Now().UnixNano())
	tmpPath := filepath.Join(tmpDir, name)
	outPath := filepath.Join(absOut, name)

	f, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open tmp parquet: %w", err)
	}

	w := parquet.NewGenericWriter[TickRow](
		f,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
	)
	w.SetKeyValueMetadata("schema", traceSchema)
	w.SetKeyValueMetadata("run_id", runID)

	return &TraceWriter{
		outDir:  absOut,
		tmpPath: tmpPath,
		outPath: outPath,
		file:    f,
		writer:  w,
	}, nil
}

func (t *TraceWriter) OutPath() string { return t.outPath }
func (t *TraceWriter) Rows() int       { return t.rows }

func (t *TraceWriter) Write(rows ...TickRow) error {
	if t.writer == nil || t.file == nil {
		return fmt.Errorf("trace writer is closed")
	}
	if len(rows) == 0 {
		return nil
	}
	if _, err := t.writer.Write(rows); err != nil {
		return fmt.Errorf("write trace rows: %w", err)
	}
	t.rows += len(rows)
	return nil
}

// Finalize closes the parquet writer and moves the file from tmp/ to outDir.
// If no rows were written, the tmp file is removed and outPath is returned empty.
func (t *TraceWriter) Finalize() (outPath string, rows int, err error) {
	if t.writer == nil && t.file == nil {
		return "", 0, nil
	}

	rows = t.rows

	var closeErr error
	if t.writer != nil {
		closeErr = t.writer.Close()
		t.writer = nil
	}
	var fileErr error
	if t.file != nil {
		_ = t.file.Sync()
		fileErr = t.file.Close()
		t.file = nil
	}
	if closeErr != nil {
		_ = os.Remove(t.tmpPath)
		return "", 0, fmt.Errorf("close parquet writer: %w", closeErr)
	}
	if fileErr != nil {
		_ = os.Remove(t.tmpPath)
		return "", 0, fmt.Errorf("close parquet file: %w", fileErr)
	}

	if rows == 0 {
		_ = os.Remove(t.tmpPath)
		return "", 0, nil
	}
	if err := os.Rename(t.tmpPath, t.outPath); err != nil {
		return "", 0, fmt.Errorf("rename parquet: %w", err)
	}
	return t.outPath, rows, nil
}

// ReadTrace loads every row of a trace file.
func ReadTrace(path string) ([]TickRow, error) {
	rows, err := parquet.ReadFile[TickRow](path)
	if err != nil {
		return nil, fmt.Errorf("read trace %s: %w", path, err)
	}
	return rows, nil
}
