package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/lab1702/cellspread/game"
	"github.com/vmihailenco/msgpack/v5"
)

// ReplayVersion is bumped whenever the record layout changes
const ReplayVersion = 1

// ErrReplayMismatch is returned when a re-simulation disagrees with a replay
var ErrReplayMismatch = errors.New("replay mismatch")

// ReplayHeader precedes the records of a replay stream.
type ReplayHeader struct {
	Version  int    `msgpack:"version"`
	Scenario string `msgpack:"scenario"`
	Count    int    `msgpack:"count"`
}

func newReplayEncoder(w io.Writer) *msgpack.Encoder {
	enc := msgpack.NewEncoder(w)
	// game types only carry json tags
	enc.SetCustomStructTag("json")
	return enc
}

func newReplayDecoder(r io.Reader) *msgpack.Decoder {
	dec := msgpack.NewDecoder(r)
	dec.SetCustomStructTag("json")
	return dec
}

// WriteReplay encodes a header and the records as a msgpack stream.
func WriteReplay(w io.Writer, scenario string, records []ImpactRecord) error {
	enc := newReplayEncoder(w)
	header := ReplayHeader{Version: ReplayVersion, Scenario: scenario, Count: len(records)}
	if err := enc.Encode(&header); err != nil {
		return fmt.Errorf("encode replay header: %w", err)
	}
	for i := range records {
		if err := enc.Encode(&records[i]); err != nil {
			return fmt.Errorf("encode replay record %d: %w", i, err)
		}
	}
	return nil
}

const maxReplayPrealloc = 1024

// ReadReplay decodes a stream written by WriteReplay.
func ReadReplay(r io.Reader) (ReplayHeader, []ImpactRecord, error) {
	dec := newReplayDecoder(r)

	var header ReplayHeader
	if err := dec.Decode(&header); err != nil {
		return ReplayHeader{}, nil, fmt.Errorf("decode replay header: %w", err)
	}
	if header.Version != ReplayVersion {
		return ReplayHeader{}, nil, fmt.Errorf("unsupported replay version %d", header.Version)
	}
	if header.Count < 0 {
		return ReplayHeader{}, nil, fmt.Errorf("invalid replay record count %d", header.Count)
	}

	// Count comes from the file; the decode loop fails on a short stream
	records := make([]ImpactRecord, 0, min(header.Count, maxReplayPrealloc))
	for i := 0; i < header.Count; i++ {
		var rec ImpactRecord
		if err := dec.Decode(&rec); err != nil {
			return ReplayHeader{}, nil, fmt.Errorf("decode replay record %d: %w", i, err)
		}
		records = append(records, rec)
	}
	return header, records, nil
}

// VerifyReplay re-runs the scenario from scratch and checks that every
// impact resolves exactly as recorded.
func VerifyReplay(ctx context.Context, sc *Scenario, defs Definitions, cfg Config, r io.Reader) error {
	header, want, err := ReadReplay(r)
	if err != nil {
		return err
	}
	if header.Scenario != sc.Name {
		return fmt.Errorf("replay of %q, scenario is %q: %w", header.Scenario, sc.Name, ErrReplayMismatch)
	}

	// Replays never carry overlay geometry
	cfg.CombatGeometry = false
	sim, err := NewSimulation(sc, defs, cfg)
	if err != nil {
		return err
	}
	got, err := sim.RunToEnd(ctx)
	if err != nil {
		return err
	}

	if len(got) != len(want) {
		return fmt.Errorf("replay has %d records, simulation produced %d: %w", len(want), len(got), ErrReplayMismatch)
	}
	for i := range want {
		if !recordsEqual(want[i], got[i]) {
			return fmt.Errorf("record %d (tick %d, %s): %w", i, want[i].Tick, want[i].Warhead, ErrReplayMismatch)
		}
	}
	return nil
}

// recordsEqual treats nil and empty slices alike since the encoding does
// not preserve the difference.
func recordsEqual(a, b ImpactRecord) bool {
	if a.ID != b.ID || a.Tick != b.Tick || a.Warhead != b.Warhead || a.Pos != b.Pos || a.FiredBy != b.FiredBy {
		return false
	}
	return slices.EqualFunc(a.Hits, b.Hits, hitsEqual)
}

func hitsEqual(a, b game.Hit) bool {
	return a.Victim == b.Victim &&
		a.Distance == b.Distance &&
		a.Damage.Value == b.Damage.Value &&
		slices.Equal(a.Damage.Types, b.Damage.Types) &&
		slices.Equal(a.Cells, b.Cells)
}
