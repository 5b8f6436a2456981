package deck

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
)

const maxRecordSize = 1 << 20

// LoadReport summarises a successful Load.
type LoadReport struct {
	Loaded  int
	Skipped int
}

// Manager owns the ordered card collection. Order is creation/load order
// and is the order cards are reviewed in.
type Manager struct {
	cards []*Card
	log   *slog.Logger
}

// NewManager returns an empty manager. A nil logger uses slog.Default.
func NewManager(logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{log: logger}
}

// Cards returns the collection in order. The cards are shared with the
// manager so ratings applied to them are kept.
func (m *Manager) Cards() []*Card {
	out := make([]*Card, len(m.cards))
	copy(out, m.cards)
	return out
}

func (m *Manager) Len() int {
	return len(m.cards)
}

// TotalScore sums the score of every card, saturating at the max value
// like Card.Rate does.
func (m *Manager) TotalScore() uint64 {
	var total uint64
	for _, c := range m.cards {
		if total > math.MaxUint64-c.score {
			return math.MaxUint64
		}
		total += c.score
	}
	return total
}

// Add appends a new zero-score card.
func (m *Manager) Add(front, back string) (*Card, error) {
	c, err := NewCard(front, back)
	if err != nil {
		return nil, err
	}
	m.cards = append(m.cards, c)
	m.log.Debug("card created", "index", len(m.cards)-1)
	return c, nil
}

// Load replaces the collection with the cards stored at path.
//
// If the file cannot be opened, or is a directory, an error wrapping
// ErrOpen is returned. Malformed lines are skipped and counted. The
// collection is only replaced once the whole file has been read; on any
// error it is left untouched.
func (m *Manager) Load(path string) (LoadReport, error) {
	f, err := os.Open(path)
	if err != nil {
		m.log.Error("load failed", "path", path, "error", err)
		return LoadReport{}, fmt.Errorf("%w %s: %v", ErrOpen, path, err)
	}
	defer f.Close()

	if info, err := f.Stat(); err == nil && info.IsDir() {
		m.log.Error("load failed", "path", path, "error", "is a directory")
		return LoadReport{}, fmt.Errorf("%w %s: is a directory", ErrOpen, path)
	}

	cards, report, err := m.read(f)
	if err != nil {
		m.log.Error("load interrupted", "path", path, "read", report.Loaded, "error", err)
		return report, fmt.Errorf("reading %s: %w", path, err)
	}
	m.cards = cards
	m.log.Info("deck loaded", "path", path, "loaded", report.Loaded, "skipped", report.Skipped)
	return report, nil
}

func (m *Manager) read(r io.Reader) ([]*Card, LoadReport, error) {
	var (
		cards  []*Card
		report LoadReport
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxRecordSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		c, err := decodeRecord(line)
		if err != nil {
			report.Skipped++
			m.log.Warn("skipping record", "line", lineNo, "error", err)
			continue
		}
		cards = append(cards, c)
		report.Loaded++
	}
	if err := scanner.Err(); err != nil {
		return nil, report, err
	}
	return cards, report, nil
}

// Save writes the collection to path, creating missing parent directories
// and truncating any existing file.
func (m *Manager) Save(path string) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		m.log.Error("save failed", "path", path, "error", err)
		return fmt.Errorf("%w %s: %v", ErrOpen, path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		m.log.Error("save failed", "path", path, "error", err)
		return fmt.Errorf("%w %s: %v", ErrOpen, path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
		if err != nil {
			m.log.Error("save failed", "path", path, "error", err)
			return
		}
		m.log.Info("deck saved", "path", path, "count", len(m.cards))
	}()

	if err := m.write(f); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func (m *Manager) write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, c := range m.cards {
		if _, err := bw.WriteString(encodeRecord(c)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// IsOpenFailure reports whether err came from a file that could not be opened.
func IsOpenFailure(err error) bool {
	return errors.Is(err, ErrOpen)
}
