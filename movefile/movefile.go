// Package movefile reads and writes the best-move table as a YAML
// key-value document. Keys are BoardRoll strings, values the recommended
// successor board (0 means every piece down).
package movefile

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kgeller/shutbox/dice"
)

// Write serializes the table to w.
func Write(w io.Writer, moves map[dice.BoardRoll]uint16) error {
	doc := make(map[string]uint16, len(moves))
	for key, successor := range moves {
		doc[key.String()] = successor
	}
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode move table: %w", err)
	}
	return enc.Close()
}

// WriteFile writes the table to path, creating or truncating it.
func WriteFile(path string, moves map[dice.BoardRoll]uint16) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create move table file: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	if err := Write(writer, moves); err != nil {
		return err
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush move table: %w", err)
	}
	return nil
}

// Read parses a table previously produced by Write. Malformed keys are
// rejected, never coerced.
func Read(r io.Reader) (map[dice.BoardRoll]uint16, error) {
	doc := make(map[string]uint16)
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode move table: %w", err)
	}
	moves := make(map[dice.BoardRoll]uint16, len(doc))
	for key, successor := range doc {
		parsed, err := dice.Parse(key)
		if err != nil {
			return nil, fmt.Errorf("move table has a bad key: %w", err)
		}
		if successor > dice.MaxBoard {
			return nil, fmt.Errorf("move table key %s maps to board %d above %d",
				key, successor, dice.MaxBoard)
		}
		moves[parsed] = successor
	}
	return moves, nil
}

// ReadFile parses the table at path.
func ReadFile(path string) (map[dice.BoardRoll]uint16, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open move table file: %w", err)
	}
	defer file.Close()
	return Read(file)
}
