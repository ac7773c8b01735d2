package airfoil

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Source resolves an airfoil name to its coordinates.
type Source interface {
	Coordinates(ctx context.Context, name string) (*Airfoil, error)
}

// Dir serves coordinate files <name>.dat from a local directory.
type Dir string

// Coordinates implements Source.
func (d Dir) Coordinates(_ context.Context, name string) (*Airfoil, error) {
	af, err := LoadDat(filepath.Join(string(d), name+".dat"))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%s in %s: %w", name, string(d), ErrNotFound)
	}
	return af, err
}
