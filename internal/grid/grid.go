// Package grid implements addressing on the staggered bubble lattice.
//
// Rows alternate between a full row of Columns cells and an inset row of
// Columns-1 cells, approximating a hexagonal packing. Row 0 is always full.
package grid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidDimensions indicates a lattice that cannot hold a cell on every row.
	ErrInvalidDimensions = errors.New("grid: invalid dimensions")
	// ErrInvalidPosition indicates a position string that does not parse as "row,col".
	ErrInvalidPosition = errors.New("grid: invalid position")
)

// Position addresses a single cell as (row, column).
type Position struct {
	Row    int `json:"row" toml:"row" yaml:"row"`
	Column int `json:"column" toml:"column" yaml:"column"`
}

// At is shorthand for Position{Row: row, Column: column}.
func At(row, column int) Position {
	return Position{Row: row, Column: column}
}

func (p Position) String() string {
	return strconv.Itoa(p.Row) + "," + strconv.Itoa(p.Column)
}

// ParsePosition parses the "row,col" form produced by Position.String.
func ParsePosition(s string) (Position, error) {
	rowText, colText, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidPosition, s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(rowText))
	if err != nil {
		return Position{}, fmt.Errorf("%w: row %q", ErrInvalidPosition, rowText)
	}
	col, err := strconv.Atoi(strings.TrimSpace(colText))
	if err != nil {
		return Position{}, fmt.Errorf("%w: column %q", ErrInvalidPosition, colText)
	}
	return Position{Row: row, Column: col}, nil
}

// ComparePositions orders positions row-major. It returns a negative number
// when a sorts before b, zero when equal and a positive number otherwise.
func ComparePositions(a, b Position) int {
	if a.Row != b.Row {
		return a.Row - b.Row
	}
	return a.Column - b.Column
}

// Dimensions describes the lattice size: Rows rows, with even rows holding
// Columns cells and odd rows holding Columns-1.
type Dimensions struct {
	Rows    int `json:"rows" toml:"rows" yaml:"rows"`
	Columns int `json:"columns" toml:"columns" yaml:"columns"`
}

// Validate reports whether every row of the lattice can hold at least one cell.
func (d Dimensions) Validate() error {
	if d.Rows < 1 {
		return fmt.Errorf("%w: rows must be at least 1, got %d", ErrInvalidDimensions, d.Rows)
	}
	if d.Columns < 2 {
		return fmt.Errorf("%w: columns must be at least 2, got %d", ErrInvalidDimensions, d.Columns)
	}
	return nil
}

// RowLength returns the number of cells on row.
func (d Dimensions) RowLength(row int) int {
	if row%2 == 0 {
		return d.Columns
	}
	return d.Columns - 1
}

// Contains reports whether p addresses a cell of the lattice.
func (d Dimensions) Contains(p Position) bool {
	if p.Row < 0 || p.Row >= d.Rows {
		return false
	}
	return p.Column >= 0 && p.Column < d.RowLength(p.Row)
}

// CellCount returns the total number of addressable cells.
func (d Dimensions) CellCount() int {
	if d.Rows <= 0 {
		return 0
	}
	full := (d.Rows + 1) / 2
	inset := d.Rows / 2
	return full*d.RowLength(0) + inset*d.RowLength(1)
}

// Positions enumerates every valid cell in row-major order.
func (d Dimensions) Positions() []Position {
	if d.Rows <= 0 || d.Columns <= 0 {
		return nil
	}
	out := make([]Position, 0, d.CellCount())
	for row := 0; row < d.Rows; row++ {
		for col := 0; col < d.RowLength(row); col++ {
			out = append(out, Position{Row: row, Column: col})
		}
	}
	return out
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Rows, d.Columns)
}
