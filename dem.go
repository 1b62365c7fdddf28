package gfm

import (
	"fmt"
	"math"

	"github.com/maseology/goHydro/grid"
)

// DEM is a rectangular, fully populated digital elevation model. Bedrock
// elevations are read once at load time and never mutated by the model.
type DEM struct {
	z      []float64 // bedrock elevation, row-major
	nr, nc int
	cw     float64 // cell width [m]
}

// NewDEM builds a DEM from a row-major 2D elevation array and a cell width.
func NewDEM(z [][]float64, cellwidth float64) (*DEM, error) {
	nr := len(z)
	if nr == 0 || len(z[0]) == 0 {
		return nil, fmt.Errorf("gfm.NewDEM: empty elevation array")
	}
	if cellwidth <= 0. {
		return nil, fmt.Errorf("gfm.NewDEM: cell width must be positive, got %g", cellwidth)
	}
	nc := len(z[0])
	zf := make([]float64, nr*nc)
	for r, row := range z {
		if len(row) != nc {
			return nil, fmt.Errorf("gfm.NewDEM: ragged elevation array, row %d has %d cells, expected %d", r, len(row), nc)
		}
		for c, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("gfm.NewDEM: non-finite elevation at cell (%d,%d)", r, c)
			}
			zf[r*nc+c] = v
		}
	}
	return &DEM{z: zf, nr: nr, nc: nc, cw: cellwidth}, nil
}

// LoadDEM reads a grid definition and its associated elevation raster
// (float32 binary, row-major over the full grid extent).
func LoadDEM(gdefFP, bilFP string) (*DEM, error) {
	gd, err := grid.ReadGDEF(gdefFP, false)
	if err != nil {
		return nil, fmt.Errorf("gfm.LoadDEM: %v", err)
	}
	z32, err := readFloats32(bilFP)
	if err != nil {
		return nil, fmt.Errorf("gfm.LoadDEM: %v", err)
	}
	if len(z32) != gd.Nrow*gd.Ncol {
		return nil, fmt.Errorf("gfm.LoadDEM: %s holds %d cells, grid definition expects %d", bilFP, len(z32), gd.Nrow*gd.Ncol)
	}
	z := make([]float64, len(z32))
	for i, v := range z32 {
		z[i] = float64(v)
		if math.IsNaN(z[i]) || math.IsInf(z[i], 0) || z[i] == -9999. {
			r, c := i/gd.Ncol, i%gd.Ncol
			return nil, fmt.Errorf("gfm.LoadDEM: no-data elevation at cell (%d,%d)", r, c)
		}
	}
	return &DEM{z: z, nr: gd.Nrow, nc: gd.Ncol, cw: gd.Cwidth}, nil
}

// Shape returns the number of rows and columns.
func (d *DEM) Shape() (int, int) { return d.nr, d.nc }

// CellWidth returns the grid resolution [m].
func (d *DEM) CellWidth() float64 { return d.cw }

// Elev returns the bedrock elevation at row r, column c.
func (d *DEM) Elev(r, c int) float64 { return d.z[r*d.nc+c] }

// Elevations returns a copy of the row-major bedrock elevation layer.
func (d *DEM) Elevations() []float64 {
	out := make([]float64, len(d.z))
	copy(out, d.z)
	return out
}
