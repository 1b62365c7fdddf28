// Package fracd8 routes a fraction of each grid cell's mass to one of its
// eight neighbours along the steepest descent of a surface.
//
// The name refers to a modified version of the classic D8 flow-direction
// algorithm: instead of moving a binary or proportional volume, the fraction
// of a cell that moves is derived from an input velocity layer. When the
// distance travelled in one iteration exceeds the grid resolution, the
// limited kernel caps the fraction just below unity, while the infinite
// kernel follows the classified aspect cell-by-cell until the necessary
// distance is reached. Flow decides between the two after a check of the
// maximum velocity.
//
// All kernels read from immutable snapshots and accumulate into a fresh
// layer, so the traversal order of the grid never affects the result. Cells
// on the grid boundary treat missing neighbours as non-receiving; no mass
// leaves the domain.
package fracd8
