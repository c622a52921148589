package tables

import (
	"errors"
	"sort"

	"github.com/tsawler/scantab/model"
)

// ErrEmptyDetectionSet is returned when reconstruction receives zero
// detections. A page that produced no text at all almost always means an
// upstream stage failed, so this is surfaced instead of returning an empty
// table silently.
var ErrEmptyDetectionSet = errors.New("empty detection set")

// DefaultRowGap is the vertical jump, in pixels, that starts a new row.
// It is tuned against typical print sizes at 300 DPI; scale it with DPI
// when rendering at other resolutions.
const DefaultRowGap = 20

// Reconstructor converts a sequence of positioned text detections into a
// table of rows.
type Reconstructor struct {
	// RowGap is the row-break threshold in pixels: a detection whose
	// bottom-left Y exceeds the running baseline by more than this
	// starts a new row.
	RowGap float64

	// SortByPosition, when set, sorts detections top-to-bottom then
	// left-to-right before clustering. Most detection engines already
	// emit a roughly row-major scan order; enable this for engines that
	// do not.
	SortByPosition bool
}

// NewReconstructor creates a Reconstructor with the default row gap.
func NewReconstructor() *Reconstructor {
	return &Reconstructor{
		RowGap: DefaultRowGap,
	}
}

// Reconstruct clusters detections into rows in a single forward pass.
// Every detection lands in exactly one row, so the total cell count always
// equals the detection count. Returns ErrEmptyDetectionSet for empty input.
func (r *Reconstructor) Reconstruct(detections []model.Detection) (*model.Table, error) {
	if len(detections) == 0 {
		return nil, ErrEmptyDetectionSet
	}

	if r.SortByPosition {
		detections = append([]model.Detection(nil), detections...)
		sort.SliceStable(detections, func(i, j int) bool {
			a, b := detections[i].Quad.BottomLeft(), detections[j].Quad.BottomLeft()
			if a.Y != b.Y {
				return a.Y < b.Y
			}
			return a.X < b.X
		})
	}

	table := model.NewTable()
	baseline := 0.0
	for i, d := range detections {
		bottom := d.Quad.BottomLeft().Y
		// The first detection always opens the first row, even at a
		// bottom Y at or below the gap threshold.
		if i == 0 || bottom-baseline > r.RowGap {
			table.AppendRow()
			baseline = bottom
		}
		table.AppendCell(d.Text)
	}
	return table, nil
}
