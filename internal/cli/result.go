package cli

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/medidai/colmap/feature"
)

// KeypointResult is the printable view of a keypoint and its decomposition.
type KeypointResult struct {
	X                 float64 `json:"x" yaml:"x"`
	Y                 float64 `json:"y" yaml:"y"`
	Weight            float64 `json:"weight" yaml:"weight"`
	ConstraintPointID int     `json:"constraint_point_id" yaml:"constraint_point_id"`
	A11               float64 `json:"a11" yaml:"a11"`
	A12               float64 `json:"a12" yaml:"a12"`
	A21               float64 `json:"a21" yaml:"a21"`
	A22               float64 `json:"a22" yaml:"a22"`
	ScaleX            float64 `json:"scale_x" yaml:"scale_x"`
	ScaleY            float64 `json:"scale_y" yaml:"scale_y"`
	Scale             float64 `json:"scale" yaml:"scale"`
	Orientation       float64 `json:"orientation" yaml:"orientation"`
	Shear             float64 `json:"shear" yaml:"shear"`
}

// newKeypointResult snapshots k. Negative zeros are printed as 0.
func newKeypointResult(k feature.Keypoint) KeypointResult {
	s := k.Shape()
	return KeypointResult{
		X:                 clean(k.X),
		Y:                 clean(k.Y),
		Weight:            clean(k.Weight),
		ConstraintPointID: k.ConstraintPointID,
		A11:               clean(k.A11),
		A12:               clean(k.A12),
		A21:               clean(k.A21),
		A22:               clean(k.A22),
		ScaleX:            clean(s.ScaleX),
		ScaleY:            clean(s.ScaleY),
		Scale:             clean(k.ComputeScale()),
		Orientation:       clean(s.Orientation),
		Shear:             clean(s.Shear),
	}
}

// Text renders one "key: value" line per field.
func (r KeypointResult) Text() string {
	var b strings.Builder
	line := func(k string, v float64) { fmt.Fprintf(&b, "%s: %.6f\n", k, v) }

	line("x", r.X)
	line("y", r.Y)
	line("weight", r.Weight)
	fmt.Fprintf(&b, "constraint_point_id: %d\n", r.ConstraintPointID)
	line("a11", r.A11)
	line("a12", r.A12)
	line("a21", r.A21)
	line("a22", r.A22)
	line("scale_x", r.ScaleX)
	line("scale_y", r.ScaleY)
	line("scale", r.Scale)
	line("orientation", r.Orientation)
	line("shear", r.Shear)

	return b.String()
}

func clean(v float64) float64 {
	if v == 0 {
		return 0
	}
	return v
}

// jsonFloat encodes NaN and ±Inf as the strings "NaN", "+Inf" and "-Inf",
// which encoding/json rejects as numbers.
type jsonFloat float64

func (f jsonFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	switch {
	case math.IsNaN(v):
		return []byte(`"NaN"`), nil
	case math.IsInf(v, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(v, -1):
		return []byte(`"-Inf"`), nil
	}
	return json.Marshal(v)
}

// MarshalJSON keeps raw or +Inf-scaled matrices printable: the result of any
// accepted input decomposes to values json can carry.
func (r KeypointResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		X                 jsonFloat `json:"x"`
		Y                 jsonFloat `json:"y"`
		Weight            jsonFloat `json:"weight"`
		ConstraintPointID int       `json:"constraint_point_id"`
		A11               jsonFloat `json:"a11"`
		A12               jsonFloat `json:"a12"`
		A21               jsonFloat `json:"a21"`
		A22               jsonFloat `json:"a22"`
		ScaleX            jsonFloat `json:"scale_x"`
		ScaleY            jsonFloat `json:"scale_y"`
		Scale             jsonFloat `json:"scale"`
		Orientation       jsonFloat `json:"orientation"`
		Shear             jsonFloat `json:"shear"`
	}{
		X:                 jsonFloat(r.X),
		Y:                 jsonFloat(r.Y),
		Weight:            jsonFloat(r.Weight),
		ConstraintPointID: r.ConstraintPointID,
		A11:               jsonFloat(r.A11),
		A12:               jsonFloat(r.A12),
		A21:               jsonFloat(r.A21),
		A22:               jsonFloat(r.A22),
		ScaleX:            jsonFloat(r.ScaleX),
		ScaleY:            jsonFloat(r.ScaleY),
		Scale:             jsonFloat(r.Scale),
		Orientation:       jsonFloat(r.Orientation),
		Shear:             jsonFloat(r.Shear),
	})
}
