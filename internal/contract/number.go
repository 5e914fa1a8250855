package contract

import (
	"encoding/json"
	"math"
)

// Number is a wire numeric. Unparsable form input coerces to NaN in memory
// and travels as JSON null; the evaluation service is the sole validator and
// rejects it there. Nothing is rejected on this side.
type Number float64

func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

func (n *Number) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*n = Number(math.NaN())
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*n = Number(f)
	return nil
}
