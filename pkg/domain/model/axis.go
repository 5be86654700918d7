package model

import "fmt"

// targetTickCount is how many date labels the time axis aims for
const targetTickCount = 20

// TickUnit is the unit of a tick interval
type TickUnit string

const TickUnitDay TickUnit = "day"

// TickInterval is the spacing between labeled marks on the time axis
type TickInterval struct {
	Amount int      `json:"amount"`
	Unit   TickUnit `json:"unit"`
}

// NewTickInterval derives a tick interval from the number of data points so
// that roughly 20 labels are shown whatever the milestone length. Series
// shorter than 20 points always get one day.
func NewTickInterval(pointCount int) TickInterval {
	if pointCount < 0 {
		pointCount = 0
	}

	amount := (pointCount + targetTickCount - 1) / targetTickCount
	if amount < 1 {
		amount = 1
	}

	return TickInterval{Amount: amount, Unit: TickUnitDay}
}

// String formats the interval as "1 day" or "N days"
func (i TickInterval) String() string {
	if i.Amount == 1 {
		return fmt.Sprintf("%d %s", i.Amount, i.Unit)
	}
	return fmt.Sprintf("%d %ss", i.Amount, i.Unit)
}

// MarshalJSON adds the display label next to amount and unit
func (i TickInterval) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf(`{"amount":%d,"unit":%q,"label":%q}`, i.Amount, i.Unit, i.String())), nil
}
