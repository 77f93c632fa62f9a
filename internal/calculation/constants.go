package calculation

// PlanBaseYear is the fixed reference year for age and deferral arithmetic.
// All client ages are measured against this year; year 0 of every projection
// that starts "today" is this calendar year.
const PlanBaseYear = 2026

// VehicleHorizonYears is the fixed simulation horizon for vehicle items. A
// vehicle schedule always runs this many active years regardless of the
// item's stated age window.
const VehicleHorizonYears = 30

// Medical buffer defaults applied when the item leaves its window unset.
const (
	DefaultMedicalStartAge = 70
	DefaultMedicalEndAge   = 100
)
