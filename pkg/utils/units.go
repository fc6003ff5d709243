package utils

const (
	PointsPerInch = 72.0
	MMPerInch     = 25.4

	A4_WIDTH_MM  = 210.0
	A4_HEIGHT_MM = 297.0
)

func MMToPt(mm float64) float64 {
	return mm * PointsPerInch / MMPerInch
}

func CMToPt(cm float64) float64 {
	return MMToPt(cm * 10)
}

func PtToMM(pt float64) float64 {
	return pt * MMPerInch / PointsPerInch
}
