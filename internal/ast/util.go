package ast

import "strconv"

func strconvFormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
