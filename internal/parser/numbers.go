package parser

import "strconv"

func parseInt(lexeme string) (int64, error) {
	return strconv.ParseInt(lexeme, 10, 64)
}

func parseFloat(lexeme string) (float64, error) {
	return strconv.ParseFloat(lexeme, 64)
}
