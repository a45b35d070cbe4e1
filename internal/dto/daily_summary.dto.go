package dto

type DailySummaryDTO struct {
	Date      string  `json:"date"`
	Total     int     `json:"total"`
	Completed int     `json:"completed"`
	NoShow    int     `json:"no_show"`
	Cancelled int     `json:"cancelled"`
	Revenue   float64 `json:"revenue"`
}
