package get_boat_calendar

// Request запрос календаря доступности лодки на месяц
type Request struct {
	BoatID int64
	Month  int
	Year   int
}

// DayResponse один день календаря
type DayResponse struct {
	Date      string `json:"date"`
	Available bool   `json:"available"`
}

// Response календарь доступности на месяц
type Response struct {
	BoatID int64         `json:"boatId"`
	Month  int           `json:"month"`
	Year   int           `json:"year"`
	Days   []DayResponse `json:"days"`
}
