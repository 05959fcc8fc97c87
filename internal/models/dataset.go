package models

// Dataset - исходные данные в том виде, в каком их отдаёт хранилище или кэш
type Dataset struct {
	Incidents     []IncidentRecord   `json:"incidents"`
	Neighborhoods []NeighborhoodInfo `json:"neighborhoods"`
}

// ImportResult - число строк, записанных при замене данных
type ImportResult struct {
	Incidents     int64 `json:"incidents"`
	Neighborhoods int64 `json:"neighborhoods"`
}
