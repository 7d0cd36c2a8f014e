package dto

// ReportResponse entrada del catálogo de reportes. Data se llena en vivo
// desde el estado actual del store al momento de listar.
type ReportResponse struct {
	ID     int64          `json:"id"`
	Name   string         `json:"name"`
	Date   string         `json:"date"`
	Type   string         `json:"type"`
	Size   string         `json:"size"`
	Status string         `json:"status"`
	Data   map[string]any `json:"data"`
}
