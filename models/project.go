package models

// Project represents a single freelancehunt project listing row
type Project struct {
	Title       string
	Categories  string // Empty when the listing carries no category tags
	Price       string
	Application string // Number of applications (bids) on the project
	Time        string // When the project was opened, e.g. "2 days" or "12 march"
	FinalDate   string // Date and time the project stays actual until
	Link        string
}

// Row returns the project fields in export column order
func (p Project) Row() []string {
	return []string{
		p.Title,
		p.Categories,
		p.Price,
		p.Application,
		p.Time,
		p.FinalDate,
		p.Link,
	}
}
