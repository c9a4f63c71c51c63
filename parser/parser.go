package parser

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"freelancehunt-scraper/logger"
	"freelancehunt-scraper/models"

	"github.com/PuerkitoBio/goquery"
)

var (
	// ErrParse is returned when the page level structure (projects table,
	// pagination control) is missing
	ErrParse = errors.New("parse error")
	// ErrStructure is returned when a project row lacks a mandatory element
	ErrStructure = errors.New("structure error")
)

// projectsTableClass is compared against the whole class attribute
const projectsTableClass = "table table-normal"

// minCells is the number of cells below which a row is not a project
// (ads, section separators)
const minCells = 3

var strongTags = strings.NewReplacer("<strong>", "", "</strong>", "")

// Parser extracts project data from freelancehunt listing pages
type Parser struct {
	origin string
}

// NewParser creates a new Parser. origin is prepended to the relative
// project links found on the page.
func NewParser(origin string) *Parser {
	return &Parser{
		origin: origin,
	}
}

// ParseHTML extracts projects from a listing page, in document order
func (p *Parser) ParseHTML(htmlContent []byte) ([]models.Project, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse HTML: %v", ErrParse, err)
	}

	table := doc.Find("table").FilterFunction(func(i int, s *goquery.Selection) bool {
		class, _ := s.Attr("class")
		return class == projectsTableClass
	}).First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("%w: table with class %q not found", ErrParse, projectsTableClass)
	}

	log := logger.Get()
	rows := table.Find("tr")
	projects := make([]models.Project, 0, rows.Length())

	// First row is the table header
	for i := 1; i < rows.Length(); i++ {
		cells := rows.Eq(i).Find("td")
		if cells.Length() < minCells {
			log.Debug().Int("row", i).Int("cells", cells.Length()).Msg("Skipping non-project row")
			continue
		}

		project, err := p.extractProject(cells)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		projects = append(projects, project)
	}

	return projects, nil
}

// extractProject builds a project from the cells of a single row.
// Fields are taken by cell position.
func (p *Parser) extractProject(cells *goquery.Selection) (models.Project, error) {
	var project models.Project

	// Cell 0: title anchor and optional category tags
	titleCell := cells.Eq(0)
	anchor, err := find(titleCell, 0, "a")
	if err != nil {
		return project, err
	}
	href, ok := anchor.Attr("href")
	if !ok {
		return project, fmt.Errorf("%w: cell 0: link has no href", ErrStructure)
	}
	titleDiv, err := find(titleCell, 0, "div")
	if err != nil {
		return project, err
	}
	if small := titleDiv.Find("small").First(); small.Length() > 0 {
		project.Categories = strongTags.Replace(small.Text())
	}
	project.Title = anchor.Text()
	project.Link = p.origin + href

	// Cell 1: price
	price, err := find(cells.Eq(1), 1, "span")
	if err != nil {
		return project, err
	}
	project.Price = strings.TrimSpace(price.Text())

	// Cell 2: applications
	application, err := find(cells.Eq(2), 2, "a")
	if err != nil {
		return project, err
	}
	project.Application = application.Text()

	// Cell 3: opened time with optional month qualifier
	timeDiv, err := find(cells.Eq(3), 3, "div")
	if err != nil {
		return project, err
	}
	timeMain, err := find(timeDiv, 3, "h2")
	if err != nil {
		return project, err
	}
	project.Time = timeMain.Text()
	if month := timeDiv.Find("h5").First(); month.Length() > 0 {
		project.Time += " " + month.Text()
	}

	// Cell 4: final date, both parts required
	dateDiv, err := find(cells.Eq(4), 4, "div")
	if err != nil {
		return project, err
	}
	date, err := find(dateDiv, 4, "h2")
	if err != nil {
		return project, err
	}
	hour, err := find(dateDiv, 4, "h5")
	if err != nil {
		return project, err
	}
	project.FinalDate = date.Text() + " " + hour.Text()

	return project, nil
}

// find returns the first element matching selector inside s
func find(s *goquery.Selection, cell int, selector string) (*goquery.Selection, error) {
	if s.Length() == 0 {
		return nil, fmt.Errorf("%w: cell %d is missing", ErrStructure, cell)
	}
	found := s.Find(selector).First()
	if found.Length() == 0 {
		return nil, fmt.Errorf("%w: cell %d: <%s> not found", ErrStructure, cell, selector)
	}
	return found, nil
}
