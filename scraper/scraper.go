package scraper

import (
	"fmt"
	"strconv"

	"freelancehunt-scraper/config"
	"freelancehunt-scraper/fetcher"
	"freelancehunt-scraper/logger"
	"freelancehunt-scraper/models"
)

// ProjectParser extracts data from listing pages
type ProjectParser interface {
	ParseHTML(htmlContent []byte) ([]models.Project, error)
	ParsePageCount(htmlContent []byte) (int, error)
}

// ProjectWriter persists the collected projects and returns where they went
type ProjectWriter interface {
	WriteProjects(projects []models.Project) (string, error)
}

// Scraper walks the paginated project listing and exports every project
type Scraper struct {
	fetcher       fetcher.Fetcher
	parser        ProjectParser
	writer        ProjectWriter
	baseURL       string
	lastPageQuery string
}

// NewScraper creates a Scraper for the listing configured in cfg
func NewScraper(cfg *config.Config, f fetcher.Fetcher, p ProjectParser, w ProjectWriter) *Scraper {
	return &Scraper{
		fetcher:       f,
		parser:        p,
		writer:        w,
		baseURL:       cfg.Site.BaseURL,
		lastPageQuery: cfg.Site.LastPageQuery,
	}
}

// ResolvePageCount fetches the last page probe and reads the page count
// from its pagination control
func (s *Scraper) ResolvePageCount() (int, error) {
	body, err := s.fetcher.Fetch(s.baseURL + s.lastPageQuery)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch page count: %w", err)
	}

	count, err := s.parser.ParsePageCount(body)
	if err != nil {
		return 0, fmt.Errorf("failed to read page count: %w", err)
	}
	return count, nil
}

// PageURL returns the listing URL of the given page
func (s *Scraper) PageURL(page int) string {
	return s.baseURL + "?page=" + strconv.Itoa(page)
}

// Run collects projects from pages 1 to count-1 and writes them once at the end.
// The last page number reported by the pagination is not fetched.
// Any failure aborts the run before anything is written.
func (s *Scraper) Run() error {
	log := logger.Get()

	count, err := s.ResolvePageCount()
	if err != nil {
		return err
	}
	log.Info().Int("pages", count).Msgf("Found %d pages", count)

	var projects []models.Project
	for page := 1; page < count; page++ {
		log.Info().Int("page", page).Msgf("Parsing... %.1f%%", float64(page)/float64(count)*100)

		body, err := s.fetcher.Fetch(s.PageURL(page))
		if err != nil {
			return fmt.Errorf("page %d: %w", page, err)
		}

		pageProjects, err := s.parser.ParseHTML(body)
		if err != nil {
			return fmt.Errorf("page %d: %w", page, err)
		}
		log.Debug().Int("page", page).Int("projects", len(pageProjects)).Msg("Parsed page")

		projects = append(projects, pageProjects...)
	}

	path, err := s.writer.WriteProjects(projects)
	if err != nil {
		return err
	}

	log.Info().Msg("Parsing... 100%")
	log.Info().Str("file", path).Int("projects", len(projects)).Msg("Done!")
	return nil
}
