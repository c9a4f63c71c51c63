package sheets

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"freelancehunt-scraper/logger"
	"freelancehunt-scraper/models"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// filenameLayout renders as DDMMYYYY_HHMMSS
const filenameLayout = "02012006_150405"

// Header holds the spreadsheet column labels, in models.Project.Row order
var Header = []string{"Проэкт", "Категории", "Цена", "Заявки", "Открыт", "Актуален", "Ссылка"}

// Writer handles writing projects to a spreadsheet compatible CSV file
type Writer struct {
	dir    string
	now    func() time.Time
	encode func(out io.Writer, projects []models.Project) error
}

// NewWriter creates a writer that puts result files into dir
func NewWriter(dir string) *Writer {
	return &Writer{
		dir:    dir,
		now:    time.Now,
		encode: writeCSV,
	}
}

// Filename returns the result file name for the given moment
func Filename(t time.Time) string {
	return "result_" + t.Format(filenameLayout) + ".csv"
}

// WriteProjects writes projects to a new UTF-16 CSV file and returns its path.
// An already existing file is never overwritten: the error then satisfies
// errors.Is(err, fs.ErrExist).
func (w *Writer) WriteProjects(projects []models.Project) (string, error) {
	path := filepath.Join(w.dir, Filename(w.now()))

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create result file: %w", err)
	}

	// A failed write removes the partial file
	if err := w.encode(file, projects); err != nil {
		file.Close()
		os.Remove(path)
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to close %s: %w", path, err)
	}

	log := logger.Get()
	log.Info().Str("file", path).Int("projects", len(projects)).Msg("Saved projects")
	return path, nil
}

// writeCSV encodes the header, an empty spacer row and one row per project
func writeCSV(file io.Writer, projects []models.Project) error {
	encoder := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	out := transform.NewWriter(file, encoder)

	cw := csv.NewWriter(out)
	cw.UseCRLF = true

	if err := cw.Write(Header); err != nil {
		return err
	}
	if err := cw.Write([]string{}); err != nil {
		return err
	}
	for _, project := range projects {
		if err := cw.Write(project.Row()); err != nil {
			return err
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	return out.Close()
}
