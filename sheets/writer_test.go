package sheets

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"freelancehunt-scraper/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func readUTF16(t *testing.T, path string) (raw []byte, text string) {
	t.Helper()

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	decoded, err := unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder().Bytes(raw)
	require.NoError(t, err)
	return raw, string(decoded)
}

func TestFilename(t *testing.T) {
	moment := time.Date(2020, time.January, 5, 7, 8, 9, 0, time.Local)
	assert.Equal(t, "result_05012020_070809.csv", Filename(moment))
}

func TestWriter_WriteProjects(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)
	w.now = fixedClock(time.Date(2020, time.March, 14, 15, 9, 26, 0, time.Local))

	projects := []models.Project{
		{
			Title:       "Site redesign",
			Categories:  "",
			Price:       "$50",
			Application: "3",
			Time:        "2 days",
			FinalDate:   "10.01.2020 14:00",
			Link:        "https://freelancehunt.com/projects/1",
		},
		{
			Title:       "Shop, backend",
			Categories:  "PHP, MySQL",
			Price:       "1000 UAH",
			Application: "12",
			Time:        "12 march",
			FinalDate:   "20.03.2020 10:00",
			Link:        "https://freelancehunt.com/projects/2",
		},
	}

	path, err := w.WriteProjects(projects)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "result_14032020_150926.csv"), path)

	raw, text := readUTF16(t, path)
	assert.Equal(t, []byte{0xFF, 0xFE}, raw[:2], "file starts with a UTF-16 LE byte order mark")

	want := "Проэкт,Категории,Цена,Заявки,Открыт,Актуален,Ссылка\r\n" +
		"\r\n" +
		"Site redesign,,$50,3,2 days,10.01.2020 14:00,https://freelancehunt.com/projects/1\r\n" +
		"\"Shop, backend\",\"PHP, MySQL\",1000 UAH,12,12 march,20.03.2020 10:00,https://freelancehunt.com/projects/2\r\n"
	assert.Equal(t, want, text)
}

func TestWriter_WriteProjects_Empty(t *testing.T) {
	w := NewWriter(t.TempDir())

	path, err := w.WriteProjects(nil)
	require.NoError(t, err)

	_, text := readUTF16(t, path)
	assert.Equal(t, "Проэкт,Категории,Цена,Заявки,Открыт,Актуален,Ссылка\r\n\r\n", text)
}

func TestWriter_WriteProjects_Collision(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)
	w.now = fixedClock(time.Date(2021, time.June, 1, 12, 0, 0, 0, time.Local))

	first, err := w.WriteProjects([]models.Project{{Title: "first", Link: "https://freelancehunt.com/p/1"}})
	require.NoError(t, err)

	_, err = w.WriteProjects([]models.Project{{Title: "second", Link: "https://freelancehunt.com/p/2"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrExist)

	// The first file is left untouched
	_, text := readUTF16(t, first)
	assert.Contains(t, text, "first")
	assert.NotContains(t, text, "second")
}

func TestWriter_WriteProjects_MissingDir(t *testing.T) {
	w := NewWriter(filepath.Join(t.TempDir(), "does", "not", "exist"))

	_, err := w.WriteProjects(nil)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestWriter_WriteProjects_FailedWriteRemovesFile(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)
	w.now = fixedClock(time.Date(2022, time.February, 3, 4, 5, 6, 0, time.Local))

	diskFull := errors.New("no space left on device")
	w.encode = func(out io.Writer, projects []models.Project) error {
		if _, err := out.Write([]byte("partial")); err != nil {
			return err
		}
		return diskFull
	}

	_, err := w.WriteProjects([]models.Project{{Title: "lost"}})
	assert.ErrorIs(t, err, diskFull)

	_, err = os.Stat(filepath.Join(dir, "result_03022022_040506.csv"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
