// internal/app/system/csvutil/export.go
package csvutil

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/mnogodumalon/kurs56/internal/domain/models"
)

// WriteCoursesCSV writes courses as CSV with a header row. Prices are left
// blank when unset; start dates are written as stored ("2006-01-02").
func WriteCoursesCSV(w io.Writer, courses []models.Course) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"Title", "Status", "Start Date", "Price"}); err != nil {
		return err
	}

	for _, c := range courses {
		price := ""
		if c.Price != nil {
			price = strconv.FormatFloat(*c.Price, 'f', 2, 64)
		}
		startDate := ""
		if _, ok := c.StartTime(); ok {
			startDate = c.StartDate
		}
		row := []string{
			c.Title,
			models.ParseCourseStatus(c.Status).Label(),
			startDate,
			price,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
