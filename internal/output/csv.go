package output

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/dimas123120093-cloud/Tugas-Besar-Kelompok-6-Teknik-Pemrograman/internal/model"
)

// WriteProjectsCSV writes projects as a delimited table: a header row
// followed by one row per project.
func WriteProjectsCSV(w io.Writer, projects []model.Project) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{
		"id", "name", "description", "estimated_hours", "category",
		"status", "total_logged_hours", "created_at", "updated_at",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, p := range projects {
		record := []string{
			strconv.FormatInt(p.ID, 10),
			p.Name,
			p.Description,
			strconv.FormatFloat(p.EstimatedHours, 'f', -1, 64),
			p.Category,
			string(p.Status),
			strconv.FormatFloat(p.TotalLoggedHours, 'f', -1, 64),
			p.CreatedAt.Format("2006-01-02 15:04:05"),
			p.UpdatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteActivitiesCSV writes activities as a delimited table. Ongoing
// activities have empty end_time and duration_hours cells.
func WriteActivitiesCSV(w io.Writer, activities []model.Activity) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{
		"id", "project_id", "project_name", "start_time", "end_time",
		"duration_hours", "notes",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, a := range activities {
		endTime := ""
		if a.EndTime != nil {
			endTime = a.EndTime.Format("2006-01-02 15:04:05")
		}
		duration := ""
		if a.DurationHours != nil {
			duration = strconv.FormatFloat(*a.DurationHours, 'f', -1, 64)
		}
		record := []string{
			strconv.FormatInt(a.ID, 10),
			strconv.FormatInt(a.ProjectID, 10),
			a.ProjectName,
			a.StartTime.Format("2006-01-02 15:04:05"),
			endTime,
			duration,
			a.Notes,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
