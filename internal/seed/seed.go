// Package seed fills the store with realistic sample data so the
// analysis features can be tried out immediately.
package seed

import (
	"context"
	"math/rand"
	"time"

	"github.com/dimas123120093-cloud/Tugas-Besar-Kelompok-6-Teknik-Pemrograman/internal/logging"
	"github.com/dimas123120093-cloud/Tugas-Besar-Kelompok-6-Teknik-Pemrograman/internal/model"
	"github.com/dimas123120093-cloud/Tugas-Besar-Kelompok-6-Teknik-Pemrograman/internal/storage"
)

var sampleProjects = []model.Project{
	{
		Name:           "Java Sea Seismic Data Processing",
		Description:    "Processing and interpretation of 2D seismic data for subsurface structure identification in the northern Java Sea",
		EstimatedHours: 45,
		Category:       "Seismic Data Processing",
	},
	{
		Name:           "Kamojang Geothermal Gravity Survey",
		Description:    "Measurement and interpretation of gravity data for geothermal exploration in the Kamojang area, West Java",
		EstimatedHours: 30,
		Category:       "Gravity Data Interpretation",
	},
	{
		Name:           "Bandung Aquifer Resistivity Modeling",
		Description:    "2D resistivity modeling for aquifer mapping in the Bandung basin",
		EstimatedHours: 25,
		Category:       "Resistivity Modeling",
	},
	{
		Name:           "Well Log Analysis Exploration Well X-1",
		Description:    "Well log interpretation for reservoir characterization and prospect zone identification",
		EstimatedHours: 35,
		Category:       "Well Log Analysis",
	},
	{
		Name:           "Thesis Report - Chapter 3 Methodology",
		Description:    "Writing the methodology chapter of a thesis on the seismic refraction method",
		EstimatedHours: 20,
		Category:       "Report Writing",
	},
	{
		Name:           "Geoelectric Field Practicum",
		Description:    "Schlumberger-array geoelectric measurements at the campus practicum site",
		EstimatedHours: 15,
		Category:       "Field Measurement",
	},
}

var sampleNotes = []string{
	"Quality control of raw data",
	"Preprocessing and noise filtering",
	"Picking horizon reflectors",
	"Terrain and elevation corrections",
	"Producing the Bouguer anomaly map",
	"2D inversion modeling",
	"Interpreting modeling results",
	"Literature review",
	"Discussion with supervisor",
	"Revisions based on feedback",
	"Documenting processing results",
	"Preparing progress presentation",
	"Parameter sensitivity analysis",
	"Validating the model against well data",
	"Writing report draft",
	"Instrument calibration",
	"Field data acquisition",
	"Loading data into software",
	"Building cross-sections",
	"Well-to-well correlation",
}

// Summary counts what Run inserted. Activities is the total number of
// inserted activities; Ongoing says how many of them are still running.
type Summary struct {
	Projects   int
	Activities int
	Ongoing    int
}

// Run inserts the sample projects and about a month of randomized
// completed activities plus one ongoing activity, all through the
// repositories so the usual validation applies.
func Run(ctx context.Context, db *storage.DB, rng *rand.Rand) (*Summary, error) {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	projects := storage.NewProjectRepo(db)
	activities := storage.NewActivityRepo(db)

	summary := &Summary{}

	var projectIDs []int64
	for i, sample := range sampleProjects {
		p := sample
		id, err := projects.Create(ctx, &p)
		if err != nil {
			return nil, err
		}
		projectIDs = append(projectIDs, id)
		summary.Projects++

		// Vary the statuses so the dashboard has something to show.
		switch i {
		case 3:
			if err := projects.UpdateStatus(ctx, id, model.StatusCompleted); err != nil {
				return nil, err
			}
		case 5:
			if err := projects.UpdateStatus(ctx, id, model.StatusPaused); err != nil {
				return nil, err
			}
		}
	}

	// Earlier projects get logged against more often.
	weights := []int{3, 3, 2, 2, 1, 1}

	now := time.Now()
	startDate := now.AddDate(0, 0, -30)

	for dayOffset := 0; dayOffset <= 30; dayOffset++ {
		day := startDate.AddDate(0, 0, dayOffset)

		// Most weekend days are skipped.
		if wd := day.Weekday(); (wd == time.Saturday || wd == time.Sunday) && rng.Float64() > 0.3 {
			continue
		}

		numActivities := 1 + rng.Intn(4)
		dayStartHour := 8

		for i := 0; i < numActivities; i++ {
			projectID := projectIDs[weightedIndex(rng, weights[:len(projectIDs)])]

			startHour := dayStartHour + rng.Intn(3)
			if startHour > 17 {
				startHour = 17
			}
			durationHours := 0.5 + rng.Float64()*3.5

			start := time.Date(day.Year(), day.Month(), day.Day(),
				startHour, rng.Intn(60), 0, 0, day.Location())
			end := start.Add(time.Duration(durationHours * float64(time.Hour)))

			a := model.NewActivity(projectID, start, sampleNotes[rng.Intn(len(sampleNotes))])
			a.EndTime = &end
			if _, err := activities.Create(ctx, a); err != nil {
				return nil, err
			}
			summary.Activities++

			dayStartHour = end.Hour() + 1
			if dayStartHour >= 18 {
				break
			}
		}
	}

	// One activity still running against the first project.
	ongoing := model.NewActivity(projectIDs[0],
		now.Add(-90*time.Minute), "Working on data QC")
	if _, err := activities.Create(ctx, ongoing); err != nil {
		return nil, err
	}
	summary.Activities++
	summary.Ongoing = 1

	logging.Info("sample data generated",
		logging.KeyCount, summary.Activities,
		"projects", summary.Projects)

	return summary, nil
}

// weightedIndex picks an index with probability proportional to its
// weight.
func weightedIndex(rng *rand.Rand, weights []int) int {
	total := 0
	for _, w := range weights {
		total += w
	}
	n := rng.Intn(total)
	for i, w := range weights {
		n -= w
		if n < 0 {
			return i
		}
	}
	return len(weights) - 1
}
