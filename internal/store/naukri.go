package store

import (
	"fmt"
	"log"

	"go-jobboard-automation/internal/scraper"
)

const createNaukriTable = `
CREATE TABLE IF NOT EXISTS naukri_jobs (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  title TEXT,
  company TEXT,
  url TEXT UNIQUE,
  date_posted TEXT,
  city TEXT,
  salary_text TEXT,
  salary_min_annual INTEGER,
  experience_years INTEGER,
  is_senior INTEGER,
  source TEXT
);`

// SaveNaukri writes listings to naukri_jobs with INSERT OR IGNORE
// semantics on the unique url column, which is this board's only dedup
// layer. A failed insert is logged and the save continues; absent
// numeric fields get the table's long-standing placeholders (0 salary,
// -1 experience sentinel). Returns the number of rows actually added.
func (d *DB) SaveNaukri(listings []scraper.Listing, mode WriteMode) (int, error) {
	if mode == ReplaceAll {
		if _, err := d.pool.Exec(`DROP TABLE IF EXISTS naukri_jobs;`); err != nil {
			return 0, fmt.Errorf("drop naukri_jobs: %w", err)
		}
	}
	if _, err := d.pool.Exec(createNaukriTable); err != nil {
		return 0, fmt.Errorf("create naukri_jobs: %w", err)
	}

	added := 0
	for _, l := range listings {
		_, err := d.pool.Exec(`
INSERT OR IGNORE INTO naukri_jobs
(title, company, url, date_posted, city, salary_text, salary_min_annual, experience_years, is_senior, source)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`,
			l.Title, l.Company, l.URL, l.DatePosted, l.City, l.SalaryText,
			intOr(l.SalaryMinAnnual, 0), intOr(l.ExperienceYears, -1),
			boolToInt(l.IsSenior), string(l.Source),
		)
		if err != nil {
			log.Printf("⚠️ Failed saving job %q: %v", l.Title, err)
			continue
		}
		// RowsAffected is unreliable with OR IGNORE across drivers;
		// changes() is authoritative on our single connection.
		var changes int
		if err := d.pool.QueryRow(`SELECT changes();`).Scan(&changes); err == nil && changes > 0 {
			added++
		}
	}
	return added, nil
}
