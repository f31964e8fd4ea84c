package store

import (
	"fmt"

	"go-jobboard-automation/internal/scraper"
)

const createIndeedTable = `
CREATE TABLE IF NOT EXISTS indeed_jobs (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  title TEXT,
  company TEXT,
  url TEXT,
  date_posted TEXT,
  city TEXT,
  salary_text TEXT,
  salary_min_annual INTEGER,
  is_senior INTEGER
);`

// SaveIndeed writes listings to indeed_jobs, one row per listing. There
// is no per-row guard here: a failed insert fails the whole save. The
// table has no uniqueness constraint; in-run dedup happens upstream via
// the job-key registry.
func (d *DB) SaveIndeed(listings []scraper.Listing, mode WriteMode) error {
	if mode == ReplaceAll {
		if _, err := d.pool.Exec(`DROP TABLE IF EXISTS indeed_jobs;`); err != nil {
			return fmt.Errorf("drop indeed_jobs: %w", err)
		}
	}
	if _, err := d.pool.Exec(createIndeedTable); err != nil {
		return fmt.Errorf("create indeed_jobs: %w", err)
	}

	for _, l := range listings {
		_, err := d.pool.Exec(`
INSERT INTO indeed_jobs (title, company, url, date_posted, city, salary_text, salary_min_annual, is_senior)
VALUES (?, ?, ?, ?, ?, ?, ?, ?);`,
			l.Title, l.Company, l.URL, l.DatePosted, l.City,
			nullableStr(l.SalaryText), nullableInt(l.SalaryMinAnnual), boolToInt(l.IsSenior),
		)
		if err != nil {
			return fmt.Errorf("insert indeed job %q: %w", l.Title, err)
		}
	}
	return nil
}
