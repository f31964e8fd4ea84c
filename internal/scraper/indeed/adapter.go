// Indeed India adapter: query scheme, selector generations and card
// mapping for in.indeed.com search results.

package indeed

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"

	"go-jobboard-automation/internal/normalize"
	"go-jobboard-automation/internal/scraper"
)

const (
	baseURL        = "https://in.indeed.com"
	searchPath     = baseURL + "/jobs"
	resultsPerPage = 15 // Indeed typically shows ~15 per page
)

type Adapter struct {
	Query    string
	Location string
	// SalaryParam is passed through as the salaryType query parameter,
	// in whatever form the operator typed it ("₹32,50,000", "32 LPA").
	SalaryParam string
}

func New(query, location, salaryParam string) *Adapter {
	return &Adapter{Query: query, Location: location, SalaryParam: salaryParam}
}

func (a *Adapter) Name() string           { return "Indeed" }
func (a *Adapter) Source() scraper.Source { return scraper.SourceIndeed }
func (a *Adapter) CardsPerPage() int      { return resultsPerPage }

// Indeed flaps between DOM generations page to page; a dud page is not
// worth the rest of the run.
func (a *Adapter) LoadFailurePolicy() scraper.FailurePolicy { return scraper.SkipPage }

func (a *Adapter) SearchURL(pageIndex int) string {
	params := url.Values{}
	params.Set("q", a.Query)
	params.Set("l", a.Location)
	if a.SalaryParam != "" {
		params.Set("salaryType", a.SalaryParam)
	}
	params.Set("start", strconv.Itoa(pageIndex*resultsPerPage))
	return searchPath + "?" + params.Encode()
}

func (a *Adapter) CardSelectors() []string {
	// newer DOMs use <li data-testid="result">, older ones .job_seen_beacon
	return []string{"li[data-testid='result']", "div.job_seen_beacon"}
}

var (
	titleChain   = scraper.Chain{"h2.jobTitle span", "[data-testid='jobTitle']"}
	companyChain = scraper.Chain{"span.companyName", "span[data-testid='company-name']", "[data-testid='company-name']"}
	linkChain    = scraper.Chain{"a.jcs-JobTitle", "a[data-jk]", "a"}
	locChain     = scraper.Chain{"div.companyLocation", "[data-testid='text-location']"}
	dateChain    = scraper.Chain{"span.date", "[data-testid='myJobsStateDate']"}
	salaryChain  = scraper.Chain{
		"div.metadata div.salary-snippet-container",
		"div.salary-snippet-container",
		"div.salary-snippet",
		"span.salary-snippet-container",
		"[data-testid='attribute_snippet_testid']",
	}
	snippetChain = scraper.Chain{"div.job-snippet"}
)

var jobKeyRe = regexp.MustCompile(`(?i)[?&]jk=([0-9a-f]+)`)

// JobKey pulls the jk parameter most Indeed links carry; it is the
// board's stable listing identifier and our in-run dedup key.
func JobKey(href string) string {
	if href == "" {
		return ""
	}
	if u, err := url.Parse(href); err == nil {
		if jk := u.Query().Get("jk"); jk != "" {
			return jk
		}
	}
	if m := jobKeyRe.FindStringSubmatch(href); m != nil {
		return m[1]
	}
	return ""
}

func (a *Adapter) Extract(card playwright.Locator) (scraper.Listing, string) {
	title, ok := titleChain.Text(card)
	if !ok {
		title = "N/A"
	}
	company, ok := companyChain.Text(card)
	if !ok {
		company = "N/A"
	}

	href, _ := linkChain.Attr(card, "href")
	link := href
	if strings.HasPrefix(href, "/") {
		link = baseURL + href
	}

	city, ok := locChain.Text(card)
	if !ok {
		city = a.Location
	}
	datePosted, ok := dateChain.Text(card)
	if !ok {
		datePosted = time.Now().Format("2006-01-02")
	}

	salaryText, _ := salaryChain.Text(card)
	var salaryMin *int
	if salaryText != "" {
		if v, found := normalize.AnnualMin(salaryText); found {
			salaryMin = &v
		}
	}

	snippet, _ := snippetChain.Text(card)
	years := normalize.MaxYears(snippet)
	var expYears *int
	if years > 0 {
		expYears = &years
	}

	listing := scraper.Listing{
		Title:           title,
		Company:         company,
		URL:             link,
		DatePosted:      datePosted,
		City:            city,
		SalaryText:      salaryText,
		SalaryMinAnnual: salaryMin,
		ExperienceYears: expYears,
		IsSenior:        scraper.IsSenior(title, years),
		Source:          scraper.SourceIndeed,
	}
	return listing, JobKey(href)
}
