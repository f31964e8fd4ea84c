// Naukri adapter. Naukri exposes search filters (experience, CTC band,
// posting age) as query parameters, so most narrowing happens server-side
// and the cards carry an explicit experience column.

package naukri

import (
	"net/url"
	"strconv"
	"time"

	"github.com/playwright-community/playwright-go"

	"go-jobboard-automation/internal/normalize"
	"go-jobboard-automation/internal/scraper"
)

const (
	baseURL        = "https://www.naukri.com/java-developer-spring-boot-jobs-in-india"
	resultsPerPage = 20
)

type Adapter struct {
	Keyword     string
	Location    string
	SalaryRange string // Naukri ctcFilter range code, e.g. "25to50"
	Experience  int
	JobAge      int // days
}

func New(keyword, location, salaryRange string, experience, jobAge int) *Adapter {
	return &Adapter{
		Keyword:     keyword,
		Location:    location,
		SalaryRange: salaryRange,
		Experience:  experience,
		JobAge:      jobAge,
	}
}

func (a *Adapter) Name() string           { return "Naukri" }
func (a *Adapter) Source() scraper.Source { return scraper.SourceNaukri }
func (a *Adapter) CardsPerPage() int      { return resultsPerPage }

// A load failure on Naukri has always meant the session is burned
// (redirect to a block page); carrying on just burns more pages.
func (a *Adapter) LoadFailurePolicy() scraper.FailurePolicy { return scraper.AbortRun }

func (a *Adapter) SearchURL(pageIndex int) string {
	params := url.Values{}
	params.Set("k", a.Keyword)
	params.Set("l", a.Location)
	params.Set("experience", strconv.Itoa(a.Experience))
	params.Set("ctcFilter", a.SalaryRange)
	params.Set("jobAge", strconv.Itoa(a.JobAge))
	params.Set("page", strconv.Itoa(pageIndex+1)) // Naukri pages are 1-based
	return baseURL + "?" + params.Encode()
}

func (a *Adapter) CardSelectors() []string {
	return []string{"article.jobTuple", "div.jobTuple", "div.row1"}
}

var (
	titleChain   = scraper.Chain{"a.title", "a.jobTitle", "a[href*='/job-listings']"}
	companyChain = scraper.Chain{"a.subTitle, div.comp-name, span.comp-name", "div.companyInfo span", ".comp-name"}
	locChain     = scraper.Chain{"span.loc", "span.locWdth", ".loc", ".locWdth", ".location"}
	expChain     = scraper.Chain{"span.exp", "span.expwdth", ".exp", ".expwdth", ".experience"}
	salaryChain  = scraper.Chain{"span.salary", "span.sal", ".salaryRange", ".sal"}
)

// Extract maps one result tuple to a Listing. The dedup identifier is
// intentionally empty: Naukri dedup rides entirely on the store's unique
// url constraint.
func (a *Adapter) Extract(card playwright.Locator) (scraper.Listing, string) {
	title, ok := titleChain.Text(card)
	if !ok {
		title = "Unknown"
	}
	link, _ := titleChain.Attr(card, "href")

	company, ok := companyChain.Text(card)
	if !ok {
		company = "Unknown"
	}
	city, ok := locChain.Text(card)
	if !ok {
		city = "Not specified"
	}

	var expYears *int
	if expText, found := expChain.Text(card); found {
		if years, parsed := normalize.LeadingYears(expText); parsed {
			expYears = &years
		}
	}

	salaryText, ok := salaryChain.Text(card)
	if !ok {
		salaryText = "Not specified"
	}
	var salaryMin *int
	if v, found := normalize.AnnualMin(salaryText); found {
		salaryMin = &v
	}

	years := 0
	if expYears != nil {
		years = *expYears
	}

	listing := scraper.Listing{
		Title:           title,
		Company:         company,
		URL:             link,
		DatePosted:      time.Now().Format("2006-01-02"),
		City:            city,
		SalaryText:      salaryText,
		SalaryMinAnnual: salaryMin,
		ExperienceYears: expYears,
		IsSenior:        scraper.IsSenior(title, years),
		Source:          scraper.SourceNaukri,
	}
	return listing, ""
}
