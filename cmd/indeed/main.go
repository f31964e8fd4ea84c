package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go-jobboard-automation/internal/browser"
	"go-jobboard-automation/internal/captcha"
	"go-jobboard-automation/internal/config"
	"go-jobboard-automation/internal/dedup"
	"go-jobboard-automation/internal/filter"
	"go-jobboard-automation/internal/normalize"
	"go-jobboard-automation/internal/reporter"
	"go-jobboard-automation/internal/scraper"
	"go-jobboard-automation/internal/scraper/indeed"
	"go-jobboard-automation/internal/store"
	"go-jobboard-automation/utils"
)

func main() {
	cfg := config.Load()

	query := flag.String("query", "Java Developer", "Search keywords")
	location := flag.String("location", "India", "Location (keep 'India' for all-India)")
	limit := flag.Int("limit", 50, "Target number of jobs to fetch")
	salaryMin := flag.String("salary-min", "₹32,50,000",
		"Minimum starting salary (e.g. 3200000, '₹32,50,000', '32 LPA')")
	flag.Parse()

	// run owns all the defers, so the browser and database are released
	// on every exit path
	if err := run(cfg, *query, *location, *salaryMin, *limit); err != nil {
		log.Fatalf("❌ %v", err)
	}
	log.Println("🏁 Execution finished.")
}

func run(cfg *config.Config, query, location, salaryMin string, limit int) error {
	threshold, _ := normalize.ParseThreshold(salaryMin)
	log.Printf("🔄 Starting Indeed crawl | query=%q | location=%q | limit=%d | salary-min=%q",
		query, location, limit, salaryMin)

	db, err := store.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	//headful to reduce bot detection
	mgr, err := browser.Launch(browser.Options{
		Headless:       false,
		SlowMo:         200 * time.Millisecond,
		UserAgent:      cfg.UserAgent,
		ViewportWidth:  1400,
		ViewportHeight: 900,
	})
	if err != nil {
		return fmt.Errorf("launch browser: %w", err)
	}
	defer mgr.Close()

	page, err := mgr.NewPage()
	if err != nil {
		return fmt.Errorf("create page: %w", err)
	}
	log.Println("✅ Browser initialized successfully!")

	shots := utils.NewScreenShotDebugger(cfg.ScreenshotDir)
	guard := &captcha.Guard{
		Resume:        resumeOnEnter(),
		ResumeTimeout: cfg.CaptchaResumeTimeout(),
		OnSuspect: func() {
			shots.CaptureAndLog(page, "indeed-captcha", "🚨 Indeed: bot challenge detected")
			log.Println("↪️  Press ENTER here after you solve it to continue...")
		},
	}

	ctrl := &scraper.Controller{
		Adapter:    indeed.New(query, location, salaryMin),
		Guard:      guard,
		Registry:   dedup.NewRegistry(),
		Target:     limit,
		NavTimeout: 60 * time.Second,
		CardWait:   20 * time.Second,
	}

	listings, runErr := ctrl.Run(context.Background(), page)
	if runErr != nil {
		log.Printf("⚠️ Crawl ended early: %v", runErr)
	}

	if cfg.EnableSalaryFilter && threshold > 0 {
		before := len(listings)
		listings = filter.MinSalary(listings, threshold)
		log.Printf("🔍 Salary filter: %d -> %d listings (threshold %d)", before, len(listings), threshold)
	}

	collected := len(listings)
	if err := db.SaveIndeed(listings, store.ReplaceAll); err != nil {
		log.Printf("❌ Failed to save results: %v", err)
	} else {
		log.Printf("✅ Saved %d jobs to %s.", collected, cfg.DBPath)
	}

	if cfg.TelegramToken != "" {
		rep, err := reporter.NewTelegramReporter(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			log.Printf("⚠️ Telegram reporter unavailable: %v", err)
		} else if err := rep.SendSummary("Indeed", collected, collected, runErr); err != nil {
			log.Printf("⚠️ Failed to send Telegram summary: %v", err)
		}
	}

	return nil
}

// resumeOnEnter turns ENTER presses on stdin into captcha resume signals.
func resumeOnEnter() <-chan struct{} {
	ch := make(chan struct{})
	go func() {
		reader := bufio.NewReader(os.Stdin)
		for {
			if _, err := reader.ReadString('\n'); err != nil {
				return
			}
			ch <- struct{}{}
		}
	}()
	return ch
}
