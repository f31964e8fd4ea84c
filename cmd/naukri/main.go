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
	"go-jobboard-automation/internal/reporter"
	"go-jobboard-automation/internal/scraper"
	"go-jobboard-automation/internal/scraper/naukri"
	"go-jobboard-automation/internal/store"
	"go-jobboard-automation/utils"
)

type options struct {
	keyword     string
	location    string
	salaryRange string
	experience  int
	jobAge      int
	limit       int
	headless    bool
}

func main() {
	cfg := config.Load()

	opts := options{}
	flag.StringVar(&opts.keyword, "keyword", "java developer, spring boot", "Job keyword")
	flag.StringVar(&opts.location, "location", "india", "Location")
	flag.StringVar(&opts.salaryRange, "salary-range", "25to50", "Salary range filter (Naukri ctcFilter code)")
	flag.IntVar(&opts.experience, "experience", 6, "Minimum experience (years)")
	flag.IntVar(&opts.jobAge, "job-age", 15, "Job posting age (days)")
	flag.IntVar(&opts.limit, "limit", 50, "Number of jobs to fetch")
	flag.BoolVar(&opts.headless, "headless", false, "Run browser headless")
	flag.Parse()

	// run owns all the defers, so the browser and database are released
	// on every exit path
	if err := run(cfg, opts); err != nil {
		log.Fatalf("❌ %v", err)
	}
	log.Println("🏁 Execution finished.")
}

func run(cfg *config.Config, opts options) error {
	log.Printf("🔄 Starting Naukri crawl | keyword=%q | location=%q | limit=%d",
		opts.keyword, opts.location, opts.limit)

	db, err := store.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	mgr, err := browser.Launch(browser.Options{
		Headless:       opts.headless,
		SlowMo:         120 * time.Millisecond,
		UserAgent:      cfg.UserAgent,
		ViewportWidth:  1280,
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
			shots.CaptureAndLog(page, "naukri-captcha", "🚨 Naukri: bot challenge detected")
			log.Println("↪️  Press ENTER here after you solve it to continue...")
		},
	}

	ctrl := &scraper.Controller{
		Adapter:  naukri.New(opts.keyword, opts.location, opts.salaryRange, opts.experience, opts.jobAge),
		Guard:    guard,
		Registry: dedup.NewRegistry(),
		Target:   opts.limit,
	}

	listings, runErr := ctrl.Run(context.Background(), page)
	if runErr != nil {
		log.Printf("⚠️ Crawl ended early: %v", runErr)
	}

	added, err := db.SaveNaukri(listings, store.ReplaceAll)
	if err != nil {
		log.Printf("❌ Failed to save results: %v", err)
	} else {
		log.Printf("🎯 Finished. Saved %d/%d jobs to %s.", added, len(listings), cfg.DBPath)
	}

	if cfg.TelegramToken != "" {
		rep, err := reporter.NewTelegramReporter(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			log.Printf("⚠️ Telegram reporter unavailable: %v", err)
		} else if err := rep.SendSummary("Naukri", len(listings), added, runErr); err != nil {
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
