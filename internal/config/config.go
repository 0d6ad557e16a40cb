package config

import (
	"os"
	"strconv"
	"time"
)

// Config is loaded once at startup from environment variables. Everything has
// a production default; the service starts with no env at all.
type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	ScraperBase   string // base URL of the page-scraping service
	PDFTextBase   string // base URL of the PDF-to-text service
	AjaxURL       string // upstream bulletin listing endpoint
	Origin        string // origin used to absolutize relative document paths
	LanguagesFile string // optional YAML overriding per-language settings

	ScrapeTimeout  time.Duration // budget for one identifier scrape
	ListingTimeout time.Duration // budget for one listing call (full dataset)
	ExtractTimeout time.Duration // budget for one PDF text extraction

	SnapshotFile     string        // optional local JSON snapshot (empty = disabled)
	SnapshotInterval time.Duration // interval to re-read the snapshot file

	ReloadToken string // bearer token guarding POST /reload (empty = open)
	TrustProxy  bool   // true => resolve client IP from proxy headers

	TextRateBurst  int // token-bucket burst for the text-extraction endpoint
	TextRatePerMin int // token-bucket refill per IP per minute

	// Redis (optional snapshot store, empty addr = disabled)
	RedisAddr        string
	RedisUser        string
	RedisPassword    string
	RedisDB          int
	RedisDialTimeout time.Duration
	RedisIOTimeout   time.Duration
	RedisPoolSize    int
}

func Load() *Config {
	return &Config{
		ListenPort:      getenv("BOAPI_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("BOAPI_SHUTDOWN_TIMEOUT", 5*time.Second),

		LogLevel:  getenv("BOAPI_LOG_LEVEL", "info"),
		PrettyLog: mustBool("BOAPI_PRETTY_LOG", false),

		ScraperBase:   getenv("BOAPI_SCRAPER_BASE", "https://scraper-api-py.vercel.app"),
		PDFTextBase:   getenv("BOAPI_PDF2TEXT_BASE", "https://pdf2text-api-py.vercel.app"),
		AjaxURL:       getenv("BOAPI_AJAX_URL", "https://www.sgg.gov.ma/DesktopModules/MVC/TableListBO/BO/AjaxMethod"),
		Origin:        getenv("BOAPI_ORIGIN", "https://www.sgg.gov.ma"),
		LanguagesFile: getenv("BOAPI_LANGUAGES_FILE", ""),

		ScrapeTimeout:  mustDuration("BOAPI_SCRAPE_TIMEOUT", 10*time.Second),
		ListingTimeout: mustDuration("BOAPI_LISTING_TIMEOUT", 20*time.Second),
		ExtractTimeout: mustDuration("BOAPI_EXTRACT_TIMEOUT", 60*time.Second),

		SnapshotFile:     getenv("BOAPI_SNAPSHOT_FILE", ""),
		SnapshotInterval: mustDuration("BOAPI_SNAPSHOT_INTERVAL", 24*time.Hour),

		ReloadToken: getenv("BOAPI_RELOAD_TOKEN", ""),
		TrustProxy:  mustBool("BOAPI_TRUST_PROXY", true),

		TextRateBurst:  getenvInt("BOAPI_TEXT_RATE_BURST", 5),
		TextRatePerMin: getenvInt("BOAPI_TEXT_RATE_PER_MIN", 10),

		RedisAddr:        getenv("BOAPI_REDIS_ADDR", ""),
		RedisUser:        getenv("BOAPI_REDIS_USERNAME", "default"),
		RedisPassword:    getenv("BOAPI_REDIS_PASSWORD", ""),
		RedisDB:          getenvInt("BOAPI_REDIS_DB", 0),
		RedisDialTimeout: mustDuration("BOAPI_REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisIOTimeout:   mustDuration("BOAPI_REDIS_IO_TIMEOUT", 3*time.Second),
		RedisPoolSize:    getenvInt("BOAPI_REDIS_POOL_SIZE", 10),
	}
}

// RedisEnabled reports whether the optional snapshot store is configured.
func (c *Config) RedisEnabled() bool {
	return c.RedisAddr != ""
}

// helpers

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
