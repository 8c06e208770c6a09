package config

type Config struct {
	Log struct {
		Context bool   `mapstructure:"context"`
		Level   string `mapstructure:"level"`
	} `mapstructure:"log"`

	Crawler struct {
		MaxPages      int    `mapstructure:"max_pages"`
		MaxWorkers    int    `mapstructure:"max_workers"`
		Timeout       uint32 `mapstructure:"timeout"` // seconds, per request
		UserAgent     string `mapstructure:"user_agent"`
		MaxParagraphs int    `mapstructure:"max_paragraphs"`
	} `mapstructure:"crawler"`

	Keywords struct {
		UserAgent        string `mapstructure:"user_agent"`
		Subreddit        string `mapstructure:"subreddit"`
		Sort             string `mapstructure:"sort"`
		SearchLimit      int    `mapstructure:"search_limit"`
		ReplyLimit       int    `mapstructure:"reply_limit"`
		TopN             int    `mapstructure:"top_n"`
		SeedBonus        int    `mapstructure:"seed_bonus"`
		SeedAbsentWeight int    `mapstructure:"seed_absent_weight"`
		Timeout          uint32 `mapstructure:"timeout"` // seconds, per request
	} `mapstructure:"keywords"`

	Reddit struct {
		TokenURL string `mapstructure:"token_url"`
		APIURL   string `mapstructure:"api_url"`
	} `mapstructure:"reddit"`
}

// Defaults maps every config key to its default value. Registering all keys
// with viper also makes them resolvable from the environment.
var Defaults = map[string]interface{}{
	"log.context": false,
	"log.level":   "info",

	"crawler.max_pages":      10,
	"crawler.max_workers":    5,
	"crawler.timeout":        10,
	"crawler.user_agent":     "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
	"crawler.max_paragraphs": 5,

	"keywords.user_agent":         "SEOContentGenerator/1.0",
	"keywords.subreddit":          "all",
	"keywords.sort":               "relevance",
	"keywords.search_limit":       100,
	"keywords.reply_limit":        10,
	"keywords.top_n":              100,
	"keywords.seed_bonus":         5,
	"keywords.seed_absent_weight": 1,
	"keywords.timeout":            10,

	"reddit.token_url": "https://www.reddit.com/api/v1/access_token",
	"reddit.api_url":   "https://oauth.reddit.com",
}
