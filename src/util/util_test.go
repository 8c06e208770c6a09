package util

import (
	"io/ioutil"
	"net/url"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mridul24agaga/newfinalshitgasgs/src/config"
)

func TestReadConfigDefaults(t *testing.T) {
	var cfg config.Config
	require.NoError(t, ReadConfig("", &cfg))

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 10, cfg.Crawler.MaxPages)
	assert.Equal(t, 5, cfg.Crawler.MaxWorkers)
	assert.Equal(t, uint32(10), cfg.Crawler.Timeout)
	assert.Equal(t, 5, cfg.Crawler.MaxParagraphs)
	assert.Equal(t, "SEOContentGenerator/1.0", cfg.Keywords.UserAgent)
	assert.Equal(t, "all", cfg.Keywords.Subreddit)
	assert.Equal(t, 100, cfg.Keywords.SearchLimit)
	assert.Equal(t, 10, cfg.Keywords.ReplyLimit)
	assert.Equal(t, 100, cfg.Keywords.TopN)
	assert.Equal(t, 5, cfg.Keywords.SeedBonus)
	assert.Equal(t, 1, cfg.Keywords.SeedAbsentWeight)
	assert.Equal(t, "https://oauth.reddit.com", cfg.Reddit.APIURL)
}

func TestReadConfigFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, ioutil.WriteFile(path, []byte(`
log:
  level: warn
crawler:
  max_pages: 25
  max_workers: 2
keywords:
  seed_bonus: 7
`), 0o644))
	t.Setenv("CRAWLER_MAX_WORKERS", "8")

	var cfg config.Config
	require.NoError(t, ReadConfig(path, &cfg))

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 25, cfg.Crawler.MaxPages)
	assert.Equal(t, 8, cfg.Crawler.MaxWorkers)
	assert.Equal(t, 7, cfg.Keywords.SeedBonus)
	assert.Equal(t, 10, cfg.Keywords.ReplyLimit)
}

func TestReadConfigMissingFile(t *testing.T) {
	var cfg config.Config
	assert.Error(t, ReadConfig(filepath.Join(t.TempDir(), "nope.yaml"), &cfg))
}

func TestIsSameDomain(t *testing.T) {
	cases := []struct {
		raw  string
		want bool
	}{
		{"https://example.com/a", true},
		{"http://example.com/a?b=c#d", true},
		{"https://sub.example.com/a", false},
		{"https://example.com:8080/a", false},
		{"mailto:hi@example.com", false},
		{"/relative", false},
		{"javascript:void(0)", false},
	}
	for _, c := range cases {
		u, err := url.Parse(c.raw)
		require.NoError(t, err)
		assert.Equal(t, c.want, IsSameDomain(u, "example.com"), c.raw)
	}
}

func TestGetHost(t *testing.T) {
	h, err := GetHost("http://127.0.0.1:8080/x")
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8080", h)

	_, err = GetHost("http://bad host/")
	assert.Error(t, err)
}
