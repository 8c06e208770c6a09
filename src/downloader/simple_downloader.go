// 单次http GET下载，不做重试：非200直接视为失败，由调用方丢弃
package downloader

import (
	"context"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/net/html/charset"

	"github.com/Mridul24agaga/newfinalshitgasgs/src/entity"
	"github.com/Mridul24agaga/newfinalshitgasgs/src/enum"
)

type SimpleDownloader struct {
	logger    *log.Logger
	userAgent string

	client *http.Client
}

func NewSimpleDownloader(logger *log.Logger, timeout uint32, userAgent string) Downloader {

	return &SimpleDownloader{
		logger:    logger,
		userAgent: userAgent,
		client: &http.Client{
			Timeout: time.Duration(timeout) * time.Second,
		},
	}
}

func (s *SimpleDownloader) Download(ctx context.Context, url string) entity.PageInfo {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return s.fail(url, 0, err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return s.fail(url, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logger.WithField("url", url).WithField("status", resp.StatusCode).Debug("skip non-200 page")
		return entity.PageInfo{
			URL:        url,
			State:      enum.URLFailed,
			StatusCode: resp.StatusCode,
			Remark:     fmt.Sprintf("http status %d", resp.StatusCode),
		}
	}

	// 按Content-Type/meta声明转为utf-8
	r, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return s.fail(url, resp.StatusCode, err)
	}
	content, err := ioutil.ReadAll(r)
	if err != nil {
		return s.fail(url, resp.StatusCode, err)
	}

	return entity.PageInfo{
		URL:        url,
		State:      enum.URLFetched,
		StatusCode: resp.StatusCode,
		Content:    string(content),
	}
}

// transport级别错误需要记录日志，但不影响整体爬取
func (s *SimpleDownloader) fail(url string, code int, err error) entity.PageInfo {
	s.logger.WithError(err).WithField("url", url).Warn("fail to download page")
	return entity.PageInfo{
		URL:        url,
		State:      enum.URLFailed,
		StatusCode: code,
		Remark:     err.Error(),
	}
}
