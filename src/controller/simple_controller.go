package controller

import (
	"net/url"

	log "github.com/sirupsen/logrus"

	"github.com/Mridul24agaga/newfinalshitgasgs/src/entity"
	"github.com/Mridul24agaga/newfinalshitgasgs/src/enum"
	"github.com/Mridul24agaga/newfinalshitgasgs/src/frontier"
	"github.com/Mridul24agaga/newfinalshitgasgs/src/util"
)

type SimpleController struct {
	logger   *log.Logger
	baseHost string

	frontier *frontier.Frontier
}

func NewSimpleController(logger *log.Logger, baseHost string, f *frontier.Frontier) Controller {

	return &SimpleController{
		logger:   logger,
		baseHost: baseHost,
		frontier: f,
	}
}

func (c *SimpleController) Process(parsedPage entity.ParsedPageInfo) *entity.PageRecord {
	if parsedPage.State != enum.URLFetched {
		return nil
	}

	var enqueued int
	for _, s := range parsedPage.SubURLs {
		u, err := url.Parse(s)
		if err != nil {
			// analyzer已经解析过一次，理论上不会出现
			c.logger.WithError(err).WithField("url", s).Debug("fail to parse sub url")
			continue
		}
		if !util.IsSameDomain(u, c.baseHost) {
			continue
		}
		if c.frontier.Push(s) {
			enqueued++
		}
	}

	c.logger.WithField("url", parsedPage.URL).WithField("enqueued", enqueued).Debug("page processed")

	record := parsedPage.Record
	return &record
}
