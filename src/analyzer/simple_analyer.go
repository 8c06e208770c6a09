// 提取页面摘要（title、meta description、前N个非空段落）
// 以及所有a标签href，href会基于页面url补全为绝对地址
package analyzer

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Mridul24agaga/newfinalshitgasgs/src/entity"
	"github.com/Mridul24agaga/newfinalshitgasgs/src/enum"
)

type SimpleAnalyzer struct {
	maxParagraphs int
}

func NewSimpleAnalyzer(maxParagraphs int) Analyzer {

	return &SimpleAnalyzer{
		maxParagraphs: maxParagraphs,
	}
}

func (a *SimpleAnalyzer) Analyze(page entity.PageInfo) entity.ParsedPageInfo {
	var parsedPageInfo = entity.ParsedPageInfo{
		URL:    page.URL,
		State:  page.State,
		Remark: page.Remark,
	}

	if page.State != enum.URLFetched {
		return parsedPageInfo
	}

	base, err := url.Parse(page.URL)
	if err != nil {
		parsedPageInfo.State = enum.URLFailed
		parsedPageInfo.Remark = err.Error()
		return parsedPageInfo
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page.Content))
	if err != nil {
		parsedPageInfo.State = enum.URLFailed
		parsedPageInfo.Remark = err.Error()
		return parsedPageInfo
	}

	record := entity.PageRecord{
		URL:             page.URL,
		Title:           enum.NoTitle,
		MetaDescription: doc.Find(`meta[name="description"]`).First().AttrOr("content", ""),
		Paragraphs:      []string{},
	}
	if t := doc.Find("title").First(); t.Length() > 0 {
		record.Title = strings.TrimSpace(t.Text())
	}

	doc.Find("p").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if len(record.Paragraphs) >= a.maxParagraphs {
			return false
		}
		if txt := strings.TrimSpace(s.Text()); txt != "" {
			record.Paragraphs = append(record.Paragraphs, txt)
		}
		return true
	})
	parsedPageInfo.Record = record

	// 保留页面中出现的顺序，重复链接交由frontier去重
	doc.Find("a[href]").Each(func(_ int, element *goquery.Selection) {
		href, _ := element.Attr("href")
		ref, err := base.Parse(href)
		if err != nil {
			return
		}
		parsedPageInfo.SubURLs = append(parsedPageInfo.SubURLs, ref.String())
	})

	return parsedPageInfo
}
