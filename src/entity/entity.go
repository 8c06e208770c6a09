package entity

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// 下载结果。State取值见enum.URL*
type PageInfo struct {
	URL        string
	State      uint32
	StatusCode int
	Remark     string // error description, if any
	Content    string // utf-8 decoded body
}

// 分析结果，在PageInfo基础上增加页面摘要与解析好的同域/异域链接
type ParsedPageInfo struct {
	URL     string
	State   uint32
	Remark  string
	Record  PageRecord
	SubURLs []string // absolute, resolved against URL
}

// PageRecord is the crawler's per-page output. It is never modified after
// the analyzer produces it.
type PageRecord struct {
	URL             string   `json:"url"`
	Title           string   `json:"title"`
	MetaDescription string   `json:"meta_description"`
	Paragraphs      []string `json:"paragraphs"`
}

// KeywordCounts maps keyword to weighted count and marshals as a JSON object
// in insertion order.
type KeywordCounts = orderedmap.OrderedMap[string, int]

func NewKeywordCounts() *KeywordCounts {
	return orderedmap.New[string, int]()
}
