package controller

import (
	"github.com/Mridul24agaga/newfinalshitgasgs/src/entity"
)

// Controller turns an analyzed page into its output record and feeds its
// links back into the crawl. A nil record means the page is dropped.
type Controller interface {
	Process(entity.ParsedPageInfo) *entity.PageRecord
}
