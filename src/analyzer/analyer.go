package analyzer

import (
	"github.com/Mridul24agaga/newfinalshitgasgs/src/entity"
)

type Analyzer interface {
	Analyze(entity.PageInfo) entity.ParsedPageInfo
}
