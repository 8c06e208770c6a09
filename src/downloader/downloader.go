package downloader

import (
	"context"

	"github.com/Mridul24agaga/newfinalshitgasgs/src/entity"
)

type Downloader interface {
	Download(context.Context, string) entity.PageInfo
}
