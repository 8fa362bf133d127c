package listings

import (
	"context"

	"directory-server/models/business"
	"directory-server/util"
)

// FileListingsSource reads listings from a JSON file on disk.
type FileListingsSource struct {
	path string
}

func NewFileListingsSource(path string) *FileListingsSource {
	return &FileListingsSource{path: path}
}

func (s *FileListingsSource) FetchListings(ctx context.Context) ([]business.BusinessListing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return util.ReadBusinessListingsFromJSON(s.path)
}

func (s *FileListingsSource) Name() string {
	return s.path
}
