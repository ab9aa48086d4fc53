package drive

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/drivescout/graph-drive-client/pkg/client"
)

// Item is one drive entry exactly as the server returned it. The fetch
// path never interprets it; the payload is carried through byte for byte.
type Item json.RawMessage

// MarshalJSON returns i as the JSON encoding of i.
func (i Item) MarshalJSON() ([]byte, error) {
	if i == nil {
		return []byte("null"), nil
	}
	return i, nil
}

// UnmarshalJSON sets *i to a copy of data.
func (i *Item) UnmarshalJSON(data []byte) error {
	if i == nil {
		return errors.New("drive.Item: UnmarshalJSON on nil pointer")
	}
	*i = append((*i)[0:0], data...)
	return nil
}

// Page is one response unit: a slice of the result set plus the optional
// continuation link. An empty NextLink is the sole termination signal.
type Page struct {
	Value    []Item `json:"value"`
	NextLink string `json:"@odata.nextLink"`
}

// Collection is the ordered concatenation of items across all fetched
// pages, in page-arrival order then within-page order. An empty result is
// a zero-length Collection, never nil.
type Collection []Item

// DriveItem is the typed view of an item for callers that want the common
// metadata fields instead of raw JSON.
type DriveItem struct {
	ID                   string         `json:"id"`
	Name                 string         `json:"name"`
	Size                 int64          `json:"size"`
	WebURL               string         `json:"webUrl"`
	LastModifiedDateTime time.Time      `json:"lastModifiedDateTime"`
	Folder               *FolderFacet   `json:"folder,omitempty"`
	File                 *FileFacet     `json:"file,omitempty"`
	ParentReference      *ItemReference `json:"parentReference,omitempty"`
}

// FolderFacet marks an item as a folder.
type FolderFacet struct {
	ChildCount int `json:"childCount"`
}

// FileFacet marks an item as a file.
type FileFacet struct {
	MimeType string `json:"mimeType"`
}

// ItemReference locates an item's parent within a drive.
type ItemReference struct {
	DriveID string `json:"driveId"`
	ID      string `json:"id"`
	Path    string `json:"path"`
}

// DriveItems decodes every entry into its typed form, preserving order.
func (c Collection) DriveItems() ([]DriveItem, error) {
	items := make([]DriveItem, 0, len(c))
	for _, raw := range c {
		var item DriveItem
		if err := json.Unmarshal(raw, &item); err != nil {
			return nil, &client.GraphError{Class: client.ErrorClassParse, Body: string(raw), Err: err}
		}
		items = append(items, item)
	}
	return items, nil
}

// DriveInfo is the metadata of the drive resource itself.
type DriveInfo struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	DriveType string     `json:"driveType"`
	Quota     DriveQuota `json:"quota"`
}

// DriveQuota reports drive storage usage in bytes.
type DriveQuota struct {
	Total     int64 `json:"total"`
	Used      int64 `json:"used"`
	Remaining int64 `json:"remaining"`
}
