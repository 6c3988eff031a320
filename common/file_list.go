package common

// APIFileListEntries is a list of file entries
type APIFileListEntries []APIFileListEntry

// APIFileListEntry is a converted file retained by the backend
type APIFileListEntry struct {
	Filename string `json:"filename"`
	Remain   int    `json:"remain"` // seconds before backend-side eviction
}

// APIFileList is the payload of GET /files
type APIFileList struct {
	Files APIFileListEntries `json:"files"`
}
