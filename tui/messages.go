package tui

import "github.com/young1lin/tableview/internal/parser"

// NavigateMsg asks the model to execute a navigation URL
type NavigateMsg struct {
	URL string
}

// DataFileMsg is sent when the data file has been (re)loaded
type DataFileMsg struct {
	Result parser.Result
}

// ErrorMsg is sent when an error occurs
type ErrorMsg struct {
	Err error
}

// WatcherFailedMsg is sent when the data file watcher fails
type WatcherFailedMsg struct {
	Err error
}

// UpdateAvailableMsg is sent when a newer release exists
type UpdateAvailableMsg struct {
	Current string
	Latest  string
	URL     string
}
