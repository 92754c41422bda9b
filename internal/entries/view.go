// Package entries defines the sink through which element data is presented
// and the sinks used by the command line and the browser.
package entries

// View receives rendered entries grouped under category headers. A header
// may be followed by no entries at all.
type View interface {
	Header(category string)
	Entry(name, value, tip string)
}
