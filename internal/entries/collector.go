package entries

import (
	"encoding/json"
	"fmt"
	"io"
)

// Entry is one recorded row.
type Entry struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Tip   string `json:"tip,omitempty"`
}

// Section groups the entries following a header.
type Section struct {
	Title   string  `json:"title"`
	Entries []Entry `json:"entries"`
}

// Collector records entries in memory.
type Collector struct {
	Sections []Section `json:"sections"`
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Header implements View.
func (c *Collector) Header(category string) {
	c.Sections = append(c.Sections, Section{Title: category})
}

// Entry implements View. Entries before any header go to an untitled
// section.
func (c *Collector) Entry(name, value, tip string) {
	if len(c.Sections) == 0 {
		c.Sections = append(c.Sections, Section{})
	}
	last := &c.Sections[len(c.Sections)-1]
	last.Entries = append(last.Entries, Entry{Name: name, Value: value, Tip: tip})
}

// Trim removes sections without entries.
func (c *Collector) Trim() *Collector {
	kept := c.Sections[:0]
	for _, section := range c.Sections {
		if len(section.Entries) > 0 {
			kept = append(kept, section)
		}
	}
	c.Sections = kept
	return c
}

// Len returns the number of recorded entries.
func (c *Collector) Len() int {
	n := 0
	for _, section := range c.Sections {
		n += len(section.Entries)
	}
	return n
}

// Replay pushes the recorded sections to another view.
func (c *Collector) Replay(view View) {
	for _, section := range c.Sections {
		if section.Title != "" {
			view.Header(section.Title)
		}
		for _, entry := range section.Entries {
			view.Entry(entry.Name, entry.Value, entry.Tip)
		}
	}
}

// WriteJSON encodes the recorded sections as indented JSON.
func (c *Collector) WriteJSON(w io.Writer) error {
	if c.Sections == nil {
		c.Sections = []Section{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("encode entries: %w", err)
	}
	return nil
}
