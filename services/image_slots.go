package services

import "strings"

// ImageSlots are the image rows of the product form. There is always at least one row.
type ImageSlots []string

// NewImageSlots starts the form from stored URLs, or from one empty row.
func NewImageSlots(urls []string) ImageSlots {
	if len(urls) == 0 {
		return ImageSlots{""}
	}
	return append(ImageSlots(nil), urls...)
}

// Add appends an empty row.
func (s ImageSlots) Add() ImageSlots {
	return append(append(ImageSlots(nil), s...), "")
}

// Remove drops row i unless it is the last remaining row or i is out of range.
func (s ImageSlots) Remove(i int) ImageSlots {
	if len(s) <= 1 || i < 0 || i >= len(s) {
		return s
	}
	out := make(ImageSlots, 0, len(s)-1)
	out = append(out, s[:i]...)
	return append(out, s[i+1:]...)
}

// Set stores an uploaded URL in row i. Out-of-range rows leave the slots unchanged.
func (s ImageSlots) Set(i int, url string) ImageSlots {
	if i < 0 || i >= len(s) {
		return s
	}
	out := append(ImageSlots(nil), s...)
	out[i] = url
	return out
}

// URLs drops blank rows; when nothing is left the placeholder stands in.
func (s ImageSlots) URLs(placeholder string) []string {
	urls := make([]string, 0, len(s))
	for _, url := range s {
		if strings.TrimSpace(url) != "" {
			urls = append(urls, url)
		}
	}
	if len(urls) == 0 {
		return []string{placeholder}
	}
	return urls
}
