package domain

// UnknownDomain is reported when a URL has no usable host.
const UnknownDomain = "unknown"

// URLMetadata is the best-effort description of a web page. Domain is always
// set; Title and Description are nil when the page offered nothing usable.
type URLMetadata struct {
	Domain      string  `json:"domain"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}
