package readme

// Section is one table-of-contents entry.
type Section struct {
	Title  string `json:"title"`
	Anchor string `json:"anchor"`
}

// TableOfContents lists the fixed entries, in document order.
var TableOfContents = []Section{
	{Title: "Installation", Anchor: "installation"},
	{Title: "Usage", Anchor: "usage"},
	{Title: "Credits", Anchor: "credits"},
	{Title: "Contributing", Anchor: "contributing"},
	{Title: "Tests", Anchor: "tests"},
	{Title: "Questions", Anchor: "questions"},
	{Title: "License", Anchor: "license"},
}

func tocAnchors() []string {
	out := make([]string, len(TableOfContents))
	for i, section := range TableOfContents {
		out[i] = section.Anchor
	}
	return out
}
