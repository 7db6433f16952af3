package extract

import (
	"os"
	"path/filepath"
	"regexp"

	"github.com/PuerkitoBio/goquery"
)

// CategoryPage names a static HTML page to mine for category metadata
type CategoryPage struct {
	File     string
	Category string
}

// CategoryPages are the site pages confirmed to carry usable meta descriptions
var CategoryPages = []CategoryPage{
	{File: "horn-crafts.html", Category: "Horn Crafts"},
	{File: "wooden-crafts.html", Category: "Wooden Crafts"},
	{File: "resin.html", Category: "Resin Products"},
	{File: "buffalo-horn-plates.html", Category: "Horn Crafts"},
	{File: "buffalo-horn-bowls.html", Category: "Horn Crafts"},
	{File: "horn-decor.html", Category: "Horn Crafts"},
}

var absoluteImageRe = regexp.MustCompile(`(?i)"image"\s*:\s*"(https?:[^"']+)"`)

// MineDescriptions parses each category page for its meta description and
// for an absolute "image" URL inside embedded JSON blocks. Results are keyed
// by category; absolute image URLs are keyed as "<category>:image". The first
// page to yield a non-empty description wins for its category. Unreadable or
// missing pages are skipped.
func MineDescriptions(root string, pages []CategoryPage) map[string]string {
	out := make(map[string]string)

	for _, p := range pages {
		f, err := os.Open(filepath.Join(root, p.File))
		if err != nil {
			continue
		}
		doc, err := goquery.NewDocumentFromReader(f)
		f.Close()
		if err != nil {
			continue
		}

		desc := doc.Find(`meta[name="description"]`).AttrOr("content", "")
		if out[p.Category] == "" {
			out[p.Category] = desc
		}

		if m := absoluteImageRe.FindStringSubmatch(doc.Text()); m != nil {
			out[p.Category+":image"] = m[1]
		}
	}
	return out
}
