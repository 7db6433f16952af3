package extract

import (
	"regexp"
	"sort"
	"strings"

	"github.com/gosimple/slug"

	"github.com/themoonexports/catalog-site/models"
)

var (
	plateFileRe      = regexp.MustCompile(`(?i)buffalo-horn-plates\.[a-z]+$`)
	plateLabelRe     = regexp.MustCompile(`(?i)^(.*?)-buffalo-horn-plates\.[a-z]+$`)
	preferredPlateRe = regexp.MustCompile(`(?i)milk-white-buffalo-horn-plates\.[a-z]+$`)
	trailingDigitsRe = regexp.MustCompile(`\d+$`)
	separatorRe      = regexp.MustCompile(`[-_\s]+`)
)

// plateVariants derives the named variants of the buffalo horn plate family
// from inventory files matching <label>-buffalo-horn-plates.<ext>, ordered by
// semantic color preference then name.
func plateVariants(parentID string, inv *Inventory) []models.Variant {
	var variants []models.Variant
	for _, f := range inv.Files() {
		if !plateFileRe.MatchString(f) {
			continue
		}
		name := cleanPlateLabel(f)
		variants = append(variants, models.Variant{
			ID:    parentID + "-" + slug.Make(name),
			Name:  name,
			Image: imagePath(f),
		})
	}

	sort.SliceStable(variants, func(i, j int) bool {
		wi, wj := plateWeight(variants[i].Name), plateWeight(variants[j].Name)
		if wi != wj {
			return wi < wj
		}
		return variants[i].Name < variants[j].Name
	})
	return variants
}

// cleanPlateLabel turns a plate filename into a display name: the label before
// "-buffalo-horn-plates" with trailing digits stripped (black1 -> black) and
// title-cased. Known limitation: digits embedded elsewhere in the label
// ("black2white") are kept as-is.
func cleanPlateLabel(filename string) string {
	raw := "Natural"
	if m := plateLabelRe.FindStringSubmatch(filename); m != nil && m[1] != "" {
		raw = m[1]
	}
	raw = strings.TrimSpace(trailingDigitsRe.ReplaceAllString(raw, ""))

	words := separatorRe.Split(raw, -1)
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.TrimSpace(strings.Join(words, " "))
}

// plateWeight ranks variant names so the gallery leads with the most
// commercially important finishes
func plateWeight(name string) int {
	s := strings.ToLower(name)
	switch {
	case strings.Contains(s, "milk white"):
		return 0
	case strings.Contains(s, "light white"):
		return 1
	case strings.Contains(s, "black with white"):
		return 2
	case s == "black":
		return 3
	case s == "dark brown":
		return 4
	case s == "brown":
		return 5
	default:
		return 10
	}
}

// attachPlateVariants adds discovered variants to the product, folds their
// images into the gallery, and promotes the milk white plate to the primary
// slot when present.
func attachPlateVariants(p *models.Product, inv *Inventory) {
	variants := plateVariants(p.ID, inv)
	if len(variants) == 0 {
		return
	}
	p.Variants = variants

	inGallery := make(map[string]struct{}, len(p.Images))
	for _, img := range p.Images {
		inGallery[strings.TrimPrefix(img, "images/")] = struct{}{}
	}
	for _, v := range variants {
		base := strings.TrimPrefix(v.Image, "images/")
		if _, ok := inGallery[base]; !ok {
			p.Images = append(p.Images, v.Image)
			inGallery[base] = struct{}{}
		}
	}

	preferred := -1
	for i, img := range p.Images {
		if preferredPlateRe.MatchString(img) {
			preferred = i
			break
		}
	}
	if preferred > 0 {
		img := p.Images[preferred]
		p.Images = append(p.Images[:preferred], p.Images[preferred+1:]...)
		p.Images = append([]string{img}, p.Images...)
	}
	if preferred >= 0 {
		p.Image = p.Images[0]
	}
}
