package export

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PlainText flattens a rendered fragment into plain text for applicant
// tracking systems: header lines, then each section title in upper case
// followed by its items.
func PlainText(fragment string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", &Error{Message: "failed to parse fragment", Cause: err}
	}

	var lines []string
	add := func(prefix, s string) {
		if s = collapse(s); s != "" {
			lines = append(lines, prefix+s)
		}
	}

	header := doc.Find(".header").First()
	add("", header.Find(".name").First().Text())
	add("", header.Find(".title").First().Text())

	var contact []string
	header.Find(".contact-info").Children().Each(func(_ int, s *goquery.Selection) {
		if text := collapse(s.Text()); text != "" {
			contact = append(contact, text)
		}
	})
	add("", strings.Join(contact, " | "))

	doc.Find(".section").Each(func(_ int, section *goquery.Selection) {
		lines = append(lines, "")
		add("", strings.ToUpper(section.Find(".section-title").Text()))

		items := section.Find(".experience-item, .education-item")
		if items.Length() > 0 {
			items.Each(func(_ int, item *goquery.Selection) {
				item.Children().Each(func(i int, field *goquery.Selection) {
					if i == 0 {
						add("- ", field.Text())
					} else {
						add("  ", field.Text())
					}
				})
			})
			return
		}

		if tags := section.Find(".skill-tag"); tags.Length() > 0 {
			add("", strings.Join(tags.Map(func(_ int, s *goquery.Selection) string {
				return collapse(s.Text())
			}), ", "))
			return
		}

		section.Find("p").Each(func(_ int, p *goquery.Selection) {
			add("", p.Text())
		})
	})

	return strings.Join(lines, "\n") + "\n", nil
}

// collapse trims and folds runs of whitespace into single spaces
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
