package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type PageConfig struct {
	Title       string
	Description string
	OGImage     string
	// RefreshURL, when set, reloads the page after RefreshSeconds.
	RefreshURL     string
	RefreshSeconds int
}

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = "Flexxoo - Healthcare Practice Management for India"
	}

	if config.Description == "" {
		config.Description = "The complete SaaS platform for doctors, clinics, and hospitals. Automate workflows, boost revenue, and deliver exceptional patient care."
	}

	if config.OGImage == "" {
		config.OGImage = "/static/images/og-image.svg"
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),
				Meta(g.Attr("property", "og:image"), Content(config.OGImage)),

				g.If(config.RefreshURL != "",
					Meta(
						g.Attr("http-equiv", "refresh"),
						Content(refreshContent(config.RefreshSeconds, config.RefreshURL)),
					),
				),

				Link(Rel("icon"), Href("/static/images/favicon.svg")),
				Link(Rel("stylesheet"), Href("/static/css/site.css")),

				Script(Src("https://code.iconify.design/1/1.0.7/iconify.min.js")),
			),
			Body(
				Class("min-h-screen bg-background text-foreground"),
				g.Group(content),

				Script(Src("/static/js/site.js")),
			),
		),
	})
}

func refreshContent(seconds int, url string) string {
	if seconds <= 0 {
		seconds = 1
	}
	return strconv.Itoa(seconds) + "; url=" + url
}
