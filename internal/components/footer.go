package components

import (
	"fmt"
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func PageFooter() g.Node {
	return Footer(
		Class("footer"),
		Div(
			Class("container"),
			Div(
				Class("grid grid-cols-2 md:grid-cols-4 gap-8 mb-8"),
				Div(
					Class("col-span-2 md:col-span-1"),
					Logo(),
					P(
						Class("text-sm text-muted mt-4"),
						g.Text("Revolutionizing healthcare through innovative technology solutions."),
					),
				),
				footerColumn("Company",
					A(Href("/contact"), g.Text("Contact Us")),
					A(Href("#"), g.Text("About")),
					A(Href("#"), g.Text("Careers")),
				),
				footerColumn("Legal",
					A(Href("/privacy"), g.Text("Privacy Policy")),
					A(Href("/terms"), g.Text("Terms of Service")),
					A(Href("#"), g.Text("Security")),
				),
				footerColumn("Support",
					A(Href("#"), g.Text("Help Center")),
					A(Href("#"), g.Text("Documentation")),
					A(Href("#"), g.Text("Community")),
				),
			),
			Div(
				Class("border-t pt-8"),
				P(
					Class("text-center text-sm text-muted"),
					g.Text(fmt.Sprintf("© %d Flexxoo Healthcare. All rights reserved.", time.Now().Year())),
				),
			),
		),
	)
}

func footerColumn(title string, links ...g.Node) g.Node {
	items := make([]g.Node, 0, len(links))
	for _, l := range links {
		items = append(items, Li(Class("text-sm"), l))
	}
	return Div(
		H3(Class("font-semibold mb-3"), g.Text(title)),
		Ul(Class("space-y-2"), g.Group(items)),
	)
}

// StickyCTA is the promotional bar pinned to the bottom of the landing page.
func StickyCTA() g.Node {
	return g.Group([]g.Node{
		Div(
			Class("sticky-cta"),
			Div(
				Class("container flex items-center justify-between gap-4"),
				Div(Class("text-sm font-medium"), g.Text("🎉 Limited Time: Free for First 50 Clinics")),
				A(Href("#demo-form"), Class("btn btn-white btn-sm"), g.Text("Get Started Now")),
			),
		),
		Div(Class("sticky-spacer")),
	})
}
