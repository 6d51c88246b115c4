package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Topbar is the landing navigation with the demo call to action.
func Topbar() g.Node {
	return Nav(
		Class("topbar"),
		Div(
			Class("container flex items-center justify-between"),
			A(Href("/"), Logo()),
			A(
				Href("/#demo-form"),
				Class("btn btn-accent btn-sm"),
				g.Text("Request Demo"),
			),
		),
	)
}

// BackTopbar is shown on secondary pages.
func BackTopbar() g.Node {
	return Nav(
		Class("topbar"),
		Div(
			Class("container flex items-center justify-between"),
			A(Href("/"), Logo()),
			A(
				Href("/"),
				Class("btn btn-ghost btn-sm"),
				Icon("lucide--arrow-left size-4", ""),
				g.Text("Back to Home"),
			),
		),
	)
}
