package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Hero() g.Node {
	return Section(
		ID("hero"),
		Class("section pt-24"),
		Div(
			Class("container text-center max-w-4xl space-y-6"),
			H1(
				Class("hero-title"),
				g.Text("Transform Your "),
				Span(Class("text-primary"), g.Text("Healthcare Practice")),
				g.Text(" with Flexxoo"),
			),
			P(
				Class("lead"),
				g.Text("The complete SaaS platform for doctors, clinics, and hospitals. Automate workflows, boost revenue, and deliver exceptional patient care."),
			),
			Div(
				Class("flex justify-center gap-3"),
				A(
					Href("#demo-form"),
					Class("btn btn-accent btn-lg"),
					g.Text("Request Demo"),
					Icon("lucide--arrow-right size-5", ""),
				),
				A(
					Href("#features"),
					Class("btn btn-outline btn-lg"),
					g.Text("View Features"),
				),
			),
			Div(
				Class("flex justify-center gap-6 text-sm text-muted"),
				CheckItem("Free for first 50 clinics"),
				CheckItem("ABDM Compliant"),
				CheckItem("24/7 Support"),
			),
		),
	)
}

var (
	commonProblems = []string{
		"Manual appointment scheduling leads to double bookings",
		"Paper records cause data loss and compliance issues",
		"Delayed billing results in 30% revenue leakage",
		"No patient engagement leads to missed appointments",
		"Lack of insights prevents practice optimization",
	}
	flexxooSolutions = []string{
		"Smart scheduling with conflict detection and optimization",
		"ABDM-compliant digital records with cloud backup",
		"Automated billing with 99% accuracy and faster payments",
		"WhatsApp reminders reduce no-shows by 60%",
		"Real-time analytics for data-driven decisions",
	}
)

func ProblemSolution() g.Node {
	return Section(
		Class("section bg-secondary"),
		Div(
			Class("container"),
			sectionHeading(
				"Stop Losing Revenue to Manual Processes",
				"Healthcare practices lose thousands monthly due to inefficient workflows, missed appointments, and billing errors. Flexxoo automates everything.",
			),
			Div(
				Class("grid md:grid-cols-2 gap-8"),
				Div(
					H3(Class("text-destructive font-semibold"), g.Text("Common Problems:")),
					Ul(
						Class("space-y-3"),
						g.Map(commonProblems, func(problem string) g.Node {
							return Li(
								Class("flex items-start gap-3"),
								Span(Class("dot bg-destructive")),
								Span(g.Text(problem)),
							)
						}),
					),
				),
				Div(
					H3(Class("text-accent font-semibold"), g.Text("Flexxoo Solutions:")),
					Ul(
						Class("space-y-3"),
						g.Map(flexxooSolutions, func(solution string) g.Node {
							return Li(
								Class("flex items-start gap-3"),
								Icon("lucide--check-circle text-accent size-5", ""),
								Span(g.Text(solution)),
							)
						}),
					),
				),
			),
		),
	)
}

func sectionHeading(title, subtitle string) g.Node {
	return Div(
		Class("text-center mb-12"),
		H2(Class("section-title"), g.Text(title)),
		P(Class("lead max-w-3xl mx-auto"), g.Text(subtitle)),
	)
}
