package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type feature struct {
	Icon        string
	Title       string
	Description string
}

var platformFeatures = []feature{
	{"ph--heart", "ABDM-Ready Digital Records", "Fully compliant electronic health records with ABDM integration for seamless data sharing."},
	{"ph--credit-card", "Billing + Payments", "Automated billing, insurance claims processing, and integrated payment gateway solutions."},
	{"ph--chat-circle", "Patient Reminders via WhatsApp", "Automated appointment reminders and follow-ups through WhatsApp Business API."},
	{"ph--chart-bar", "Clinic Dashboard", "Real-time insights into appointments, revenue, patient flow, and staff performance."},
	{"ph--file-text", "Analytics & Reports", "Comprehensive reporting on practice performance, patient outcomes, and financial metrics."},
	{"ph--video-camera", "Teleconsult Integration", "Built-in video consultation platform with prescription and record management."},
}

func Features() g.Node {
	return Section(
		ID("features"),
		Class("section"),
		Div(
			Class("container"),
			sectionHeading(
				"Everything You Need in One Platform",
				"Comprehensive healthcare management tools designed specifically for Indian medical practices.",
			),
			Div(
				Class("grid sm:grid-cols-2 lg:grid-cols-3 gap-6"),
				g.Map(platformFeatures, func(f feature) g.Node {
					return Div(
						Class("card"),
						Div(
							Class("flex items-center gap-3 mb-4"),
							IconBadge(f.Icon),
							H3(Class("card-title"), g.Text(f.Title)),
						),
						P(Class("text-muted"), g.Text(f.Description)),
					)
				}),
			),
		),
	)
}

type audience struct {
	Icon        string
	Title       string
	Description string
	Benefits    []string
}

var audiences = []audience{
	{
		Icon:        "ph--user",
		Title:       "Independent Doctors",
		Description: "Streamline your solo practice with automated workflows and patient management.",
		Benefits:    []string{"Quick setup", "Affordable pricing", "Mobile-first design"},
	},
	{
		Icon:        "ph--building",
		Title:       "Small Clinics",
		Description: "Manage multiple doctors, staff scheduling, and patient flow efficiently.",
		Benefits:    []string{"Multi-user access", "Appointment coordination", "Revenue optimization"},
	},
	{
		Icon:        "ph--users-three",
		Title:       "Multi-Specialty Hospitals",
		Description: "Enterprise-grade solution for complex healthcare operations.",
		Benefits:    []string{"Department management", "Advanced analytics", "Custom integrations"},
	},
}

func Audiences() g.Node {
	return Section(
		Class("section bg-secondary"),
		Div(
			Class("container"),
			sectionHeading(
				"Built for Every Healthcare Provider",
				"Whether you're a solo practitioner or managing a multi-specialty hospital, Flexxoo scales with your needs.",
			),
			Div(
				Class("grid sm:grid-cols-2 lg:grid-cols-3 gap-6"),
				g.Map(audiences, func(a audience) g.Node {
					return Div(
						Class("card text-center"),
						IconBadge(a.Icon),
						H3(Class("card-title"), g.Text(a.Title)),
						P(Class("text-muted"), g.Text(a.Description)),
						Div(
							Class("space-y-2 mt-4"),
							g.Map(a.Benefits, CheckItem),
						),
					)
				}),
			),
		),
	)
}
