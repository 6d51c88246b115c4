package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/flexxoo/website/domain/leads"
)

type ContactFormState struct {
	Values leads.ContactMessage
	Flash  *Flash
}

type contactChannel struct {
	Icon     string
	Title    string
	Subtitle string
	Value    string
	Href     string
}

var contactChannels = []contactChannel{
	{"lucide--phone", "Call Us", "Mon-Fri from 8am to 8pm", "+91 6362665904", "tel:+916362665904"},
	{"lucide--mail", "Email Us", "We'll respond within 24 hours", "admin@flexxoo.com", "mailto:admin@flexxoo.com"},
	{"lucide--map-pin", "Visit Us", "Come say hello at our HQ", "27-620, Ramnagar Colony, Chittoor - 517001", ""},
}

func ContactPage(state ContactFormState) g.Node {
	return Main(
		Class("section pt-24"),
		Div(
			Class("container"),
			Div(
				Class("text-center mb-12"),
				H1(
					Class("hero-title"),
					g.Text("Get in "),
					Span(Class("text-primary"), g.Text("Touch")),
				),
				P(Class("lead"), g.Text("Let's Start a Conversation")),
			),
			Div(
				Class("grid lg:grid-cols-3 gap-8"),
				Div(
					Class("space-y-4"),
					g.Map(contactChannels, contactCard),
					Div(
						Class("card"),
						H3(Class("card-title"), g.Text("Support Hours")),
						P(Class("text-sm text-muted"), g.Text("Monday - Friday: 8:00 AM - 8:00 PM")),
						P(Class("text-sm text-muted"), g.Text("Saturday: 9:00 AM - 5:00 PM")),
					),
				),
				Div(
					Class("lg:col-span-2 card shadow-xl"),
					H2(Class("card-title"), g.Text("Send us a Message")),
					FlashMessage(state.Flash),
					contactForm(state.Values),
				),
			),
		),
	)
}

func contactCard(c contactChannel) g.Node {
	value := g.Text(c.Value)
	if c.Href != "" {
		value = A(Href(c.Href), Class("text-primary"), g.Text(c.Value))
	}
	return Div(
		Class("card flex items-start gap-3"),
		IconBadge(c.Icon),
		Div(
			H3(Class("font-semibold"), g.Text(c.Title)),
			P(Class("text-sm text-muted"), g.Text(c.Subtitle)),
			P(Class("font-medium"), value),
		),
	)
}

func contactForm(v leads.ContactMessage) g.Node {
	return Form(
		Method("post"),
		Action("/contact"),
		Class("space-y-4"),
		Div(
			Class("grid sm:grid-cols-2 gap-4"),
			inputField(field{ID: "name", Name: "name", Label: "Full Name", Placeholder: "Dr. John Doe", Value: v.Name, Required: true}),
			inputField(field{ID: "email", Name: "email", Label: "Email Address", Type: "email", Placeholder: "john@example.com", Value: v.Email, Required: true}),
		),
		Div(
			Class("grid sm:grid-cols-2 gap-4"),
			inputField(field{ID: "phone", Name: "phone", Label: "Phone Number", Type: "tel", Placeholder: "+91 6362665904", Value: v.Phone}),
			inputField(field{ID: "subject", Name: "subject", Label: "Subject", Placeholder: "Demo Request", Value: v.Subject, Required: true}),
		),
		textareaField(field{ID: "message", Name: "message", Label: "Message", Placeholder: "Tell us about your healthcare practice and how we can help...", Value: v.Message, Required: true}, 6),
		Button(
			Type("submit"),
			Class("btn btn-accent btn-lg w-full"),
			Icon("lucide--send size-5", ""),
			g.Text("Send Message"),
		),
	)
}
