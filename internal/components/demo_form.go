package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/flexxoo/website/domain/leads"
)

// DemoFormState carries what the visitor typed back into the form after a
// rejected submission; Values are reset once a request went through.
type DemoFormState struct {
	Values leads.DemoRequest
	Flash  *Flash
}

var timeSlots = []string{
	"Morning (9 AM - 12 PM)",
	"Afternoon (12 PM - 4 PM)",
	"Evening (4 PM - 8 PM)",
}

func DemoForm(state DemoFormState) g.Node {
	v := state.Values

	return Section(
		ID("demo-form"),
		Class("section bg-gradient"),
		Div(
			Class("container max-w-2xl"),
			sectionHeading(
				"Ready to Transform Your Practice?",
				"Get a personalized demo and see how Flexxoo can boost your revenue by 25%.",
			),
			Div(
				Class("card shadow-xl"),
				FlashMessage(state.Flash),
				Form(
					Method("post"),
					Action("/demo-request#demo-form"),
					Class("space-y-4"),
					Div(
						Class("grid sm:grid-cols-2 gap-4"),
						inputField(field{ID: "name", Name: "name", Label: "Full Name", Placeholder: "Dr. John Doe", Value: v.Name, Required: true}),
						inputField(field{ID: "email", Name: "email", Label: "Email Address", Type: "email", Placeholder: "doctor@clinic.com", Value: v.Email, Required: true}),
					),
					Div(
						Class("grid sm:grid-cols-2 gap-4"),
						inputField(field{ID: "phone", Name: "phone", Label: "Phone Number", Type: "tel", Placeholder: "+91 6362665904", Value: v.Phone, Required: true}),
						inputField(field{ID: "clinic-name", Name: "clinicName", Label: "Clinic/Hospital Name", Placeholder: "Your Practice Name", Value: v.ClinicName, Required: true}),
					),
					Div(
						Class("grid sm:grid-cols-2 gap-4"),
						inputField(field{ID: "specialty", Name: "specialty", Label: "Specialty", Placeholder: "General Medicine", Value: v.Specialty}),
						inputField(field{ID: "current-system", Name: "currentSystem", Label: "Current System", Placeholder: "Paper records, Excel, ...", Value: v.CurrentSystem}),
					),
					timeSlotSelect(v.TimeSlot),
					textareaField(field{ID: "additional-notes", Name: "additionalNotes", Label: "Additional Notes", Placeholder: "Anything we should know before the demo?", Value: v.AdditionalNotes}, 3),
					Button(
						Type("submit"),
						Class("btn btn-accent btn-lg w-full"),
						g.Text("Request Free Demo"),
						Icon("lucide--arrow-right size-5", ""),
					),
					P(
						Class("text-sm text-center text-muted"),
						g.Text("No spam, unsubscribe at any time. Free demo includes personalized setup."),
					),
				),
			),
		),
	)
}

func timeSlotSelect(selected string) g.Node {
	return Div(
		Class("space-y-2"),
		Label(g.Attr("for", "time-slot"), Class("label"), g.Text("Preferred Time Slot")),
		Select(
			ID("time-slot"),
			Name("timeSlot"),
			Class("input"),
			Option(Value(""), g.Text("Select a time slot")),
			g.Map(timeSlots, func(slot string) g.Node {
				return Option(Value(slot), g.If(slot == selected, Selected()), g.Text(slot))
			}),
		),
	)
}
