package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

var tourScreens = map[string]func() g.Node{
	"dashboard":    dashboardScreen,
	"appointments": appointmentsScreen,
	"billing":      billingScreen,
	"whatsapp":     whatsappScreen,
}

// TourScreen renders the mock product screen named by a step's content key.
func TourScreen(content string) g.Node {
	screen, ok := tourScreens[content]
	if !ok {
		return P(Class("text-muted"), g.Text("Preview coming soon."))
	}
	return screen()
}

func statTile(value, label, note, tone string) g.Node {
	return Div(
		Class("tile"),
		Div(Class("tile-value text-"+tone), g.Text(value)),
		Div(Class("text-sm text-muted"), g.Text(label)),
		Div(Class("text-xs mt-1"), g.Text(note)),
	)
}

func activityRow(what, when string) g.Node {
	return Div(
		Class("flex justify-between text-sm"),
		Span(g.Text(what)),
		Span(Class("text-muted"), g.Text(when)),
	)
}

func banner(tone, text string) g.Node {
	return Div(
		Class("banner banner-"+tone),
		Icon("ph--check-circle size-4", ""),
		Span(g.Text(text)),
	)
}

func dashboardScreen() g.Node {
	return Div(
		Class("space-y-4"),
		Div(
			Class("grid sm:grid-cols-3 gap-3"),
			statTile("₹1,24,500", "Today's Revenue", "+15% vs yesterday", "blue"),
			statTile("28", "Appointments", "3 pending", "green"),
			statTile("92%", "Patient Satisfaction", "+2% this week", "purple"),
		),
		Div(
			Class("tile"),
			H4(Class("font-semibold mb-3"), g.Text("Recent Activity")),
			Div(
				Class("space-y-2"),
				activityRow("Dr. Sharma completed consultation", "2 min ago"),
				activityRow("Payment received from Rajesh K.", "5 min ago"),
				activityRow("New appointment booked", "8 min ago"),
			),
		),
	)
}

type appointment struct {
	Icon    string
	Patient string
	Kind    string
	Time    string
	Status  string
	Tone    string
}

var todaysAppointments = []appointment{
	{"ph--clock", "Priya Sharma", "General Checkup", "10:30 AM", "Confirmed", "green"},
	{"ph--bell", "Rajesh Kumar", "Follow-up Visit", "11:15 AM", "Reminder Sent", "yellow"},
	{"ph--user", "Anita Verma", "Consultation", "2:00 PM", "Scheduled", "gray"},
}

func appointmentsScreen() g.Node {
	return Div(
		Class("space-y-4"),
		Div(
			Class("tile"),
			Div(
				Class("flex justify-between mb-3"),
				H4(Class("font-semibold"), g.Text("Today's Schedule")),
				Span(Class("badge badge-outline"), g.Text("28 appointments")),
			),
			Div(
				Class("space-y-2"),
				g.Map(todaysAppointments, func(a appointment) g.Node {
					return Div(
						Class("appointment bg-"+a.Tone+"-soft"),
						Icon(a.Icon+" size-4", ""),
						Div(
							Class("flex-1"),
							Div(Class("font-medium"), g.Text(a.Patient)),
							Div(Class("text-sm text-muted"), g.Text(a.Kind)),
						),
						Div(
							Class("text-right"),
							Div(Class("text-sm font-medium"), g.Text(a.Time)),
							Span(Class("badge badge-"+a.Tone), g.Text(a.Status)),
						),
					)
				}),
			),
		),
		banner("green", "Auto-reminder sent to 5 patients via WhatsApp"),
	)
}

var invoiceLines = []struct {
	Item   string
	Amount string
}{
	{"Consultation Fee", "₹800"},
	{"Diagnostic Tests", "₹1,200"},
	{"Medicines", "₹350"},
}

func billingScreen() g.Node {
	lines := make([]g.Node, 0, len(invoiceLines))
	for _, l := range invoiceLines {
		lines = append(lines, Div(Class("flex justify-between"), Span(g.Text(l.Item)), Span(g.Text(l.Amount))))
	}

	return Div(
		Class("space-y-4"),
		Div(
			Class("tile"),
			Div(
				Class("flex justify-between mb-3"),
				H4(Class("font-semibold"), g.Text("Invoice #INV-2024-001")),
				Span(Class("badge badge-blue"), g.Text("Paid")),
			),
			Div(
				Class("space-y-2 text-sm"),
				Div(Class("flex justify-between"), Span(g.Text("Patient: Priya Sharma")), Span(g.Text("Date: Today"))),
				g.Group(lines),
				Hr(),
				Div(Class("flex justify-between font-semibold"), Span(g.Text("Total Amount")), Span(g.Text("₹2,350"))),
			),
		),
		Div(
			Class("grid grid-cols-2 gap-3"),
			statTile("₹45,680", "Today's Collections", "", "green"),
			statTile("₹8,920", "Pending Payments", "", "blue"),
		),
		banner("blue", "Payment link sent via SMS & WhatsApp"),
	)
}

type messageTemplate struct {
	Title string
	Body  string
	Note  string
	Tone  string
}

var messageTemplates = []messageTemplate{
	{
		Title: "Appointment Reminder",
		Body:  `"Hi Priya, this is a reminder for your appointment tomorrow at 10:30 AM with Dr. Sharma. Please reply CONFIRM or call us."`,
		Note:  "✓ Sent to 15 patients today",
		Tone:  "green",
	},
	{
		Title: "Payment Reminder",
		Body:  `"Dear Rajesh, your payment of ₹2,350 is pending. Pay easily via this link: [payment-link]"`,
		Note:  "⏰ Scheduled for tomorrow",
		Tone:  "blue",
	},
	{
		Title: "Follow-up Care",
		Body:  `"Hello! How are you feeling after yesterday's treatment? Please share any concerns."`,
		Note:  "📋 Auto-sent after consultation",
		Tone:  "purple",
	},
}

func whatsappScreen() g.Node {
	return Div(
		Class("space-y-4"),
		Div(
			Class("tile"),
			H4(
				Class("font-semibold mb-3 flex items-center gap-2"),
				Icon("ph--phone size-4", ""),
				g.Text("Message Templates"),
			),
			Div(
				Class("space-y-2"),
				g.Map(messageTemplates, func(m messageTemplate) g.Node {
					return Div(
						Class("message bg-"+m.Tone+"-soft"),
						Div(Class("text-sm font-medium text-"+m.Tone), g.Text(m.Title)),
						Div(Class("text-sm text-muted"), g.Text(m.Body)),
						Div(Class("text-xs mt-2 text-"+m.Tone), g.Text(m.Note)),
					)
				}),
			),
		),
		Div(
			Class("flex justify-between items-center"),
			banner("green", "60% reduction in no-shows"),
			Span(Class("badge badge-green"), g.Text("Active")),
		),
	)
}
