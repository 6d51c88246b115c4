package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type testimonial struct {
	Name     string
	Role     string
	Content  string
	Rating   int
	Metric   string
	Patients string
	Image    string
}

var testimonials = []testimonial{
	{
		Name:     "Dr. Priya Sharma",
		Role:     "Cardiologist, Heart Care Clinic Mumbai",
		Content:  "Flexxoo completely revolutionized how we operate. Patient wait times dropped by 40%, our revenue jumped 25% in just 3 months, and most importantly - our patients are happier. The ABDM integration saved us countless hours of paperwork.",
		Rating:   5,
		Metric:   "40% faster operations",
		Patients: "2,500+ patients managed",
		Image:    "https://images.unsplash.com/photo-1559839734-2b71ea197ec2?w=150&h=150&fit=crop&crop=face",
	},
	{
		Name:     "Dr. Rajesh Kumar",
		Role:     "Orthopedic Surgeon, Apollo Hospitals",
		Content:  "The WhatsApp automation alone saves my staff 2+ hours daily. The intelligent billing system caught revenue leaks we didn't even know existed. ROI was evident within the first month.",
		Rating:   5,
		Metric:   "₹2.5L+ additional revenue/month",
		Patients: "4,200+ active patients",
		Image:    "https://images.unsplash.com/photo-1612349317150-e413f6a5b16d?w=150&h=150&fit=crop&crop=face",
	},
	{
		Name:     "Dr. Anita Verma",
		Role:     "Pediatrician & Clinic Owner, Bangalore",
		Content:  "Finally, a platform built for Indian healthcare realities. From insurance claims to teleconsults, everything integrates seamlessly. My practice growth has been remarkable since switching to Flexxoo.",
		Rating:   5,
		Metric:   "300% growth in teleconsults",
		Patients: "1,800+ families served",
		Image:    "https://theindianpractitioner.com/wp-content/uploads/2022/03/Gagandeep-Kang-286x300.jpg",
	},
}

var stats = []struct {
	Value string
	Label string
}{
	{"3,000+", "Active Doctors"},
	{"50,000+", "Patients Served"},
	{"4.9/5", "Average Rating"},
	{"₹10Cr+", "Revenue Processed"},
}

func Testimonials() g.Node {
	return Section(
		Class("section bg-gradient"),
		Div(
			Class("container"),
			Div(
				Class("text-center"),
				Span(Class("pill"), Icon("ph--star-fill size-4", ""), g.Text("5-Star Rated Platform")),
			),
			sectionHeading(
				"Trusted by Healthcare Professionals",
				"Join 3,000+ doctors who have transformed their practices with Flexxoo.",
			),
			Div(
				Class("grid sm:grid-cols-2 lg:grid-cols-3 gap-6"),
				g.Map(testimonials, testimonialCard),
			),
			Div(
				Class("grid grid-cols-2 md:grid-cols-4 gap-6 text-center mt-12"),
				g.Map(stats, func(s struct {
					Value string
					Label string
				}) g.Node {
					return Div(
						Div(Class("stat-value"), g.Text(s.Value)),
						Div(Class("text-sm text-muted"), g.Text(s.Label)),
					)
				}),
			),
		),
	)
}

func testimonialCard(t testimonial) g.Node {
	stars := make([]g.Node, 0, t.Rating)
	for range t.Rating {
		stars = append(stars, Icon("ph--star-fill text-yellow size-5", ""))
	}

	return Div(
		Class("card testimonial"),
		Div(Class("flex gap-1 mb-4"), g.Group(stars)),
		g.El("blockquote", Class("quote"), g.Text("\""+t.Content+"\"")),
		Div(
			Class("space-y-2 my-4"),
			Div(Class("metric metric-accent"), g.Text(t.Metric)),
			Div(Class("metric metric-primary"), g.Text(t.Patients)),
		),
		Div(
			Class("flex items-center gap-3 border-t pt-4"),
			Img(Src(t.Image), Alt(t.Name), Class("avatar")),
			Div(
				Div(Class("font-bold"), g.Text(t.Name)),
				Div(Class("text-sm text-muted"), g.Text(t.Role)),
			),
		),
	)
}
