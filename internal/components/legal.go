package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// LegalDocument is a numbered policy page.
type LegalDocument struct {
	Title       string
	LastUpdated string
	Sections    []LegalSection
}

// LegalSection renders as heading, callout, paragraphs, bullets and finally
// the contact block when present.
type LegalSection struct {
	Heading    string
	Paragraphs []string
	Bullets    []string
	Callout    string
	Contact    []string
}

func LegalPage(doc LegalDocument) g.Node {
	return Main(
		Class("section pt-24"),
		Div(
			Class("container max-w-4xl"),
			Div(
				Class("card shadow-xl legal"),
				H1(Class("section-title"), g.Text(doc.Title)),
				P(Class("text-sm text-muted mb-8"), g.Text("Last updated: "+doc.LastUpdated)),
				g.Map(doc.Sections, legalSection),
			),
		),
	)
}

func legalSection(s LegalSection) g.Node {
	return Section(
		Class("mb-8"),
		H2(Class("legal-heading"), g.Text(s.Heading)),
		g.If(s.Callout != "", Div(Class("callout"), P(g.Text(s.Callout)))),
		g.Map(s.Paragraphs, func(p string) g.Node {
			return P(Class("text-muted mb-3"), g.Text(p))
		}),
		g.If(len(s.Bullets) > 0, Ul(
			Class("legal-list"),
			g.Map(s.Bullets, func(b string) g.Node { return Li(g.Text(b)) }),
		)),
		g.If(len(s.Contact) > 0, legalContact(s.Contact)),
	)
}

func legalContact(lines []string) g.Node {
	nodes := make([]g.Node, 0, len(lines)*2)
	for i, l := range lines {
		if i > 0 {
			nodes = append(nodes, Br())
		}
		nodes = append(nodes, g.Text(l))
	}
	return Div(
		Class("callout"),
		P(Class("font-medium mb-2"), g.Text("Flexxoo Healthcare Solutions")),
		P(Class("text-sm text-muted"), g.Group(nodes)),
	)
}

func PrivacyPolicy(lastUpdated string) LegalDocument {
	return LegalDocument{
		Title:       "Privacy Policy",
		LastUpdated: lastUpdated,
		Sections: []LegalSection{
			{
				Heading:    "1. Introduction",
				Paragraphs: []string{`Flexxoo Healthcare Solutions ("we," "our," or "us") is committed to protecting your privacy. This Privacy Policy explains how we collect, use, disclose, and safeguard your information when you visit our website and use our healthcare practice management platform.`},
			},
			{
				Heading:    "2. Information We Collect",
				Paragraphs: []string{"Personal Information and Automatically Collected Information:"},
				Bullets: []string{
					"Name and contact information (email, phone number)",
					"Professional information (clinic/hospital name, medical specialty)",
					"Demo request details and preferences",
					"IP address and browser information",
					"Website usage data and analytics",
					"Cookies and similar tracking technologies",
				},
			},
			{
				Heading: "3. How We Use Your Information",
				Bullets: []string{
					"To provide and improve our healthcare management services",
					"To respond to demo requests and customer inquiries",
					"To send relevant product updates and healthcare industry insights",
					"To ensure ABDM compliance and regulatory requirements",
					"To analyze website usage and improve user experience",
				},
			},
			{
				Heading: "4. Healthcare Data Protection",
				Callout: "Important: Flexxoo is designed to be ABDM (Ayushman Bharat Digital Mission) compliant. We implement industry-standard encryption, access controls, and audit trails to protect sensitive healthcare information in accordance with Indian healthcare data protection regulations.",
			},
			{
				Heading:    "5. Information Sharing and Disclosure",
				Paragraphs: []string{"We do not sell, trade, or rent your personal information. We may share information in these circumstances:"},
				Bullets: []string{
					"With your explicit consent",
					"To comply with legal obligations or court orders",
					"To protect our rights, property, or safety",
					"With trusted service providers under strict confidentiality agreements",
				},
			},
			{
				Heading:    "6. Data Security",
				Paragraphs: []string{"We implement appropriate technical and organizational security measures including:"},
				Bullets: []string{
					"End-to-end encryption for data transmission",
					"Regular security audits and vulnerability assessments",
					"Access controls and user authentication",
					"Secure cloud infrastructure with backup and disaster recovery",
				},
			},
			{
				Heading:    "7. Your Rights",
				Paragraphs: []string{"You have the right to:"},
				Bullets: []string{
					"Access and review your personal information",
					"Request correction of inaccurate data",
					"Request deletion of your personal information",
					"Opt-out of marketing communications",
					"Data portability (export your data)",
				},
			},
			{
				Heading:    "8. Cookies and Tracking",
				Paragraphs: []string{"We use cookies and similar technologies to enhance your experience, analyze website traffic, and improve our services. You can control cookie preferences through your browser settings."},
			},
			{
				Heading:    "9. Third-Party Services",
				Paragraphs: []string{"Our website may contain links to third-party services. We are not responsible for the privacy practices of these external sites. We encourage you to review their privacy policies."},
			},
			{
				Heading:    "10. Updates to This Policy",
				Paragraphs: []string{"We may update this Privacy Policy to reflect changes in our practices or legal requirements. We will notify you of significant changes via email or website notice."},
			},
			{
				Heading: "11. Contact Information",
				Contact: []string{
					"Email: admin@flexxoo.com",
					"Phone: +91 6362665904",
					"Address: 27-620, Ramnagar Colony, Chittoor - 517001",
					"Data Protection Officer: dpo@flexxoo.com",
				},
			},
		},
	}
}

func TermsOfService(lastUpdated string) LegalDocument {
	return LegalDocument{
		Title:       "Terms of Service",
		LastUpdated: lastUpdated,
		Sections: []LegalSection{
			{
				Heading:    "1. Acceptance of Terms",
				Paragraphs: []string{`By accessing and using Flexxoo healthcare practice management platform ("Service"), you accept and agree to be bound by the terms and provision of this agreement. If you do not agree to abide by these Terms of Service, do not use this Service.`},
			},
			{
				Heading:    "2. Service Description",
				Paragraphs: []string{"Flexxoo provides a comprehensive healthcare practice management platform including:"},
				Bullets: []string{
					"ABDM-compliant digital health records management",
					"Automated billing and payment processing",
					"Patient engagement through WhatsApp integration",
					"Teleconsultation capabilities",
					"Analytics and reporting tools",
					"Practice management workflows",
				},
			},
			{
				Heading: "3. Medical Disclaimers",
				Callout: "Important Medical Disclaimers:",
				Bullets: []string{
					"Not Medical Advice: Flexxoo is a practice management tool and does not provide medical advice, diagnosis, or treatment recommendations.",
					"Professional Responsibility: Healthcare providers remain solely responsible for all medical decisions and patient care.",
					"Compliance Responsibility: Users must ensure their use of Flexxoo complies with local medical regulations and standards.",
					"Results May Vary: Performance improvements (revenue increase, efficiency gains) are estimates based on case studies and may vary by practice.",
					"No Emergency Service: Flexxoo is not designed for emergency medical situations. Always use appropriate emergency services for urgent medical care.",
				},
			},
			{
				Heading:    "4. User Responsibilities",
				Paragraphs: []string{"As a user of Flexxoo, you agree to:"},
				Bullets: []string{
					"Provide accurate and complete information during registration",
					"Maintain the security of your account credentials",
					"Use the Service in compliance with applicable laws and regulations",
					"Respect patient privacy and confidentiality requirements",
					"Not use the Service for any unlawful or prohibited purposes",
					"Maintain appropriate medical licenses and certifications",
				},
			},
			{
				Heading:    "5. ABDM Compliance and Data Protection",
				Paragraphs: []string{"Flexxoo is designed to support ABDM (Ayushman Bharat Digital Mission) compliance. However, users are responsible for:"},
				Bullets: []string{
					"Ensuring proper patient consent for digital health records",
					"Maintaining data accuracy and completeness",
					"Following ABDM guidelines for health data sharing",
					"Implementing appropriate access controls in their practice",
				},
			},
			{
				Heading: "6. Payment Terms",
				Paragraphs: []string{
					"Free Trial: We offer free access for the first 50 clinics as part of our launch promotion. This offer is subject to terms and may be modified or discontinued.",
					"Paid Plans: Subscription fees are billed in advance and are non-refundable except as required by law. We reserve the right to modify pricing with 30 days' notice.",
				},
			},
			{
				Heading:    "7. Intellectual Property",
				Paragraphs: []string{"The Service and its original content, features, and functionality are owned by Flexxoo Healthcare Solutions and are protected by international copyright, trademark, patent, trade secret, and other intellectual property laws."},
			},
			{
				Heading: "8. Limitation of Liability",
				Callout: "Important: In no event shall Flexxoo Healthcare Solutions be liable for any indirect, incidental, special, consequential, or punitive damages, including without limitation, loss of profits, data, use, goodwill, or other intangible losses, resulting from your use of the Service.",
			},
			{
				Heading:    "9. Service Availability",
				Paragraphs: []string{"We strive to maintain 99.9% uptime but cannot guarantee uninterrupted service. We may perform maintenance that temporarily affects availability, with advance notice when possible."},
			},
			{
				Heading:    "10. Termination",
				Paragraphs: []string{"We may terminate or suspend your account and access to the Service at our sole discretion, without prior notice, for conduct that violates these Terms or is harmful to other users, us, or third parties."},
			},
			{
				Heading:    "11. Governing Law",
				Paragraphs: []string{"These Terms shall be interpreted and governed by the laws of India. Any disputes shall be subject to the exclusive jurisdiction of courts in Chittoor, India."},
			},
			{
				Heading: "12. Contact Information",
				Contact: []string{
					"Email: legal@flexxoo.com",
					"Support: support@flexxoo.com",
					"Phone: +91 6362665904",
					"Address: 27-620, Ramnagar Colony, Chittoor - 517001",
				},
			},
			{
				Heading:    "13. Changes to Terms",
				Paragraphs: []string{"We reserve the right to modify these terms at any time. We will notify users of significant changes via email or through the Service. Continued use after changes constitutes acceptance of the new terms."},
			},
		},
	}
}
