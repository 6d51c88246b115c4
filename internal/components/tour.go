package components

import (
	"fmt"
	"net/url"
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/flexxoo/website/domain/tour"
)

// Tour actions understood by the /demo page
const (
	TourPlay     = "play"
	TourPause    = "pause"
	TourToggle   = "toggle"
	TourNext     = "next"
	TourPrevious = "previous"
	TourGoTo     = "goto"
	TourTick     = "tick"
)

// TourView is everything the tour widget needs to render one frame.
type TourView struct {
	BasePath  string
	Steps     []tour.Step
	State     tour.State
	Progress  float64
	Remaining int
}

func NewTourView(basePath string, p *tour.Player) TourView {
	return TourView{
		BasePath:  basePath,
		Steps:     p.Steps(),
		State:     p.State(),
		Progress:  p.Progress(),
		Remaining: p.Remaining(),
	}
}

// TourURL encodes st plus an action into a link back to the tour page.
func TourURL(basePath string, st tour.State, action string, to int) string {
	q := url.Values{}
	q.Set("step", strconv.Itoa(st.Index))
	q.Set("elapsed", strconv.Itoa(st.ElapsedMs))
	q.Set("playing", strconv.FormatBool(st.Playing))
	if action != "" {
		q.Set("action", action)
	}
	if action == TourGoTo {
		q.Set("to", strconv.Itoa(to))
	}
	return basePath + "?" + q.Encode() + "#tour"
}

func (v TourView) link(action string, to int) string {
	return TourURL(v.BasePath, v.State, action, to)
}

func (v TourView) current() tour.Step {
	return v.Steps[v.State.Index]
}

func ProductTour(v TourView) g.Node {
	playLabel := "Play Demo"
	playIcon := "ph--play size-4"
	if v.State.Playing {
		playLabel = "Pause Demo"
		playIcon = "ph--pause size-4"
	}

	return Section(
		ID("tour"),
		Class("section bg-gradient"),
		Div(
			Class("container max-w-6xl"),
			sectionHeading(
				"See Flexxoo in Action",
				"Take an interactive tour of our platform and discover how Flexxoo transforms healthcare practice management.",
			),
			Div(
				Class("grid lg:grid-cols-3 gap-6"),
				Div(
					Class("space-y-3"),
					Div(
						Class("flex gap-2 mb-4"),
						A(Href(v.link(TourToggle, 0)), Class("btn btn-accent btn-sm"), Icon(playIcon, ""), Span(g.Text(playLabel))),
						A(Href(v.link(TourPrevious, 0)), Class("btn btn-outline btn-sm"), Icon("ph--arrow-left size-4", "Previous")),
						A(Href(v.link(TourNext, 0)), Class("btn btn-outline btn-sm"), Icon("ph--arrow-right size-4", "Next")),
					),
					g.Group(stepCards(v)),
				),
				Div(
					Class("lg:col-span-2 card screen"),
					Div(
						Class("screen-header"),
						Div(
							Class("flex gap-2 mb-2"),
							Span(Class("window-dot bg-red")),
							Span(Class("window-dot bg-yellow")),
							Span(Class("window-dot bg-green")),
						),
						H3(Class("text-white font-semibold"), g.Text(v.current().Title)),
						P(Class("text-white-80 text-sm"), g.Text(v.current().Description)),
					),
					Div(
						Class("screen-body"),
						TourScreen(v.current().Content),
					),
					g.If(v.State.Playing, P(
						Class("text-sm text-muted text-center"),
						g.Text(fmt.Sprintf("Next screen in %ds", v.Remaining)),
					)),
				),
			),
		),
	)
}

func stepCards(v TourView) []g.Node {
	cards := make([]g.Node, 0, len(v.Steps))
	for i, step := range v.Steps {
		active := i == v.State.Index
		class := "card step-card"
		if active {
			class += " step-card-active"
		}
		cards = append(cards, A(
			Href(v.link(TourGoTo, i)),
			Class(class),
			Div(
				Class("flex items-start gap-3"),
				Span(Class("step-icon"), Icon(stepIcon(step.ID)+" size-5", "")),
				Div(
					Class("flex-1"),
					H3(Class("font-semibold text-sm"), g.Text(step.Title)),
					P(Class("text-sm text-muted"), g.Text(step.Description)),
					g.If(active, progressBar(v.Progress)),
				),
			),
		))
	}
	return cards
}

func progressBar(percent float64) g.Node {
	return Div(
		Class("progress mt-2"),
		g.Attr("role", "progressbar"),
		g.Attr("aria-valuenow", strconv.FormatFloat(percent, 'f', 0, 64)),
		Div(
			Class("progress-bar"),
			Style(fmt.Sprintf("width: %.1f%%", percent)),
		),
	)
}

func stepIcon(id string) string {
	switch id {
	case "dashboard":
		return "ph--chart-bar"
	case "appointments":
		return "ph--calendar"
	case "billing":
		return "ph--credit-card"
	case "whatsapp":
		return "ph--chat-circle"
	default:
		return "ph--circle"
	}
}
