package components

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Logo() g.Node {
	return Div(
		Class("flex items-center gap-2"),
		Div(
			Class("logo-mark"),
			Span(g.Text("F")),
		),
		Span(
			Class("text-xl font-bold text-primary"),
			g.Text("Flexxoo"),
		),
	)
}

func convertIconName(iconClass string) string {
	parts := strings.Fields(iconClass)
	return strings.Replace(parts[0], "--", ":", 1)
}

func extractSizeClasses(iconClass string) string {
	parts := strings.Fields(iconClass)
	if len(parts) > 1 {
		return strings.Join(parts[1:], " ")
	}
	return ""
}

// Icon renders an iconify icon from a "set--name size-4" class string.
func Icon(iconClass, ariaLabel string) g.Node {
	iconName := convertIconName(iconClass)
	classes := "iconify inline-block"
	if sizeClasses := extractSizeClasses(iconClass); sizeClasses != "" {
		classes = fmt.Sprintf("iconify inline-block %s", sizeClasses)
	}

	if ariaLabel != "" {
		return Span(
			Class(classes),
			g.Attr("data-icon", iconName),
			g.Attr("role", "img"),
			g.Attr("aria-label", ariaLabel),
		)
	}

	return Span(
		Class(classes),
		g.Attr("data-icon", iconName),
		g.Attr("aria-hidden", "true"),
	)
}

func IconBadge(icon string) g.Node {
	return Span(
		Class("icon-badge"),
		Icon(icon+" size-6", ""),
	)
}

// FlashKind selects the styling of a Flash message.
type FlashKind string

const (
	FlashSuccess FlashKind = "success"
	FlashError   FlashKind = "error"
)

// Flash is a one-off notice shown above a form after it was submitted.
type Flash struct {
	Kind    FlashKind
	Message string
}

func FlashMessage(f *Flash) g.Node {
	if f == nil || f.Message == "" {
		return nil
	}
	icon := "lucide--check-circle size-5"
	if f.Kind == FlashError {
		icon = "lucide--alert-circle size-5"
	}
	return Div(
		Class("flash flash-"+string(f.Kind)),
		g.Attr("role", "alert"),
		Icon(icon, ""),
		Span(g.Text(f.Message)),
	)
}

func CheckItem(text string) g.Node {
	return Div(
		Class("flex items-center gap-2"),
		Icon("lucide--check-circle text-accent size-4", ""),
		Span(g.Text(text)),
	)
}

// field is a labelled form control.
type field struct {
	ID          string
	Name        string
	Label       string
	Type        string
	Placeholder string
	Value       string
	Required    bool
}

func inputField(f field) g.Node {
	return Div(
		Class("space-y-2"),
		Label(g.Attr("for", f.ID), Class("label"), g.Text(f.Label)),
		Input(
			ID(f.ID),
			Name(f.Name),
			Type(valueOr(f.Type, "text")),
			Placeholder(f.Placeholder),
			Value(f.Value),
			Class("input"),
			g.If(f.Required, Required()),
		),
	)
}

func textareaField(f field, rows int) g.Node {
	return Div(
		Class("space-y-2"),
		Label(g.Attr("for", f.ID), Class("label"), g.Text(f.Label)),
		Textarea(
			ID(f.ID),
			Name(f.Name),
			Placeholder(f.Placeholder),
			Rows(fmt.Sprint(rows)),
			Class("textarea"),
			g.If(f.Required, Required()),
			g.Text(f.Value),
		),
	)
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
