package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"

	"spa_router_echo/internal/navigation"
)

// PageProps is the data shared by every page rendered inside the layout
type PageProps struct {
	Title         string
	Menu          []navigation.MenuItem
	Breadcrumbs   []navigation.BreadcrumbEntry
	Authenticated bool
}

// component adapts a gomponents node to templ.Component so handlers render
// every view the same way: view.Render(ctx, c.Response()).
func component(node g.Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return node.Render(w)
	})
}

// layout wraps page content with the navigation bar, breadcrumbs and footer
func layout(props PageProps, content ...g.Node) g.Node {
	title := "SPA Router"
	if props.Title != "" {
		title = props.Title + " | SPA Router"
	}

	return c.HTML5(c.HTML5Props{
		Title:    title,
		Language: "en",
		Head: []g.Node{
			h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
			h.Link(h.Rel("stylesheet"), h.Href("/static/app.css")),
		},
		Body: []g.Node{
			h.Div(h.Class("layout"),
				navBar(props.Menu),
				breadcrumbs(props.Breadcrumbs),
				h.Main(h.Class("main-content"), g.Group(content)),
				h.Footer(h.Class("footer"),
					h.P(g.Raw("&copy; SPA Routing Demo")),
				),
			),
		},
	})
}

func navBar(items []navigation.MenuItem) g.Node {
	return h.Nav(h.Class("navbar"),
		h.Div(h.Class("nav-container"),
			h.Div(h.Class("nav-brand"), g.Text("SPA Router")),
			h.Ul(h.Class("nav-menu"),
				g.Map(items, func(item navigation.MenuItem) g.Node {
					if item.Action {
						return h.Li(
							h.Form(h.Method("post"), h.Action(item.Path),
								h.Button(h.Type("submit"), h.Class("logout-btn"), g.Text(item.Label)),
							),
						)
					}
					return h.Li(
						h.A(
							h.Href(item.Path),
							c.Classes{"nav-link": true, "active": item.Active},
							g.If(item.Active, h.Aria("current", "page")),
							g.Text(item.Label),
						),
					)
				}),
			),
		),
	)
}

func breadcrumbs(trail []navigation.BreadcrumbEntry) g.Node {
	nodes := make([]g.Node, 0, 2*len(trail))
	for i, entry := range trail {
		if i > 0 {
			nodes = append(nodes, h.Span(h.Class("breadcrumb-separator"), g.Text(" / ")))
		}
		if entry.IsCurrent {
			nodes = append(nodes, h.Span(h.Class("breadcrumb-current"), h.Aria("current", "page"), g.Text(entry.Label)))
			continue
		}
		nodes = append(nodes, h.A(h.Href(entry.Path), h.Class("breadcrumb-link"), g.Text(entry.Label)))
	}
	return h.Nav(h.Class("breadcrumbs"), h.Aria("label", "Breadcrumb"), g.Group(nodes))
}
