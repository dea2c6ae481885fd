package views

import (
	"strconv"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"spa_router_echo/internal/models"
)

// StaticPage renders a page whose body is pre-rendered markdown
func StaticPage(props PageProps, bodyHTML string) templ.Component {
	return component(layout(props,
		h.Div(h.Class("page-container"), g.Raw(bodyHTML)),
	))
}

// Products renders the product grid
func Products(props PageProps, products []models.Product) templ.Component {
	return component(layout(props,
		h.Div(h.Class("page-container"),
			h.H1(g.Text("Products")),
			h.P(g.Text("Browse our collection of courses and products:")),
			h.Div(h.Class("products-grid"),
				g.Map(products, func(p models.Product) g.Node {
					return h.Div(h.Class("product-card"),
						h.H3(g.Text(p.Name)),
						h.P(h.Class("price"), g.Text(p.Price)),
						h.A(h.Href(productPath(p)), h.Class("btn"), g.Text("View Details")),
					)
				}),
			),
		),
	))
}

// ProductDetail renders one product
func ProductDetail(props PageProps, p models.Product) templ.Component {
	return component(layout(props,
		h.Div(h.Class("page-container"),
			h.Div(h.Class("product-detail"),
				h.H1(g.Text(p.Name)),
				h.P(h.Class("price-large"), g.Text(p.Price)),
				h.P(h.Class("description"), g.Text(p.Description)),
				h.H2(g.Text("What You'll Learn:")),
				h.Ul(h.Class("details-list"),
					g.Map(p.Details, func(d string) g.Node { return h.Li(g.Text(d)) }),
				),
				h.Div(h.Class("button-group"),
					h.A(h.Href("/products"), h.Class("btn btn-secondary"), g.Text("Back to Products")),
				),
			),
		),
	))
}

// ProductNotFound is shown when the route matched but the id has no product
func ProductNotFound(props PageProps) templ.Component {
	return component(layout(props,
		h.Div(h.Class("page-container error"),
			h.H1(g.Text("Product Not Found")),
			h.P(g.Text("The product you're looking for doesn't exist.")),
			h.A(h.Href("/products"), h.Class("btn"), g.Text("Back to Products")),
		),
	))
}

// LoginForm carries the values re-rendered after a rejected login
type LoginForm struct {
	Username string
	Error    string
}

// Login renders the login form
func Login(props PageProps, form LoginForm) templ.Component {
	return component(layout(props,
		h.Div(h.Class("page-container"),
			h.H1(g.Text("Login")),
			h.P(g.Text("Login to access the protected dashboard")),
			g.If(form.Error != "", h.P(h.Class("form-error"), h.Role("alert"), g.Text(form.Error))),
			h.Form(h.Method("post"), h.Action("/login"), h.Class("login-form"),
				h.Div(h.Class("form-group"),
					h.Label(h.For("username"), g.Text("Username:")),
					h.Input(h.Type("text"), h.ID("username"), h.Name("username"), h.Value(form.Username),
						h.Placeholder("Enter username"), h.Required()),
				),
				h.Div(h.Class("form-group"),
					h.Label(h.For("password"), g.Text("Password:")),
					h.Input(h.Type("password"), h.ID("password"), h.Name("password"),
						h.Placeholder("Enter password"), h.Required()),
				),
				h.Button(h.Type("submit"), h.Class("btn btn-primary"), g.Text("Login")),
			),
			h.P(h.Class("hint"), g.Text("Tip: Use any username and password to login for demo purposes")),
		),
	))
}

// Dashboard renders the protected dashboard with its logout action
func Dashboard(props PageProps, bodyHTML string) templ.Component {
	return component(layout(props,
		h.Div(h.Class("page-container"),
			h.Div(h.Class("dashboard-content"), g.Raw(bodyHTML)),
			h.Form(h.Method("post"), h.Action("/logout"),
				h.Button(h.Type("submit"), h.Class("btn btn-danger"), g.Text("Logout")),
			),
		),
	))
}

// NotFound echoes the requested path back with links to known pages
func NotFound(props PageProps, requestedPath string) templ.Component {
	links := []struct{ label, path string }{
		{"Go to Home", "/"},
		{"About Us", "/about"},
		{"Products", "/products"},
		{"Contact", "/contact"},
	}

	return component(layout(props,
		h.Div(h.Class("page-container error-page"),
			h.H1(g.Text("404 - Page Not Found")),
			h.P(g.Text("Sorry, the page you're looking for doesn't exist.")),
			h.P(h.Class("requested-path"),
				g.Text("Requested path: "), h.Code(g.Text(requestedPath)),
			),
			h.Div(h.Class("error-suggestions"),
				h.P(g.Text("Here are some helpful links:")),
				h.Ul(g.Map(links, func(l struct{ label, path string }) g.Node {
					return h.Li(h.A(h.Href(l.path), g.Text(l.label)))
				})),
			),
		),
	))
}

// ErrorProps describes an unexpected failure page
type ErrorProps struct {
	ErrorTitle   string
	ErrorMessage string
}

// ErrorPage renders a generic error inside the layout
func ErrorPage(props PageProps, e ErrorProps) templ.Component {
	return component(layout(props,
		h.Div(h.Class("page-container error-page"),
			h.H1(g.Text(e.ErrorTitle)),
			h.P(g.Text(e.ErrorMessage)),
			h.A(h.Href("/"), h.Class("btn"), g.Text("Go to Home")),
		),
	))
}

func productPath(p models.Product) string {
	return "/products/" + strconv.FormatUint(uint64(p.ID), 10)
}
