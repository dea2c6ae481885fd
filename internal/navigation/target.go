package navigation

// Target identifies the view a route renders.
// The set is closed: views switch over every value.
type Target int

const (
	TargetHome Target = iota + 1
	TargetAbout
	TargetProducts
	TargetProductDetail
	TargetContact
	TargetLogin
	TargetDashboard
	TargetNotFound
)

var targetNames = map[Target]string{
	TargetHome:          "home",
	TargetAbout:         "about",
	TargetProducts:      "products",
	TargetProductDetail: "product_detail",
	TargetContact:       "contact",
	TargetLogin:         "login",
	TargetDashboard:     "dashboard",
	TargetNotFound:      "not_found",
}

// String returns the metric/log name of the target
func (t Target) String() string {
	if name, ok := targetNames[t]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether t is one of the declared targets
func (t Target) Valid() bool {
	_, ok := targetNames[t]
	return ok
}
