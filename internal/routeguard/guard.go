// Package routeguard decides, for a named client view, whether a visitor may
// enter it given only whether they hold a session token. The decision is
// pure: no clock, no storage, no network.
package routeguard

// Route names the client views the guard knows about.
type Route string

const (
	RouteHome         Route = "home"
	RouteLogin        Route = "login"
	RouteAuthCallback Route = "authCallback"
	RouteMedications  Route = "medications"
	RouteStool        Route = "stool"
	RouteDaily        Route = "daily"
	RouteMemos        Route = "memos"
	RouteFinance      Route = "finance"
	RoutePomodoro     Route = "pomodoro"
	RouteProfile      Route = "profile"
)

// Decision is the guard's verdict for one evaluation.
type Decision int

const (
	// Allow lets the visitor enter the requested view.
	Allow Decision = iota
	// RedirectLogin sends the visitor to the login view instead.
	RedirectLogin
)

// requiresAuth marks the views that need a session token. The login view and
// the OAuth callback are deliberately absent: the callback must stay
// reachable mid-login, when no token exists yet.
var requiresAuth = map[Route]bool{
	RouteHome:        true,
	RouteMedications: true,
	RouteStool:       true,
	RouteDaily:       true,
	RouteMemos:       true,
	RouteFinance:     true,
	RoutePomodoro:    true,
	RouteProfile:     true,
}

// Decide returns the verdict for one navigation. Unknown routes are treated
// as protected.
func Decide(route Route, hasToken bool) Decision {
	if route == RouteLogin || route == RouteAuthCallback {
		return Allow
	}
	protected, known := requiresAuth[route]
	if (protected || !known) && !hasToken {
		return RedirectLogin
	}
	return Allow
}
