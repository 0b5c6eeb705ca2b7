package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/esawctha/esawctha/internal/router"
	"github.com/esawctha/esawctha/models"
)

// RootModel is the application shell:
// 1) owns the session and is the only place that mutates it
// 2) routes NavigateTo messages through the guard
// 3) handles global Ctrl+C quit
// 4) renders the toast overlay on top of the active page
// 5) delegates all other messages to the active page
//
// Pages receive the session as a read-only [sessionNotice] and emit auth
// actions as messages; they never mutate session state directly.
type RootModel struct {
	pages   map[router.Route]tea.Model
	route   router.Route
	current tea.Model

	session models.Session
	toast   toastModel

	quitByUser bool
}

// NewRootModel registers all pages and opens the start route, which has
// already been guard-approved by the caller.
func NewRootModel(pages map[router.Route]tea.Model, start router.Route, session models.Session) RootModel {
	return RootModel{
		pages:   pages,
		route:   start,
		current: pages[start],
		session: session,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return tea.Batch(r.current.Init(), r.noticeCmd())
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkey for every page.
	if key, ok := msg.(tea.KeyMsg); ok {
		if key.String() == "ctrl+c" {
			r.quitByUser = true
			return r, tea.Quit
		}
	}

	switch m := msg.(type) {
	case NavigateTo:
		return r.navigate(m.Route, m.Payload)

	case authResultMsg:
		return r.finishAuth(m)

	case logoutDoneMsg:
		// Logout is idempotent; even a storage error leaves the in-memory
		// session cleared so the guard stops rendering gated pages.
		r.session = models.Session{}
		next, cmd := r.navigateTo(router.RouteLogin, nil)
		toastCmd := next.toast.show(models.Toast{
			Title:       "Signed Out",
			Description: "You have been signed out.",
		})
		return next, tea.Batch(cmd, toastCmd)

	case toastMsg:
		return r, r.toast.show(m.toast)

	case clearToastMsg:
		r.toast.clear(m)
		return r, nil
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	r.pages[r.route] = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.current == nil {
		return appStyle.Render("E-Sawctha")
	}

	view := r.current.View()
	if overlay := r.toast.View(); overlay != "" {
		view = overlay + "\n" + view
	}
	return appStyle.Render(view)
}

func (r RootModel) navigate(target router.Route, payload interface{}) (tea.Model, tea.Cmd) {
	return r.navigateTo(target, payload)
}

// navigateTo runs the guard for the target route and switches pages.
// Unauthorized targets resolve to a silent redirect, and the redirect target
// goes through the guard again until a route renders: a seller asking for the
// waste-management dashboard bounces via login to their own home. The
// decision table is cycle-free, so the chain terminates. Redirects drop the
// payload.
func (r RootModel) navigateTo(target router.Route, payload interface{}) (RootModel, tea.Cmd) {
	decision := router.Decide(r.session, target)
	for decision.Action == router.Redirect {
		target = decision.Target
		payload = nil
		decision = router.Decide(r.session, target)
	}

	next, exists := r.pages[target]
	if !exists {
		return r, nil
	}

	r.route = target
	r.current = next

	cmds := []tea.Cmd{r.current.Init(), r.noticeCmd()}
	if payload != nil {
		p := payload
		cmds = append(cmds, func() tea.Msg { return p })
	}
	return r, tea.Batch(cmds...)
}

// finishAuth completes a login or signup: adopts the new session, shows the
// outcome toast, and lands the user on their role's home page. On failure
// the session stays untouched and the active page keeps rendering. The
// result reaches the originating form either way so it re-enables its
// submit control for the next visit.
func (r RootModel) finishAuth(m authResultMsg) (tea.Model, tea.Cmd) {
	if m.err != nil {
		toastCmd := r.toast.show(authErrorToast(m))

		updated, cmd := r.current.Update(m)
		r.current = updated
		r.pages[r.route] = updated
		return r, tea.Batch(toastCmd, cmd)
	}

	r.session = m.session

	updated, formCmd := r.current.Update(m)
	r.current = updated
	r.pages[r.route] = updated

	title := "Login Successful"
	description := "Welcome back, " + m.session.User.Name + "!"
	if m.signup {
		title = "Account Created"
		description = "Welcome to E-Sawctha, " + m.session.User.Name + "!"
	}

	next, cmd := r.navigateTo(router.HomeFor(r.session), nil)
	toastCmd := next.toast.show(models.Toast{
		Title:       title,
		Description: description,
	})
	return next, tea.Batch(cmd, formCmd, toastCmd)
}

func (r RootModel) noticeCmd() tea.Cmd {
	session := r.session
	return func() tea.Msg { return sessionNotice{session: session} }
}
