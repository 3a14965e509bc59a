package manifest

import (
	oerrors "github.com/winpack/cli/internal/errors"
	"github.com/winpack/cli/internal/xmltree"
)

// MaxApplicationIDLength is the schema limit for Application@Id.
const MaxApplicationIDLength = 64

const contentURIRulesTag = "uap:ApplicationContentUriRules"

// Application is the first <Application> under <Applications>.
type Application struct {
	m  *Manifest
	el *xmltree.Element
}

// Application returns the application section or a format error.
func (m *Manifest) Application() (Application, error) {
	el, err := m.section(applicationPath, "Application")
	if err != nil {
		return Application{}, err
	}
	return Application{m: m, el: el}, nil
}

// Manifest returns the owning manifest.
func (a Application) Manifest() *Manifest { return a.m }

// ID returns the application id.
func (a Application) ID() string { return a.el.AttrValue("Id") }

// SetID sets the application id, truncated to MaxApplicationIDLength.
func (a Application) SetID(id string) (Application, error) {
	if id == "" {
		return a, oerrors.NewValueError("Application@Id", "application id must not be empty")
	}
	if r := []rune(id); len(r) > MaxApplicationIDLength {
		id = string(r[:MaxApplicationIDLength])
	}
	a.el.SetAttr("Id", id)
	return a, nil
}

// StartPage returns the start page.
func (a Application) StartPage() string { return a.el.AttrValue("StartPage") }

// SetStartPage sets the start page, e.g. "www/index.html".
func (a Application) SetStartPage(page string) (Application, error) {
	if page == "" {
		return a, oerrors.NewValueError("Application@StartPage", "start page must not be empty")
	}
	a.el.SetAttr("StartPage", page)
	return a, nil
}

// AccessRules returns the Match values of the content URI rules.
func (a Application) AccessRules() []string {
	rules := a.el.FindAll("./" + contentURIRulesTag + "/uap:Rule")
	out := make([]string, 0, len(rules))
	for _, r := range rules {
		out = append(out, r.AttrValue("Match"))
	}
	return out
}

// SetAccessRules replaces the content URI rules with one include rule per
// match. No rules removes the section.
func (a Application) SetAccessRules(matches []string) Application {
	if existing := a.el.Find("./" + contentURIRulesTag); existing != nil {
		a.el.Remove(existing)
	}
	if len(matches) == 0 {
		return a
	}

	rules := xmltree.NewElement(contentURIRulesTag)
	for _, match := range matches {
		r := xmltree.NewElement("uap:Rule")
		r.SetAttr("Match", match)
		r.SetAttr("Type", "include")
		r.SetAttr("WindowsRuntimeAccess", "all")
		rules.Append(r)
	}
	a.el.Append(rules)
	return a
}
