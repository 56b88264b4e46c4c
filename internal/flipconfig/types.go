// Package flipconfig reads and writes flip definition files: a flat text
// format that binds application names to the records flipped between a
// primary and a secondary site.
//
//	# comment
//	[app_name]
//	fqdn: <fqdn> <record_type> [zone]
//	primary: <value>[,<value>...]
//	secondary: <value>[,<value>...]
package flipconfig

import "github.com/catalystcommunity/flipper/v1/internal/record"

// Record is one flippable record of an application. Zone may be empty, in
// which case it is resolved against the provider at flip time.
type Record struct {
	FQDN      string
	Type      string
	Zone      string
	Primary   record.Values
	Secondary record.Values
}

// Values returns the answer set to apply for site.
func (r Record) Values(site record.Site) record.Values {
	if site == record.SiteSecondary {
		return r.Secondary
	}
	return r.Primary
}

// Application groups the records flipped together.
type Application struct {
	Name    string
	Records []Record
}

// File is a fully parsed definition file. Applications keep file order.
type File struct {
	Apps  []*Application
	index map[string]*Application
}

// NewFile returns an empty definition set.
func NewFile() *File {
	return &File{index: make(map[string]*Application)}
}

// Add appends records to the named application, creating it if needed.
func (f *File) Add(name string, records ...Record) *Application {
	if f.index == nil {
		f.index = make(map[string]*Application)
	}
	app, ok := f.index[name]
	if !ok {
		app = &Application{Name: name}
		f.index[name] = app
		f.Apps = append(f.Apps, app)
	}
	app.Records = append(app.Records, records...)
	return app
}

// Lookup returns the named application.
func (f *File) Lookup(name string) (*Application, bool) {
	app, ok := f.index[name]
	return app, ok
}

// Names returns application names in file order.
func (f *File) Names() []string {
	names := make([]string, 0, len(f.Apps))
	for _, app := range f.Apps {
		names = append(names, app.Name)
	}
	return names
}
