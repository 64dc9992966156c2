// Package render produces the HTML fragments the dashboard swaps into
// its content regions. Every list row carries a data-id attribute so the
// client can delegate button clicks back to the right entity, and every
// empty collection renders an explanatory placeholder instead of an
// empty container.
package render

import (
	"html/template"
	"sort"
	"strings"

	"property-admin-backend/internal/model"
	"property-admin-backend/internal/store"
)

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

var funcs = template.FuncMap{
	"capitalize": capitalize,
	"orNA": func(s string) string {
		if s == "" {
			return "N/A"
		}
		return s
	},
}

var templates = template.Must(template.New("fragments").Funcs(funcs).Parse(`
{{define "amenity-list"}}
{{- if not . -}}
<p class="placeholder">No amenities added yet. Click "Add New Amenity" to get started.</p>
{{- else -}}
{{range .}}<div class="list-item" data-id="{{.ID}}">
  <div class="item-details">
    <h4>{{if .IconClass}}<i class="{{.IconClass}}" aria-hidden="true"></i> {{end}}{{.Name}}</h4>
    <p>{{if .Description}}{{.Description}}{{else}}No description provided.{{end}}</p>
    <small>Capacity: {{.Capacity}} people</small>
  </div>
  <div class="item-actions">
    <button class="edit-amenity-btn">Edit</button>
    <button class="delete-amenity-btn">Delete</button>
  </div>
</div>
{{end}}{{- end -}}
{{end}}

{{define "non-bookable-list"}}
{{- if not . -}}
<li class="placeholder">No open access amenities listed.</li>
{{- else -}}
{{range .}}<li data-id="{{.ID}}">{{if .IconClass}}<i class="{{.IconClass}} icon" aria-hidden="true"></i> {{end}}{{.Name}}</li>
{{end}}{{- end -}}
{{end}}

{{define "rule-options"}}<option value="">-- Select an Amenity --</option>
{{range .}}<option value="{{.ID}}">{{.Name}}</option>
{{end}}{{end}}

{{define "rules-list"}}
{{- if not . -}}
<p class="placeholder">No rules set yet.</p>
{{- else -}}
<ul class="rules-list">
{{range .}}<li data-id="{{.AmenityID}}"><strong>{{.AmenityName}}:</strong><br>
Allow Friends/Guests: {{if .Rule.AllowFriends}}Yes{{else}}No{{end}}<br>
Timing Restrictions: {{if .Rule.Timing}}{{.Rule.Timing}}{{else}}None{{end}}</li>
{{end}}</ul>
{{- end -}}
{{end}}

{{define "auto-approval"}}
{{- if not . -}}
<p class="placeholder">No amenities to configure auto-approval for.</p>
{{- else -}}
{{range .}}<div class="list-item" data-id="{{.Amenity.ID}}">
  <div class="item-details">
    <h4>{{.Amenity.Name}}</h4>
    <p>Auto-approve reservations for this amenity?</p>
  </div>
  <div class="item-actions">
    <label class="switch">
      <input type="checkbox" data-amenity-id="{{.Amenity.ID}}"{{if .Enabled}} checked{{end}} aria-label="Toggle auto-approval for {{.Amenity.Name}}">
      <span class="slider round"></span>
    </label>
  </div>
</div>
{{end}}{{- end -}}
{{end}}

{{define "pending-reservations"}}
{{- if not .Rows -}}
<tr><td colspan="6" class="placeholder">No pending reservations.</td></tr>
{{- else -}}
{{range .Rows}}<tr data-id="{{.ID}}">
  <td>{{.AmenityName}}</td>
  <td>{{.Resident}}</td>
  <td>{{.Date}}</td>
  <td>{{.Time}}</td>
  <td><span class="status-{{.Status}}">{{capitalize .Status}}</span></td>
  <td class="action-buttons"><button class="approve">Approve</button><button class="deny">Deny</button></td>
</tr>
{{end}}{{- end -}}
{{end}}

{{define "all-reservations"}}
{{- if not .Rows -}}
<tr><td colspan="6" class="placeholder">No reservations history.</td></tr>
{{- else -}}
{{range .Rows}}<tr data-id="{{.ID}}">
  <td>{{.AmenityName}}</td>
  <td>{{.Resident}}</td>
  <td>{{.Date}}</td>
  <td>{{.Time}}</td>
  <td><span class="status-{{.Status}}">{{capitalize .Status}}</span></td>
  <td class="action-buttons"><button class="view">View</button></td>
</tr>
{{end}}{{- end -}}
{{end}}

{{define "active-requests"}}
{{- if not . -}}
<tr><td colspan="7" class="placeholder">No active service requests.</td></tr>
{{- else -}}
{{range .}}<tr data-id="{{.ID}}">
  <td>{{.ID}}</td>
  <td>{{.Resident}}</td>
  <td>{{.Unit}}</td>
  <td>{{.Issue}}</td>
  <td><span class="status-requested">{{capitalize .Status}}</span></td>
  <td>{{.SubmittedDate}}</td>
  <td class="action-buttons"><button class="approve">Complete</button><button class="deny">Cancel</button><button class="view">View</button></td>
</tr>
{{end}}{{- end -}}
{{end}}

{{define "completed-requests"}}
{{- if not . -}}
<tr><td colspan="7" class="placeholder">No completed service requests.</td></tr>
{{- else -}}
{{range .}}<tr data-id="{{.ID}}">
  <td>{{.ID}}</td>
  <td>{{.Resident}}</td>
  <td>{{.Unit}}</td>
  <td>{{.Issue}}</td>
  <td><span class="status-approved">{{capitalize .Status}}</span></td>
  <td>{{.SubmittedDate}}</td>
  <td>{{orNA .CompletionDate}}</td>
</tr>
{{end}}{{- end -}}
{{end}}

{{define "residents"}}
{{- if not . -}}
<tr><td colspan="6" class="placeholder">No residents found.</td></tr>
{{- else -}}
{{range .}}<tr data-id="{{.ID}}">
  <td>{{.Name}}</td>
  <td>{{.Unit}}</td>
  <td>{{.Email}}</td>
  <td>{{orNA .Phone}}</td>
  <td>{{.MoveInDate}}</td>
  <td class="action-buttons"><button class="view">View</button><button class="deny">Delete</button></td>
</tr>
{{end}}{{- end -}}
{{end}}
`))

// Renderer renders fragments against the entity store.
type Renderer struct {
	store *store.Store
}

func New(s *store.Store) *Renderer {
	return &Renderer{store: s}
}

func execute(name string, data any) (string, error) {
	var b strings.Builder
	if err := templates.ExecuteTemplate(&b, name, data); err != nil {
		return "", err
	}
	return strings.TrimSpace(b.String()), nil
}

// AmenityList renders the management list over the live amenities.
func (r *Renderer) AmenityList() (string, error) {
	return execute("amenity-list", r.store.Amenities())
}

// NonBookableList renders the open-access amenity items.
func (r *Renderer) NonBookableList() (string, error) {
	return execute("non-bookable-list", r.store.NonBookableAmenities())
}

// RuleOptions renders the rules dropdown options from the live
// amenities, so newly added amenities are selectable immediately.
func (r *Renderer) RuleOptions() (string, error) {
	return execute("rule-options", r.store.Amenities())
}

// ruleEntry pairs a saved rule with its resolved amenity name.
type ruleEntry struct {
	AmenityID   string
	AmenityName string
	Rule        model.AmenityRule
}

// RulesList renders the saved rules. Names resolve against the bookable
// snapshot taken at startup; rules for ids outside that snapshot are
// skipped.
func (r *Renderer) RulesList(rules map[string]model.AmenityRule) (string, error) {
	ids := make([]string, 0, len(rules))
	for id := range rules {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	snapshot := r.store.BookableAmenities()
	byID := make(map[string]model.Amenity, len(snapshot))
	for _, a := range snapshot {
		byID[a.ID] = a
	}

	entries := make([]ruleEntry, 0, len(ids))
	for _, id := range ids {
		a, ok := byID[id]
		if !ok {
			continue
		}
		entries = append(entries, ruleEntry{AmenityID: id, AmenityName: a.Name, Rule: rules[id]})
	}
	return execute("rules-list", entries)
}

// autoApprovalEntry pairs a live amenity with its effective flag.
type autoApprovalEntry struct {
	Amenity model.Amenity
	Enabled bool
}

// AutoApprovalList renders one toggle per live amenity. Amenities with
// no saved flag display as off without a write-back.
func (r *Renderer) AutoApprovalList(flags map[string]bool) (string, error) {
	amenities := r.store.Amenities()
	entries := make([]autoApprovalEntry, 0, len(amenities))
	for _, a := range amenities {
		entries = append(entries, autoApprovalEntry{Amenity: a, Enabled: flags[a.ID]})
	}
	return execute("auto-approval", entries)
}

// reservationRow is a reservation with its amenity id resolved to a
// display name.
type reservationRow struct {
	ID          string
	AmenityName string
	Resident    string
	Date        string
	Time        string
	Status      string
}

func (r *Renderer) reservationRows(reservations []model.Reservation) []reservationRow {
	rows := make([]reservationRow, 0, len(reservations))
	for _, res := range reservations {
		rows = append(rows, reservationRow{
			ID:          res.ID,
			AmenityName: r.store.AmenityName(res.AmenityID),
			Resident:    res.Resident,
			Date:        res.Date,
			Time:        res.Time,
			Status:      res.Status,
		})
	}
	return rows
}

// PendingReservations renders the requested reservations with
// approve/deny actions.
func (r *Renderer) PendingReservations() (string, error) {
	return execute("pending-reservations", struct{ Rows []reservationRow }{r.reservationRows(r.store.PendingReservations())})
}

// AllReservations renders the full reservation history.
func (r *Renderer) AllReservations() (string, error) {
	return execute("all-reservations", struct{ Rows []reservationRow }{r.reservationRows(r.store.Reservations())})
}

// ActiveRequests renders the active service requests with
// complete/cancel/view actions.
func (r *Renderer) ActiveRequests() (string, error) {
	return execute("active-requests", r.store.ServiceRequestsByStatus(model.RequestActive))
}

// CompletedRequests renders the completed service requests.
func (r *Renderer) CompletedRequests() (string, error) {
	return execute("completed-requests", r.store.ServiceRequestsByStatus(model.RequestCompleted))
}

// Residents renders the resident table filtered by the search term.
func (r *Renderer) Residents(term string) (string, error) {
	return execute("residents", r.store.SearchResidents(term))
}
