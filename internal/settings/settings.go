// Package settings persists the operator-facing settings snapshots.
// Each snapshot is a single JSON blob keyed by name and rewritten
// wholesale on every save; there is no merging and the last write wins.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"property-admin-backend/internal/model"
)

// Themes the dashboard supports.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Store reads and writes settings snapshots.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// load unmarshals the snapshot for key into dst. A missing row or a
// blob that no longer parses both leave dst untouched, so callers start
// from their zero value rather than failing.
func (s *Store) load(key string, dst any) error {
	var snap model.SettingsSnapshot
	err := s.db.First(&snap, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load settings %q: %w", key, err)
	}
	// A blob that no longer parses reads as the zero value.
	_ = json.Unmarshal(snap.Value, dst)
	return nil
}

func (s *Store) save(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode settings %q: %w", key, err)
	}
	snap := model.SettingsSnapshot{Key: key, Value: raw}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&snap).Error
	if err != nil {
		return fmt.Errorf("save settings %q: %w", key, err)
	}
	return nil
}

// AmenityRules returns the saved per-amenity rules, keyed by amenity id.
// Amenities with no saved rule are simply absent.
func (s *Store) AmenityRules() (map[string]model.AmenityRule, error) {
	rules := map[string]model.AmenityRule{}
	if err := s.load(model.SnapshotAmenityRules, &rules); err != nil {
		return nil, err
	}
	return rules, nil
}

// SaveAmenityRules replaces the entire rules snapshot.
func (s *Store) SaveAmenityRules(rules map[string]model.AmenityRule) error {
	if rules == nil {
		rules = map[string]model.AmenityRule{}
	}
	return s.save(model.SnapshotAmenityRules, rules)
}

// AutoApproval returns the saved auto-approval flags, keyed by amenity
// id. Only explicitly saved entries are present; use WithDefaults to
// fill in the implicit false for unsaved amenities.
func (s *Store) AutoApproval() (map[string]bool, error) {
	flags := map[string]bool{}
	if err := s.load(model.SnapshotAutoApproval, &flags); err != nil {
		return nil, err
	}
	return flags, nil
}

// SaveAutoApproval replaces the entire auto-approval snapshot.
func (s *Store) SaveAutoApproval(flags map[string]bool) error {
	if flags == nil {
		flags = map[string]bool{}
	}
	return s.save(model.SnapshotAutoApproval, flags)
}

// Theme returns the saved theme, defaulting to light.
func (s *Store) Theme() (string, error) {
	theme := ""
	if err := s.load(model.SnapshotTheme, &theme); err != nil {
		return "", err
	}
	if theme != ThemeDark {
		theme = ThemeLight
	}
	return theme, nil
}

func (s *Store) SaveTheme(theme string) error {
	if theme != ThemeLight && theme != ThemeDark {
		return fmt.Errorf("unknown theme %q", theme)
	}
	return s.save(model.SnapshotTheme, theme)
}

// WithDefaults fills the auto-approval map with an explicit false for
// every listed amenity that has no saved entry. The fill is for display
// only; defaults are persisted only when the operator saves the form.
func WithDefaults(flags map[string]bool, amenities []model.Amenity) map[string]bool {
	out := make(map[string]bool, len(amenities))
	for _, a := range amenities {
		out[a.ID] = flags[a.ID]
	}
	return out
}
