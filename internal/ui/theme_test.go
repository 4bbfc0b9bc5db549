package ui

import "testing"

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 3 {
		t.Fatalf("ThemeNames() returned %d names, want 3", len(names))
	}
	if names[0] != "Iron" {
		t.Fatalf("ThemeNames()[0] = %q, want Iron", names[0])
	}
}

func TestNextTheme(t *testing.T) {
	if got := NextTheme("Iron"); got != "Chalk" {
		t.Fatalf("NextTheme(Iron) = %q, want Chalk", got)
	}
	if got := NextTheme("Turf"); got != "Iron" {
		t.Fatalf("NextTheme(Turf) = %q, want Iron", got)
	}
	if got := NextTheme("Unknown"); got != "Iron" {
		t.Fatalf("NextTheme(Unknown) = %q, want Iron", got)
	}
}

func TestGetTheme(t *testing.T) {
	for _, name := range ThemeNames() {
		if got := GetTheme(name).Name; got != name {
			t.Fatalf("GetTheme(%q).Name = %q", name, got)
		}
	}
	if got := GetTheme("Unknown").Name; got != "Iron" {
		t.Fatalf("GetTheme(Unknown).Name = %q, want Iron (fallback)", got)
	}
}

func TestThemesDefineEveryColor(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		colors := map[string]string{
			"Background": th.Background, "Surface": th.Surface, "SurfaceAlt": th.SurfaceAlt,
			"FocusBg": th.FocusBg, "SelectionBg": th.SelectionBg, "SelectionText": th.SelectionText,
			"Border": th.Border, "BorderFocus": th.BorderFocus, "Text": th.Text, "Muted": th.Muted,
			"Accent": th.Accent, "Success": th.Success, "Danger": th.Danger,
		}
		for field, value := range colors {
			if value == "" {
				t.Fatalf("theme %s has empty %s", name, field)
			}
		}
	}
}
