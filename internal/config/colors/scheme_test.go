package colors

import "testing"

func TestGetPreset(t *testing.T) {
	if got := GetPreset("monochrome").Preset; got != "monochrome" {
		t.Errorf("GetPreset(monochrome).Preset = %s", got)
	}
	if got := GetPreset("").Preset; got != "default" {
		t.Errorf("GetPreset(\"\").Preset = %s, want default", got)
	}
	if got := GetPreset("nonexistent").Preset; got != "default" {
		t.Errorf("GetPreset(nonexistent).Preset = %s, want default", got)
	}
}

func TestApplyDefaults_FillsFromPreset(t *testing.T) {
	c := ColorScheme{Preset: "monochrome", Accent: "#123456"}
	c.ApplyDefaults()

	if c.Accent != "#123456" {
		t.Errorf("Accent = %s, custom value should be kept", c.Accent)
	}
	mono := Monochrome()
	if c.ListBorder != mono.ListBorder {
		t.Errorf("ListBorder = %s, want %s from preset", c.ListBorder, mono.ListBorder)
	}
	if c.StatusBarText != mono.StatusBarText {
		t.Errorf("StatusBarText = %s, want %s", c.StatusBarText, mono.StatusBarText)
	}
}

func TestApplyDefaults_EmptyPreset(t *testing.T) {
	var c ColorScheme
	c.ApplyDefaults()

	if c.Preset != "default" {
		t.Errorf("Preset = %q, want default", c.Preset)
	}
	if c.Accent != Default().Accent {
		t.Errorf("Accent = %s, want %s", c.Accent, Default().Accent)
	}
}

func TestMergeFrom(t *testing.T) {
	c := *Default()
	c.MergeFrom(ColorScheme{Accent: "#FF0000", Create: "#00FF00"})

	if c.Accent != "#FF0000" || c.Create != "#00FF00" {
		t.Errorf("MergeFrom did not override values: accent=%s create=%s", c.Accent, c.Create)
	}
	if c.Normal != Default().Normal {
		t.Errorf("MergeFrom should keep unset fields, Normal = %s", c.Normal)
	}
}

func TestMergeFrom_PresetSwitch(t *testing.T) {
	c := *Default()
	c.MergeFrom(ColorScheme{Preset: "monochrome", Title: "#ABCDEF"})

	if c.Preset != "monochrome" {
		t.Errorf("Preset = %s, want monochrome", c.Preset)
	}
	if c.ListBorder != Monochrome().ListBorder {
		t.Errorf("ListBorder = %s, want monochrome value", c.ListBorder)
	}
	if c.Title != "#ABCDEF" {
		t.Errorf("Title = %s, want override", c.Title)
	}
}
