package config

import "sort"

var Presets = map[string]*Config{
	"cyclic": {
		Width: 400, Height: 400, States: 8, Rule: "cyclic", CellSize: 2, DelayMs: 100, Workers: 1,
		Palette:   PaletteConfig{Strategy: "gradient", Preset: "beige-olive"},
		Snapshots: SnapshotConfig{Every: 20, Path: DefaultOutput},
	},
	"spirals": {
		Width: 300, Height: 300, States: 14, Rule: "cyclic", CellSize: 3, DelayMs: 30, Workers: 4,
		Palette:   PaletteConfig{Strategy: "random"},
		Snapshots: SnapshotConfig{Every: 100, Path: DefaultOutput},
	},
	"pastel": {
		Width: 200, Height: 200, States: 5, Rule: "cyclic", CellSize: 4, DelayMs: 60, Workers: 1,
		Palette:   PaletteConfig{Strategy: "gradient", Preset: "coral-sky"},
		Snapshots: SnapshotConfig{Every: 50, Path: DefaultOutput},
	},
	"life": {
		Width: 200, Height: 150, States: 2, Rule: "life", CellSize: 4, DelayMs: 50, Workers: 1,
		Palette:   PaletteConfig{Strategy: "twotone"},
		Snapshots: SnapshotConfig{Every: 20, Path: DefaultOutput},
	},
	"highlife": {
		Width: 200, Height: 150, States: 2, Rule: "highlife", CellSize: 4, DelayMs: 50, Workers: 1,
		Palette:   PaletteConfig{Strategy: "twotone"},
		Snapshots: SnapshotConfig{Every: 20, Path: DefaultOutput},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *p
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
