package i18n

import (
	"os"
	"path/filepath"
	"testing"

	"saxguide/fingering"
)

func TestLoadEmbeddedLocalesAreComplete(t *testing.T) {
	b, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded locales: %v", err)
	}
	locales := b.Locales()
	if len(locales) != 2 || locales[0] != "fr-FR" || locales[1] != "en-US" {
		t.Fatalf("locales = %v", locales)
	}
	for key := range b.locales[BaseLocale] {
		if _, ok := b.locales["en-US"][key]; !ok {
			t.Errorf("en-US missing %q", key)
		}
	}
}

func TestLocalizerMatching(t *testing.T) {
	b := MustLoadEmbedded()
	cases := map[string]string{
		"fr-FR": "fr-FR",
		"fr-CA": "fr-FR",
		"en-US": "en-US",
		"en-GB": "en-US",
		"en":    "en-US",
		"de-DE": "fr-FR",
		"":      "fr-FR",
		"!!":    "fr-FR",
	}
	for requested, want := range cases {
		l, err := b.Localizer(requested)
		if err != nil {
			t.Fatalf("%q: %v", requested, err)
		}
		if l.Locale() != want {
			t.Errorf("Localizer(%q) = %s, want %s", requested, l.Locale(), want)
		}
	}
}

func TestLocalizerFormats(t *testing.T) {
	b := MustLoadEmbedded()
	fr, _ := b.Localizer("fr-FR")
	en, _ := b.Localizer("en-US")

	if got := fr.T("tab.transpose"); got != "Transposition" {
		t.Fatalf("fr tab = %q", got)
	}
	if got := en.T("label.variant", 2, 3); got != "Fingering 2/3" {
		t.Fatalf("en variant = %q", got)
	}
	if got := fr.T("label.variant", 1, 2); got != "Doigté 1/2" {
		t.Fatalf("fr variant = %q", got)
	}
	if got := en.T("missing.key"); got != "missing.key" {
		t.Fatalf("unknown key = %q", got)
	}
}

func TestLocalizerNames(t *testing.T) {
	b := MustLoadEmbedded()
	fr, _ := b.Localizer("fr-FR")
	en, _ := b.Localizer("en-US")

	for pc, want := range fingering.ChromaticScale() {
		if got := fr.PitchName(pc); got != want.DisplayName() {
			t.Errorf("fr pitch %d = %q, want %q", pc, got, want.DisplayName())
		}
	}
	if got := en.PitchName(-2); got != "B♭ / A♯" {
		t.Fatalf("en pitch -2 = %q", got)
	}
	for i, inst := range fingering.Instruments() {
		if got := fr.InstrumentName(i); got != inst.Name {
			t.Errorf("fr instrument %d = %q, want %q", i, got, inst.Name)
		}
	}
	if got := en.RegisterName(fingering.RegisterAltissimo); got != "Altissimo" {
		t.Fatalf("en register = %q", got)
	}
	if got := fr.RegisterName(fingering.RegisterLow); got != "Grave" {
		t.Fatalf("fr register = %q", got)
	}
}

func TestMessageFallsBackToBase(t *testing.T) {
	dir := t.TempDir()
	mustWriteFile(t, filepath.Join(dir, "locales/fr-FR.yaml"), "locale: fr-FR\nmessages:\n  a: \"un\"\n  b: \"deux\"\n")
	mustWriteFile(t, filepath.Join(dir, "locales/en-US.yaml"), "locale: en-US\nmessages:\n  a: \"one\"\n")

	b, err := LoadFromFS(os.DirFS(dir))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if v, _ := b.Message("en-US", "b"); v != "deux" {
		t.Fatalf("fallback = %q", v)
	}
	en, err := b.Localizer("en-US")
	if err != nil {
		t.Fatal(err)
	}
	if got := en.T("b"); got != "deux" {
		t.Fatalf("printer fallback = %q", got)
	}
	if got := en.T("a"); got != "one" {
		t.Fatalf("printer = %q", got)
	}
}

func TestLoadFromFSRejects(t *testing.T) {
	cases := map[string]map[string]string{
		"no base locale": {
			"locales/en-US.yaml": "locale: en-US\nmessages:\n  a: \"one\"\n",
		},
		"key unknown to base": {
			"locales/fr-FR.yaml": "locale: fr-FR\nmessages:\n  a: \"un\"\n",
			"locales/en-US.yaml": "locale: en-US\nmessages:\n  z: \"zed\"\n",
		},
		"locale mismatch": {
			"locales/fr-FR.yaml": "locale: en-US\nmessages:\n  a: \"un\"\n",
		},
		"no messages": {
			"locales/fr-FR.yaml": "locale: fr-FR\n",
		},
		"bad yaml": {
			"locales/fr-FR.yaml": "locale: [\n",
		},
		"empty": {},
	}
	for name, files := range cases {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			for p, content := range files {
				mustWriteFile(t, filepath.Join(dir, p), content)
			}
			if _, err := LoadFromFS(os.DirFS(dir)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func mustWriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
