package debug

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogWritesWhenEnabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "debug.log")

	Log("key", "dropped %d", 1)
	if err := Enable(path); err != nil {
		t.Fatalf("enable: %v", err)
	}
	t.Cleanup(Disable)
	if !Enabled() {
		t.Fatal("not enabled")
	}

	Log("key", "note=%s variant=%d", "high_d", 0)
	for i := 0; i < 5; i++ {
		LogEvery(2, "resize", "w=%d", 80)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if strings.Contains(out, "dropped") {
		t.Fatal("message logged before Enable")
	}
	for _, want := range []string{"Debug logging started", "key", "note=high_d variant=0", "(every 2, count=4)"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
	if strings.Count(out, "resize") != 2 {
		t.Errorf("LogEvery wrote %d lines", strings.Count(out, "resize"))
	}
}

func TestDisable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	if err := Enable(path); err != nil {
		t.Fatal(err)
	}
	Disable()
	Log("key", "after disable")

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "after disable") {
		t.Fatal("logged after Disable")
	}
}

func TestLogEveryNonPositiveLogsEachCall(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	if err := Enable(path); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(Disable)

	for _, n := range []int{-3, 0, 1} {
		LogEvery(n, "tick", "n=%d", n)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	for _, want := range []string{"n=-3", "n=0", "n=1"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "every") {
		t.Errorf("n <= 1 should log plainly:\n%s", out)
	}
}
