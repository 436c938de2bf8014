package root

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCLI(t *testing.T, db string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--db", db}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func mustRun(t *testing.T, db string, args ...string) string {
	t.Helper()
	out, err := runCLI(t, db, args...)
	if err != nil {
		t.Fatalf("lf %s: %v\n%s", strings.Join(args, " "), err, out)
	}
	return out
}

func TestQuestLifecycleAcrossRuns(t *testing.T) {
	t.Setenv("LEVELIFE_LOG_LEVEL", "error")
	t.Setenv("LEVELIFE_LOG_FORMAT", "text")
	db := filepath.Join(t.TempDir(), "lf.db")

	mustRun(t, db, "quest", "add", "Morning run", "--xp", "1200", "--gold", "40")
	mustRun(t, db, "reward", "add", "Pizza", "--cost", "30")

	if _, err := runCLI(t, db, "quest", "do", "morning"); err == nil {
		t.Fatalf("do should not guess from a partial title")
	}
	out := mustRun(t, db, "quest", "do", "morning RUN")
	if !strings.Contains(out, "+1200 XP") || !strings.Contains(out, "LEVEL UP") {
		t.Fatalf("unexpected do output:\n%s", out)
	}

	if _, err := runCLI(t, db, "quest", "do", "Morning run"); err == nil {
		t.Fatalf("completing twice should fail")
	}

	mustRun(t, db, "reward", "buy", "pizza")
	out = mustRun(t, db, "status")
	for _, want := range []string{"Level: 2", "Gold: 10", "1 done / 1", "1 owned / 1"} {
		if !strings.Contains(stripANSI(out), want) {
			t.Fatalf("status missing %q:\n%s", want, out)
		}
	}
}

func TestQuestRmNeedsExactReference(t *testing.T) {
	t.Setenv("LEVELIFE_LOG_LEVEL", "error")
	t.Setenv("LEVELIFE_LOG_FORMAT", "text")
	db := filepath.Join(t.TempDir(), "lf.db")

	mustRun(t, db, "quest", "add", "Run")
	mustRun(t, db, "quest", "add", "Read a journal")

	mustRun(t, db, "quest", "rm", "run")
	if _, err := runCLI(t, db, "quest", "rm", "run"); err == nil {
		t.Fatalf("second rm should not match another quest")
	}
	out := stripANSI(mustRun(t, db, "quest", "list"))
	if !strings.Contains(out, "Read a journal") {
		t.Fatalf("unrelated quest deleted:\n%s", out)
	}
}

func TestResetRequiresConfirmationAndRecovers(t *testing.T) {
	t.Setenv("LEVELIFE_LOG_LEVEL", "error")
	t.Setenv("LEVELIFE_LOG_FORMAT", "text")
	db := filepath.Join(t.TempDir(), "lf.db")

	mustRun(t, db, "quest", "add", "Stretch")
	if _, err := runCLI(t, db, "reset"); err == nil {
		t.Fatalf("reset without --yes should fail")
	}
	mustRun(t, db, "reset", "--yes")
	if out := mustRun(t, db, "quest", "list"); strings.Contains(out, "Stretch") {
		t.Fatalf("quest survived reset:\n%s", out)
	}
	mustRun(t, db, "recover")
	if out := mustRun(t, db, "quest", "list"); !strings.Contains(out, "Stretch") {
		t.Fatalf("quest not recovered:\n%s", out)
	}
}

func TestSettingsLoadPreset(t *testing.T) {
	t.Setenv("LEVELIFE_LOG_LEVEL", "error")
	t.Setenv("LEVELIFE_LOG_FORMAT", "text")
	dir := t.TempDir()
	db := filepath.Join(dir, "lf.db")
	preset := filepath.Join(dir, "fast.yaml")
	if err := os.WriteFile(preset, []byte("exp_per_level: 100\nexp_per_quest: 50\n"), 0o644); err != nil {
		t.Fatalf("write preset: %v", err)
	}

	out := stripANSI(mustRun(t, db, "settings", "load", preset))
	if !strings.Contains(out, "XP per level: 100") {
		t.Fatalf("preset not applied:\n%s", out)
	}
	out = stripANSI(mustRun(t, db, "settings", "set", "--mult", "easy=3:1"))
	if !strings.Contains(out, "quest: +150 XP") {
		t.Fatalf("multiplier not applied:\n%s", out)
	}
}

// stripANSI drops terminal escape sequences from styled output.
func stripANSI(s string) string {
	var b strings.Builder
	inEsc := false
	for _, r := range s {
		switch {
		case r == 0x1b:
			inEsc = true
		case inEsc && ((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')):
			inEsc = false
		case !inEsc:
			b.WriteRune(r)
		}
	}
	return b.String()
}
