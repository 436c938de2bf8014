package storage

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/levelifeofficial/levelife-922003/internal/game"
)

var testNow = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewStore(db, quietLogger())
}

func TestDecodeStateMissingFieldsUseDefaults(t *testing.T) {
	st := DecodeState([]byte(`{"player":{"name":"Ada","gold":42},"sandboxSettings":{"expPerLevel":500}}`), testNow, quietLogger())

	if st.Player.Name != "Ada" || st.Player.Gold != 42 {
		t.Fatalf("player=%+v, want stored name and gold", st.Player)
	}
	if st.Player.Level != game.PlayerMinLevel {
		t.Fatalf("player level=%d, want default %d", st.Player.Level, game.PlayerMinLevel)
	}
	if st.SandboxSettings.ExpPerLevel != 500 {
		t.Fatalf("expPerLevel=%d, want 500", st.SandboxSettings.ExpPerLevel)
	}
	if st.SandboxSettings.ExpPerQuest != game.DefaultExpPerQuest {
		t.Fatalf("expPerQuest=%d, want default", st.SandboxSettings.ExpPerQuest)
	}
	if len(st.SandboxSettings.CustomRanks) != len(game.DefaultRanks()) {
		t.Fatalf("ranks=%d, want default table", len(st.SandboxSettings.CustomRanks))
	}
	if !st.ShowQuestImages {
		t.Fatalf("showQuestImages should default to true")
	}
	if st.Quests == nil || st.Classes == nil || st.Rewards == nil {
		t.Fatalf("collections must never be nil")
	}
}

func TestDecodeStateMergesMultipliersPerKey(t *testing.T) {
	st := DecodeState([]byte(`{"sandboxSettings":{"difficultyMultipliers":{"Hard":{"xp":7,"gold":3}}}}`), testNow, quietLogger())

	m := st.SandboxSettings.DifficultyMultipliers
	if m[game.DifficultyHard] != (game.Multiplier{XP: 7, Gold: 3}) {
		t.Fatalf("Hard=%+v, want stored override", m[game.DifficultyHard])
	}
	if m[game.DifficultyEasy] != (game.Multiplier{XP: 1, Gold: 1}) {
		t.Fatalf("Easy=%+v, want default", m[game.DifficultyEasy])
	}
}

func TestDecodeStateMigratesLegacyColor(t *testing.T) {
	st := DecodeState([]byte(`{"sandboxSettings":{"themeColor":"#FFD700","progressBarColor":"#FFD700"}}`), testNow, quietLogger())

	if st.SandboxSettings.ThemeColor != game.DefaultThemeColor {
		t.Fatalf("themeColor=%q, want migrated", st.SandboxSettings.ThemeColor)
	}
	if st.SandboxSettings.ProgressBarColor != game.DefaultThemeColor {
		t.Fatalf("progressBarColor=%q, want migrated", st.SandboxSettings.ProgressBarColor)
	}

	st = DecodeState([]byte(`{"sandboxSettings":{"themeColor":"#123456"}}`), testNow, quietLogger())
	if st.SandboxSettings.ThemeColor != "#123456" {
		t.Fatalf("custom themeColor=%q, want kept", st.SandboxSettings.ThemeColor)
	}
}

func TestDecodeStateMigratesLegacyLoginDate(t *testing.T) {
	cases := map[string]string{
		"Sat Mar 09 2024": "2024-03-09",
		"2024-03-09":      "2024-03-09",
		"":                "",
		"not a date":      "not a date",
	}
	for in, want := range cases {
		st := DecodeState([]byte(`{"player":{"dailyStreak":7,"lastLoginDate":"`+in+`"}}`), testNow, quietLogger())
		if st.Player.LastLoginDate != want {
			t.Fatalf("lastLoginDate(%q)=%q, want %q", in, st.Player.LastLoginDate, want)
		}
		if st.Player.DailyStreak != 7 {
			t.Fatalf("dailyStreak=%d, want 7", st.Player.DailyStreak)
		}
	}
}

func TestDecodeStateMigratesLegacySubclassParent(t *testing.T) {
	raw := `{
		"classes":[{"id":"c1","name":"Warrior","image":"file://warrior.png","level":2,"xp":10,"xpToNextLevel":1000}],
		"subclasses":[
			{"id":"s1","name":"Berserker","image":"c1","level":0,"xp":0,"xpToNextLevel":1000,"linkedQuestIds":["q1"]},
			{"id":"s2","name":"Modern","parentId":"c1","imageUri":"file://modern.png","xpToNextLevel":1000}
		]
	}`
	st := DecodeState([]byte(raw), testNow, quietLogger())

	if st.Classes[0].ImageURI != "file://warrior.png" || st.Classes[0].ParentID != "" {
		t.Fatalf("class=%+v, want image moved to ImageURI", st.Classes[0])
	}
	if st.Subclasses[0].ParentID != "c1" || st.Subclasses[0].ImageURI != "" {
		t.Fatalf("legacy subclass=%+v, want ParentID=c1", st.Subclasses[0])
	}
	if len(st.Subclasses[0].LinkedQuestIDs) != 1 {
		t.Fatalf("legacy subclass lost links: %+v", st.Subclasses[0])
	}
	if st.Subclasses[1].ParentID != "c1" || st.Subclasses[1].ImageURI != "file://modern.png" {
		t.Fatalf("current subclass=%+v, want untouched", st.Subclasses[1])
	}
}

func TestDecodeStateBadFieldFallsBack(t *testing.T) {
	raw := `{"player":{"name":"Ada","level":3},"quests":"not-a-list","rewards":[{"id":"r1","title":"Cake","goldCost":10}]}`
	st := DecodeState([]byte(raw), testNow, quietLogger())

	if st.Player.Level != 3 {
		t.Fatalf("player level=%d, want 3", st.Player.Level)
	}
	if len(st.Quests) != 0 {
		t.Fatalf("quests=%v, want defaulted empty list", st.Quests)
	}
	if len(st.Rewards) != 1 || st.Rewards[0].Title != "Cake" {
		t.Fatalf("rewards=%+v, want stored reward", st.Rewards)
	}

	st = DecodeState([]byte(`{{{`), testNow, quietLogger())
	if st.Player.Name != game.DefaultPlayerName {
		t.Fatalf("garbage record should yield defaults, got %+v", st.Player)
	}
}

func TestEncodeDecodeKeepsState(t *testing.T) {
	st := game.NewState(testNow)
	done := testNow.Add(time.Hour)
	st.Player.Gold = 77
	st.Quests = append(st.Quests, game.Quest{ID: "q1", Title: "Run", Difficulty: game.DifficultyHard, XPReward: 1000, Completed: true, CompletedAt: &done})
	st.Subclasses = append(st.Subclasses, game.Class{ID: "s1", ParentID: "c1", XPToNextLevel: 1000})
	st.DeletedData = &game.DeletedData{Data: "{}", DeletedAt: testNow}

	data, err := EncodeState(st)
	if err != nil {
		t.Fatalf("EncodeState: %v", err)
	}
	got := DecodeState(data, testNow, quietLogger())

	if got.Player.Gold != 77 || len(got.Quests) != 1 || !got.Quests[0].CompletedAt.Equal(done) {
		t.Fatalf("decoded state lost data: %+v", got)
	}
	if got.Subclasses[0].ParentID != "c1" {
		t.Fatalf("subclass parent lost: %+v", got.Subclasses[0])
	}
	if got.DeletedData == nil || !got.DeletedData.DeletedAt.Equal(testNow) {
		t.Fatalf("deleted data lost: %+v", got.DeletedData)
	}
}

func TestStoreLoadSave(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	st, err := store.Load(ctx, testNow)
	if err != nil {
		t.Fatalf("Load empty: %v", err)
	}
	if st.Player.Name != game.DefaultPlayerName {
		t.Fatalf("empty store should give defaults, got %+v", st.Player)
	}

	st.Player.Name = "Grace"
	st.Player.XP = 321
	if err := store.Save(ctx, st); err != nil {
		t.Fatalf("Save: %v", err)
	}
	st.Player.Name = "Overwritten"
	if err := store.Save(ctx, st); err != nil {
		t.Fatalf("Save again: %v", err)
	}

	got, err := store.Load(ctx, testNow)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Player.Name != "Overwritten" || got.Player.XP != 321 {
		t.Fatalf("loaded player=%+v", got.Player)
	}
}

func TestStoreSaveStampsWithClock(t *testing.T) {
	store := newTestStore(t)
	store.SetClock(func() time.Time { return testNow })
	ctx := context.Background()

	if err := store.Save(ctx, game.NewState(testNow)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	rec, err := store.kv.Get(ctx, StateKey)
	if err != nil || rec == nil {
		t.Fatalf("Get: rec=%v err=%v", rec, err)
	}
	if !rec.UpdatedAt.Equal(testNow) {
		t.Fatalf("updated_at=%v, want %v", rec.UpdatedAt, testNow)
	}
}

type recordingSaver struct {
	mu     sync.Mutex
	saved  []*game.State
	failed bool
}

func (r *recordingSaver) Save(_ context.Context, st *game.State) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failed {
		return errors.New("disk full")
	}
	r.saved = append(r.saved, st)
	return nil
}

func (r *recordingSaver) last() *game.State {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.saved) == 0 {
		return nil
	}
	return r.saved[len(r.saved)-1]
}

func TestWriterFlushesLatestOnClose(t *testing.T) {
	saver := &recordingSaver{}
	w := NewWriter(saver, quietLogger())

	for i := 1; i <= 20; i++ {
		st := game.NewState(testNow)
		st.Player.Gold = i
		w.Save(st)
	}
	if err := w.Close(context.Background()); err != nil {
		t.Fatalf("Close: %v", err)
	}

	last := saver.last()
	if last == nil || last.Player.Gold != 20 {
		t.Fatalf("last persisted=%+v, want gold 20", last)
	}

	// Saves after close are dropped without panicking.
	w.Save(game.NewState(testNow))
	if err := w.Close(context.Background()); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}

func TestWriterSwallowsSaveErrors(t *testing.T) {
	saver := &recordingSaver{failed: true}
	w := NewWriter(saver, quietLogger())
	w.Save(game.NewState(testNow))
	if err := w.Close(context.Background()); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if saver.last() != nil {
		t.Fatalf("nothing should have been recorded")
	}
}

func TestArchiveRoundTrip(t *testing.T) {
	st := game.NewState(testNow)
	st.Player.Name = "Ada"
	st.Player.Level = 4
	st.Rewards = append(st.Rewards, game.Reward{ID: "r1", Title: "Movie night", GoldCost: 300})

	path := filepath.Join(t.TempDir(), "backup", "state.lfz")
	if err := WriteArchive(path, st, testNow); err != nil {
		t.Fatalf("WriteArchive: %v", err)
	}

	hdr, data, err := ReadArchive(path)
	if err != nil {
		t.Fatalf("ReadArchive: %v", err)
	}
	if hdr.Format != ArchiveFormat || hdr.Player != "Ada" || hdr.Level != 4 {
		t.Fatalf("header=%+v", hdr)
	}
	got := DecodeState(data, testNow, quietLogger())
	if len(got.Rewards) != 1 || got.Rewards[0].Title != "Movie night" {
		t.Fatalf("rewards=%+v", got.Rewards)
	}
}
