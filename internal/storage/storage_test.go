package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"server/internal/domain"
)

func TestFileStoreWriteRead(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	key, err := store.Write(context.Background(), "logos/acme.png", []byte("png-bytes"))
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if key != "logos/acme.png" {
		t.Fatalf("key = %q", key)
	}
	data, err := store.Read(context.Background(), key)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(data) != "png-bytes" {
		t.Fatalf("data = %q", data)
	}
}

func TestFileStoreRejectsTraversal(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if _, err := store.Write(context.Background(), "../escape.txt", []byte("x")); err == nil {
		t.Fatal("expected traversal key to be rejected")
	}
	if _, err := store.Write(context.Background(), "   ", []byte("x")); err == nil {
		t.Fatal("expected blank key to be rejected")
	}
}

func TestUserStoreSignupAndAuthenticate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	store, err := NewUserStore(path)
	if err != nil {
		t.Fatalf("NewUserStore: %v", err)
	}
	if err := store.Signup("Alice@Example.com", "secret123"); err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if err := store.Signup("alice@example.com", "other-pass"); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("duplicate signup err = %v", err)
	}
	if err := store.Signup("bob@example.com", "short"); err == nil {
		t.Fatal("expected short password to be rejected")
	}

	email, err := store.Authenticate("ALICE@example.com", "secret123")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if email != "alice@example.com" {
		t.Fatalf("email = %q", email)
	}
	if _, err := store.Authenticate("alice@example.com", "wrong"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("bad password err = %v", err)
	}
	if _, err := store.Authenticate("nobody@example.com", "secret123"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("unknown account err = %v", err)
	}
}

func TestUserStoreSurvivesReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	store, err := NewUserStore(path)
	if err != nil {
		t.Fatalf("NewUserStore: %v", err)
	}
	if err := store.Signup("alice@example.com", "secret123"); err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if err := store.AttachProject("alice@example.com", "p-1"); err != nil {
		t.Fatalf("AttachProject: %v", err)
	}

	reloaded, err := NewUserStore(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if _, err := reloaded.Authenticate("alice@example.com", "secret123"); err != nil {
		t.Fatalf("Authenticate after reload: %v", err)
	}
	ids := reloaded.ProjectIDs("alice@example.com")
	if len(ids) != 1 || ids[0] != "p-1" {
		t.Fatalf("project ids = %v", ids)
	}
}

func TestUserStoreRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewUserStore(path); err == nil {
		t.Fatal("expected corrupt file to be rejected")
	}
}

func TestProjectStoreSaveGetList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.json")
	store, err := NewProjectStore(path)
	if err != nil {
		t.Fatalf("NewProjectStore: %v", err)
	}
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	clock := base
	store.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}

	first, err := store.Save("alice@example.com", "", domain.Snapshot{SelectedName: "Verdantia"})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if first.ProjectName != "Verdantia" {
		t.Fatalf("ProjectName = %q, want selected name fallback", first.ProjectName)
	}
	second, err := store.Save("alice@example.com", "Rebrand", domain.Snapshot{SelectedName: "Verdantia"})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := store.Save("bob@example.com", "Other", domain.Snapshot{}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := store.Get("alice@example.com", first.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Brand.SelectedName != "Verdantia" {
		t.Fatalf("snapshot = %+v", got.Brand)
	}
	if _, err := store.Get("bob@example.com", first.ID); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("foreign get err = %v", err)
	}
	if _, err := store.Get("alice@example.com", "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("missing get err = %v", err)
	}

	list := store.ListByOwner("alice@example.com")
	if len(list) != 2 {
		t.Fatalf("list len = %d", len(list))
	}
	if list[0].ID != second.ID {
		t.Fatal("list must be newest first")
	}
}

func TestProjectStoreDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.json")
	store, err := NewProjectStore(path)
	if err != nil {
		t.Fatalf("NewProjectStore: %v", err)
	}
	rec, err := store.Save("alice@example.com", "Kit", domain.Snapshot{})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Delete("bob@example.com", rec.ID); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("foreign delete err = %v", err)
	}
	if err := store.Delete("alice@example.com", rec.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := store.Delete("alice@example.com", rec.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("second delete err = %v", err)
	}

	reloaded, err := NewProjectStore(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got := reloaded.ListByOwner("alice@example.com"); len(got) != 0 {
		t.Fatalf("list after delete = %v", got)
	}
}
