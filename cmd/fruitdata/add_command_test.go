package main

import (
	"bytes"
	"errors"
	"testing"

	"fruitdata/internal/catalog"
	"fruitdata/internal/testsupport"
)

func TestAddThenGet(t *testing.T) {
	isolateHome(t)
	path := testsupport.CataloguePath(t)
	testsupport.WriteCatalogue(t, path, testsupport.SampleRecords())

	stdout, _, err := runCLI(t, []string{"add", "Dragonfruit", "10.0", "8.0", "6.0"}, path, "")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	requireContains(t, stdout, `Added "Dragonfruit"`)
	requireContains(t, stdout, "volume 480")

	stdout, _, err = runCLI(t, []string{"get", "dragonFRUIT"}, path, "")
	if err != nil {
		t.Fatalf("get after add: %v", err)
	}
	requireContains(t, stdout, "Name: Dragonfruit")
	requireContains(t, stdout, "Volume: 480")
}

func TestAddPersistsToFile(t *testing.T) {
	isolateHome(t)
	path := testsupport.CataloguePath(t)
	testsupport.WriteCatalogue(t, path, testsupport.SampleRecords())

	if _, _, err := runCLI(t, []string{"add", "Papaya", "12", "9", "8"}, path, ""); err != nil {
		t.Fatalf("add: %v", err)
	}

	store := catalog.NewStore(path, nil)
	records, err := store.Load()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	if records[2].Name != "Papaya" {
		t.Errorf("new record not appended last: %+v", records)
	}
}

func TestAddOnMissingFileSavesDefaultsPlusNew(t *testing.T) {
	isolateHome(t)
	path := testsupport.CataloguePath(t)

	_, stderr, err := runCLI(t, []string{"add", "Dragonfruit", "10", "8", "6"}, path, "")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	requireContains(t, stderr, "Warning: could not load catalogue")

	records, err := catalog.NewStore(path, nil).Load()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(records) != 5 {
		t.Fatalf("got %d records, want defaults plus one", len(records))
	}
	if records[4].Name != "Dragonfruit" {
		t.Errorf("last record = %q, want Dragonfruit", records[4].Name)
	}
}

func TestAddRejectionsLeaveFileUnchanged(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{"duplicate different casing", []string{"add", "mango", "1", "1", "1"}},
		{"empty name", []string{"add", "   ", "1", "1", "1"}},
		{"zero dimension", []string{"add", "Durian", "0", "1", "1"}},
		{"negative dimension", []string{"add", "Durian", "5", "-2", "1"}},
		{"non-numeric dimension", []string{"add", "Durian", "five", "1", "1"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			isolateHome(t)
			path := testsupport.CataloguePath(t)
			testsupport.WriteCatalogue(t, path, testsupport.SampleRecords())
			before := testsupport.ReadFile(t, path)

			_, _, err := runCLI(t, tc.args, path, "")
			if !errors.Is(err, catalog.ErrValidation) {
				t.Fatalf("add = %v, want ErrValidation", err)
			}

			after := testsupport.ReadFile(t, path)
			if !bytes.Equal(before, after) {
				t.Error("rejected add changed the catalogue file")
			}
		})
	}
}
