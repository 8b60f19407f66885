package main

import (
	"errors"
	"testing"

	"fruitdata/internal/catalog"
	"fruitdata/internal/testsupport"
)

func TestGetAnyCasing(t *testing.T) {
	isolateHome(t)
	path := testsupport.CataloguePath(t)
	testsupport.WriteCatalogue(t, path, testsupport.SampleRecords())

	for _, name := range []string{"Mango", "mango", "MANGO"} {
		stdout, _, err := runCLI(t, []string{"get", name}, path, "")
		if err != nil {
			t.Fatalf("get %s: %v", name, err)
		}
		requireContains(t, stdout, "Name: Mango")
		requireContains(t, stdout, "Dimensions: 10 x 7 x 6")
		requireContains(t, stdout, "Volume: 420")
	}
}

func TestGetNotFound(t *testing.T) {
	isolateHome(t)
	path := testsupport.CataloguePath(t)
	testsupport.WriteCatalogue(t, path, testsupport.SampleRecords())

	_, _, err := runCLI(t, []string{"get", "Durian"}, path, "")
	if !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("get missing fruit = %v, want ErrNotFound", err)
	}
}

func TestGetFractionalVolume(t *testing.T) {
	isolateHome(t)
	path := testsupport.CataloguePath(t)
	testsupport.WriteCatalogue(t, path, []catalog.Record{
		{Name: "Grape", Length: 2.5, Width: 2, Height: 1.5},
	})

	stdout, _, err := runCLI(t, []string{"get", "grape"}, path, "")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	requireContains(t, stdout, "Dimensions: 2.5 x 2 x 1.5")
	requireContains(t, stdout, "Volume: 7.5")
}
