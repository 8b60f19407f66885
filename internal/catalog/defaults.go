package catalog

// Default returns the built-in starter catalogue used when no catalogue
// file exists yet or an existing file fails to load. It is never written
// to disk by itself; only a subsequent add or remove persists it.
func Default() []Record {
	return []Record{
		{Name: "Orange", Length: 5.0, Width: 3.0, Height: 2.0},
		{Name: "Apple", Length: 4.0, Width: 2.5, Height: 1.5},
		{Name: "Banana", Length: 6.0, Width: 3.5, Height: 2.5},
		{Name: "Pear", Length: 6.0, Width: 3.5, Height: 2.5},
	}
}
