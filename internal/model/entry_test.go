package model

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewEntry(t *testing.T) {
	dir := NewEntry(filepath.Join("tmp", "docs"), true, "rwxr-xr-x")
	assert.Equal(t, "docs"+string(filepath.Separator), dir.Name)
	assert.True(t, dir.IsDir)

	file := NewEntry(filepath.Join("tmp", "notes.txt"), false, PermError)
	assert.Equal(t, "notes.txt", file.Name)
	assert.True(t, file.HasPermError())
}

func TestSortByName(t *testing.T) {
	entries := []Entry{
		{Name: "beta", Path: "/x/beta"},
		{Name: "Zulu", Path: "/x/Zulu"},
		{Name: "alpha", Path: "/x/alpha"},
	}

	SortByName(entries, SortAToZ)

	// byte order puts upper case first
	assert.Equal(t, []string{"Zulu", "alpha", "beta"}, names(entries))

	SortByName(entries, SortZToA)
	assert.Equal(t, []string{"beta", "alpha", "Zulu"}, names(entries))
}

func TestSortOrderReverse(t *testing.T) {
	assert.Equal(t, SortZToA, SortAToZ.Reverse())
	assert.Equal(t, SortAToZ, SortZToA.Reverse())
	assert.Equal(t, "A-Z", SortAToZ.String())
}

func names(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}
