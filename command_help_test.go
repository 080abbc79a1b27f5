package main

import (
	"slices"
	"testing"
)

func TestSplitCommand(t *testing.T) {
	testCases := []struct {
		Name    string
		Input   string
		Want    []string
		WantErr bool
	}{
		{Name: "Simple", Input: "git status", Want: []string{"git", "status"}},
		{Name: "Quoted Argument", Input: `echo "hello world"`, Want: []string{"echo", "hello world"}},
		{Name: "Flags", Input: "ls -la /tmp", Want: []string{"ls", "-la", "/tmp"}},
		{Name: "Unbalanced Quote", Input: `echo "oops`, WantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			got, err := splitCommand(tc.Input)
			if tc.WantErr {
				if err == nil {
					t.Errorf("splitCommand(%q) succeeded; want error", tc.Input)
				}
				return
			}
			if err != nil {
				t.Fatalf("splitCommand(%q): %v", tc.Input, err)
			}
			if !slices.Equal(got, tc.Want) {
				t.Errorf("splitCommand(%q) = %v; want %v", tc.Input, got, tc.Want)
			}
		})
	}
}

func TestGetCommandHelpEmpty(t *testing.T) {
	if _, err := getCommandHelp(nil); err == nil {
		t.Error("getCommandHelp(nil) should fail")
	}
}
