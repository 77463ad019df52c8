package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestCommandTree(t *testing.T) {
	root := NewRootCommand("tool", "short", "long")
	var ran []string
	root.AddCommand(NewInitCommand("tool", func(cmd *cobra.Command, args []string) error {
		ran = append(ran, "init")
		return nil
	}))
	root.AddCommand(NewActionCommand("fail", "Always fails.", "", cobra.NoArgs,
		func(cmd *cobra.Command, args []string) error {
			ran = append(ran, "fail")
			return errors.New("failed")
		}))
	root.AddCommand(NewVersionCommand("tool"))

	root.SetArgs([]string{"init"})
	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"fail"})
	if err := root.Execute(); err == nil || err.Error() != "failed" {
		t.Fatal("Expect the action error, got", err)
	}
	if strings.Contains(out.String(), "Usage:") {
		t.Error("Usage should not be printed on action errors")
	}

	root.SetArgs([]string{"init", "extra"})
	if err := root.Execute(); err == nil {
		t.Error("Expect init to reject arguments")
	}

	if strings.Join(ran, ",") != "init,fail" {
		t.Error("Unexpected commands ran", ran)
	}
}
