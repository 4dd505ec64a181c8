package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mosaic/internal/config"
)

// executeCommand runs a cobra command with args and returns captured output
func executeCommand(root *cobra.Command, args ...string) (output string, err error) {
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err = root.Execute()
	return buf.String(), err
}

func TestRootCommand(t *testing.T) {
	if rootCmd.Use != "mosaic" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "mosaic")
	}

	cmdMap := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		cmdMap[cmd.Name()] = true
	}
	if !cmdMap["config"] {
		t.Error("root command should have a config subcommand")
	}
}

func TestConfigShow(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	config.SetDefaults()

	out, err := executeCommand(rootCmd, "config", "show")
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}

	for _, want := range []string{"shell:", "regions:", "theme: default", "logging:", "dispatch:"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestConfigPath(t *testing.T) {
	out, err := executeCommand(rootCmd, "config", "path")
	if err != nil {
		t.Fatalf("config path failed: %v", err)
	}
	if !strings.Contains(out, "config.yaml") {
		t.Errorf("output should name the config file, got %q", out)
	}
}
