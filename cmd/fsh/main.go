// Command fsh is the interactive shell entrypoint: it loads (or creates)
// the profile, runs it once, then drops into the REPL. Grounded on the
// teacher's cli/main.go cobra rootCmd shape, generalized to fsh's profile/
// REPL concerns.
package main

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/flucium/fsh/pkgs/errors"
	"github.com/flucium/fsh/pkgs/executor"
	"github.com/flucium/fsh/pkgs/parser"
	"github.com/flucium/fsh/pkgs/profile"
	"github.com/flucium/fsh/pkgs/repl"
	"github.com/flucium/fsh/pkgs/shell"
	"github.com/flucium/fsh/pkgs/vars"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	var profilePath string

	rootCmd := &cobra.Command{
		Use:           "fsh",
		Short:         "fsh is a small POSIX-style interactive shell",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(expandHome(profilePath))
		},
	}

	rootCmd.PersistentFlags().StringVarP(&profilePath, "profile", "p", shell.DefaultProfilePath, "path to the startup profile file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "fsh: %v\n", err)
		os.Exit(1)
	}
}

func run(profilePath string) error {
	store := vars.New()
	store.Inherit()

	content, err := profile.LoadOrCreate(profilePath)
	if err != nil {
		// Only an unknown-cause failure is fatal; known causes (missing
		// parent directory, permission denied, ...) are reported and the
		// shell proceeds with an empty profile.
		switch errors.KindOf(err) {
		case errors.Internal, errors.Other:
			panic(err)
		default:
			fmt.Fprintf(os.Stderr, "fsh: profile: %v\n", err)
			content = ""
		}
	}

	state := executor.NewState("")

	if strings.TrimSpace(content) != "" {
		program, err := parser.Parse(content)
		if err != nil {
			fmt.Fprintf(os.Stderr, "fsh: profile: %v\n", err)
		} else if err := executor.Run(program, state, store); err != nil {
			fmt.Fprintf(os.Stderr, "fsh: profile: %v\n", err)
		}
	}

	session := repl.New(os.Stdin, os.Stdout, os.Stderr, store, state)
	return session.Run()
}

// expandHome resolves a leading "~" to the current user's home directory,
// matching the shell's $HOME-relative default profile path.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	u, err := user.Current()
	if err != nil {
		return path
	}
	return filepath.Join(u.HomeDir, strings.TrimPrefix(path, "~"))
}
