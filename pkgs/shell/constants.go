// Package shell holds the small set of manifest constants shared across
// fsh's packages: reserved variable names and default paths. Grounded on
// the original fsh-terminal's RESERVEDWORD_SHELL_VARIABLE_FSH_PROMPT /
// RESERVEDWORD_SHELL_VARIABLE_FSH_CWD constants.
package shell

// FshPromptVar is the reserved variable holding the prompt template.
const FshPromptVar = "FSH_PROMPT"

// FshCwdVar is the reserved variable holding an optional working-directory
// override, applied at the top of every REPL iteration. The shell's tracked
// working directory itself lives in executor.State.
const FshCwdVar = "FSH_CWD"

// DefaultPromptValue is installed into FshPromptVar when a fresh profile is
// created.
const DefaultPromptValue = "# "

// DefaultProfilePath is the profile file path used when the user doesn't
// pass -p/--profile.
const DefaultProfilePath = "~/.fsh_profile"
