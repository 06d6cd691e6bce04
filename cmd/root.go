package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "binstat",
	Short: "Generate and analyze binary integer datasets",
	Long: `binstat generates fixed-size blocks of synthetic integer data, persists
them to length-prefixed binary files, and runs a family of analyses over
the reloaded data: descriptive statistics, duplicate counting,
missing-value counting, and randomized binary-search verification.`,

	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if cmd.Name() == "install" || cmd.Name() == "version" || cmd.Name() == "help" {
			return
		}

		if !isShellSupported() || completionsExist() {
			return
		}

		fmt.Println("🔧 First run detected, setting up binstat...")
		if installCompletions(cmd.Root()) == nil {
			fmt.Println("✅ Shell completions installed")
			fmt.Println("💡 Restart your shell to enable tab completion")
		} else {
			fmt.Println("⚠️  Auto-setup failed. Run 'binstat install' to try again.")
		}
	},
}

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install shell completions",
	Run: func(cmd *cobra.Command, args []string) {
		if !isShellSupported() {
			fmt.Printf("❌ Shell completion not supported for: %s\n", detectShell())
			fmt.Println("Supported shells: bash, zsh, fish, powershell")
			return
		}

		if completionsExist() {
			fmt.Println("✅ Already configured!")
			return
		}

		fmt.Println("📦 Installing completions...")
		if err := installCompletions(cmd.Root()); err != nil {
			fmt.Printf("❌ Failed: %v\n", err)
		} else {
			fmt.Println("✅ Done! Restart your shell to enable tab completion.")
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.AddCommand(installCmd)
}

// initConfig reads an optional binstat.yaml plus BINSTAT_* environment
// variables; flag values take precedence through the viper bindings.
func initConfig() {
	viper.SetConfigName("binstat")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}

	viper.SetEnvPrefix("binstat")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "⚠️  Ignoring config file: %v\n", err)
		}
	}
}

func detectShell() string {
	if runtime.GOOS == "windows" {
		return "powershell"
	}

	shell := filepath.Base(os.Getenv("SHELL"))
	if shell == "" || shell == "." {
		return "bash"
	}
	return shell
}

func isShellSupported() bool {
	switch detectShell() {
	case "bash", "zsh", "fish", "powershell":
		return true
	}
	return false
}

func completionPath(shell string) string {
	home, _ := os.UserHomeDir()

	switch shell {
	case "bash":
		return filepath.Join(home, ".local/share/bash-completion/completions/binstat")
	case "zsh":
		return filepath.Join(home, ".zsh/completions/_binstat")
	case "fish":
		return filepath.Join(home, ".config/fish/completions/binstat.fish")
	case "powershell":
		return filepath.Join(home, "binstat_completion.ps1")
	}
	return ""
}

func completionsExist() bool {
	path := completionPath(detectShell())
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

func installCompletions(root *cobra.Command) error {
	shell := detectShell()
	path := completionPath(shell)
	if path == "" {
		return fmt.Errorf("unsupported shell: %s", shell)
	}

	generators := map[string]func(io.Writer) error{
		"bash":       root.GenBashCompletion,
		"zsh":        root.GenZshCompletion,
		"fish":       func(w io.Writer) error { return root.GenFishCompletion(w, true) },
		"powershell": root.GenPowerShellCompletionWithDesc,
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return generators[shell](file)
}
