// Package main demonstrates usage of the scg-errkit packages.
//
//	errkit-example inspect ./config.yaml --format json
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/next-trace/scg-errkit/contract"
	apiError "github.com/next-trace/scg-errkit/error"
)

// MissingFile is the narrow error of the file layer.
type MissingFile struct {
	apiError.Base
	Path string
}

func (m *MissingFile) Error() string          { return apiError.Message(m) }
func (m *MissingFile) Description() string    { return "file not found" }
func (m *MissingFile) Detail() (string, bool) { return m.Path, true }

// AppError is the broad error of the command layer.
type AppError struct {
	apiError.Base
	ExitCode int
	Inner    contract.Error
}

func (a *AppError) Error() string       { return apiError.Message(a) }
func (a *AppError) Description() string { return "inspect failed" }
func (a *AppError) Cause() contract.Error {
	if a.Inner == nil {
		return nil
	}

	return a.Inner
}

var appErrors = newAppRegistry()

func newAppRegistry() *apiError.Registry[*AppError] {
	r := apiError.NewRegistry(func(err contract.Error) *AppError {
		return &AppError{ExitCode: 1, Inner: err}
	})
	apiError.Absorb[*MissingFile, *AppError](r, func(m *MissingFile) *AppError {
		return &AppError{ExitCode: 2, Inner: m}
	})
	apiError.Absorb[*apiError.Error, *AppError](r, func(e *apiError.Error) *AppError {
		if _, ok := apiError.Find[*MissingFile](e); ok {
			return &AppError{ExitCode: 2, Inner: e}
		}

		return &AppError{ExitCode: 1, Inner: e}
	})

	return r
}

// loadConfig reads path, reporting absence as *MissingFile under a config error.
func loadConfig(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		return data, nil
	}

	var cause contract.Error = apiError.Ensure(err)
	if errors.Is(err, fs.ErrNotExist) {
		cause = &MissingFile{Path: path}
	}

	return nil, apiError.Wrap(cause, "load config",
		apiError.WithCode("config.load"),
		apiError.WithContext(map[string]any{"path": path}),
	)
}

// cli carries state shared by the commands.
type cli struct {
	log *zap.Logger
}

func (c *cli) newInspectCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "inspect <path>",
		Short: "Load a file and print the error chain on failure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := loadConfig(args[0])
			if err == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "loaded %d bytes\n", len(data))
				return nil
			}

			app := appErrors.Propagate(apiError.Ensure(err))
			c.log.Error("inspect failed", zap.Int("exit_code", app.ExitCode), apiError.Field(app))

			if mf, ok := apiError.Find[*MissingFile](app); ok {
				c.log.Info("hint", zap.String("create", mf.Path))
			}

			r := apiError.NewReport(app)

			var out []byte
			switch format {
			case "json":
				out, err = r.JSON()
			case "yaml":
				out, err = r.YAML()
			default:
				return fmt.Errorf("unknown format %q", format)
			}

			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(out))

			return app
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "Report format: yaml or json")

	return cmd
}

func (c *cli) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "errkit-example",
		Short:         "Demonstrates cause chains, conversion and downcasting",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if c.log != nil {
				return nil
			}

			verbose, _ := cmd.Flags().GetBool("verbose")

			build := zap.NewProduction
			if verbose {
				build = zap.NewDevelopment
			}

			l, err := build()
			if err != nil {
				return err
			}

			c.log = l

			return nil
		},
	}

	root.PersistentFlags().BoolP("verbose", "v", false, "Development logging")
	root.AddCommand(c.newInspectCmd())

	return root
}

func main() {
	c := &cli{}
	err := c.newRootCmd().Execute()

	if c.log != nil {
		_ = c.log.Sync()
	}

	if err == nil {
		return
	}

	if app, ok := apiError.DowncastRef[*AppError](apiError.Ensure(err)); ok {
		os.Exit(app.ExitCode)
	}

	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
